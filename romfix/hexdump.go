package romfix

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

const hexdumpWidth = 32

// Hexdump formats data as rows of hex and ASCII, starting at address
// offset. Bytes whose entry in mark is set are highlighted.
func Hexdump(offset int, data []byte, mark []bool) string {
	var result strings.Builder
	red := color.New(color.FgRed)

	for len(data) > 0 {
		l := len(data)
		if l > hexdumpWidth {
			l = hexdumpWidth
		}
		work := data[:l]
		data = data[l:]
		var workMark []bool
		if mark != nil {
			workMark = mark[:l]
			mark = mark[l:]
		}

		var workHex, workASCII strings.Builder
		for i := 0; i < hexdumpWidth; i++ {
			if i >= len(work) {
				workHex.WriteString("   ")
				workASCII.WriteByte(' ')
			} else {
				m := work[i]
				c := m
				if c < 32 || c > 126 {
					c = '.'
				}

				if workMark != nil && workMark[i] {
					red.Fprintf(&workHex, "%02x ", m)
					red.Fprintf(&workASCII, "%c", c)
				} else {
					fmt.Fprintf(&workHex, "%02x ", m)
					workASCII.WriteByte(c)
				}
			}
			if i%8 == 7 {
				workHex.WriteByte(' ')
			}
		}

		fmt.Fprintf(&result, "%08x  %s|%s|\n", offset, workHex.String(), workASCII.String())
		offset += l
	}

	return result.String()
}

// dumpSlot renders the row holding the checksum byte.
func (f *Fixer) dumpSlot(img []byte) string {
	start := f.config.Offset &^ (hexdumpWidth - 1)
	end := start + hexdumpWidth
	if end > len(img) {
		end = len(img)
	}

	mark := make([]bool, end-start)
	mark[f.config.Offset-start] = true
	return Hexdump(start, img[start:end], mark)
}
