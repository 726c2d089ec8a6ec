package romfix

import (
	"github.com/pkg/errors"
)

// ChecksumOffset is the position of the checksum byte in the ROM header.
const ChecksumOffset = 6

// Sum adds all bytes of f, wrapping at 8 bits.
func Sum(f []byte) byte {
	var csum byte
	for _, m := range f {
		csum += m
	}
	return csum
}

func checkLength(f []byte, offset int) error {
	if offset < 0 {
		return errors.Wrapf(ErrorInvalidOffset, "offset %d", offset)
	}
	if len(f) <= offset {
		return errors.Wrapf(ErrorTruncatedImage, "%d bytes, need at least %d", len(f), offset+1)
	}
	return nil
}

// CheckImage returns nil if the bytes of f sum to zero.
func CheckImage(f []byte, offset int) error {
	if err := checkLength(f, offset); err != nil {
		return err
	}

	if csum := Sum(f); csum != 0 {
		return errors.Wrapf(ErrorChecksumMismatch, "sum is %d, slot holds %d", csum, f[offset])
	}
	return nil
}

// FixImage clears the checksum byte at offset, sums the image and stores
// the two's complement of that sum in the checksum byte. The sum taken
// before patching is returned. On error f is not modified.
func FixImage(f []byte, offset int) (byte, error) {
	if err := checkLength(f, offset); err != nil {
		return 0, err
	}

	f[offset] = 0
	csum := Sum(f)
	f[offset] = -csum

	return csum, nil
}
