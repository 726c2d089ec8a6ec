package romfix

import (
	"os"

	"github.com/pkg/errors"
)

type Config struct {
	// Offset of the checksum byte from the start of the image.
	Offset int

	LogFunc func(level int, format string, param ...interface{})
}

func DefaultConfig() Config {
	return Config{
		Offset: ChecksumOffset,
	}
}

type Fixer struct {
	config Config
}

func New(config Config) (*Fixer, error) {
	if config.Offset < 0 {
		return nil, errors.Wrapf(ErrorInvalidOffset, "offset %d", config.Offset)
	}

	return &Fixer{
		config: config,
	}, nil
}

func (f *Fixer) log(level int, format string, param ...interface{}) {
	if f.config.LogFunc != nil {
		f.config.LogFunc(level, format, param...)
	}
}

func (f *Fixer) Offset() int {
	return f.config.Offset
}

// Fix reads the image at input, repairs its checksum and writes the result
// to output. The output is only created once the input was read and
// patched successfully. The returned value is the image sum taken with the
// checksum byte cleared.
func (f *Fixer) Fix(input string, output string) (byte, error) {
	img, err := os.ReadFile(input)
	if err != nil {
		return 0, errors.Wrapf(ErrorSourceNotFound, "%s: %v", input, err)
	}
	f.log(1, "Read %d bytes from %s", len(img), input)

	if len(img) > f.config.Offset {
		f.log(1, "Checksum byte at 0x%x is 0x%02x", f.config.Offset, img[f.config.Offset])
	}

	csum, err := FixImage(img, f.config.Offset)
	if err != nil {
		return 0, errors.Wrap(err, input)
	}
	f.log(1, "Image sum is %d, checksum byte set to 0x%02x", csum, img[f.config.Offset])
	f.log(2, "Patched image around checksum byte:\n%s", f.dumpSlot(img))

	if err := os.WriteFile(output, img, 0644); err != nil {
		return 0, errors.Wrapf(ErrorDestinationUnwritable, "%s: %v", output, err)
	}
	f.log(1, "Wrote %d bytes to %s", len(img), output)

	return csum, nil
}

// Verify reads the image at path back and checks its checksum.
func (f *Fixer) Verify(path string) error {
	img, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(ErrorSourceNotFound, "%s: %v", path, err)
	}

	if err := CheckImage(img, f.config.Offset); err != nil {
		return errors.Wrap(err, path)
	}

	f.log(1, "Verified %s", path)
	return nil
}
