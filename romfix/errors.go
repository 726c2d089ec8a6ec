package romfix

import "errors"

var (
	ErrorSourceNotFound        = errors.New("Source image can't be read")
	ErrorTruncatedImage        = errors.New("Image is too short to hold the checksum")
	ErrorDestinationUnwritable = errors.New("Destination can't be written")
	ErrorChecksumMismatch      = errors.New("Image checksum does not sum to zero")
	ErrorInvalidOffset         = errors.New("Checksum offset is invalid")
)
