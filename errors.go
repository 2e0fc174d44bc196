package leddy

import "errors"

// Input validation errors. Callers match them with errors.Is; the returned
// errors carry the offending value in their message.
var (
	ErrInvalidColor    = errors.New("invalid color")
	ErrInvalidGradient = errors.New("invalid gradient")
	ErrInvalidKeyFrame = errors.New("invalid key frame")
	ErrInvalidProfile  = errors.New("profile index must be between 1 and 4")
	ErrInvalidParam    = errors.New("invalid parameter")
	ErrEmptyCommand    = errors.New("command has neither prefix nor payload")
)

// Device access errors.
var (
	ErrNoDevice = errors.New("no miniSTREAK or STREAK keyboard found")
)

// IsValidation reports whether err is an input validation error, as opposed
// to a device or transport failure.
func IsValidation(err error) bool {
	for _, v := range []error{
		ErrInvalidColor, ErrInvalidGradient, ErrInvalidKeyFrame,
		ErrInvalidProfile, ErrInvalidParam, ErrEmptyCommand,
	} {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
