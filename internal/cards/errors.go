package cards

import "errors"

var (
	ErrMissingName     = errors.New("name is required")
	ErrMissingURL      = errors.New("url is required")
	ErrMissingMimeType = errors.New("mimeType is required")
	ErrMissingID       = errors.New("id is required")
	ErrInvalidAction   = errors.New("action must be \"hide\" or \"show\"")
)

// IsValidationError reports whether err is a client input error that should
// map to a 400 rather than a 500.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingName) ||
		errors.Is(err, ErrMissingURL) ||
		errors.Is(err, ErrMissingMimeType) ||
		errors.Is(err, ErrMissingID) ||
		errors.Is(err, ErrInvalidAction)
}
