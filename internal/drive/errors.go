package drive

import (
	"errors"
	"fmt"
)

// ErrSource marks any transport or authorization failure while talking to
// the Drive API. Callers render a single page-level message instead of a
// partial folder list.
var ErrSource = errors.New("drive listing failed")

// sourceError wraps an underlying failure so errors.Is(err, ErrSource)
// holds while the cause stays visible in logs.
func sourceError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrSource, fmt.Sprintf(format, args...))
}
