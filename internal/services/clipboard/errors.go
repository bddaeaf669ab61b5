package clipboard

import "errors"

// ErrUnsupported is returned when no clipboard utility is available on the host.
var ErrUnsupported = errors.New("clipboard is not supported on this system")
