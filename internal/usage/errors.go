package usage

import "errors"

// ErrLimitReached indicates the user spent all assessment credits for the period.
var ErrLimitReached = errors.New("limit reached")
