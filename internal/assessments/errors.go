package assessments

import "errors"

var ErrNotFound = errors.New("assessment not found")
