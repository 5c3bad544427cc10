package repository

import "github.com/pkg/errors"

// ErrUnsupportedField is returned when a Criteria or sort names a field the
// repository does not expose.
var ErrUnsupportedField = errors.New("unsupported field")
