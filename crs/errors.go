package crs

import "errors"

// ErrArchiveFormat is returned when a required archive entry is missing or
// malformed.
var ErrArchiveFormat = errors.New("crs: malformed archive entry")
