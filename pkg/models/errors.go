package models

import "errors"

// ErrFactNotFound is returned by stores when no fact exists for an id.
var ErrFactNotFound = errors.New("fact not found")
