package models

import "errors"

// ErrValidation marks a record that is missing or has a malformed mandatory field.
var ErrValidation = errors.New("validation failed")
