package fuzzy

import "errors"

// ErrUnknownLocale is returned when a phrase table name is not registered.
var ErrUnknownLocale = errors.New("unknown locale")
