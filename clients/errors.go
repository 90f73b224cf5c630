package clients

import "errors"

var ErrInvalidScope = errors.New("scope not allowed for client")
