package repository

import "errors"

// ErrNoData is returned by providers that answered but had nothing to serve.
var ErrNoData = errors.New("provider returned no data")
