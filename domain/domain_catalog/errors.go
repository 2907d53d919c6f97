package domain_catalog

import "errors"

var ErrGameNotFound = errors.New("game not found")
