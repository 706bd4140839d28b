// Package errors provides sentinel error values for inventory operations.
package errors

import "errors"

var ErrCarNotFound = errors.New("car not found")
