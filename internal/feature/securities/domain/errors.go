// Package domain defines domain-level errors for the securities feature.
package domain

import "errors"

var (
	// ErrSecurityNotFound indicates that no security exists with the requested id.
	ErrSecurityNotFound = errors.New("stock not found")
)
