// Package domain defines domain-level errors for the watchlist feature.
package domain

import "errors"

var (
	// ErrInvalidStockID is returned when a stock id is blank.
	ErrInvalidStockID = errors.New("stockId must not be blank")
)
