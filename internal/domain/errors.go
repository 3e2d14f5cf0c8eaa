package domain

import "errors"

var (
	// ErrInvalidRequest is returned when scan parameters are invalid
	ErrInvalidRequest = errors.New("invalid scan parameters")

	// ErrNoListings is returned when no search term yields any listing
	ErrNoListings = errors.New("no products found or all searches failed")

	// ErrMarketUnavailable is returned when the marketplace request fails
	ErrMarketUnavailable = errors.New("marketplace request failed")

	// ErrCacheMiss is returned when a report is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrNoReport is returned when no report has been generated yet
	ErrNoReport = errors.New("no report available")
)
