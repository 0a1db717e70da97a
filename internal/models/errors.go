package models

import "errors"

// Error kinds shared by the scraper and the downloader. Callers match them
// with errors.Is; the wrapped message carries the detail.
var (
	// ErrNetwork is returned when a request cannot be completed or the site
	// answers a page request with a non-success status.
	ErrNetwork = errors.New("network error")

	// ErrParse is returned when expected markup or attributes are missing or
	// malformed, which usually means the site layout changed.
	ErrParse = errors.New("parse error")

	// ErrDownload is returned when a download ends with a non-redirect
	// failure status or the redirect chain cannot be followed.
	ErrDownload = errors.New("download error")

	// ErrNotFound is returned when a requested file id is not listed on the
	// project's files page.
	ErrNotFound = errors.New("not found")
)
