package models

import (
	"errors"
	"fmt"
)

// Error codes used across the crawl pipeline.
const (
	ErrCodeSession            = "SESSION_FAILURE"
	ErrCodeNavigation         = "NAVIGATION_FAILED"
	ErrCodeListingUnreachable = "LISTING_UNREACHABLE"
	ErrCodeExtraction         = "EXTRACTION_FAILED"
	ErrCodePersistence        = "PERSISTENCE_FAILED"
	ErrCodeNotConfigured      = "CATEGORIZER_NOT_CONFIGURED"
	ErrCodeInvalidInput       = "INVALID_INPUT"
)

// CrawlError is the internal error type carrying an error code.
// It implements the error interface and supports error wrapping via Unwrap.
type CrawlError struct {
	Code    string
	Message string
	Err     error // wrapped original error
}

func (e *CrawlError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *CrawlError) Unwrap() error {
	return e.Err
}

// NewCrawlError creates a new CrawlError.
func NewCrawlError(code, message string, err error) *CrawlError {
	return &CrawlError{Code: code, Message: message, Err: err}
}

// HasCode reports whether err is (or wraps) a CrawlError with the given code.
func HasCode(err error, code string) bool {
	var ce *CrawlError
	if errors.As(err, &ce) {
		return ce.Code == code
	}
	return false
}
