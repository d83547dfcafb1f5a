package statsapi

import "fmt"

// FetchError reports that a transactions request kept failing after every
// retry attempt. It wraps the last underlying error.
type FetchError struct {
	URL      string
	Attempts int
	Err      error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s failed after %d attempts: %v", e.URL, e.Attempts, e.Err)
}

// Unwrap returns the underlying error for errors.Is/errors.As chains.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError creates a FetchError for the given request URL.
func NewFetchError(url string, attempts int, err error) *FetchError {
	return &FetchError{
		URL:      url,
		Attempts: attempts,
		Err:      err,
	}
}
