package artic

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound is returned when the API has no record for the requested id
var ErrNotFound = errors.New("not found")

// maxErrorBody caps how much of an error response is kept
const maxErrorBody = 512

// APIError is a non-2xx response from the API or the image server
type APIError struct {
	Status int
	URL    string
	Body   string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("api error: %d %s (%s)", e.Status, http.StatusText(e.Status), e.URL)
	}
	return fmt.Sprintf("api error: %d %s (%s): %s", e.Status, http.StatusText(e.Status), e.URL, e.Body)
}

// Is makes errors.Is(err, ErrNotFound) true for 404 responses
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}
