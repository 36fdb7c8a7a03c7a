package model

// LoadState represents the current state of a paginated feed or a page load
type LoadState string

const (
	// LoadStateIdle means nothing has been requested yet
	LoadStateIdle LoadState = "idle"

	// LoadStateLoading means the first page is being fetched
	LoadStateLoading LoadState = "loading"

	// LoadStateRefreshing means the feed was reset and page one is being fetched again
	LoadStateRefreshing LoadState = "refreshing"

	// LoadStateLoadingMore means the next page is being fetched
	LoadStateLoadingMore LoadState = "loading_more"

	// LoadStateReady means the last request succeeded and more pages may follow
	LoadStateReady LoadState = "ready"

	// LoadStateExhausted means every available item has been loaded
	LoadStateExhausted LoadState = "exhausted"

	// LoadStateError means the last request failed
	LoadStateError LoadState = "error"
)

// String returns the string representation of LoadState
func (s LoadState) String() string {
	return string(s)
}

// IsActive returns true if a request is in flight
func (s LoadState) IsActive() bool {
	return s == LoadStateLoading || s == LoadStateRefreshing || s == LoadStateLoadingMore
}

// IsFinished returns true if the last request has settled (ready, exhausted, or error)
func (s LoadState) IsFinished() bool {
	return s == LoadStateReady || s == LoadStateExhausted || s == LoadStateError
}
