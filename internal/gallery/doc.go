package gallery

// Package gallery holds the UI-agnostic core of the app: the liked and
// favourited library with its cross-screen reload lists, the paginated Feed
// every list screen is built on, and the screen models for explore, search,
// favourites, detail and artist pages.
//
// A screen that changes an artwork's liked or favourited state appends the
// artwork id to the reload list of every other list screen. When a list screen
// regains focus it calls Sync with the ids it shows and re-reads the state of
// the ones returned.
