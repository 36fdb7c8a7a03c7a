package artic

// Package artic is the client for the Art Institute of Chicago public API
// (api.artic.edu/api/v1) and its IIIF image server. It lists, searches and
// fetches artworks and artists, and prepares feed cards by sizing images
// from IIIF info lookups fanned out with a bounded errgroup.
