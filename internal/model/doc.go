package model

// Package model defines the domain data structures shared by the gallery core,
// the API client and both front ends: artworks, artists, search filters,
// screen placements and feed load states. Text helpers used to render API
// content (description stripping and shortening) live here as well.
