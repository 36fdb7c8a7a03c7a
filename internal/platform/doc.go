package platform

// Package platform contains OS/platform integration: per-user data
// directories, default file locations and opening links in the browser.
