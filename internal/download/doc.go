package download

// Package download saves artwork images to disk. It manages the task
// lifecycle, the limit on parallel downloads, and progress propagation to
// the UI and the CLI.
