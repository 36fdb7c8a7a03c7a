package logging

// Package logging builds the zerolog logger shared by the GUI and the CLI.
// Console output is human readable; anything else is JSON lines.
