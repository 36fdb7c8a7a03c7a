package config

// Package config holds application configuration: the YAML file used by the
// CLI and the Fyne preferences-backed Settings used by the GUI.
