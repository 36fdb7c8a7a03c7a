package ui

// Package ui contains the Fyne user interface of the gallery.
// RootUI hosts four tabs (explore, search, favourite, settings) under a
// Navigator that pushes detail, artist and search-result pages. Screens
// run network and storage work in goroutines and touch widgets only through
// fyne.Do.
