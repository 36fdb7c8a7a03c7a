package storage

// Package storage provides the persistent key-value store behind the liked
// and favourited lists and the reload flags.
//
// Drivers:
//   - "preferences": Fyne app preferences (desktop and mobile GUI)
//   - "sqlite": single-table SQLite database (CLI)
//   - "memory": process-local map (tests, throwaway sessions)
