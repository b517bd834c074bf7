// Package ui provides terminal output components for the imc CLI.
//
// These components follow a "render once and exit" pattern and are used by
// the non-interactive 'imc calc' and 'imc scan' commands. The interactive
// form in internal/tui reuses the classification table from this package so
// both surfaces draw the same table.
//
//   - Header: command banner with ordered parameters
//   - Table: the four-row classification table with the matching row highlighted
//   - Result: success box (summary and table) or failure box (generic alert)
//
// Colors are dropped automatically by lipgloss when stdout is not a terminal.
package ui
