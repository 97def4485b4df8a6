// Package ui provides the terminal screen for the cakes catalogue.
//
// # Architecture Overview
//
// The screen is a Bubble Tea program. Its Model owns a bubbles/list
// component, which does the row virtualization: only the rows on the
// current page are rendered, and thumbnails are requested for exactly
// those rows.
//
// # Package Structure
//
//   - app.go: Model, Update loop, commands and the Run function
//   - view.go: header status line and the no-connection body
//   - delegate.go: list delegate drawing thumbnail, title and description
//   - theme.go: colour themes and pre-built Lipgloss styles
//   - keys.go: screen key bindings merged into the list help
//
// # Event Flow
//
//  1. Run() builds the Model and starts the program
//  2. Init() reads the first state.Store snapshot and arms a change waiter
//  3. Every store change arrives as a message; the list items are
//     replaced wholesale and the waiter is re-armed
//  4. Rows on screen without a thumbnail issue a load command; the
//     result is rendered to half-block cells and cached per URL
//  5. Context cancellation ends the program
//
// A thumbnail that fails to load leaves its slot blank. There is no
// placeholder and no error image.
//
// # Key Bindings
//
//   - ↑/↓, j/k, pgup/pgdn: move through the list
//   - /: filter by title
//   - T: cycle theme (persisted to the prefs file)
//   - ?: toggle full help
//   - q, esc or Ctrl+C: exit
package ui
