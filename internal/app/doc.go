// Package app wires configuration, the catalogue loader and the UI.
//
// # Flow
//
//	Run()
//	 ├─> config.Load()          read config.toml (defaults when missing)
//	 ├─> tea.LogToFile()        route the log package to the log file
//	 ├─> cakes.NewClient()      catalogue GET
//	 ├─> connectivity.ForURL()  pre-flight probe of the endpoint host
//	 ├─> StartLoader()          one background load
//	 └─> ui.Run()               list screen (blocks)
//
// # Loading
//
// Load is the screen state machine:
//
//	Idle → CheckingConnectivity → Fetching → Parsing → Displaying
//	                           ↘ NoConnection         ↘ Failed
//
// The worker goroutine reports on a buffered channel and never touches
// the store itself. Load applies events only while its context is live.
// There is no retry edge: NoConnection and Failed are terminal for the
// lifetime of the screen.
package app
