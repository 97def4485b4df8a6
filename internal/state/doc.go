// Package state holds the backing list shown by the cakes screen.
//
// # Overview
//
// The Store is the coordination point between the background loader and
// the UI. The loader writes phase transitions and, on success, replaces
// the record list wholesale; the UI reads immutable snapshots.
//
//	Producer (loader):              Consumer (UI):
//	┌──────────────────┐           ┌──────────────────┐
//	│ SetPhase()       │           │ <-Changed()      │
//	│ ReplaceAll()     │──────────→│ Snapshot()       │
//	│ Fail()           │  (mutex)  │ render list      │
//	└──────────────────┘           └──────────────────┘
//
// # Phases
//
//	Idle → CheckingConnectivity → NoConnection
//	                            → Fetching → Parsing → Displaying
//	                                       ↘         ↘ Failed
//
// Failed keeps the classified error as LastError and leaves the list
// empty. There is no transition out of NoConnection or Failed.
//
// # Change Signal
//
// Changed returns a 1-buffered channel. Writers send without blocking, so
// bursts of changes coalesce into one wake-up and the reader always
// follows it with a fresh Snapshot.
//
// # Copying
//
// ReplaceAll, Records and Snapshot clone the slice. Callers may keep or
// mutate what they pass in or get back.
//
// The zero Store is ready to use.
package state
