// Package cli implements the interactive QuickNotes terminal client.
//
// It wires the session manager, note store, and form controller together and
// drives them from a read–eval–print loop. All state mutation happens on the
// loop's goroutine; backend calls block the loop until they complete, guarded
// by the form controller's busy flag.
package cli
