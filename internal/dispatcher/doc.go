// Package dispatcher routes key events to command families.
//
// # Routing
//
// Every event is first offered to the instant families (quit, save, escape)
// so they stay reachable in the middle of a delayed command. The dispatcher
// then offers it to the families of the current mode:
//
//   - Editing: delayed-command triggers, text edits, caret movement
//   - CommandLine with input active: prompt editing
//   - CommandLine after confirm: the armed command's own keys
//
// The first family whose Parse succeeds has its command applied and the
// search stops. Parsing has no side effects, so trying a family that does
// not recognise the event costs nothing. Events no family recognises are
// dropped; that is not an error.
//
// # Execution
//
// Commands run synchronously on the caller's goroutine. With
// Config.RecoverPanics a panicking command becomes an error result and
// the session stays usable.
package dispatcher
