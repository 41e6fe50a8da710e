// Package engine drives a reactive application over a native toolkit.
//
// A [Runner] owns the single UI goroutine. Start builds the initial view
// inside a new window; each following Step waits for one posted payload,
// turns it into a message, hands the message to the application's Update,
// rebuilds the view and reconciles it into the live widget tree. When the
// new root has the same category as the live one it is patched in place,
// otherwise the whole window content is replaced.
//
// Messages may be posted from any goroutine with [Runner.Post] or
// [Runner.PostFunc]; the toolkit's wake primitive delivers them to the UI
// goroutine one at a time, in order.
package engine
