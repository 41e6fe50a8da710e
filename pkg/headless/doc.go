// Package headless implements toolkit.Toolkit entirely in memory.
//
// Every mutating call is appended to an op log so tests can assert exactly
// which native mutators a reconciliation performed. The toolkit enforces the
// ownership rules the core relies on: a handle is destroyed only after it has
// been detached and emptied, and a destroyed handle is never touched again.
//
// Native user interaction is simulated with Fire, Pick, Type and Close. These
// are safe from any goroutine: they enqueue work that runs on the goroutine
// calling Wait or Poll, in FIFO order with payloads posted through Awake.
package headless
