// Package cli implements the interactive CapNote command loop.
//
// The REPL dispatches single-word commands to handlers on App. Handlers
// talk to the backend through the services layer and publish results to the
// state store; printing always reads from the store so the screen and the
// state cannot drift apart.
//
// Input and output go through small seams (getSimpleText, getPassword,
// printlnFn) so command handlers stay testable without a terminal.
package cli
