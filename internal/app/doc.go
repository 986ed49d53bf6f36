// Package app implements the textkit commands on top of the content accessor
// and the case transformer. Each Execute function is the body of one CLI
// command: it builds the App, runs the operation and terminates the process
// through the logger on failure.
package app
