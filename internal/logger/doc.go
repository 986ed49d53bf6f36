// Package logger provides structured logging on top of the Zap logging library.
// A single global sugared logger is shared by the application; a per-call logger
// can be attached to a context with ToContext and is preferred by every
// context-aware logging function in this package.
package logger
