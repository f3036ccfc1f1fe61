// Package logger provides structured logging for the stream kit, built on
// zerolog. A global logger backs the package-level functions; libraries
// that want isolated output create their own instance with New.
package logger
