// Package monitoring holds the diagnostic logger shared by the library
// packages and the command line tools.
package monitoring

import "log"

// Logf is the package-level diagnostic logger. It defaults to log.Printf
// and may be replaced with SetLogger.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil mutes it.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// Verbosef logs only when verbose is set
func Verbosef(verbose bool, format string, v ...interface{}) {
	if verbose {
		Logf(format, v...)
	}
}
