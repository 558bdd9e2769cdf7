// Package logging wires zap's structured logging onto a small, pluggable
// Appender abstraction, in the manner of the teacher family's
// logging/appender.go: callers choose where log entries land (console, a
// rotating file, both) without depending on zap's Core machinery directly.
//
// cmd/roverplan builds a *zap.SugaredLogger here and passes it to
// traverse.NewPlanner rather than reaching for a package-global logger; a
// nil logger is safe to pass there and simply produces no output.
// pathengine and terrain do not log.
package logging
