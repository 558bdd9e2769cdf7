// Package metrics is the Metrics Aggregator: it summarises a finished
// global route with the distance, elevation-change, and slope statistics a
// caller needs to evaluate a traverse after the fact. It is never on the
// planning critical path — traverse never consults it, and a failed
// traverse's partial route can still be summarised for diagnostics.
package metrics
