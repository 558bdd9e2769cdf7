// Package output serialises a planned route and its optional metrics
// summary as text or JSON. No binary format is part of this contract —
// callers needing the full terrain diagnostic use routegraph instead.
package output
