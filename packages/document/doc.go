// Package document loads raw JSON and YAML input into the in-memory
// tree shape the rest of docspec operates on: map[string]any for
// objects, []any for arrays, and scalar leaves.
//
// Loading is optional. Any hand-built tree of the same shape works
// with docpath and expect directly.
package document
