// Package listing walks the requested paths and prints one listing pass per
// directory.
//
// A pass reads the directory once, prints plain files and subdirectories
// first (ls order, directories with a trailing slash), then classifies the
// remaining names into image sequences and movies, orders them and renders
// them through a [sequence.Renderer] in the configured dialect.
//
// File layout:
//   - walker.go: Walker, argument partitioning, the directory queue
//   - discover.go: reading and filtering directory entries
//   - stats.go: Stats counters and the verbose summary line
package listing
