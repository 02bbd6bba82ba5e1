// Package sequence detects numbered image sequences in a flat list of
// filenames and renders them in the listing dialects understood by
// compositing, playback and render tools.
//
// The package is split along the stages of one directory pass:
//
//   - classify.go: [Classify] decides image / movie / other and extracts the
//     sequence [Key] and frame token.
//   - resolve.go: [Resolve] stats a frame, marking broken symlinks with
//     [BrokenLink].
//   - aggregate.go: [Aggregator] groups frames per key and tracks padding.
//   - render.go, dialect.go, condense.go: [Renderer] computes range, missing
//     and zero frames and formats them through a [Dialect].
//   - order.go: [Order] sorts entries and movies by name or by time.
//
// Nothing here recurses into directories or writes to the filesystem; the
// listing package drives one pass per directory.
package sequence
