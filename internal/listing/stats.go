package listing

import (
	"fmt"

	"github.com/backmassage/lsseq/internal/display"
)

// Stats tracks counters across one Run.
type Stats struct {
	Dirs       int
	Sequences  int
	Frames     int
	Movies     int
	Others     int
	Missing    int
	Zero       int
	Broken     int
	Duplicates int
	Failed     int   // Arguments or directories that could not be read.
	Bytes      int64 // Sum of resolved frame and movie sizes.
}

// String is the one-line summary logged with --verbose.
func (s Stats) String() string {
	return fmt.Sprintf("%d dirs, %d sequences (%d frames, %s), %d movies, %d other; missing %d, zero %d, broken %d, duplicate %d",
		s.Dirs, s.Sequences, s.Frames, display.FormatBytes(s.Bytes), s.Movies, s.Others,
		s.Missing, s.Zero, s.Broken, s.Duplicates)
}
