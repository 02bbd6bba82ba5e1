package sequence

import (
	"fmt"
	"strings"
)

// Dialect is the final formatting step of one output grammar. root already
// carries any path prefix and ends in the frame separator; ext starts with
// its dot. first == last for single-frame sequences.
type Dialect interface {
	Name() string
	Format(root, ext string, first, last, padding int) string
}

// The supported dialects.
var (
	Native Dialect = native{}
	Nuke   Dialect = nuke{}
	RV     Dialect = rv{}
	Shake  Dialect = shake{}
	Glob   Dialect = glob{}
)

var dialects = []Dialect{Native, Nuke, RV, Shake, Glob}

// LookupDialect returns the dialect registered under name.
func LookupDialect(name string) (Dialect, bool) {
	for _, d := range dialects {
		if d.Name() == name {
			return d, true
		}
	}
	return nil, false
}

// DialectNames lists the dialect names in declaration order.
func DialectNames() []string {
	names := make([]string, len(dialects))
	for i, d := range dialects {
		names[i] = d.Name()
	}
	return names
}

// native: name.[0001-0100].exr
type native struct{}

func (native) Name() string { return "native" }

func (native) Format(root, ext string, first, last, padding int) string {
	if first == last {
		return root + PadFrame(first, padding) + ext
	}
	return root + "[" + PadFrame(first, padding) + "-" + PadFrame(last, padding) + "]" + ext
}

// nuke: name.%04d.exr 1-100
type nuke struct{}

func (nuke) Name() string { return "nuke" }

func (nuke) Format(root, ext string, first, last, padding int) string {
	if first == last {
		return root + PadFrame(first, padding) + ext
	}
	return fmt.Sprintf("%s%%0%dd%s %d-%d", root, padding, ext, first, last)
}

// rv: name.1-100#.exr
type rv struct{}

func (rv) Name() string { return "rv" }

func (rv) Format(root, ext string, first, last, padding int) string {
	if first == last {
		return root + PadFrame(first, padding) + ext
	}
	return fmt.Sprintf("%s%d-%d%s%s", root, first, last, padMarker(padding), ext)
}

// shake: shake -t 1-100 name.#.exr
type shake struct{}

func (shake) Name() string { return "shake" }

func (shake) Format(root, ext string, first, last, padding int) string {
	if first == last {
		return "shake " + root + PadFrame(first, padding) + ext
	}
	return fmt.Sprintf("shake -t %d-%d %s%s%s", first, last, root, padMarker(padding), ext)
}

// glob: name.[0-9][0-9][0-9][0-9].exr
type glob struct{}

func (glob) Name() string { return "glob" }

func (glob) Format(root, ext string, first, _, padding int) string {
	var b strings.Builder
	b.WriteString(root)
	for i := 0; i < padding; i++ {
		if i == 0 && first < 0 {
			b.WriteString(`[\-0-9]`)
			continue
		}
		b.WriteString("[0-9]")
	}
	b.WriteString(ext)
	return b.String()
}

// padMarker is the rv/shake frame placeholder: one '@' per digit, or a
// single '#' for the common four-digit padding.
func padMarker(padding int) string {
	if padding == 4 {
		return "#"
	}
	return strings.Repeat("@", padding)
}
