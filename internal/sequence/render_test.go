package sequence

import (
	"fmt"
	"testing"

	gglob "github.com/gobwas/glob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// build aggregates names through the classifier with a fixed stat result,
// overriding sizes/times per name where given.
func build(t *testing.T, names []string, stat map[string]Frame) *Entry {
	t.Helper()
	a := NewAggregator()
	for _, n := range names {
		c := Classify(n, testOpts)
		require.Equal(t, KindImage, c.Kind, n)
		f, ok := stat[n]
		if !ok {
			f = Frame{Size: 1024, ModTime: 1000}
		}
		a.Add(c.Key, c.Token, f.Size, f.ModTime)
	}
	entries := a.Entries()
	require.Len(t, entries, 1)
	return entries[0]
}

type warnings []string

func (w *warnings) warn(format string, args ...any) {
	*w = append(*w, fmt.Sprintf(format, args...))
}

func TestRender_NativeMissing(t *testing.T) {
	e := build(t, []string{"a.1.exr", "a.2.exr", "a.4.exr"}, nil)
	r := NewRenderer(Native, RenderOptions{ShowMissing: true, ShowZero: true}, nil)

	lines, rep := r.Render(e, "")
	assert.Equal(t, []string{"a.[1-4].exr m:[3]"}, lines)
	assert.Equal(t, []Span{{3, 3}}, rep.Missing)
	assert.Equal(t, 1, rep.MissingCount())
	assert.Empty(t, rep.Zero)
}

func TestRender_SparseRangeStaysSmall(t *testing.T) {
	e := build(t, []string{"a.0.exr", "a.5.exr", "a.999999999.exr"}, nil)
	r := NewRenderer(Native, RenderOptions{ShowMissing: true, ShowZero: true}, nil)

	lines, rep := r.Render(e, "")
	assert.Equal(t, []string{"a.[0-999999999].exr m:[1-4,6-999999998]"}, lines)
	assert.Equal(t, []Span{{1, 4}, {6, 999999998}}, rep.Missing)
	assert.Equal(t, 999999997, rep.MissingCount())
}

func TestRender_NativeMissingAndZero(t *testing.T) {
	e := build(t, []string{"b.001.tif", "b.003.tif"}, map[string]Frame{
		"b.003.tif": {Size: 0, ModTime: 1000},
	})
	var w warnings
	r := NewRenderer(Native, RenderOptions{ShowMissing: true, ShowZero: true}, w.warn)

	lines, rep := r.Render(e, "")
	assert.Equal(t, []string{"b.[001-003].tif m:[002],z:[003]"}, lines)
	assert.Equal(t, 0, rep.Broken)
	assert.Empty(t, w, "empty files are reported without a warning")
}

func TestRender_BrokenLinkWarns(t *testing.T) {
	e := build(t, []string{"c.0001.exr", "c.0002.exr", "c.0003.exr"}, map[string]Frame{
		"c.0002.exr": {Size: 0, ModTime: BrokenLink},
	})
	var w warnings
	r := NewRenderer(Native, RenderOptions{ShowMissing: true, ShowZero: true}, w.warn)

	lines, rep := r.Render(e, "renders/")
	assert.Equal(t, []string{"renders/c.[0001-0003].exr z:[0002]"}, lines)
	assert.Equal(t, []int{2}, rep.Zero)
	assert.Equal(t, 1, rep.Broken)
	assert.Equal(t, warnings{"renders/c.0002.exr is a broken symbolic link"}, w)
}

func TestRender_AnnotationsFollowOptions(t *testing.T) {
	e := build(t, []string{"b.001.tif", "b.003.tif", "b.004.tif", "b.007.tif"}, map[string]Frame{
		"b.003.tif": {Size: 0, ModTime: 1000},
		"b.004.tif": {Size: 0, ModTime: 1000},
	})
	cases := []struct {
		name string
		opts RenderOptions
		want string
	}{
		{"nothing", RenderOptions{}, "b.[001-007].tif"},
		{"missing only", RenderOptions{ShowMissing: true}, "b.[001-007].tif m:[002,005-006]"},
		{"zero only", RenderOptions{ShowZero: true}, "b.[001-007].tif z:[003-004]"},
		{"both", RenderOptions{ShowMissing: true, ShowZero: true}, "b.[001-007].tif m:[002,005-006],z:[003-004]"},
		{"combined", RenderOptions{ShowMissing: true, ShowZero: true, Combine: true}, "b.[001-007].tif [002-006]"},
		{"combined missing only", RenderOptions{ShowMissing: true, Combine: true}, "b.[001-007].tif [002,005-006]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lines, _ := NewRenderer(Native, tc.opts, nil).Render(e, "")
			assert.Equal(t, []string{tc.want}, lines)
		})
	}
}

func TestRender_Dialects(t *testing.T) {
	a := build(t, []string{"a.1.exr", "a.2.exr", "a.4.exr"}, nil)
	four := build(t, []string{"shot.1001.exr", "shot.1002.exr", "shot.1100.exr"}, nil)
	single := build(t, []string{"still.0007.jpg"}, nil)
	neg := build(t, []string{"n.-05.exr", "n.00.exr", "n.05.exr"}, nil)

	cases := []struct {
		name    string
		dialect Dialect
		entry   *Entry
		want    string
	}{
		{"native range", Native, four, "shot.[1001-1100].exr"},
		{"native single", Native, single, "still.0007.jpg"},
		{"nuke range", Nuke, four, "shot.%04d.exr 1001-1100"},
		{"nuke unpadded", Nuke, a, "a.%01d.exr 1-4"},
		{"nuke single", Nuke, single, "still.0007.jpg"},
		{"rv unpadded", RV, a, "a.1-4@.exr"},
		{"rv four digits", RV, four, "shot.1001-1100#.exr"},
		{"rv single", RV, single, "still.0007.jpg"},
		{"shake range", Shake, four, "shake -t 1001-1100 shot.#.exr"},
		{"shake unpadded", Shake, a, "shake -t 1-4 a.@.exr"},
		{"shake single", Shake, single, "shake still.0007.jpg"},
		{"glob", Glob, four, "shot.[0-9][0-9][0-9][0-9].exr"},
		{"glob single", Glob, single, "still.[0-9][0-9][0-9][0-9].jpg"},
		{"glob negative", Glob, neg, `n.[\-0-9][0-9].exr`},
		{"native negative", Native, neg, "n.[-05-05].exr"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lines, _ := NewRenderer(tc.dialect, RenderOptions{}, nil).Render(tc.entry, "")
			assert.Equal(t, []string{tc.want}, lines)
		})
	}
}

func TestRender_GlobMatchesMembers(t *testing.T) {
	names := []string{"plate.0998.dpx", "plate.0999.dpx", "plate.1000.dpx", "plate.1001.dpx"}
	e := build(t, names, nil)
	lines, _ := NewRenderer(Glob, RenderOptions{}, nil).Render(e, "")
	require.Len(t, lines, 1)

	g, err := gglob.Compile(lines[0])
	require.NoError(t, err)
	for _, n := range names {
		assert.True(t, g.Match(n), n)
	}
	assert.False(t, g.Match("plate.10000.dpx"))
	assert.False(t, g.Match("plate..dpx"))
}

func TestRender_Extremes(t *testing.T) {
	e := build(t, []string{"a.1.exr", "a.2.exr", "a.4.exr"}, map[string]Frame{
		"a.2.exr": {Size: 0, ModTime: BrokenLink},
	})
	var w warnings
	r := NewRenderer(RV, RenderOptions{Extremes: true, ShowMissing: true, ShowZero: true}, w.warn)
	assert.Equal(t, Native, r.Dialect())

	lines, rep := r.Render(e, "")
	assert.Equal(t, []string{"a.1.exr", "a.4.exr"}, lines)
	assert.Empty(t, rep.Missing)
	assert.Empty(t, w)

	single := build(t, []string{"still.0007.jpg"}, nil)
	lines, _ = r.Render(single, "/abs/")
	assert.Equal(t, []string{"/abs/still.0007.jpg"}, lines)
}

func TestRenderMovie(t *testing.T) {
	r := NewRenderer(Nuke, RenderOptions{}, nil)
	assert.Equal(t, "dailies/edit.mov", r.RenderMovie(Movie{Name: "edit.mov"}, "dailies/"))
}

func TestLookupDialect(t *testing.T) {
	for _, name := range DialectNames() {
		d, ok := LookupDialect(name)
		require.True(t, ok, name)
		assert.Equal(t, name, d.Name())
	}
	_, ok := LookupDialect("houdini")
	assert.False(t, ok)
	assert.Equal(t, []string{"native", "nuke", "rv", "shake", "glob"}, DialectNames())
}

func TestCondense(t *testing.T) {
	cases := []struct {
		name    string
		frames  []int
		padding int
		want    string
	}{
		{"empty", nil, 4, ""},
		{"single", []int{3}, 1, "3"},
		{"run", []int{1, 2, 3}, 1, "1-3"},
		{"mixed", []int{1, 2, 3, 5, 7, 8}, 1, "1-3,5,7-8"},
		{"padded", []int{2, 3, 10}, 4, "0002-0003,0010"},
		{"negative run", []int{-3, -2, -1, 0, 1}, 2, "-03-01"},
		{"pair", []int{8, 9}, 1, "8-9"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Condense(tc.frames, tc.padding))
		})
	}
}

func TestSpans(t *testing.T) {
	assert.Empty(t, Spans(nil))
	assert.Equal(t, []Span{{1, 3}, {5, 5}, {7, 8}}, Spans([]int{1, 2, 3, 5, 7, 8}))
	assert.Equal(t, 3, Span{7, 9}.Len())
}

func TestMergeSpans(t *testing.T) {
	missing := []Span{{2, 2}, {5, 6}}
	zero := []Span{{3, 4}, {9, 9}}
	assert.Equal(t, []Span{{2, 6}, {9, 9}}, mergeSpans(missing, zero))
	assert.Equal(t, zero, mergeSpans(nil, zero))
}

func TestPadFrame(t *testing.T) {
	assert.Equal(t, "0007", PadFrame(7, 4))
	assert.Equal(t, "12345", PadFrame(12345, 4))
	assert.Equal(t, "-005", PadFrame(-5, 3))
	assert.Equal(t, "-5", PadFrame(-5, 1))
	assert.Equal(t, "0", PadFrame(0, 1))
	assert.Equal(t, "shot.render.0012.exr", FrameName("shot.render..exr", 4, 12))
	assert.Equal(t, "shot_-01.exr", FrameName("shot_.exr", 2, -1))
}
