package listing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/gobwas/glob"

	"github.com/backmassage/lsseq/internal/config"
	"github.com/backmassage/lsseq/internal/logging"
	"github.com/backmassage/lsseq/internal/sequence"
)

// ErrIncomplete is returned by Run when some arguments or directories could
// not be read. Each failure has already been logged.
var ErrIncomplete = errors.New("some paths could not be listed")

// Walker lists paths according to a Config.
type Walker struct {
	cfg      *config.Config
	log      *logging.Logger
	out      io.Writer
	stat     sequence.StatFunc
	opts     sequence.Options
	renderer *sequence.Renderer
	ignore   []glob.Glob

	visited map[string]bool
	passes  int
	stats   Stats
}

// Option customizes a Walker.
type Option func(*Walker)

// WithStat replaces the filesystem lookup used for frame size and time.
func WithStat(f sequence.StatFunc) Option {
	return func(w *Walker) { w.stat = f }
}

// New returns a Walker printing to out and logging through log.
// cfg must already be validated.
func New(cfg *config.Config, log *logging.Logger, out io.Writer, opts ...Option) (*Walker, error) {
	ignore, err := cfg.IgnorePatterns()
	if err != nil {
		return nil, err
	}
	w := &Walker{
		cfg:      cfg,
		log:      log,
		out:      out,
		stat:     sequence.Resolve,
		opts:     cfg.ClassifyOptions(),
		renderer: sequence.NewRenderer(cfg.Dialect(), cfg.RenderOptions(), log.Warn),
		ignore:   ignore,
		visited:  make(map[string]bool),
	}
	for _, o := range opts {
		o(w)
	}
	log.Debug(cfg.Verbose, "format %s, images %s, movies %s",
		w.renderer.Dialect().Name(), cfg.ImageExtensions, cfg.MovieExtensions)
	return w, nil
}

// Run lists args (the current directory when empty). File arguments are
// listed first, grouped by their directory; directories follow in name
// order, and with --recursive their subdirectories depth-first.
//
// Cancellation is checked between passes; Run then returns ctx.Err().
func (w *Walker) Run(ctx context.Context, args []string) (Stats, error) {
	if len(args) == 0 {
		args = []string{"."}
	}
	files, dirs := w.partition(args)
	headers := w.cfg.Recursive || len(dirs) > 1 || (len(dirs) > 0 && len(files) > 0)

	for _, g := range groupFiles(files) {
		if err := ctx.Err(); err != nil {
			return w.stats, err
		}
		w.listFiles(g)
	}

	queue := dirs
	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return w.stats, err
		}
		dir := queue[0]
		queue = queue[1:]
		subdirs := w.listDir(dir, headers)
		if w.cfg.Recursive && len(subdirs) > 0 {
			queue = append(subdirs, queue...)
		}
	}

	w.log.Debug(w.cfg.Verbose, "%s", w.stats)
	if w.stats.Failed > 0 {
		return w.stats, ErrIncomplete
	}
	return w.stats, nil
}

// partition splits args into files and directories, each sorted by name.
// Dangling symlinks count as files so their broken frames are reported.
func (w *Walker) partition(args []string) (files, dirs []string) {
	for _, arg := range args {
		fi, err := os.Stat(arg)
		if err != nil {
			if lfi, lerr := os.Lstat(arg); lerr == nil && !lfi.IsDir() {
				files = append(files, arg)
				continue
			}
			w.log.Error("cannot access %s: %v", arg, reason(err))
			w.stats.Failed++
			continue
		}
		if fi.IsDir() {
			dirs = append(dirs, arg)
		} else {
			files = append(files, arg)
		}
	}
	sort.Strings(files)
	sort.Strings(dirs)
	return files, dirs
}

// fileGroup is a set of file arguments sharing one directory prefix.
type fileGroup struct {
	prefix string // as typed, e.g. "renders/" or ""
	names  []string
}

func groupFiles(files []string) []fileGroup {
	var groups []fileGroup
	index := make(map[string]int)
	for _, f := range files {
		base := filepath.Base(f)
		prefix := f[:len(f)-len(base)]
		i, ok := index[prefix]
		if !ok {
			i = len(groups)
			index[prefix] = i
			groups = append(groups, fileGroup{prefix: prefix})
		}
		groups[i].names = append(groups[i].names, base)
	}
	return groups
}

func (w *Walker) listFiles(g fileGroup) {
	dir := g.prefix
	if dir == "" {
		dir = "."
	}
	prefix := g.prefix
	if w.cfg.PrependPathAbs {
		prefix = absPrefix(dir)
	}
	entries := make([]dirEntry, len(g.names))
	for i, n := range g.names {
		entries[i] = dirEntry{name: n}
	}
	w.emit(dir, prefix, entries)
}

// listDir prints one directory pass and returns its subdirectories.
func (w *Walker) listDir(dir string, header bool) []string {
	if w.cfg.Recursive {
		rp := realPath(dir)
		if w.visited[rp] {
			w.log.Debug(w.cfg.Verbose, "skipping %s: already listed as %s", dir, rp)
			return nil
		}
		w.visited[rp] = true
	}

	entries, err := w.readDir(dir)
	if err != nil {
		w.log.Error("cannot open directory %s: %v", dir, reason(err))
		w.stats.Failed++
		return nil
	}
	w.stats.Dirs++

	if header {
		if w.passes > 0 {
			fmt.Fprintln(w.out)
		}
		fmt.Fprintf(w.out, "%s:\n", dir)
	}
	w.emit(dir, w.prefixFor(dir), entries)

	var subdirs []string
	for _, e := range entries {
		if e.isDir {
			subdirs = append(subdirs, joinDisplay(dir, e.name))
		}
	}
	return subdirs
}

func (w *Walker) prefixFor(dir string) string {
	switch {
	case w.cfg.PrependPathAbs:
		return absPrefix(dir)
	case w.cfg.PrependPath:
		return joinDisplay(dir, "")
	default:
		return ""
	}
}

func absPrefix(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	return joinDisplay(abs, "")
}

// emit classifies entries (names inside dir) and prints the pass.
func (w *Walker) emit(dir, prefix string, entries []dirEntry) {
	w.passes++

	agg := sequence.NewAggregator()
	var movies []sequence.Movie
	var others []string

	for _, e := range entries {
		if e.isDir {
			others = append(others, e.name+"/")
			continue
		}
		c := sequence.Classify(e.name, w.opts)
		switch c.Kind {
		case sequence.KindImage:
			size, mt := w.stat(filepath.Join(dir, e.name))
			if agg.Add(c.Key, c.Token, size, mt) {
				w.log.Debug(w.cfg.Verbose, "%s%s: frame %d already seen, keeping the wider name", prefix, e.name, c.Number())
			}
			w.stats.Bytes += size
		case sequence.KindMovie:
			size, mt := w.stat(filepath.Join(dir, e.name))
			movies = append(movies, sequence.Movie{Name: e.name, ModTime: mt})
			w.stats.Bytes += size
		default:
			others = append(others, e.name)
		}
	}

	if !w.cfg.OnlySequences {
		if w.cfg.Reverse {
			for i, j := 0, len(others)-1; i < j; i, j = i+1, j-1 {
				others[i], others[j] = others[j], others[i]
			}
		}
		for _, o := range others {
			fmt.Fprintln(w.out, prefix+o)
			w.stats.Others++
		}
	}

	var items []sequence.Item
	if !w.cfg.OnlyMovies {
		for _, e := range agg.Entries() {
			items = append(items, sequence.Item{Entry: e})
		}
	}
	if !w.cfg.OnlyImages {
		for i := range movies {
			items = append(items, sequence.Item{Movie: &movies[i]})
		}
	}
	sequence.Order(items, w.cfg.SortByMTime, w.cfg.TimeCompare, w.cfg.Reverse)

	for _, it := range items {
		if it.Movie != nil {
			fmt.Fprintln(w.out, w.renderer.RenderMovie(*it.Movie, prefix))
			w.stats.Movies++
			continue
		}
		lines, rep := w.renderer.Render(it.Entry, prefix)
		for _, l := range lines {
			fmt.Fprintln(w.out, l)
		}
		w.stats.Sequences++
		w.stats.Frames += len(it.Entry.Frames)
		w.stats.Missing += rep.MissingCount()
		w.stats.Zero += len(rep.Zero)
		w.stats.Broken += rep.Broken
		w.stats.Duplicates += it.Entry.Duplicates
	}
}
