// Package logging writes lsseq diagnostics. Console lines follow the
// "lsseq: warning: ..." convention of ls-like tools and go to the error
// stream so listing output stays pipeable; an optional file sink receives
// timestamped plain copies.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/backmassage/lsseq/internal/config"
	"github.com/backmassage/lsseq/internal/term"
)

// Prog prefixes console diagnostics when the invoked name is unknown.
const Prog = "lsseq"

// ProgName returns the base name of arg0 (normally os.Args[0]), or Prog.
func ProgName(arg0 string) string {
	name := filepath.Base(arg0)
	if arg0 == "" || name == "." || name == string(filepath.Separator) {
		return Prog
	}
	return name
}

// Logger provides leveled, optionally colored logging with optional file sink.
type Logger struct {
	mu       sync.Mutex
	prog     string
	out      io.Writer
	styles   term.Styles
	file     *os.File
	filePath string
}

// NewLogger writes console diagnostics to out (normally os.Stderr), styled
// per cfg.ColorMode, and optionally opens cfg.LogFile. Call Close() when done
// if LogFile was set.
func NewLogger(cfg *config.Config, out io.Writer) (*Logger, error) {
	l := &Logger{
		prog:   Prog,
		out:    out,
		styles: term.NewStyles(out, cfg.ColorMode),
	}

	if cfg.LogFile != "" {
		dir := filepath.Dir(cfg.LogFile)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}
		l.file = f
		l.filePath = cfg.LogFile
	}
	return l, nil
}

// SetProg replaces the console prefix.
func (l *Logger) SetProg(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.prog = name
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

func (l *Logger) line(level string, style lipgloss.Style, text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	label := level
	if l.styles.Enabled() {
		label = style.Render(level)
	}
	_, _ = io.WriteString(l.out, l.prog+": "+label+": "+text+"\n")
	if l.file != nil {
		ts := time.Now().Format("2006-01-02 15:04:05")
		_, _ = io.WriteString(l.file, ts+" ["+strings.ToUpper(level)+"] "+text+"\n")
	}
}

// Warn logs a warning, e.g. a broken symbolic link inside a sequence.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line("warning", l.styles.Warning, fmt.Sprintf(format, args...))
}

// Error logs a failure that does not stop the listing, e.g. an unreadable directory.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("error", l.styles.Error, fmt.Sprintf(format, args...))
}

// Debug logs only when verbose; no-op otherwise.
func (l *Logger) Debug(verbose bool, format string, args ...interface{}) {
	if !verbose {
		return
	}
	l.line("debug", l.styles.Debug, fmt.Sprintf(format, args...))
}
