package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/lsseq/internal/config"
)

func plainConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	return cfg
}

func TestNewLogger_NoFile(t *testing.T) {
	cfg := plainConfig()
	var buf bytes.Buffer
	l, err := NewLogger(&cfg, &buf)
	require.NoError(t, err)
	defer l.Close()

	l.Warn("%s is a broken symbolic link", "a.0002.exr")
	l.Error("cannot open directory %s: permission denied", "locked")
	assert.Equal(t,
		"lsseq: warning: a.0002.exr is a broken symbolic link\n"+
			"lsseq: error: cannot open directory locked: permission denied\n",
		buf.String())
}

func TestDebug_OnlyWhenVerbose(t *testing.T) {
	cfg := plainConfig()
	var buf bytes.Buffer
	l, err := NewLogger(&cfg, &buf)
	require.NoError(t, err)

	l.Debug(false, "hidden")
	assert.Empty(t, buf.String())

	l.Debug(true, "%d sequences", 3)
	assert.Equal(t, "lsseq: debug: 3 sequences\n", buf.String())
}

func TestNewLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := plainConfig()
	cfg.LogFile = filepath.Join(dir, "nested", "lsseq.log")
	var buf bytes.Buffer
	l, err := NewLogger(&cfg, &buf)
	require.NoError(t, err)

	l.Warn("to file")
	require.NoError(t, l.Close())
	require.NoError(t, l.Close(), "second close is a no-op")

	b, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), "[WARNING] to file")
	assert.Contains(t, buf.String(), "lsseq: warning: to file")
}

func TestNewLogger_ColorAlways(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorAlways
	var buf bytes.Buffer
	l, err := NewLogger(&cfg, &buf)
	require.NoError(t, err)

	l.Warn("styled")
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "styled\n")
}

func TestProgName(t *testing.T) {
	tests := []struct {
		arg0, want string
	}{
		{"/usr/local/bin/lsseq", "lsseq"},
		{"./lss", "lss"},
		{"lsseq-dev", "lsseq-dev"},
		{"", Prog},
		{"/", Prog},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ProgName(tt.arg0), tt.arg0)
	}
}

func TestSetProg(t *testing.T) {
	cfg := plainConfig()
	var buf bytes.Buffer
	l, err := NewLogger(&cfg, &buf)
	require.NoError(t, err)

	l.SetProg("lss")
	l.Warn("renamed")
	assert.Equal(t, "lss: warning: renamed\n", buf.String())
}
