package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emalang/ema/internal/log"
	"github.com/emalang/ema/lisp"
)

func TestLoadMissing(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.Equal(t, DefaultPrompt, c.Prompt)
	assert.Equal(t, lisp.DefaultModuleExt, c.ModuleExt)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	err := os.WriteFile(path, []byte(`
prompt: "> "
max_depth: 100
log:
  level: debug
`), 0600)
	require.NoError(t, err)

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "> ", c.Prompt)
	assert.Equal(t, 100, c.MaxDepth)
	assert.Equal(t, lisp.DefaultModuleExt, c.ModuleExt)
	assert.True(t, c.Color)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "text", c.Log.Format)

	err = os.WriteFile(path, []byte("max_depth: -1\n"), 0600)
	require.NoError(t, err)
	_, err = Load(path)
	assert.ErrorContains(t, err, "max_depth must not be negative")
}

func TestParse(t *testing.T) {
	tests := []struct {
		doc string
		err bool
	}{
		{"", false},
		{"color: false\n", false},
		{"module_ext: .lisp\n", false},
		{"module_ext: \"\"\n", true},
		{"unknown_key: 1\n", true},
		{"max_depth: deep\n", true},
	}
	for _, test := range tests {
		c := Default()
		err := Parse([]byte(test.doc), c)
		if test.err {
			assert.Error(t, err, test.doc)
		} else {
			assert.NoError(t, err, test.doc)
		}
	}
}

func TestParseKeepsDefaults(t *testing.T) {
	for _, doc := range []string{"", "\n\n", "# settings go here\n"} {
		c := Default()
		err := Parse([]byte(doc), c)
		if assert.NoError(t, err, "%q", doc) {
			assert.Equal(t, Default(), c, "%q", doc)
		}
	}

	c := Default()
	require.NoError(t, Parse([]byte("color: false\nlog:\n  format: json\n"), c))
	assert.False(t, c.Color)
	assert.Equal(t, "json", c.Log.Format)
	assert.Equal(t, Default().Log.Level, c.Log.Level)
	assert.Equal(t, DefaultPrompt, c.Prompt)
	assert.Equal(t, lisp.DefaultModuleExt, c.ModuleExt)
}

func TestLoadCommentOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("# ema settings\n"), 0600))
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestMarshal(t *testing.T) {
	c := Default()
	c.MaxDepth = 42
	c.Prompt = "ema>"
	b, err := c.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(b), "max_depth: 42")

	parsed := Default()
	require.NoError(t, Parse(b, parsed))
	assert.Equal(t, c, parsed)
}

func TestEvaluatorConfigs(t *testing.T) {
	c := Default()
	c.ModuleExt = "lisp"
	c.MaxDepth = 7
	ev, err := lisp.NewEvaluator(c.EvaluatorConfigs()...)
	require.NoError(t, err)
	assert.Equal(t, ".lisp", ev.ModuleExt)
	assert.Equal(t, 7, ev.MaxDepth)

	c.Log.Level = "trace"
	c.Log.Format = "json"
	assert.Len(t, c.LogOptions(), 2)
	assert.Equal(t, log.LevelTrace, log.ParseLevel(c.Log.Level))
}
