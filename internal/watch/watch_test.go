package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteIsReported(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "sticker.svg")
	require.NoError(t, os.WriteFile(p, []byte(`<svg/>`), 0o644))

	w, err := New(p, nil)
	require.NoError(t, err)
	defer w.Close()

	// a sibling file is not reported
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.svg"), []byte(`<svg/>`), 0o644))
	require.NoError(t, os.WriteFile(p, []byte(`<svg><rect width="1" height="1"/></svg>`), 0o644))

	select {
	case got := <-w.Changes():
		assert.Equal(t, w.Path(), got)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestCloseEndsChanges(t *testing.T) {
	p := filepath.Join(t.TempDir(), "sticker.svg")
	require.NoError(t, os.WriteFile(p, []byte(`<svg/>`), 0o644))
	w, err := New(p, nil)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	select {
	case _, ok := <-w.Changes():
		for ok {
			_, ok = <-w.Changes()
		}
	case <-time.After(5 * time.Second):
		t.Fatal("changes channel not closed")
	}
}

func TestNewMissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope", "x.svg"), nil)
	assert.Error(t, err)
}
