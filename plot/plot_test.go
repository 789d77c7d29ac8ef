// Package plot_test - chart rendering smoke tests.
package plot_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquepart/cpp"
	"github.com/katalvlaran/cliquepart/plot"
)

func sampleTrace() []cpp.TracePoint {
	return []cpp.TracePoint{
		{Iteration: 0, Elapsed: 120 * time.Millisecond, Value: 42},
		{Iteration: 7, Elapsed: 650 * time.Millisecond, Value: 57},
		{Iteration: 19, Elapsed: 2 * time.Second, Value: 61},
	}
}

func TestRenderConvergence_ProducesHTML(t *testing.T) {
	var buf bytes.Buffer

	err := plot.RenderConvergence(sampleTrace(), "Diverse Pool Search", &buf)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "<html")
	assert.Contains(t, html, "Diverse Pool Search")
}

func TestRenderConvergence_EmptyTraceFails(t *testing.T) {
	var buf bytes.Buffer

	err := plot.RenderConvergence(nil, "empty", &buf)
	assert.Error(t, err)
	assert.Zero(t, buf.Len(), "nothing is written on failure")
}

func TestSaveConvergence_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "convergence.html")

	require.NoError(t, plot.SaveConvergence(sampleTrace(), "Fixed-Set Search", path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
