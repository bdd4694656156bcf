package render_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/driftgraph/core"
	"github.com/katalvlaran/driftgraph/frame"
	"github.com/katalvlaran/driftgraph/render"
)

// TestWriteSVG_Document checks the viewBox, background and primitives.
func TestWriteSVG_Document(t *testing.T) {
	var buf bytes.Buffer
	s := render.BuildScene(vp, pair(), []core.Edge{{A: 1, B: 2, Opacity: 0.8}})
	require.NoError(t, render.WriteSVG(&buf, s, render.DefaultStyle()))
	out := buf.String()

	assert.Contains(t, out, `viewBox="0 0 10000 6000"`)
	assert.Contains(t, out, `x="0" y="-2000"`, "background square centred on the viewport")
	assert.Contains(t, out, `rgba(255,255,255,1.000)`)
	assert.Equal(t, 2, strings.Count(out, "<circle"))
	assert.Equal(t, 1, strings.Count(out, "<line"))
	assert.Contains(t, out, `cx="1000" cy="1000" r="100"`)
	assert.Contains(t, out, `x1="1100" y1="1000" x2="4800" y2="1000"`)
	assert.Contains(t, out, `fill="rgba(129,139,197,0.500)"`)
	assert.Contains(t, out, `stroke="rgba(129,139,197,0.500)"`)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
}

// TestWriteSVG_NoBackground omits the rect for a transparent background.
func TestWriteSVG_NoBackground(t *testing.T) {
	var buf bytes.Buffer
	style := render.DefaultStyle()
	style.Background.A = 0
	require.NoError(t, render.WriteSVG(&buf, render.BuildScene(vp, nil, nil), style))
	assert.NotContains(t, buf.String(), "<rect")
}

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

// TestWriteSVG_PropagatesWriteError surfaces the first writer failure.
func TestWriteSVG_PropagatesWriteError(t *testing.T) {
	boom := errors.New("disk full")
	err := render.WriteSVG(failingWriter{boom}, render.BuildScene(vp, pair(), nil), render.DefaultStyle())
	assert.ErrorIs(t, err, boom)

	r := render.NewSVG(failingWriter{boom})
	err = r.Render(frame.Frame{Seq: 3, Viewport: vp})
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "frame 3")
}

// TestSVG_RenderOneDocumentPerFrame writes a document for each frame.
func TestSVG_RenderOneDocumentPerFrame(t *testing.T) {
	var buf bytes.Buffer
	r := render.NewSVG(&buf)
	for i := 1; i <= 3; i++ {
		require.NoError(t, r.Render(frame.Frame{Seq: uint64(i), Viewport: vp, Nodes: pair()}))
	}
	assert.Equal(t, 3, strings.Count(buf.String(), "</svg>"))
}
