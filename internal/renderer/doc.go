// Package renderer builds per-frame render buffers from a terminal
// frame source.
//
// A render buffer is the flattened, fully color-resolved form of the
// visible page: runs of styled cells, compact single-style lines for
// lines without per-cell overrides, and the cursor. Building resolves
// every overlay in one pass: SGR attributes, selection, yank
// highlight, search-match highlighting, the cursor, and the IME
// preedit string.
//
// Usage:
//
//	var buf renderer.RenderBuffer
//	renderer.Build(source, &buf, renderer.BuildOptions{})
//	backend.Paint(&buf)
package renderer
