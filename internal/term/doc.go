// Package term defines the terminal-side data model shared by the
// input and rendering layers: cells and their SGR attributes, color
// specifications and the color palette, grid coordinates, trivial
// line buffers, and the Source interface a renderer reads a frame
// from.
package term
