// Package render turns frames into drawable output.
//
// BuildScene is the pure part: it maps nodes to circles and edges to line
// segments that stop at each circle's circumference, with line opacity capped
// by both endpoints. Writers then serialise a Scene:
//
//   - WriteSVG / SVG emit an SVG document per frame (svgo).
//   - Rasterize / Terminal draw into a character grid for the live terminal
//     view, styled with lipgloss.
//
// Both SVG and Terminal satisfy frame.Renderer.
package render
