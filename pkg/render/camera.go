// Package render holds the canvas-independent view logic every shell
// shares: camera math, layer visibility filters, fit bounds, and point
// picking. Nothing in here draws; shells feed screen events in and read
// world coordinates and visibility decisions back.
package render

import (
	"github.com/pcbfab/panelview/pkg/geom"
)

// Interactive zoom limits (pixels per mm). Fit may compute values outside
// this range for extreme content; only user zoom steps are clamped.
const (
	minZoom = 0.01
	maxZoom = 1000.0
)

// Camera maps world coordinates (mm) to screen coordinates (pixels):
// s = w*Zoom + Pan. Shared by the LES and eMAP views.
type Camera struct {
	// Zoom level (pixels per mm)
	// Higher values = more zoomed in
	Zoom float64

	// Pan offset in pixels, applied after zoom
	PanX float64
	PanY float64
}

// NewCamera creates a camera at 1:1 zoom with no pan.
func NewCamera() *Camera {
	return &Camera{Zoom: 1.0}
}

// WorldToScreen converts world coordinates (mm) to screen coordinates (pixels).
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	return wx*c.Zoom + c.PanX, wy*c.Zoom + c.PanY
}

// ScreenToWorld converts screen coordinates (pixels) to world coordinates
// (mm). Zoom zero has no inverse and maps everything to the origin.
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	if c.Zoom == 0 {
		return 0, 0
	}
	return (sx - c.PanX) / c.Zoom, (sy - c.PanY) / c.Zoom
}

// Pan moves the view by screen pixel offsets.
func (c *Camera) Pan(dx, dy float64) {
	c.PanX += dx
	c.PanY += dy
}

// ZoomAt zooms in/out at a specific screen position, keeping the world
// point under the cursor stationary. factor > 1 zooms in, factor < 1 zooms
// out; the resulting zoom is clamped to [0.01, 1000].
func (c *Camera) ZoomAt(sx, sy, factor float64) {
	// World position under the cursor before the zoom changes.
	wx, wy := c.ScreenToWorld(sx, sy)

	c.Zoom *= factor
	if c.Zoom < minZoom {
		c.Zoom = minZoom
	}
	if c.Zoom > maxZoom {
		c.Zoom = maxZoom
	}

	// Re-anchor the pan so the cursor still sits over the same world point.
	c.PanX = sx - wx*c.Zoom
	c.PanY = sy - wy*c.Zoom
}

// Fit adjusts the camera so the box fills a viewW by viewH view, leaving
// marginPx of breathing room and backing off by factor. Empty or degenerate
// bounds leave the camera unchanged.
func (c *Camera) Fit(b geom.BoundingBox, viewW, viewH, marginPx, factor float64) {
	w := b.Width()
	h := b.Height()
	if b.IsEmpty() || w <= 0 || h <= 0 {
		return
	}

	zx := (viewW - marginPx) / w
	zy := (viewH - marginPx) / h
	zoom := zx
	if zy < zx {
		zoom = zy
	}
	c.Zoom = zoom * factor

	// Center the box in the view.
	ctr := b.Center()
	c.PanX = viewW/2 - ctr.X*c.Zoom
	c.PanY = viewH/2 - ctr.Y*c.Zoom
}
