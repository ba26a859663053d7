// Package blade renders blade trails: ribbons that follow a moving tip
// across frames and fade out over time.
//
// # Overview
//
// A Ribbon keeps a bounded, oldest-first history of 2D points. Every frame
// the host pushes the current tip position and advances the decay timer;
// the render adapter then draws the Mesh the ribbon derives from its points.
//
//	r, err := blade.New(32, blade.WithWidth(6), blade.WithTaper(true))
//	if err != nil {
//	    return err
//	}
//	r.Dim(true)
//
//	// Each frame:
//	r.Push(blade.Pt(x, y))
//	r.Update(dt)
//	mesh := r.Mesh()
//	if !mesh.Empty() {
//	    draw(mesh.Vertices, mesh.TexCoords, mesh.Indices, mesh.Texture)
//	}
//
// # Geometry
//
// Each continuous segment of k points becomes a triangle strip of 2k-2
// vertices: the oldest and newest points are single tip vertices, every
// interior point is split into a left and right vertex offset by the width
// along the mitered join normal. U grows with arc length along the segment;
// V is 0 on the left side, 1 on the right side and 0.5 at the tips.
//
// # Lifecycle
//
// Reset starts a new, disconnected segment at the next push. Dim toggles
// auto-dimming, which retires one point per retire interval. Finish stops
// accepting points and drains the ribbon at the same cadence; once empty the
// ribbon reports Drained and the owner can discard it.
//
// # Sub-packages
//
//   - gpu: WebGPU renderer (gogpu/wgpu HAL)
//   - raster: CPU rasterizer producing image.RGBA previews
//   - integration/ebitenblade: adapter for ebiten games
package blade
