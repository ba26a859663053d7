// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ebitenblade draws blade ribbons into Ebitengine images.
//
// A blade.Mesh is already a triangle list with 16-bit indices, which is
// exactly what ebiten.Image.DrawTriangles consumes. The Drawer converts the
// mesh vertices into ebiten.Vertex values, mapping texture coordinates onto
// the ribbon texture and fading the vertex alpha toward the tail.
//
// # Usage
//
//	ribbon, _ := blade.New(32, blade.WithTexture(slashImage))
//	drawer := ebitenblade.NewDrawer()
//
//	func (g *Game) Update() error {
//	    ribbon.Push(blade.Pt(float64(x), float64(y)))
//	    ribbon.Update(1.0 / float64(ebiten.TPS()))
//	    return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//	    drawer.Draw(screen, ribbon.Mesh(), ebitenblade.DefaultDrawOptions())
//	}
//
// # Textures
//
// A ribbon texture that is an *ebiten.Image is stretched along the ribbon:
// U runs along its width and V across its height. Any other texture value
// is ignored and the ribbon is filled with the tint color.
//
// # Thread Safety
//
// Drawer is NOT safe for concurrent use. Ebitengine calls Draw from a single
// goroutine, so one Drawer per game is the normal setup.
package ebitenblade
