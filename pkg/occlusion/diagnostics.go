package occlusion

import (
	"image"
	"image/color"
)

// DepthToColor renders the depth buffer as a grayscale image for visual
// inspection: a pixel with depth 0 maps to black, increasing depth maps
// toward white, clamped at 255. This is an optional diagnostic
// (spec.md §6); it has no effect on Render or Cull.
func (r *Renderer) DepthToColor() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	maxDepth := 1 / r.camera.Near()

	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			d := r.depth.at(x, y)
			g := uint8(0)
			if maxDepth > 0 {
				scaled := d / maxDepth * 255
				if scaled > 255 {
					scaled = 255
				}
				if scaled < 0 {
					scaled = 0
				}
				g = uint8(scaled)
			}
			img.SetRGBA(x, y, color.RGBA{R: g, G: g, B: g, A: 255})
		}
	}
	return img
}

// Diff highlights, in red, every pixel where this renderer holds a
// non-zero depth but external (the corresponding pixel from an
// externally rendered frame) still shows the clear color — the set of
// pixels the software occluder pass would have culled that the external
// renderer drew anyway. Pixels outside the renderer's bounds in external
// are ignored.
func (r *Renderer) Diff(external *image.RGBA, clearColor color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))

	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			hasDepth := r.depth.at(x, y) > 0
			isClear := colorEqual(external.RGBAAt(x, y), clearColor)
			if hasDepth && isClear {
				img.SetRGBA(x, y, color.RGBA{R: 255, A: 255})
			} else {
				img.SetRGBA(x, y, color.RGBA{A: 255})
			}
		}
	}
	return img
}

func colorEqual(a, b color.RGBA) bool {
	return a.R == b.R && a.G == b.G && a.B == b.B && a.A == b.A
}
