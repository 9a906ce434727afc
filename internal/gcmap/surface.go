package gcmap

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"github.com/golang/geo/r2"
	"golang.org/x/image/draw"
)

// Surface is the raster that arcs are composited onto.
type Surface interface {
	// DrawPolyline strokes an open path through pts.
	DrawPolyline(pts []r2.Point, c color.NRGBA, width float64) error
	// Image returns the composited raster.
	Image() image.Image
}

// ggSurface draws with an anti-aliasing gg context.
type ggSurface struct {
	dc *gg.Context
}

// NewSurface returns a width x height surface filled with bg.
func NewSurface(width, height int, bg color.NRGBA) Surface {
	dc := gg.NewContext(width, height)
	dc.ClearWithColor(toGG(bg))
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	return &ggSurface{dc: dc}
}

func toGG(c color.NRGBA) gg.RGBA {
	return gg.RGBA{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

func (s *ggSurface) DrawPolyline(pts []r2.Point, c color.NRGBA, width float64) error {
	if len(pts) < 2 {
		return nil
	}
	col := toGG(c)
	s.dc.SetRGBA(col.R, col.G, col.B, col.A)
	s.dc.SetLineWidth(width)
	s.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		s.dc.LineTo(p.X, p.Y)
	}
	return s.dc.Stroke()
}

func (s *ggSurface) Image() image.Image {
	return s.dc.Image()
}

// downsample scales src to width x height.
func downsample(src image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
