package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/wallbot/covplan/core"
)

var (
	colorWall      = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	colorForbidden = color.RGBA{R: 200, G: 60, B: 60, A: 255}
	colorPath      = color.RGBA{R: 50, G: 90, B: 220, A: 255}
	colorLabel     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// PixelsPerMeter controls the preview's resolution.
const PixelsPerMeter = 40

// WritePNG renders traj over wall and writes the result to w as a PNG.
func WritePNG(w io.Writer, wall core.Wall, traj *core.Trajectory) error {
	img := Render(wall, traj)

	return png.Encode(w, img)
}

// Render rasterizes wall, traj.ForbiddenRects and traj.Waypoints into an
// RGBA image with the wall's bottom-left corner at the image's
// bottom-left, matching the planner's right-handed coordinate frame.
func Render(wall core.Wall, traj *core.Trajectory) *image.RGBA {
	width := int(wall.Width*PixelsPerMeter) + 1
	height := int(wall.Height*PixelsPerMeter) + 1
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: colorWall}, image.Point{}, draw.Src)

	for _, r := range traj.ForbiddenRects {
		fillRect(img, r, colorForbidden)
	}

	for i, wp := range traj.Waypoints {
		px, py := toPixel(wp.X, wp.Y, height)
		setDot(img, px, py, colorPath)
		if i%10 == 0 {
			drawLabel(img, px+2, py-2, fmt.Sprintf("%d", i))
		}
	}

	return img
}

func toPixel(x, y float64, imgHeight int) (int, int) {
	px := int(x * PixelsPerMeter)
	py := imgHeight - 1 - int(y*PixelsPerMeter)

	return px, py
}

func fillRect(img *image.RGBA, r core.Rectangle, c color.Color) {
	x0, y0 := toPixel(r.X, r.Top(), img.Bounds().Dy())
	x1, y1 := toPixel(r.Right(), r.Y, img.Bounds().Dy())
	rect := image.Rect(x0, y0, x1, y1)
	draw.Draw(img, rect.Intersect(img.Bounds()), &image.Uniform{C: c}, image.Point{}, draw.Src)
}

func setDot(img *image.RGBA, x, y int, c color.Color) {
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			p := image.Pt(x+dx, y+dy)
			if p.In(img.Bounds()) {
				img.Set(p.X, p.Y, c)
			}
		}
	}
}

func drawLabel(img *image.RGBA, x, y int, label string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{C: colorLabel},
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(label)
}
