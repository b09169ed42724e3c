package panel

import (
	"image"
	"image/color"
)

// Canvas is an in-memory RGBA panel. It satisfies drivers.Displayer, so the
// same Renderer can target it or a real e-paper/LCD driver.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas allocates a w x h canvas.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (c *Canvas) Size() (x, y int16) {
	b := c.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	if !(image.Point{X: int(x), Y: int(y)}).In(c.img.Bounds()) {
		return
	}
	c.img.SetRGBA(int(x), int(y), col)
}

func (c *Canvas) Display() error {
	return nil
}

func (c *Canvas) FillRectangle(x, y, width, height int16, col color.RGBA) error {
	r := image.Rect(int(x), int(y), int(x)+int(width), int(y)+int(height)).Intersect(c.img.Bounds())
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			c.img.SetRGBA(px, py, col)
		}
	}
	return nil
}

// Image exposes the backing image; callers must not retain it across draws.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}
