package vectorize

import (
	"image"
	"image/color"
)

// Pixmap is a read-only view of an image as a non-premultiplied RGBA
// pixel grid. It implements Grid.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new, fully transparent black pixmap.
func NewPixmap(width, height int) *Pixmap {
	width, height = max(width, 0), max(height, 0)
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Size returns the pixmap dimensions.
func (p *Pixmap) Size() (width, height int) {
	return p.width, p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// IsForeground reports whether any of the red, green or blue channels of
// the pixel at (x, y) is non-zero. Alpha is ignored.
func (p *Pixmap) IsForeground(x, y int) bool {
	i := (y*p.width + x) * 4
	return p.data[i] != 0 || p.data[i+1] != 0 || p.data[i+2] != 0
}

// SetNRGBA sets the channels of a single pixel.
// Out-of-bounds coordinates are ignored.
func (p *Pixmap) SetNRGBA(x, y int, c color.NRGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// NRGBAAt returns the channels of a single pixel.
// Out-of-bounds coordinates return the zero color.
func (p *Pixmap) NRGBAAt(x, y int) color.NRGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.NRGBA{}
	}
	i := (y*p.width + x) * 4
	return color.NRGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// FromImage creates a pixmap from an image, preserving the stored channel
// values of Pixmap, NRGBA, RGBA, Gray and their 16-bit variants (high
// byte). Other images go through color.NRGBAModel.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)
	rowLen := width * 4

	switch src := img.(type) {
	case *Pixmap:
		copy(pm.data, src.data)
		return pm

	case *image.NRGBA:
		for y := range height {
			off := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(pm.data[y*rowLen:(y+1)*rowLen], src.Pix[off:off+rowLen])
		}
		return pm

	case *image.RGBA:
		for y := range height {
			off := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(pm.data[y*rowLen:(y+1)*rowLen], src.Pix[off:off+rowLen])
		}
		return pm

	case *image.NRGBA64:
		for y := range height {
			off := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			highBytes(pm.data[y*rowLen:(y+1)*rowLen], src.Pix[off:off+rowLen*2])
		}
		return pm

	case *image.RGBA64:
		for y := range height {
			off := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			highBytes(pm.data[y*rowLen:(y+1)*rowLen], src.Pix[off:off+rowLen*2])
		}
		return pm

	case *image.Gray:
		for y := range height {
			off := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			for x := range width {
				v := src.Pix[off+x]
				i := y*rowLen + x*4
				pm.data[i], pm.data[i+1], pm.data[i+2], pm.data[i+3] = v, v, v, 255
			}
		}
		return pm
	}

	// Generic slow path for any image type
	for y := range height {
		for x := range width {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			pm.SetNRGBA(x, y, c)
		}
	}
	return pm
}

// highBytes copies the most significant byte of each big-endian 16-bit
// channel in src into dst.
func highBytes(dst, src []uint8) {
	for i := range dst {
		dst[i] = src[i*2]
	}
}

// ToImage converts the pixmap to an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.NRGBAAt(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
