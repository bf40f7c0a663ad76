// Package texture decodes images and uploads them as OpenGL textures.
package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// TGA image types.
const (
	tgaTrueColor    = 2
	tgaTrueColorRLE = 10
)

const tgaHeaderSize = 18

// DecodeTGA decodes uncompressed or RLE true-color TGA data at 24 or 32
// bits per pixel.
func DecodeTGA(data []byte) (*image.RGBA, error) {
	if len(data) < tgaHeaderSize {
		return nil, errors.New("tga: header truncated")
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	topToBottom := data[17]&0x20 != 0

	if colorMapType != 0 {
		return nil, errors.New("tga: color-mapped images are not supported")
	}
	if imageType != tgaTrueColor && imageType != tgaTrueColorRLE {
		return nil, fmt.Errorf("tga: unsupported image type %d", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("tga: unsupported depth %d", bpp)
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("tga: empty image %dx%d", width, height)
	}

	offset := tgaHeaderSize + idLength
	if offset > len(data) {
		return nil, errors.New("tga: id field truncated")
	}

	d := tgaDecoder{
		img:         image.NewRGBA(image.Rect(0, 0, width, height)),
		src:         data[offset:],
		bpp:         bpp / 8,
		topToBottom: topToBottom,
	}
	var err error
	if imageType == tgaTrueColor {
		err = d.raw()
	} else {
		err = d.rle()
	}
	if err != nil {
		return nil, err
	}
	return d.img, nil
}

type tgaDecoder struct {
	img         *image.RGBA
	src         []byte
	bpp         int
	topToBottom bool
	n           int // pixels written
}

// pixel reads one BGR(A) pixel at src[i:].
func (d *tgaDecoder) pixel(i int) color.RGBA {
	c := color.RGBA{R: d.src[i+2], G: d.src[i+1], B: d.src[i], A: 255}
	if d.bpp == 4 {
		c.A = d.src[i+3]
	}
	return c
}

// put stores c at the next pixel in file order.
func (d *tgaDecoder) put(c color.RGBA) {
	w := d.img.Rect.Dx()
	x, y := d.n%w, d.n/w
	if !d.topToBottom {
		y = d.img.Rect.Dy() - 1 - y
	}
	d.img.SetRGBA(x, y, c)
	d.n++
}

func (d *tgaDecoder) total() int {
	return d.img.Rect.Dx() * d.img.Rect.Dy()
}

func (d *tgaDecoder) raw() error {
	if len(d.src) < d.total()*d.bpp {
		return errors.New("tga: pixel data truncated")
	}
	for i := 0; d.n < d.total(); i += d.bpp {
		d.put(d.pixel(i))
	}
	return nil
}

func (d *tgaDecoder) rle() error {
	i := 0
	for d.n < d.total() {
		if i >= len(d.src) {
			return errors.New("tga: rle data truncated")
		}
		header := d.src[i]
		i++
		count := int(header&0x7f) + 1
		if d.n+count > d.total() {
			return errors.New("tga: rle packet overruns image")
		}

		if header&0x80 != 0 {
			if i+d.bpp > len(d.src) {
				return errors.New("tga: rle data truncated")
			}
			c := d.pixel(i)
			i += d.bpp
			for range count {
				d.put(c)
			}
			continue
		}

		if i+count*d.bpp > len(d.src) {
			return errors.New("tga: rle data truncated")
		}
		for range count {
			d.put(d.pixel(i))
			i += d.bpp
		}
	}
	return nil
}
