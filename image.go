package gltex

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/pkg/errors"
)

// ImageData is a tightly packed CPU-side image: dimensions, a pixel
// format and the raw pixel bytes. It is the only contract between this
// module and the code producing image content (decoders, rasterizers,
// procedural generators).
//
type ImageData struct {
	dims   int
	size   [3]int
	format Format
	typ    uint32 // pixel type for implementation-specific formats
	pix    []byte
}

// NewImage1D returns a one-dimensional image. A nil pix reserves
// storage without providing data; otherwise len(pix) must match the
// image dimensions and format.
//
func NewImage1D(width int, f Format, pix []byte) (*ImageData, error) {
	return newImage(1, [3]int{width, 1, 1}, f, pix)
}

// NewImage2D returns a two-dimensional image.
//
func NewImage2D(width, height int, f Format, pix []byte) (*ImageData, error) {
	return newImage(2, [3]int{width, height, 1}, f, pix)
}

// NewImage3D returns a three-dimensional image.
//
func NewImage3D(width, height, depth int, f Format, pix []byte) (*ImageData, error) {
	return newImage(3, [3]int{width, height, depth}, f, pix)
}

func newImage(dims int, size [3]int, f Format, pix []byte) (*ImageData, error) {
	for _, s := range size[:dims] {
		if s < 0 {
			return nil, errors.Errorf("image size %v is negative", size[:dims])
		}
	}
	if pix != nil && !f.IsImplementationSpecific() {
		if want := size[0] * size[1] * size[2] * f.Size(); len(pix) != want {
			return nil, errors.Errorf("pixel data size %d does not match %d bytes for a %v image of size %v",
				len(pix), want, f, size[:dims])
		}
	}
	return &ImageData{dims: dims, size: size, format: f, pix: pix}, nil
}

// WithType sets the native pixel type specifier of an image with an
// implementation-specific format. It returns img.
//
func (img *ImageData) WithType(glenum uint32) *ImageData {
	img.typ = glenum
	return img
}

// Dims returns the dimensionality of the image (1, 2 or 3).
//
func (img *ImageData) Dims() int { return img.dims }

// Size returns the image size. Unused dimensions are 1.
//
func (img *ImageData) Size() [3]int { return img.size }

// Format returns the pixel format.
//
func (img *ImageData) Format() Format { return img.format }

// Type returns the native pixel type specifier set with WithType, or 0.
//
func (img *ImageData) Type() uint32 { return img.typ }

// Pix returns the raw pixel data. It is nil for storage-only images.
//
func (img *ImageData) Pix() []byte { return img.pix }

// Rect returns the 2D bounds of the image.
//
func (img *ImageData) Rect() image.Rectangle {
	return image.Rect(0, 0, img.size[0], img.size[1])
}

// RowSize returns the size in bytes of a single pixel row.
//
func (img *ImageData) RowSize() int {
	return img.size[0] * img.format.Size()
}

// FromImage converts src to a two-dimensional RGBA8Unorm image.
// *image.RGBA sources with tight stride share pixel storage with src;
// anything else is redrawn.
//
func FromImage(src image.Image) *ImageData {
	sr := src.Bounds()
	sz := sr.Size()
	if i, ok := src.(*image.RGBA); ok && i.Stride == sz.X*4 {
		img, _ := NewImage2D(sz.X, sz.Y, RGBA8Unorm, i.Pix[i.PixOffset(sr.Min.X, sr.Min.Y):])
		if img != nil {
			return img
		}
	}
	dr := image.Rectangle{Max: sz}
	dst := image.NewRGBA(dr)
	draw.Draw(dst, dr, src, sr.Min, draw.Src)
	img, _ := NewImage2D(sz.X, sz.Y, RGBA8Unorm, dst.Pix)
	return img
}

// FromAlpha converts src to a two-dimensional R8Unorm image, sharing
// pixel storage when the stride is tight.
//
func FromAlpha(src *image.Alpha) *ImageData {
	sr := src.Bounds()
	sz := sr.Size()
	if src.Stride == sz.X {
		img, _ := NewImage2D(sz.X, sz.Y, R8Unorm, src.Pix[src.PixOffset(sr.Min.X, sr.Min.Y):])
		if img != nil {
			return img
		}
	}
	pix := make([]byte, sz.X*sz.Y)
	for y := 0; y < sz.Y; y++ {
		copy(pix[y*sz.X:(y+1)*sz.X], src.Pix[src.PixOffset(sr.Min.X, sr.Min.Y+y):])
	}
	img, _ := NewImage2D(sz.X, sz.Y, R8Unorm, pix)
	return img
}

// ColorModel implements image.Image for RGBA8Unorm images.
//
func (img *ImageData) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
//
func (img *ImageData) Bounds() image.Rectangle { return img.Rect() }

// At implements image.Image for RGBA8Unorm and R8Unorm images. Other
// formats yield transparent black.
//
func (img *ImageData) At(x, y int) color.Color {
	if img.pix == nil || !image.Pt(x, y).In(img.Rect()) {
		return color.RGBA{}
	}
	switch img.format {
	case RGBA8Unorm:
		i := (y*img.size[0] + x) * 4
		return color.RGBA{R: img.pix[i], G: img.pix[i+1], B: img.pix[i+2], A: img.pix[i+3]}
	case R8Unorm:
		return color.Gray{Y: img.pix[y*img.size[0]+x]}
	}
	return color.RGBA{}
}

// CompressedImageData is the block-compressed counterpart of ImageData.
// The payload is opaque to this module.
//
type CompressedImageData struct {
	dims   int
	size   [3]int
	format CompressedFormat
	data   []byte
}

// NewCompressedImage2D returns a two-dimensional compressed image. The
// data size must match the block layout of the format for generic
// formats.
//
func NewCompressedImage2D(width, height int, f CompressedFormat, data []byte) (*CompressedImageData, error) {
	if width < 0 || height < 0 {
		return nil, errors.Errorf("image size %dx%d is negative", width, height)
	}
	if !f.IsImplementationSpecific() {
		bs := f.BlockSize()
		blocks := ((width + bs.X - 1) / bs.X) * ((height + bs.Y - 1) / bs.Y)
		if want := blocks * f.BlockDataSize(); len(data) != want {
			return nil, errors.Errorf("compressed data size %d does not match %d bytes for a %v image of size %dx%d",
				len(data), want, f, width, height)
		}
	}
	return &CompressedImageData{dims: 2, size: [3]int{width, height, 1}, format: f, data: data}, nil
}

// Dims returns the dimensionality of the image.
//
func (img *CompressedImageData) Dims() int { return img.dims }

// Size returns the image size. Unused dimensions are 1.
//
func (img *CompressedImageData) Size() [3]int { return img.size }

// Format returns the compressed pixel format.
//
func (img *CompressedImageData) Format() CompressedFormat { return img.format }

// Data returns the compressed payload.
//
func (img *CompressedImageData) Data() []byte { return img.data }
