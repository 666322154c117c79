package texture

import (
	"image"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/gfxkit/gltex"
	"github.com/gfxkit/gltex/glfmt"
)

// A Texture2D is a two-dimensional texture, or a one-dimensional array
// texture when created with New1DArray.
//
type Texture2D struct {
	texture
}

// New2D returns a new uninitialized 2D texture of the given size.
//
func New2D(width, height int, params ...Parameter) *Texture2D {
	return &Texture2D{newTexture(2, gl.TEXTURE_2D, [3]int{width, height, 1}, params...)}
}

// New1DArray returns a new uninitialized 1D array texture with the
// given width and layer count. Layers upload through SetSubImage with
// 1D images, the layer index passed as y.
//
func New1DArray(width, layers int, params ...Parameter) *Texture2D {
	return &Texture2D{newTexture(2, gl.TEXTURE_1D_ARRAY, [3]int{width, layers, 1}, params...)}
}

// Size returns the size of the texture.
//
func (t *Texture2D) Size() image.Point {
	return image.Point{X: t.size[0], Y: t.size[1]}
}

// SetImage sets the data of the given mip level from a 2D image. A nil
// image pix reserves texture storage without providing data.
//
func (t *Texture2D) SetImage(mip int, img *gltex.ImageData) error {
	return t.upload(mip, img, false, [3]int{})
}

// SetSubImage updates a region of the given mip level at offset p. 1D
// images upload as a single row at p.Y, which fills one layer of a 1D
// array texture.
//
func (t *Texture2D) SetSubImage(mip int, p image.Point, img *gltex.ImageData) error {
	return t.upload(mip, img, true, [3]int{p.X, p.Y, 0})
}

// SetCompressedImage sets the data of the given mip level from a
// block-compressed image.
//
func (t *Texture2D) SetCompressedImage(mip int, img *gltex.CompressedImageData) error {
	e, err := glfmt.CompressedFormatFor(version, img.Format())
	if err != nil {
		return err
	}
	t.bind()
	sz := img.Size()
	gl.CompressedTexImage2D(t.target, int32(mip), uint32(e),
		int32(sz[0]), int32(sz[1]), 0, int32(len(img.Data())), gl.Ptr(img.Data()))
	return nil
}

// GLCoords returns the coordinates of the point pt mapped to the range
// [0, 1].
//
func (t *Texture2D) GLCoords(pt image.Point) (glX, glY float32) {
	return float32(pt.X) / float32(t.size[0]),
		float32(pt.Y) / float32(t.size[1])
}

// UV returns the texture's UV coordinates in the range [0, 1].
//
func (t *Texture2D) UV() [4]float32 {
	return [4]float32{0, 1, 1, 0}
}

// Region returns a region within the texture.
//
func (t *Texture2D) Region(bounds image.Rectangle, origin image.Point) *Region {
	return &Region{
		Texture2D: t,
		origin:    origin,
		bounds:    bounds,
	}
}

// Region represents a sub-region in a Texture2D or another Region.
//
type Region struct {
	*Texture2D
	origin image.Point
	bounds image.Rectangle
}

// Origin returns the point of origin of the region.
//
func (r *Region) Origin() image.Point {
	return r.origin
}

// Size returns the size of the region.
//
func (r *Region) Size() image.Point {
	return r.bounds.Size()
}

// UV returns the region's UV coordinates in the range [0, 1].
//
func (r *Region) UV() [4]float32 {
	u0, v0 := r.GLCoords(r.bounds.Min)
	u1, v1 := r.GLCoords(r.bounds.Max)
	return [4]float32{u0, v1, u1, v0}
}

// Region returns a sub-region within the Region.
//
func (r *Region) Region(bounds image.Rectangle, origin image.Point) *Region {
	return &Region{
		Texture2D: r.Texture2D,
		origin:    origin.Add(r.bounds.Min),
		bounds:    bounds.Add(r.bounds.Min),
	}
}
