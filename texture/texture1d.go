package texture

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/gfxkit/gltex"
)

// A Texture1D is a one-dimensional texture.
//
type Texture1D struct {
	texture
}

// New1D returns a new uninitialized 1D texture of the given width.
//
func New1D(width int, params ...Parameter) *Texture1D {
	return &Texture1D{newTexture(1, gl.TEXTURE_1D, [3]int{width, 1, 1}, params...)}
}

// Size returns the width of the texture.
//
func (t *Texture1D) Size() int {
	return t.size[0]
}

// SetImage sets the data of the given mip level from a 1D image. A nil
// image pix reserves texture storage without providing data.
//
func (t *Texture1D) SetImage(mip int, img *gltex.ImageData) error {
	return t.upload(mip, img, false, [3]int{})
}

// SetSubImage updates a range of the given mip level starting at x.
//
func (t *Texture1D) SetSubImage(mip int, x int, img *gltex.ImageData) error {
	return t.upload(mip, img, true, [3]int{x, 0, 0})
}
