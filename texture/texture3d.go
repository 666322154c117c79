package texture

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/gfxkit/gltex"
)

// A Texture3D is a three-dimensional texture, or a two-dimensional
// array texture when created with New2DArray.
//
type Texture3D struct {
	texture
}

// New3D returns a new uninitialized 3D texture of the given size.
//
func New3D(width, height, depth int, params ...Parameter) *Texture3D {
	return &Texture3D{newTexture(3, gl.TEXTURE_3D, [3]int{width, height, depth}, params...)}
}

// New2DArray returns a new uninitialized 2D array texture with the
// given size and layer count. Layers upload through SetSubImage with
// 2D images, the layer index passed as offset[2].
//
func New2DArray(width, height, layers int, params ...Parameter) *Texture3D {
	return &Texture3D{newTexture(3, gl.TEXTURE_2D_ARRAY, [3]int{width, height, layers}, params...)}
}

// Size returns the size of the texture.
//
func (t *Texture3D) Size() [3]int {
	return t.size
}

// SetImage sets the data of the given mip level from a 3D image. A nil
// image pix reserves texture storage without providing data; reserving
// storage first and filling layers with SetSubImage is the usual way to
// build array textures.
//
func (t *Texture3D) SetImage(mip int, img *gltex.ImageData) error {
	return t.upload(mip, img, false, [3]int{})
}

// SetSubImage updates a region of the given mip level at the given
// offset. 2D images upload as a single layer at offset[2].
//
func (t *Texture3D) SetSubImage(mip int, offset [3]int, img *gltex.ImageData) error {
	return t.upload(mip, img, true, offset)
}
