// Package texture wraps OpenGL texture objects. All functions require a
// current GL context on the calling goroutine; Init must have run
// against that context before any texture is created.
package texture

import (
	"image/color"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/pkg/errors"

	"github.com/gfxkit/gltex"
	"github.com/gfxkit/gltex/glfmt"
)

var (
	version glfmt.Version
	maxSize int
)

// Init initializes the GL bindings against the current context using
// the given proc address loader and captures the context version used
// to resolve pixel formats.
//
func Init(getProcAddr func(name string) unsafe.Pointer) (glfmt.Version, error) {
	if err := gl.InitWithProcAddrFunc(getProcAddr); err != nil {
		return glfmt.Version{}, errors.Wrap(err, "initialize GL bindings")
	}
	ver, err := glfmt.ParseVersion(gl.GoStr(gl.GetString(gl.VERSION)))
	if err != nil {
		return glfmt.Version{}, err
	}
	version = ver
	var mts int32
	gl.GetIntegerv(gl.MAX_TEXTURE_SIZE, &mts)
	maxSize = int(mts)
	return ver, nil
}

// Version returns the context version captured by Init.
//
func Version() glfmt.Version { return version }

// MaxSize returns the GL_MAX_TEXTURE_SIZE of the context.
//
func MaxSize() int { return maxSize }

// GL_TEXTURE_MAX_ANISOTROPY_EXT; not exported by the core 3.3 bindings.
const textureMaxAnisotropy = 0x84fe

type tp struct {
	hasWrap    bool
	wrap       [3]gltex.Wrapping
	hasFilter  bool
	min, mag   gltex.Filter
	mipmap     gltex.MipmapMode
	border     color.Color
	anisotropy float32
}

// Parameter is implemented by functions setting texture parameters. See
// the New functions and Parameters.
//
type Parameter interface {
	set(*tp)
}

type optionFunc func(*tp)

func (f optionFunc) set(p *tp) {
	f(p)
}

// Wrap sets the texture wrapping mode. Dimensions beyond the texture's
// own are ignored.
//
func Wrap(s, t, r gltex.Wrapping) Parameter {
	return optionFunc(func(p *tp) {
		p.hasWrap = true
		p.wrap = [3]gltex.Wrapping{s, t, r}
	})
}

// Filter sets the minification and magnification filters along with the
// mipmap mode used during minification. A mode other than
// gltex.MipmapBase enables automatic mipmap regeneration on Bind.
//
func Filter(min, mag gltex.Filter, mipmap gltex.MipmapMode) Parameter {
	return optionFunc(func(p *tp) {
		p.hasFilter = true
		p.min, p.mag, p.mipmap = min, mag, mipmap
	})
}

// BorderColor sets the border color sampled by gltex.ClampToBorder.
//
func BorderColor(c color.Color) Parameter {
	return optionFunc(func(p *tp) {
		p.border = c
	})
}

// MaxAnisotropy sets the anisotropy bound for anisotropic filtering.
// Values below 1 are ignored.
//
func MaxAnisotropy(a float32) Parameter {
	return optionFunc(func(p *tp) {
		p.anisotropy = a
	})
}

// Sampler translates the sampler settings of d into Parameters.
//
func Sampler(d *gltex.TextureData) []Parameter {
	return []Parameter{
		Filter(d.MinFilter, d.MagFilter, d.Mipmap),
		Wrap(d.Wrap[0], d.Wrap[1], d.Wrap[2]),
	}
}

// texture holds the state common to all texture dimensionalities.
type texture struct {
	glID   uint32
	target uint32
	size   [3]int
	dims   int
	mipmap bool
	dirty  bool
}

func newTexture(dims int, target uint32, size [3]int, params ...Parameter) texture {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(target, id)
	t := texture{glID: id, target: target, size: size, dims: dims}
	t.setParams(params...)
	return t
}

// Parameters sets the given texture parameters.
//
func (t *texture) Parameters(params ...Parameter) {
	if len(params) == 0 {
		return
	}
	gl.BindTexture(t.target, t.glID)
	t.setParams(params...)
}

func (t *texture) setParams(params ...Parameter) {
	var p tp
	for _, o := range params {
		o.set(&p)
	}
	if p.hasWrap {
		gl.TexParameteri(t.target, gl.TEXTURE_WRAP_S, glWrap(p.wrap[0]))
		if t.dims > 1 {
			gl.TexParameteri(t.target, gl.TEXTURE_WRAP_T, glWrap(p.wrap[1]))
		}
		if t.dims > 2 {
			gl.TexParameteri(t.target, gl.TEXTURE_WRAP_R, glWrap(p.wrap[2]))
		}
	}
	if p.hasFilter {
		gl.TexParameteri(t.target, gl.TEXTURE_MIN_FILTER, glMinFilter(p.min, p.mipmap))
		gl.TexParameteri(t.target, gl.TEXTURE_MAG_FILTER, glMagFilter(p.mag))
		t.mipmap = p.mipmap != gltex.MipmapBase
		t.dirty = t.mipmap
	}
	if p.border != nil {
		c := color.RGBAModel.Convert(p.border).(color.RGBA)
		bc := [...]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
		gl.TexParameterfv(t.target, gl.TEXTURE_BORDER_COLOR, &bc[0])
	}
	if p.anisotropy >= 1 {
		gl.TexParameterf(t.target, textureMaxAnisotropy, p.anisotropy)
	}
}

// Bind binds the texture to the given texture unit and regenerates
// mipmaps if level 0 changed since the last Bind.
//
func (t *texture) Bind(unit int) {
	gl.ActiveTexture(uint32(gl.TEXTURE0 + unit))
	gl.BindTexture(t.target, t.glID)
	if t.dirty {
		gl.GenerateMipmap(t.target)
		t.dirty = false
	}
}

// GenerateMipmap regenerates all mip levels from level 0.
//
func (t *texture) GenerateMipmap() {
	gl.BindTexture(t.target, t.glID)
	gl.GenerateMipmap(t.target)
	t.dirty = false
}

// NativeID returns the name of the underlying GL texture object.
//
func (t *texture) NativeID() uint32 {
	return t.glID
}

// Delete deletes the texture.
//
func (t *texture) Delete() {
	gl.DeleteTextures(1, &t.glID)
}

func (t *texture) bind() {
	gl.BindTexture(t.target, t.glID)
}

// upload resolves the GL triple for img and hands it to TexImage or, if
// sub is true, TexSubImage at the given destination offset. Images of
// lower dimensionality than the texture upload as a single row or
// layer.
func (t *texture) upload(mip int, img *gltex.ImageData, sub bool, offset [3]int) error {
	tr, err := glfmt.FormatFor(version, img.Format())
	if err != nil {
		return errors.Wrapf(err, "upload to texture %d", t.glID)
	}
	if img.Format().IsImplementationSpecific() {
		tr.Type, err = glfmt.PixelType(version, img.Format(), glfmt.Enum(img.Type()))
		if err != nil {
			return errors.Wrapf(err, "upload to texture %d", t.glID)
		}
	}
	// sub-images may upload one dimension less than the target to fill
	// a single array layer; full images must match the target.
	min := t.dims
	if sub {
		min = t.dims - 1
	}
	if img.Dims() > t.dims || img.Dims() < min {
		return errors.Errorf("cannot upload %dD image to %dD texture", img.Dims(), t.dims)
	}
	if sub && img.Pix() == nil {
		return errors.Errorf("cannot upload image without pixel data to texture %d", t.glID)
	}

	t.bind()
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, uploadAlignment(img))
	sz := img.Size()
	mp, w, h, d := int32(mip), int32(sz[0]), int32(sz[1]), int32(sz[2])
	internal, format, typ := int32(tr.Internal), uint32(tr.Format), uint32(tr.Type)
	var pix unsafe.Pointer
	if p := img.Pix(); len(p) > 0 {
		pix = gl.Ptr(p)
	}
	if sub {
		x, y, z := int32(offset[0]), int32(offset[1]), int32(offset[2])
		switch t.dims {
		case 1:
			gl.TexSubImage1D(t.target, mp, x, w, format, typ, pix)
		case 2:
			gl.TexSubImage2D(t.target, mp, x, y, w, h, format, typ, pix)
		case 3:
			gl.TexSubImage3D(t.target, mp, x, y, z, w, h, d, format, typ, pix)
		}
	} else {
		switch t.dims {
		case 1:
			gl.TexImage1D(t.target, mp, internal, w, 0, format, typ, pix)
		case 2:
			gl.TexImage2D(t.target, mp, internal, w, h, 0, format, typ, pix)
		case 3:
			gl.TexImage3D(t.target, mp, internal, w, h, d, 0, format, typ, pix)
		}
	}
	if t.mipmap && img.Pix() != nil && mip == 0 {
		t.dirty = true
	}
	return nil
}

// glMinFilter returns the GL minification filter for the given filter
// and mipmap mode combination.
func glMinFilter(f gltex.Filter, m gltex.MipmapMode) int32 {
	switch m {
	case gltex.MipmapNearest:
		if f == gltex.Linear {
			return gl.LINEAR_MIPMAP_NEAREST
		}
		return gl.NEAREST_MIPMAP_NEAREST
	case gltex.MipmapLinear:
		if f == gltex.Linear {
			return gl.LINEAR_MIPMAP_LINEAR
		}
		return gl.NEAREST_MIPMAP_LINEAR
	}
	return glMagFilter(f)
}

func glMagFilter(f gltex.Filter) int32 {
	if f == gltex.Linear {
		return gl.LINEAR
	}
	return gl.NEAREST
}

func glWrap(w gltex.Wrapping) int32 {
	switch w {
	case gltex.MirroredRepeat:
		return gl.MIRRORED_REPEAT
	case gltex.ClampToEdge:
		return gl.CLAMP_TO_EDGE
	case gltex.ClampToBorder:
		return gl.CLAMP_TO_BORDER
	}
	return gl.REPEAT
}

// uploadAlignment returns the GL_UNPACK_ALIGNMENT matching the row size
// of img: the largest permitted alignment that divides each pixel row.
func uploadAlignment(img *gltex.ImageData) int32 {
	if img.Format().IsImplementationSpecific() {
		return 1
	}
	return rowAlignment(img.RowSize())
}

func rowAlignment(rowSize int) int32 {
	switch {
	case rowSize%8 == 0:
		return 8
	case rowSize%4 == 0:
		return 4
	case rowSize%2 == 0:
		return 2
	}
	return 1
}
