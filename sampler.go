package gltex

import "fmt"

// Filter selects how a texture is sampled when it does not map
// one-to-one to framebuffer pixels.
//
type Filter int32

const (
	Nearest Filter = iota
	Linear
)

func (f Filter) String() string {
	switch f {
	case Nearest:
		return "Nearest"
	case Linear:
		return "Linear"
	}
	return fmt.Sprintf("Filter(%d)", int32(f))
}

// MipmapMode selects how mip levels take part in minification
// filtering.
//
type MipmapMode int32

const (
	// MipmapBase samples only the base mip level.
	MipmapBase MipmapMode = iota
	// MipmapNearest samples the nearest mip level.
	MipmapNearest
	// MipmapLinear interpolates between the two nearest mip levels.
	MipmapLinear
)

func (m MipmapMode) String() string {
	switch m {
	case MipmapBase:
		return "MipmapBase"
	case MipmapNearest:
		return "MipmapNearest"
	case MipmapLinear:
		return "MipmapLinear"
	}
	return fmt.Sprintf("MipmapMode(%d)", int32(m))
}

// Wrapping selects the behavior of texture coordinates outside of the
// range [0, 1].
//
type Wrapping int32

const (
	Repeat Wrapping = iota
	MirroredRepeat
	ClampToEdge
	ClampToBorder
)

func (w Wrapping) String() string {
	switch w {
	case Repeat:
		return "Repeat"
	case MirroredRepeat:
		return "MirroredRepeat"
	case ClampToEdge:
		return "ClampToEdge"
	case ClampToBorder:
		return "ClampToBorder"
	}
	return fmt.Sprintf("Wrapping(%d)", int32(w))
}

// TextureType tags the dimensionality of a texture described by
// TextureData.
//
type TextureType int32

const (
	Texture1D TextureType = iota + 1
	Texture2D
	Texture3D
	Texture1DArray
	Texture2DArray
	CubeMap
)

func (t TextureType) String() string {
	switch t {
	case Texture1D:
		return "Texture1D"
	case Texture2D:
		return "Texture2D"
	case Texture3D:
		return "Texture3D"
	case Texture1DArray:
		return "Texture1DArray"
	case Texture2DArray:
		return "Texture2DArray"
	case CubeMap:
		return "CubeMap"
	}
	return fmt.Sprintf("TextureType(0x%x)", int32(t))
}

// TextureData describes a texture as produced by an asset importer: the
// texture type, its sampler configuration and the index of the image
// holding the level 0 data. It carries no GL state; texture objects are
// configured from it by the consumer.
//
type TextureData struct {
	Type      TextureType
	MinFilter Filter
	MagFilter Filter
	Mipmap    MipmapMode
	Wrap      [3]Wrapping
	Image     int

	// ImporterState is an opaque value for importer private data.
	ImporterState interface{}
}

// WrapAll returns a per-axis wrapping array with all axes set to w.
//
func WrapAll(w Wrapping) [3]Wrapping {
	return [3]Wrapping{w, w, w}
}
