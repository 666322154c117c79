// Package glfmt maps the generic pixel formats of package gltex to
// native OpenGL enums. All lookups take the target Version: the same
// generic format resolves to different enums (or to nothing at all) on
// desktop GL, ES 3, ES 2 and WebGL, mirroring the per-target holes of
// the original lookup tables.
//
// The package is pure Go and performs no GL calls; it can run without a
// context.
package glfmt

import (
	"github.com/pkg/errors"

	"github.com/gfxkit/gltex"
)

// Triple holds the three format arguments of a TexImage call.
//
type Triple struct {
	Internal Enum
	Format   Enum
	Type     Enum
}

// formatMapping describes one generic format on every target class.
// ES 2 (and WebGL 1) has no sized internal formats, so es2 carries a
// full triple of its own; a zero es2 marks the format unavailable
// there. glOnly marks formats absent from all ES and WebGL targets.
type formatMapping struct {
	t      Triple
	es2    Triple
	glOnly bool
}

func unorm8(internal, format Enum, es2 Triple) formatMapping {
	return formatMapping{t: Triple{internal, format, UNSIGNED_BYTE}, es2: es2}
}

func es3(internal, format, typ Enum) formatMapping {
	return formatMapping{t: Triple{internal, format, typ}}
}

func glonly(internal, format, typ Enum) formatMapping {
	return formatMapping{t: Triple{internal, format, typ}, glOnly: true}
}

// The mapping table, indexed by gltex.Format. A zero row would mean "no
// mapping anywhere"; every generic format maps on desktop GL.
var formatMappings = [...]formatMapping{
	gltex.R8Unorm:  unorm8(R8, RED, Triple{LUMINANCE, LUMINANCE, UNSIGNED_BYTE}),
	gltex.R8Snorm:  es3(R8_SNORM, RED, BYTE),
	gltex.R8UI:     es3(R8UI, RED_INTEGER, UNSIGNED_BYTE),
	gltex.R8I:      es3(R8I, RED_INTEGER, BYTE),
	gltex.R16Unorm: glonly(R16, RED, UNSIGNED_SHORT),
	gltex.R16Snorm: glonly(R16_SNORM, RED, SHORT),
	gltex.R16UI:    es3(R16UI, RED_INTEGER, UNSIGNED_SHORT),
	gltex.R16I:     es3(R16I, RED_INTEGER, SHORT),
	gltex.R16F:     es3(R16F, RED, HALF_FLOAT),
	gltex.R32UI:    es3(R32UI, RED_INTEGER, UNSIGNED_INT),
	gltex.R32I:     es3(R32I, RED_INTEGER, INT),
	gltex.R32F:     es3(R32F, RED, FLOAT),

	gltex.RG8Unorm:  unorm8(RG8, RG, Triple{LUMINANCE_ALPHA, LUMINANCE_ALPHA, UNSIGNED_BYTE}),
	gltex.RG8Snorm:  es3(RG8_SNORM, RG, BYTE),
	gltex.RG8UI:     es3(RG8UI, RG_INTEGER, UNSIGNED_BYTE),
	gltex.RG8I:      es3(RG8I, RG_INTEGER, BYTE),
	gltex.RG16Unorm: glonly(RG16, RG, UNSIGNED_SHORT),
	gltex.RG16Snorm: glonly(RG16_SNORM, RG, SHORT),
	gltex.RG16UI:    es3(RG16UI, RG_INTEGER, UNSIGNED_SHORT),
	gltex.RG16I:     es3(RG16I, RG_INTEGER, SHORT),
	gltex.RG16F:     es3(RG16F, RG, HALF_FLOAT),
	gltex.RG32UI:    es3(RG32UI, RG_INTEGER, UNSIGNED_INT),
	gltex.RG32I:     es3(RG32I, RG_INTEGER, INT),
	gltex.RG32F:     es3(RG32F, RG, FLOAT),

	gltex.RGB8Unorm:  unorm8(RGB8, RGB, Triple{RGB, RGB, UNSIGNED_BYTE}),
	gltex.RGB8Snorm:  es3(RGB8_SNORM, RGB, BYTE),
	gltex.RGB8Srgb:   unorm8(SRGB8, RGB, Triple{SRGB, SRGB, UNSIGNED_BYTE}),
	gltex.RGB8UI:     es3(RGB8UI, RGB_INTEGER, UNSIGNED_BYTE),
	gltex.RGB8I:      es3(RGB8I, RGB_INTEGER, BYTE),
	gltex.RGB16Unorm: glonly(RGB16, RGB, UNSIGNED_SHORT),
	gltex.RGB16Snorm: glonly(RGB16_SNORM, RGB, SHORT),
	gltex.RGB16UI:    es3(RGB16UI, RGB_INTEGER, UNSIGNED_SHORT),
	gltex.RGB16I:     es3(RGB16I, RGB_INTEGER, SHORT),
	gltex.RGB16F:     es3(RGB16F, RGB, HALF_FLOAT),
	gltex.RGB32UI:    es3(RGB32UI, RGB_INTEGER, UNSIGNED_INT),
	gltex.RGB32I:     es3(RGB32I, RGB_INTEGER, INT),
	gltex.RGB32F:     es3(RGB32F, RGB, FLOAT),

	gltex.RGBA8Unorm:  unorm8(RGBA8, RGBA, Triple{RGBA, RGBA, UNSIGNED_BYTE}),
	gltex.RGBA8Snorm:  es3(RGBA8_SNORM, RGBA, BYTE),
	gltex.RGBA8Srgb:   unorm8(SRGB8_ALPHA8, RGBA, Triple{SRGB_ALPHA, SRGB_ALPHA, UNSIGNED_BYTE}),
	gltex.RGBA8UI:     es3(RGBA8UI, RGBA_INTEGER, UNSIGNED_BYTE),
	gltex.RGBA8I:      es3(RGBA8I, RGBA_INTEGER, BYTE),
	gltex.RGBA16Unorm: glonly(RGBA16, RGBA, UNSIGNED_SHORT),
	gltex.RGBA16Snorm: glonly(RGBA16_SNORM, RGBA, SHORT),
	gltex.RGBA16UI:    es3(RGBA16UI, RGBA_INTEGER, UNSIGNED_SHORT),
	gltex.RGBA16I:     es3(RGBA16I, RGBA_INTEGER, SHORT),
	gltex.RGBA16F:     es3(RGBA16F, RGBA, HALF_FLOAT),
	gltex.RGBA32UI:    es3(RGBA32UI, RGBA_INTEGER, UNSIGNED_INT),
	gltex.RGBA32I:     es3(RGBA32I, RGBA_INTEGER, INT),
	gltex.RGBA32F:     es3(RGBA32F, RGBA, FLOAT),
}

func lookup(v Version, f gltex.Format) (Triple, error) {
	if f == 0 || int(f) >= len(formatMappings) {
		return Triple{}, errors.Errorf("invalid format %v", f)
	}
	m := &formatMappings[f]
	switch {
	case !v.GLES():
		return m.t, nil
	case m.glOnly:
		return Triple{}, errors.Errorf("format %v is not supported on %v", f, v)
	case !v.ES2():
		return m.t, nil
	case m.es2.Format != 0:
		return m.es2, nil
	}
	return Triple{}, errors.Errorf("format %v is not supported on %v", f, v)
}

// HasFormat reports whether f has a mapping on target v.
// Implementation-specific formats always do.
//
func HasFormat(v Version, f gltex.Format) bool {
	if f.IsImplementationSpecific() {
		return true
	}
	_, err := lookup(v, f)
	return err == nil
}

// FormatFor returns the TexImage arguments for f on target v. For
// implementation-specific formats the wrapped enum is used for both the
// internal format and the format, and Type is left zero: the caller
// must obtain it from PixelType with an explicit specifier.
//
func FormatFor(v Version, f gltex.Format) (Triple, error) {
	if f.IsImplementationSpecific() {
		e := Enum(f.Unwrap())
		return Triple{Internal: e, Format: e}, nil
	}
	return lookup(v, f)
}

// PixelFormat returns the native pixel format (the format argument of a
// TexImage call) for f on target v.
//
func PixelFormat(v Version, f gltex.Format) (Enum, error) {
	t, err := FormatFor(v, f)
	return t.Format, err
}

// PixelType returns the native pixel type for f on target v. Formats
// wrapping a native enum carry no type information: extra supplies it
// and must be non-zero for them. For generic formats extra must be
// zero.
//
func PixelType(v Version, f gltex.Format, extra Enum) (Enum, error) {
	if f.IsImplementationSpecific() {
		if extra == 0 {
			return 0, errors.Errorf("format %v is implementation-specific but no type specifier was given", f)
		}
		return extra, nil
	}
	if extra != 0 {
		return 0, errors.Errorf("type specifier 0x%x given for generic format %v", uint32(extra), f)
	}
	t, err := lookup(v, f)
	return t.Type, err
}

type compressedMapping struct {
	e Enum
	// availability by target class
	gles  bool // ES 3 and up
	es2   bool
	webgl bool
}

// S3TC is an extension on every target, ETC2/EAC is ES 3 core and
// desktop 4.3 core, BPTC is desktop only, ASTC is absent from WebGL.
// Same availability classes as the original compressed table.
var compressedMappings = [...]compressedMapping{
	gltex.Dxt1RGBUnorm:       {e: COMPRESSED_RGB_S3TC_DXT1_EXT, gles: true, es2: true, webgl: true},
	gltex.Dxt1RGBSrgb:        {e: COMPRESSED_SRGB_S3TC_DXT1_EXT, gles: true, es2: true, webgl: true},
	gltex.Dxt1RGBAUnorm:      {e: COMPRESSED_RGBA_S3TC_DXT1_EXT, gles: true, es2: true, webgl: true},
	gltex.Dxt1RGBASrgb:       {e: COMPRESSED_SRGB_ALPHA_S3TC_DXT1_EXT, gles: true, es2: true, webgl: true},
	gltex.Dxt3RGBAUnorm:      {e: COMPRESSED_RGBA_S3TC_DXT3_EXT, gles: true, es2: true, webgl: true},
	gltex.Dxt3RGBASrgb:       {e: COMPRESSED_SRGB_ALPHA_S3TC_DXT3_EXT, gles: true, es2: true, webgl: true},
	gltex.Dxt5RGBAUnorm:      {e: COMPRESSED_RGBA_S3TC_DXT5_EXT, gles: true, es2: true, webgl: true},
	gltex.Dxt5RGBASrgb:       {e: COMPRESSED_SRGB_ALPHA_S3TC_DXT5_EXT, gles: true, es2: true, webgl: true},
	gltex.Etc2RGB8Unorm:      {e: COMPRESSED_RGB8_ETC2, gles: true, webgl: true},
	gltex.Etc2RGB8Srgb:       {e: COMPRESSED_SRGB8_ETC2, gles: true, webgl: true},
	gltex.Etc2RGB8A1Unorm:    {e: COMPRESSED_RGB8_PUNCHTHROUGH_ALPHA1_ETC2, gles: true, webgl: true},
	gltex.Etc2RGB8A1Srgb:     {e: COMPRESSED_SRGB8_PUNCHTHROUGH_ALPHA1_ETC2, gles: true, webgl: true},
	gltex.Etc2RGBA8Unorm:     {e: COMPRESSED_RGBA8_ETC2_EAC, gles: true, webgl: true},
	gltex.Etc2RGBA8Srgb:      {e: COMPRESSED_SRGB8_ALPHA8_ETC2_EAC, gles: true, webgl: true},
	gltex.EacR11Unorm:        {e: COMPRESSED_R11_EAC, gles: true, webgl: true},
	gltex.EacR11Snorm:        {e: COMPRESSED_SIGNED_R11_EAC, gles: true, webgl: true},
	gltex.EacRG11Unorm:       {e: COMPRESSED_RG11_EAC, gles: true, webgl: true},
	gltex.EacRG11Snorm:       {e: COMPRESSED_SIGNED_RG11_EAC, gles: true, webgl: true},
	gltex.BptcRGBAUnorm:      {e: COMPRESSED_RGBA_BPTC_UNORM},
	gltex.BptcRGBASrgb:       {e: COMPRESSED_SRGB_ALPHA_BPTC_UNORM},
	gltex.BptcRGBSfloat:      {e: COMPRESSED_RGB_BPTC_SIGNED_FLOAT},
	gltex.BptcRGBUfloat:      {e: COMPRESSED_RGB_BPTC_UNSIGNED_FLOAT},
	gltex.Astc4x4RGBAUnorm:   {e: COMPRESSED_RGBA_ASTC_4x4_KHR, gles: true, es2: true},
	gltex.Astc4x4RGBASrgb:    {e: COMPRESSED_SRGB8_ALPHA8_ASTC_4x4_KHR, gles: true, es2: true},
	gltex.Astc8x8RGBAUnorm:   {e: COMPRESSED_RGBA_ASTC_8x8_KHR, gles: true, es2: true},
	gltex.Astc8x8RGBASrgb:    {e: COMPRESSED_SRGB8_ALPHA8_ASTC_8x8_KHR, gles: true, es2: true},
	gltex.Astc10x10RGBAUnorm: {e: COMPRESSED_RGBA_ASTC_10x10_KHR, gles: true, es2: true},
	gltex.Astc10x10RGBASrgb:  {e: COMPRESSED_SRGB8_ALPHA8_ASTC_10x10_KHR, gles: true, es2: true},
}

func compressedLookup(v Version, f gltex.CompressedFormat) (Enum, error) {
	if f == 0 || int(f) >= len(compressedMappings) {
		return 0, errors.Errorf("invalid compressed format %v", f)
	}
	m := &compressedMappings[f]
	var ok bool
	switch v.API {
	case OpenGL:
		ok = true
	case OpenGLES:
		ok = m.gles && (m.es2 || !v.ES2())
	case WebGL:
		ok = m.webgl
	}
	if !ok {
		return 0, errors.Errorf("compressed format %v is not supported on %v", f, v)
	}
	return m.e, nil
}

// HasCompressedFormat reports whether f has a mapping on target v.
//
func HasCompressedFormat(v Version, f gltex.CompressedFormat) bool {
	if f.IsImplementationSpecific() {
		return true
	}
	_, err := compressedLookup(v, f)
	return err == nil
}

// CompressedFormatFor returns the native compressed internal format for
// f on target v. Implementation-specific formats pass through.
//
func CompressedFormatFor(v Version, f gltex.CompressedFormat) (Enum, error) {
	if f.IsImplementationSpecific() {
		return Enum(f.Unwrap()), nil
	}
	return compressedLookup(v, f)
}

// PixelSize returns the size in bytes of a single pixel with the given
// native format and type. Packed types fully determine the size on
// their own; component types multiply by the channel count of format.
//
func PixelSize(format, typ Enum) (int, error) {
	size := 0
	switch typ {
	case UNSIGNED_BYTE, BYTE:
		size = 1
	case UNSIGNED_SHORT, SHORT, HALF_FLOAT:
		size = 2
	case UNSIGNED_INT, INT, FLOAT:
		size = 4

	case UNSIGNED_SHORT_5_6_5, UNSIGNED_SHORT_4_4_4_4, UNSIGNED_SHORT_5_5_5_1:
		return 2, nil
	case UNSIGNED_INT_2_10_10_10_REV, UNSIGNED_INT_10F_11F_11F_REV,
		UNSIGNED_INT_5_9_9_9_REV, UNSIGNED_INT_24_8:
		return 4, nil
	case FLOAT_32_UNSIGNED_INT_24_8_REV:
		return 8, nil
	default:
		return 0, errors.Errorf("unknown pixel type 0x%x", uint32(typ))
	}

	switch format {
	case RED, GREEN, BLUE, RED_INTEGER, LUMINANCE, ALPHA, DEPTH_COMPONENT, STENCIL_INDEX:
		return 1 * size, nil
	case RG, RG_INTEGER, LUMINANCE_ALPHA:
		return 2 * size, nil
	case RGB, RGB_INTEGER, BGR, SRGB:
		return 3 * size, nil
	case RGBA, RGBA_INTEGER, BGRA, SRGB_ALPHA:
		return 4 * size, nil
	case DEPTH_STENCIL:
		return 0, errors.Errorf("invalid pixel type 0x%x for a depth/stencil format", uint32(typ))
	}
	return 0, errors.Errorf("unknown pixel format 0x%x", uint32(format))
}
