package gltex

import (
	"fmt"
	"image"
)

// Format identifies a vendor-neutral pixel format. The zero value is not
// a valid format: lookup tables index by Format value and use zero
// entries to mark formats unsupported on a given target.
//
type Format uint32

// Generic pixel formats. Component count and per-component data type are
// encoded in the name: Unorm and Snorm are normalized fixed-point, UI
// and I are unnormalized integer, F is floating-point and Srgb is
// normalized with sRGB transfer applied to the color channels.
//
const (
	R8Unorm Format = iota + 1
	R8Snorm
	R8UI
	R8I
	R16Unorm
	R16Snorm
	R16UI
	R16I
	R16F
	R32UI
	R32I
	R32F
	RG8Unorm
	RG8Snorm
	RG8UI
	RG8I
	RG16Unorm
	RG16Snorm
	RG16UI
	RG16I
	RG16F
	RG32UI
	RG32I
	RG32F
	RGB8Unorm
	RGB8Snorm
	RGB8Srgb
	RGB8UI
	RGB8I
	RGB16Unorm
	RGB16Snorm
	RGB16UI
	RGB16I
	RGB16F
	RGB32UI
	RGB32I
	RGB32F
	RGBA8Unorm
	RGBA8Snorm
	RGBA8Srgb
	RGBA8UI
	RGBA8I
	RGBA16Unorm
	RGBA16Snorm
	RGBA16UI
	RGBA16I
	RGBA16F
	RGBA32UI
	RGBA32I
	RGBA32F

	maxFormat
)

// implementationSpecific tags Format and CompressedFormat values that
// carry a raw GL enum instead of a generic format.
const implementationSpecific = 1 << 31

// WrapFormat wraps a native GL pixel format enum into a Format. The
// resulting value passes through the translation layer unchanged; a
// pixel type specifier must then be supplied alongside it.
//
func WrapFormat(glenum uint32) Format {
	return Format(glenum | implementationSpecific)
}

// IsImplementationSpecific reports whether f wraps a native enum.
//
func (f Format) IsImplementationSpecific() bool {
	return f&implementationSpecific != 0
}

// Unwrap returns the native enum wrapped in f. It panics if f is a
// generic format.
//
func (f Format) Unwrap() uint32 {
	if !f.IsImplementationSpecific() {
		panic(fmt.Sprintf("gltex: cannot unwrap generic format %v", f))
	}
	return uint32(f &^ implementationSpecific)
}

type formatInfo struct {
	name     string
	channels int8
	chanSize int8
}

var formatTable = [maxFormat]formatInfo{
	R8Unorm:     {"R8Unorm", 1, 1},
	R8Snorm:     {"R8Snorm", 1, 1},
	R8UI:        {"R8UI", 1, 1},
	R8I:         {"R8I", 1, 1},
	R16Unorm:    {"R16Unorm", 1, 2},
	R16Snorm:    {"R16Snorm", 1, 2},
	R16UI:       {"R16UI", 1, 2},
	R16I:        {"R16I", 1, 2},
	R16F:        {"R16F", 1, 2},
	R32UI:       {"R32UI", 1, 4},
	R32I:        {"R32I", 1, 4},
	R32F:        {"R32F", 1, 4},
	RG8Unorm:    {"RG8Unorm", 2, 1},
	RG8Snorm:    {"RG8Snorm", 2, 1},
	RG8UI:       {"RG8UI", 2, 1},
	RG8I:        {"RG8I", 2, 1},
	RG16Unorm:   {"RG16Unorm", 2, 2},
	RG16Snorm:   {"RG16Snorm", 2, 2},
	RG16UI:      {"RG16UI", 2, 2},
	RG16I:       {"RG16I", 2, 2},
	RG16F:       {"RG16F", 2, 2},
	RG32UI:      {"RG32UI", 2, 4},
	RG32I:       {"RG32I", 2, 4},
	RG32F:       {"RG32F", 2, 4},
	RGB8Unorm:   {"RGB8Unorm", 3, 1},
	RGB8Snorm:   {"RGB8Snorm", 3, 1},
	RGB8Srgb:    {"RGB8Srgb", 3, 1},
	RGB8UI:      {"RGB8UI", 3, 1},
	RGB8I:       {"RGB8I", 3, 1},
	RGB16Unorm:  {"RGB16Unorm", 3, 2},
	RGB16Snorm:  {"RGB16Snorm", 3, 2},
	RGB16UI:     {"RGB16UI", 3, 2},
	RGB16I:      {"RGB16I", 3, 2},
	RGB16F:      {"RGB16F", 3, 2},
	RGB32UI:     {"RGB32UI", 3, 4},
	RGB32I:      {"RGB32I", 3, 4},
	RGB32F:      {"RGB32F", 3, 4},
	RGBA8Unorm:  {"RGBA8Unorm", 4, 1},
	RGBA8Snorm:  {"RGBA8Snorm", 4, 1},
	RGBA8Srgb:   {"RGBA8Srgb", 4, 1},
	RGBA8UI:     {"RGBA8UI", 4, 1},
	RGBA8I:      {"RGBA8I", 4, 1},
	RGBA16Unorm: {"RGBA16Unorm", 4, 2},
	RGBA16Snorm: {"RGBA16Snorm", 4, 2},
	RGBA16UI:    {"RGBA16UI", 4, 2},
	RGBA16I:     {"RGBA16I", 4, 2},
	RGBA16F:     {"RGBA16F", 4, 2},
	RGBA32UI:    {"RGBA32UI", 4, 4},
	RGBA32I:     {"RGBA32I", 4, 4},
	RGBA32F:     {"RGBA32F", 4, 4},
}

// Size returns the size of a single pixel in bytes. It panics on
// implementation-specific or invalid formats: these have no size known
// to this package.
//
func (f Format) Size() int {
	if f.IsImplementationSpecific() {
		panic(fmt.Sprintf("gltex: size of implementation-specific format %v is not known", f))
	}
	if f == 0 || f >= maxFormat {
		panic(fmt.Sprintf("gltex: size of invalid format %v is not known", f))
	}
	fi := &formatTable[f]
	return int(fi.channels) * int(fi.chanSize)
}

// Channels returns the number of color channels of f. It panics under
// the same conditions as Size.
//
func (f Format) Channels() int {
	if f.IsImplementationSpecific() {
		panic(fmt.Sprintf("gltex: channel count of implementation-specific format %v is not known", f))
	}
	if f == 0 || f >= maxFormat {
		panic(fmt.Sprintf("gltex: channel count of invalid format %v is not known", f))
	}
	return int(formatTable[f].channels)
}

func (f Format) String() string {
	if f.IsImplementationSpecific() {
		return fmt.Sprintf("Format(native 0x%x)", f.Unwrap())
	}
	if f == 0 || f >= maxFormat {
		return fmt.Sprintf("Format(0x%x)", uint32(f))
	}
	return formatTable[f].name
}

// Formats returns all generic formats, in enumeration order.
//
func Formats() []Format {
	fs := make([]Format, 0, maxFormat-1)
	for f := Format(1); f < maxFormat; f++ {
		fs = append(fs, f)
	}
	return fs
}

// CompressedFormat identifies a vendor-neutral block-compressed pixel
// format. As with Format, the zero value is invalid.
//
type CompressedFormat uint32

// Block-compressed formats: S3TC/DXT, ETC2/EAC, BPTC and a
// representative ASTC subset, each with sRGB variants where the
// underlying scheme defines one.
//
const (
	Dxt1RGBUnorm CompressedFormat = iota + 1
	Dxt1RGBSrgb
	Dxt1RGBAUnorm
	Dxt1RGBASrgb
	Dxt3RGBAUnorm
	Dxt3RGBASrgb
	Dxt5RGBAUnorm
	Dxt5RGBASrgb
	Etc2RGB8Unorm
	Etc2RGB8Srgb
	Etc2RGB8A1Unorm
	Etc2RGB8A1Srgb
	Etc2RGBA8Unorm
	Etc2RGBA8Srgb
	EacR11Unorm
	EacR11Snorm
	EacRG11Unorm
	EacRG11Snorm
	BptcRGBAUnorm
	BptcRGBASrgb
	BptcRGBSfloat
	BptcRGBUfloat
	Astc4x4RGBAUnorm
	Astc4x4RGBASrgb
	Astc8x8RGBAUnorm
	Astc8x8RGBASrgb
	Astc10x10RGBAUnorm
	Astc10x10RGBASrgb

	maxCompressedFormat
)

// WrapCompressedFormat wraps a native GL compressed format enum into a
// CompressedFormat.
//
func WrapCompressedFormat(glenum uint32) CompressedFormat {
	return CompressedFormat(glenum | implementationSpecific)
}

// IsImplementationSpecific reports whether f wraps a native enum.
//
func (f CompressedFormat) IsImplementationSpecific() bool {
	return f&implementationSpecific != 0
}

// Unwrap returns the native enum wrapped in f. It panics if f is a
// generic format.
//
func (f CompressedFormat) Unwrap() uint32 {
	if !f.IsImplementationSpecific() {
		panic(fmt.Sprintf("gltex: cannot unwrap generic compressed format %v", f))
	}
	return uint32(f &^ implementationSpecific)
}

type compressedFormatInfo struct {
	name       string
	blockW     int8
	blockH     int8
	blockBytes int8
}

var compressedFormatTable = [maxCompressedFormat]compressedFormatInfo{
	Dxt1RGBUnorm:       {"Dxt1RGBUnorm", 4, 4, 8},
	Dxt1RGBSrgb:        {"Dxt1RGBSrgb", 4, 4, 8},
	Dxt1RGBAUnorm:      {"Dxt1RGBAUnorm", 4, 4, 8},
	Dxt1RGBASrgb:       {"Dxt1RGBASrgb", 4, 4, 8},
	Dxt3RGBAUnorm:      {"Dxt3RGBAUnorm", 4, 4, 16},
	Dxt3RGBASrgb:       {"Dxt3RGBASrgb", 4, 4, 16},
	Dxt5RGBAUnorm:      {"Dxt5RGBAUnorm", 4, 4, 16},
	Dxt5RGBASrgb:       {"Dxt5RGBASrgb", 4, 4, 16},
	Etc2RGB8Unorm:      {"Etc2RGB8Unorm", 4, 4, 8},
	Etc2RGB8Srgb:       {"Etc2RGB8Srgb", 4, 4, 8},
	Etc2RGB8A1Unorm:    {"Etc2RGB8A1Unorm", 4, 4, 8},
	Etc2RGB8A1Srgb:     {"Etc2RGB8A1Srgb", 4, 4, 8},
	Etc2RGBA8Unorm:     {"Etc2RGBA8Unorm", 4, 4, 16},
	Etc2RGBA8Srgb:      {"Etc2RGBA8Srgb", 4, 4, 16},
	EacR11Unorm:        {"EacR11Unorm", 4, 4, 8},
	EacR11Snorm:        {"EacR11Snorm", 4, 4, 8},
	EacRG11Unorm:       {"EacRG11Unorm", 4, 4, 16},
	EacRG11Snorm:       {"EacRG11Snorm", 4, 4, 16},
	BptcRGBAUnorm:      {"BptcRGBAUnorm", 4, 4, 16},
	BptcRGBASrgb:       {"BptcRGBASrgb", 4, 4, 16},
	BptcRGBSfloat:      {"BptcRGBSfloat", 4, 4, 16},
	BptcRGBUfloat:      {"BptcRGBUfloat", 4, 4, 16},
	Astc4x4RGBAUnorm:   {"Astc4x4RGBAUnorm", 4, 4, 16},
	Astc4x4RGBASrgb:    {"Astc4x4RGBASrgb", 4, 4, 16},
	Astc8x8RGBAUnorm:   {"Astc8x8RGBAUnorm", 8, 8, 16},
	Astc8x8RGBASrgb:    {"Astc8x8RGBASrgb", 8, 8, 16},
	Astc10x10RGBAUnorm: {"Astc10x10RGBAUnorm", 10, 10, 16},
	Astc10x10RGBASrgb:  {"Astc10x10RGBASrgb", 10, 10, 16},
}

// BlockSize returns the size of a compressed block in pixels. It panics
// on implementation-specific or invalid formats.
//
func (f CompressedFormat) BlockSize() image.Point {
	fi := f.info()
	return image.Pt(int(fi.blockW), int(fi.blockH))
}

// BlockDataSize returns the size of a compressed block in bytes. It
// panics on implementation-specific or invalid formats.
//
func (f CompressedFormat) BlockDataSize() int {
	return int(f.info().blockBytes)
}

func (f CompressedFormat) info() *compressedFormatInfo {
	if f.IsImplementationSpecific() {
		panic(fmt.Sprintf("gltex: block layout of implementation-specific format %v is not known", f))
	}
	if f == 0 || f >= maxCompressedFormat {
		panic(fmt.Sprintf("gltex: block layout of invalid format %v is not known", f))
	}
	return &compressedFormatTable[f]
}

func (f CompressedFormat) String() string {
	if f.IsImplementationSpecific() {
		return fmt.Sprintf("CompressedFormat(native 0x%x)", f.Unwrap())
	}
	if f == 0 || f >= maxCompressedFormat {
		return fmt.Sprintf("CompressedFormat(0x%x)", uint32(f))
	}
	return compressedFormatTable[f].name
}

// CompressedFormats returns all generic block-compressed formats, in
// enumeration order.
//
func CompressedFormats() []CompressedFormat {
	fs := make([]CompressedFormat, 0, maxCompressedFormat-1)
	for f := CompressedFormat(1); f < maxCompressedFormat; f++ {
		fs = append(fs, f)
	}
	return fs
}
