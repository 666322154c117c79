package glfmt

import (
	"testing"

	"github.com/gfxkit/gltex"
)

var (
	gl33   = Version{OpenGL, 3, 3}
	gles30 = Version{OpenGLES, 3, 0}
	gles20 = Version{OpenGLES, 2, 0}
	webgl1 = Version{WebGL, 1, 0}
	webgl2 = Version{WebGL, 2, 0}
)

func TestFormatFor(t *testing.T) {
	tests := []struct {
		name        string
		v           Version
		format      gltex.Format
		want        Triple
		unsupported bool
	}{
		{
			name:   "RGBA8Unorm on desktop",
			v:      gl33,
			format: gltex.RGBA8Unorm,
			want:   Triple{RGBA8, RGBA, UNSIGNED_BYTE},
		},
		{
			name:   "RGBA8Unorm on ES3 keeps sized internal format",
			v:      gles30,
			format: gltex.RGBA8Unorm,
			want:   Triple{RGBA8, RGBA, UNSIGNED_BYTE},
		},
		{
			name:   "RGBA8Unorm on ES2 loses sized internal format",
			v:      gles20,
			format: gltex.RGBA8Unorm,
			want:   Triple{RGBA, RGBA, UNSIGNED_BYTE},
		},
		{
			name:   "R8Unorm on desktop",
			v:      gl33,
			format: gltex.R8Unorm,
			want:   Triple{R8, RED, UNSIGNED_BYTE},
		},
		{
			name:   "R8Unorm on ES2 falls back to luminance",
			v:      gles20,
			format: gltex.R8Unorm,
			want:   Triple{LUMINANCE, LUMINANCE, UNSIGNED_BYTE},
		},
		{
			name:   "R8Unorm on WebGL1 falls back to luminance",
			v:      webgl1,
			format: gltex.R8Unorm,
			want:   Triple{LUMINANCE, LUMINANCE, UNSIGNED_BYTE},
		},
		{
			name:   "RG8Unorm on ES2 falls back to luminance alpha",
			v:      gles20,
			format: gltex.RG8Unorm,
			want:   Triple{LUMINANCE_ALPHA, LUMINANCE_ALPHA, UNSIGNED_BYTE},
		},
		{
			name:   "RGB8Srgb on desktop",
			v:      gl33,
			format: gltex.RGB8Srgb,
			want:   Triple{SRGB8, RGB, UNSIGNED_BYTE},
		},
		{
			name:   "RGB8Srgb on ES2 uses the sRGB extension enum",
			v:      gles20,
			format: gltex.RGB8Srgb,
			want:   Triple{SRGB, SRGB, UNSIGNED_BYTE},
		},
		{
			name:   "RGBA8Srgb on WebGL2",
			v:      webgl2,
			format: gltex.RGBA8Srgb,
			want:   Triple{SRGB8_ALPHA8, RGBA, UNSIGNED_BYTE},
		},
		{
			name:   "RGBA16F on ES3",
			v:      gles30,
			format: gltex.RGBA16F,
			want:   Triple{RGBA16F, RGBA, HALF_FLOAT},
		},
		{
			name:   "R32F on desktop",
			v:      gl33,
			format: gltex.R32F,
			want:   Triple{R32F, RED, FLOAT},
		},
		{
			name:   "RGBA8UI on ES3 uses integer format",
			v:      gles30,
			format: gltex.RGBA8UI,
			want:   Triple{RGBA8UI, RGBA_INTEGER, UNSIGNED_BYTE},
		},
		{
			name:   "RG16I on desktop",
			v:      gl33,
			format: gltex.RG16I,
			want:   Triple{RG16I, RG_INTEGER, SHORT},
		},
		{
			name:   "R16Unorm on desktop",
			v:      gl33,
			format: gltex.R16Unorm,
			want:   Triple{R16, RED, UNSIGNED_SHORT},
		},
		{
			name:        "R16Unorm not on ES3",
			v:           gles30,
			format:      gltex.R16Unorm,
			unsupported: true,
		},
		{
			name:        "RGBA16Snorm not on WebGL2",
			v:           webgl2,
			format:      gltex.RGBA16Snorm,
			unsupported: true,
		},
		{
			name:        "integer formats not on ES2",
			v:           gles20,
			format:      gltex.RGBA8UI,
			unsupported: true,
		},
		{
			name:        "snorm formats not on WebGL1",
			v:           webgl1,
			format:      gltex.RGB8Snorm,
			unsupported: true,
		},
		{
			name:        "float formats not on ES2",
			v:           gles20,
			format:      gltex.R32F,
			unsupported: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatFor(tt.v, tt.format)
			if tt.unsupported {
				if err == nil {
					t.Fatalf("FormatFor(%v, %v) = %+v, want error", tt.v, tt.format, got)
				}
				if HasFormat(tt.v, tt.format) {
					t.Errorf("HasFormat(%v, %v) = true", tt.v, tt.format)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("FormatFor(%v, %v) = %+v, want %+v", tt.v, tt.format, got, tt.want)
			}
			if !HasFormat(tt.v, tt.format) {
				t.Errorf("HasFormat(%v, %v) = false", tt.v, tt.format)
			}
		})
	}
}

func TestFormatForInvalid(t *testing.T) {
	for _, f := range []gltex.Format{0, gltex.Format(0x1000)} {
		if _, err := FormatFor(gl33, f); err == nil {
			t.Errorf("FormatFor(gl33, %v): expected error", f)
		}
		if HasFormat(gl33, f) {
			t.Errorf("HasFormat(gl33, %v) = true", f)
		}
	}
}

func TestEveryFormatMapsOnDesktop(t *testing.T) {
	for f := gltex.R8Unorm; f <= gltex.RGBA32F; f++ {
		tr, err := FormatFor(gl33, f)
		if err != nil {
			t.Errorf("FormatFor(gl33, %v): %v", f, err)
			continue
		}
		if tr.Internal == 0 || tr.Format == 0 || tr.Type == 0 {
			t.Errorf("FormatFor(gl33, %v) = %+v: incomplete triple", f, tr)
		}
		// the row size implied by the triple must agree with the
		// generic format size
		n, err := PixelSize(tr.Format, tr.Type)
		if err != nil {
			t.Errorf("PixelSize(%v): %v", f, err)
			continue
		}
		if n != f.Size() {
			t.Errorf("PixelSize mismatch for %v: native %d, generic %d", f, n, f.Size())
		}
	}
}

func TestImplementationSpecificFormat(t *testing.T) {
	const native = 0x80e1 // GL_BGRA
	f := gltex.WrapFormat(native)

	if !HasFormat(gles20, f) {
		t.Error("HasFormat = false for wrapped format")
	}
	tr, err := FormatFor(gl33, f)
	if err != nil {
		t.Fatal(err)
	}
	if tr.Internal != native || tr.Format != native || tr.Type != 0 {
		t.Errorf("FormatFor = %+v", tr)
	}

	if _, err := PixelType(gl33, f, 0); err == nil {
		t.Error("PixelType without specifier: expected error")
	}
	typ, err := PixelType(gl33, f, UNSIGNED_BYTE)
	if err != nil {
		t.Fatal(err)
	}
	if typ != UNSIGNED_BYTE {
		t.Errorf("PixelType = 0x%x", uint32(typ))
	}
}

func TestPixelTypeGeneric(t *testing.T) {
	typ, err := PixelType(gl33, gltex.RGBA16F, 0)
	if err != nil {
		t.Fatal(err)
	}
	if typ != HALF_FLOAT {
		t.Errorf("PixelType = 0x%x, want HALF_FLOAT", uint32(typ))
	}
	if _, err := PixelType(gl33, gltex.RGBA16F, UNSIGNED_BYTE); err == nil {
		t.Error("PixelType with spurious specifier: expected error")
	}
	if _, err := PixelType(gles20, gltex.R32F, 0); err == nil {
		t.Error("PixelType for unsupported format: expected error")
	}
}

func TestPixelFormat(t *testing.T) {
	e, err := PixelFormat(gles20, gltex.R8Unorm)
	if err != nil {
		t.Fatal(err)
	}
	if e != LUMINANCE {
		t.Errorf("PixelFormat = 0x%x, want LUMINANCE", uint32(e))
	}
}

func TestCompressedFormatFor(t *testing.T) {
	tests := []struct {
		name        string
		v           Version
		format      gltex.CompressedFormat
		want        Enum
		unsupported bool
	}{
		{name: "dxt1 on desktop", v: gl33, format: gltex.Dxt1RGBUnorm, want: COMPRESSED_RGB_S3TC_DXT1_EXT},
		{name: "dxt5 on WebGL1", v: webgl1, format: gltex.Dxt5RGBAUnorm, want: COMPRESSED_RGBA_S3TC_DXT5_EXT},
		{name: "etc2 on ES3", v: gles30, format: gltex.Etc2RGBA8Unorm, want: COMPRESSED_RGBA8_ETC2_EAC},
		{name: "etc2 on desktop", v: gl33, format: gltex.Etc2RGBA8Unorm, want: COMPRESSED_RGBA8_ETC2_EAC},
		{name: "etc2 not on ES2", v: gles20, format: gltex.Etc2RGB8Unorm, unsupported: true},
		{name: "bptc on desktop", v: gl33, format: gltex.BptcRGBAUnorm, want: COMPRESSED_RGBA_BPTC_UNORM},
		{name: "bptc not on ES3", v: gles30, format: gltex.BptcRGBAUnorm, unsupported: true},
		{name: "astc on ES2", v: gles20, format: gltex.Astc4x4RGBAUnorm, want: COMPRESSED_RGBA_ASTC_4x4_KHR},
		{name: "astc not on WebGL", v: webgl2, format: gltex.Astc8x8RGBAUnorm, unsupported: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CompressedFormatFor(tt.v, tt.format)
			if tt.unsupported {
				if err == nil {
					t.Fatalf("CompressedFormatFor = 0x%x, want error", uint32(got))
				}
				if HasCompressedFormat(tt.v, tt.format) {
					t.Error("HasCompressedFormat = true")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("CompressedFormatFor = 0x%x, want 0x%x", uint32(got), uint32(tt.want))
			}
		})
	}
}

func TestCompressedFormatPassThrough(t *testing.T) {
	const native = 0x93b0
	e, err := CompressedFormatFor(webgl1, gltex.WrapCompressedFormat(native))
	if err != nil {
		t.Fatal(err)
	}
	if e != native {
		t.Errorf("CompressedFormatFor = 0x%x", uint32(e))
	}
}

func TestPixelSize(t *testing.T) {
	tests := []struct {
		name    string
		format  Enum
		typ     Enum
		want    int
		wantErr bool
	}{
		{name: "RGBA unsigned byte", format: RGBA, typ: UNSIGNED_BYTE, want: 4},
		{name: "RGB unsigned byte", format: RGB, typ: UNSIGNED_BYTE, want: 3},
		{name: "RED float", format: RED, typ: FLOAT, want: 4},
		{name: "RG half float", format: RG, typ: HALF_FLOAT, want: 4},
		{name: "luminance alpha", format: LUMINANCE_ALPHA, typ: UNSIGNED_BYTE, want: 2},
		{name: "BGRA short", format: BGRA, typ: UNSIGNED_SHORT, want: 8},
		{name: "packed 565", format: RGB, typ: UNSIGNED_SHORT_5_6_5, want: 2},
		{name: "packed 4444", format: RGBA, typ: UNSIGNED_SHORT_4_4_4_4, want: 2},
		{name: "packed 2 10 10 10", format: RGBA, typ: UNSIGNED_INT_2_10_10_10_REV, want: 4},
		{name: "packed depth stencil", format: DEPTH_STENCIL, typ: UNSIGNED_INT_24_8, want: 4},
		{name: "float depth stencil", format: DEPTH_STENCIL, typ: FLOAT_32_UNSIGNED_INT_24_8_REV, want: 8},
		{name: "depth component float", format: DEPTH_COMPONENT, typ: FLOAT, want: 4},
		{name: "depth stencil with component type", format: DEPTH_STENCIL, typ: UNSIGNED_BYTE, wantErr: true},
		{name: "unknown type", format: RGBA, typ: Enum(0x1234), wantErr: true},
		{name: "unknown format", format: Enum(0x1234), typ: UNSIGNED_BYTE, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PixelSize(tt.format, tt.typ)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("PixelSize = %d, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("PixelSize = %d, want %d", got, tt.want)
			}
		})
	}
}
