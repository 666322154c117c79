package gltex

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestNewImage(t *testing.T) {
	tests := []struct {
		name    string
		img     func() (*ImageData, error)
		size    [3]int
		dims    int
		wantErr bool
	}{
		{
			name: "1D",
			img:  func() (*ImageData, error) { return NewImage1D(4, RGBA8Unorm, make([]byte, 16)) },
			size: [3]int{4, 1, 1},
			dims: 1,
		},
		{
			name: "2D",
			img:  func() (*ImageData, error) { return NewImage2D(4, 2, R16F, make([]byte, 16)) },
			size: [3]int{4, 2, 1},
			dims: 2,
		},
		{
			name: "3D",
			img:  func() (*ImageData, error) { return NewImage3D(2, 2, 2, R8Unorm, make([]byte, 8)) },
			size: [3]int{2, 2, 2},
			dims: 3,
		},
		{
			name: "storage only",
			img:  func() (*ImageData, error) { return NewImage2D(64, 64, RGBA8Unorm, nil) },
			size: [3]int{64, 64, 1},
			dims: 2,
		},
		{
			name:    "short pixel data",
			img:     func() (*ImageData, error) { return NewImage2D(4, 4, RGBA8Unorm, make([]byte, 63)) },
			wantErr: true,
		},
		{
			name:    "negative size",
			img:     func() (*ImageData, error) { return NewImage2D(-1, 4, RGBA8Unorm, nil) },
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := tt.img()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if img.Size() != tt.size {
				t.Errorf("Size() = %v, want %v", img.Size(), tt.size)
			}
			if img.Dims() != tt.dims {
				t.Errorf("Dims() = %d, want %d", img.Dims(), tt.dims)
			}
		})
	}
}

func TestImplementationSpecificImageSkipsSizeCheck(t *testing.T) {
	img, err := NewImage2D(4, 4, WrapFormat(0x1908), make([]byte, 3))
	if err != nil {
		t.Fatal(err)
	}
	if img.Type() != 0 {
		t.Errorf("Type() = 0x%x before WithType", img.Type())
	}
	img.WithType(0x1401)
	if img.Type() != 0x1401 {
		t.Errorf("Type() = 0x%x, want 0x1401", img.Type())
	}
}

func TestRowSize(t *testing.T) {
	tests := []struct {
		format Format
		width  int
		want   int
	}{
		{RGBA8Unorm, 5, 20},
		{RGB8Unorm, 5, 15},
		{R8Unorm, 5, 5},
		{RGBA32F, 3, 48},
	}
	for _, tt := range tests {
		img, err := NewImage2D(tt.width, 1, tt.format, nil)
		if err != nil {
			t.Fatal(err)
		}
		if got := img.RowSize(); got != tt.want {
			t.Errorf("%v width %d: RowSize() = %d, want %d", tt.format, tt.width, got, tt.want)
		}
	}
}

func TestFromImage(t *testing.T) {
	t.Run("shares tight RGBA storage", func(t *testing.T) {
		src := image.NewRGBA(image.Rect(0, 0, 4, 4))
		src.SetRGBA(1, 2, color.RGBA{R: 0xff, A: 0xff})
		img := FromImage(src)
		if img.Format() != RGBA8Unorm {
			t.Fatalf("Format() = %v", img.Format())
		}
		if &img.Pix()[0] != &src.Pix[0] {
			t.Error("pixel storage not shared")
		}
	})
	t.Run("converts other image types", func(t *testing.T) {
		src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
		draw.Draw(src, src.Bounds(), image.NewUniform(color.NRGBA{G: 0x80, A: 0xff}), image.Point{}, draw.Src)
		img := FromImage(src)
		if img.Size() != [3]int{3, 2, 1} {
			t.Fatalf("Size() = %v", img.Size())
		}
		c := img.At(0, 0).(color.RGBA)
		if c.G != 0x80 || c.A != 0xff {
			t.Errorf("At(0,0) = %+v", c)
		}
	})
	t.Run("offset bounds", func(t *testing.T) {
		src := image.NewRGBA(image.Rect(10, 10, 14, 12))
		src.SetRGBA(10, 10, color.RGBA{B: 0xff, A: 0xff})
		img := FromImage(src)
		if img.Size() != [3]int{4, 2, 1} {
			t.Fatalf("Size() = %v", img.Size())
		}
		c := img.At(0, 0).(color.RGBA)
		if c.B != 0xff {
			t.Errorf("At(0,0) = %+v", c)
		}
	})
}

func TestFromAlpha(t *testing.T) {
	src := image.NewAlpha(image.Rect(0, 0, 3, 3))
	src.SetAlpha(1, 1, color.Alpha{A: 0x42})
	img := FromAlpha(src)
	if img.Format() != R8Unorm {
		t.Fatalf("Format() = %v", img.Format())
	}
	if &img.Pix()[0] != &src.Pix[0] {
		t.Error("pixel storage not shared for tight stride")
	}
	if g := img.At(1, 1).(color.Gray); g.Y != 0x42 {
		t.Errorf("At(1,1) = %+v", g)
	}

	// sub-image forces a copy
	sub := src.SubImage(image.Rect(1, 1, 3, 3)).(*image.Alpha)
	img = FromAlpha(sub)
	if img.Size() != [3]int{2, 2, 1} {
		t.Fatalf("Size() = %v", img.Size())
	}
	if g := img.At(0, 0).(color.Gray); g.Y != 0x42 {
		t.Errorf("At(0,0) = %+v", g)
	}
}

func TestNewCompressedImage2D(t *testing.T) {
	tests := []struct {
		name    string
		format  CompressedFormat
		w, h    int
		dataLen int
		wantErr bool
	}{
		{"dxt1 aligned", Dxt1RGBUnorm, 8, 8, 4 * 8, false},
		{"dxt1 partial blocks", Dxt1RGBUnorm, 5, 5, 4 * 8, false},
		{"dxt5", Dxt5RGBAUnorm, 4, 4, 16, false},
		{"astc 8x8", Astc8x8RGBAUnorm, 16, 8, 2 * 16, false},
		{"short data", Etc2RGBA8Unorm, 8, 8, 16, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := NewCompressedImage2D(tt.w, tt.h, tt.format, make([]byte, tt.dataLen))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if img.Format() != tt.format {
				t.Errorf("Format() = %v", img.Format())
			}
		})
	}
}
