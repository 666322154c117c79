// Package text rasterizes font glyphs into texture atlases. A Drawer
// caches glyph masks at sub-pixel offsets and hands out texture regions
// positioned for rendering; the actual quad submission is left to the
// caller.
package text

import (
	"image"
	"image/color"
	"image/draw"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gfxkit/gltex"
	"github.com/gfxkit/gltex/texture"
)

const (
	// see subPixels() in github.com/golang/freetype/truetype/face.go
	SubPixelsX    = 8
	subPixelBiasX = 4
	subPixelMaskX = -8
	SubPixelsY    = 8
	subPixelBiasY = 4
	subPixelMaskY = -8
)

// AtlasSize is the size of the glyph atlas textures. Adjust it before
// creating any Drawer if it exceeds the GL implementation's
// MAX_TEXTURE_SIZE:
//
//	if ms := texture.MaxSize(); ms > 0 && ms < text.AtlasSize {
//		text.AtlasSize = ms
//	}
//
var AtlasSize = 1024

// Target consumes positioned glyphs, typically a sprite batch.
//
type Target interface {
	Draw(gr *texture.Region, x, y float32, c color.Color)
}

// A Drawer rasterizes glyphs from a font face into atlas textures.
//
// Drawers are not safe for concurrent use.
//
type Drawer struct {
	face   font.Face
	glyphs []texture.Region
	cache  map[cacheKey]cacheValue
	ts     []*texture.Texture2D
	p      image.Point // atlas insertion point
	lh     int         // current row height
	mag    gltex.Filter
}

type cacheKey struct {
	r  rune
	fx uint8
	fy uint8
}

type cacheValue struct {
	index int // glyph index, -1 for empty glyphs
	adv   fixed.Int26_6
}

// Hinting selects how to quantize a vector font's glyph nodes.
//
// Not all fonts support hinting.
//
// This is a convenience duplicate of golang.org/x/image/font#Hinting
//
type Hinting int

const (
	HintingNone     Hinting = Hinting(font.HintingNone)
	HintingVertical         = Hinting(font.HintingVertical)
	HintingFull             = Hinting(font.HintingFull)
)

// NewDrawer returns a new Drawer for the given face. Glyph atlas
// textures use magFilter when magnified.
//
func NewDrawer(f font.Face, magFilter gltex.Filter) *Drawer {
	return &Drawer{
		face:  f,
		cache: make(map[cacheKey]cacheValue),
		mag:   magFilter,
	}
}

func (d *Drawer) Face() font.Face {
	return d.face
}

// Textures returns the atlas textures created so far.
//
func (d *Drawer) Textures() []*texture.Texture2D {
	return d.ts
}

// DrawBytes lays out s starting at (x, y) and submits the glyphs to t.
// It returns the total advance.
//
func (d *Drawer) DrawBytes(t Target, x, y float32, s []byte, c color.Color) (advance float32) {
	dot := fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
	sp := dot.X
	prev := rune(-1)
	for len(s) > 0 {
		r, sz := utf8.DecodeRune(s)
		s = s[sz:]
		if prev >= 0 {
			dot.X += d.face.Kern(prev, r)
		}
		dp, glyph, advance := d.Glyph(dot, r)
		if glyph != nil {
			t.Draw(glyph, float32(dp.X), float32(dp.Y), c)
		}
		dot.X += advance
		prev = r
	}
	return float32(dot.X-sp) / 64
}

// DrawString lays out s starting at (x, y) and submits the glyphs to t.
// It returns the total advance.
//
func (d *Drawer) DrawString(t Target, x, y float32, s string, c color.Color) (advance float32) {
	dot := fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
	sp := dot.X
	prev := rune(-1)
	for _, r := range s {
		if prev >= 0 {
			dot.X += d.face.Kern(prev, r)
		}
		dp, glyph, advance := d.Glyph(dot, r)
		if glyph != nil {
			t.Draw(glyph, float32(dp.X), float32(dp.Y), c)
		}
		dot.X += advance
		prev = r
	}
	return float32(dot.X-sp) / 64
}

func (d *Drawer) currentTexture() *texture.Texture2D {
	l := len(d.ts)
	if l == 0 {
		return nil
	}
	return d.ts[l-1]
}

func (d *Drawer) newAtlas() (*texture.Texture2D, error) {
	t := texture.New2D(AtlasSize, AtlasSize,
		texture.Wrap(gltex.ClampToEdge, gltex.ClampToEdge, gltex.ClampToEdge),
		texture.Filter(gltex.Linear, d.mag, gltex.MipmapLinear))
	storage, err := gltex.NewImage2D(AtlasSize, AtlasSize, gltex.R8Unorm, nil)
	if err != nil {
		t.Delete()
		return nil, err
	}
	if err := t.SetImage(0, storage); err != nil {
		t.Delete()
		return nil, err
	}
	return t, nil
}

// Glyph returns the atlas region for rune r drawn at dot, along with
// the draw point and advance. The mask is rasterized and uploaded on
// first use of a given rune and sub-pixel offset. A nil region with a
// non-zero advance indicates an empty glyph (e.g. a space); a nil
// region with a zero advance indicates a missing glyph.
//
func (d *Drawer) Glyph(dot fixed.Point26_6, r rune) (dp image.Point, gr *texture.Region, advance fixed.Int26_6) {
	dx, dy := (dot.X+subPixelBiasX)&subPixelMaskX, (dot.Y+subPixelBiasY)&subPixelMaskY
	ix, iy := int(dx>>6), int(dy>>6)

	key := cacheKey{r, uint8(dx & 0x3f), uint8(dy & 0x3f)}
	if v, ok := d.cache[key]; ok {
		if idx := v.index; idx >= 0 {
			return image.Point{X: ix, Y: iy}, &d.glyphs[idx], v.adv
		}
		return image.Point{}, nil, v.adv
	}

	dr, mask, maskp, advance, ok := d.face.Glyph(fixed.Point26_6{X: dot.X & 0x3f, Y: dot.Y & 0x3f}, r)
	if !ok {
		return image.Point{}, nil, 0
	}
	sz := dr.Size()
	if sz.X == 0 || sz.Y == 0 {
		// empty glyph
		d.cache[key] = cacheValue{-1, advance}
		return image.Point{}, nil, advance
	}
	// adjust point of origin to account for rounding when quantizing subPixels
	org := image.Pt(-dr.Min.X+(ix-dot.X.Floor()), -dr.Min.Y+(iy-dot.Y.Floor()))
	tr := dr.Add(image.Pt(-dr.Min.X+d.p.X, -dr.Min.Y+d.p.Y))
	t := d.currentTexture()
	if t != nil {
		sz := t.Size()
		if tr.Max.X > sz.X {
			d.p = image.Pt(0, d.p.Y+d.lh)
			tr = tr.Add(image.Pt(-tr.Min.X, d.lh))
		}
		if tr.Max.Y > sz.Y {
			t = nil
		}
	}
	if t == nil {
		nt, err := d.newAtlas()
		if err != nil {
			return image.Point{}, nil, 0
		}
		t = nt
		d.ts = append(d.ts, t)
		d.p = image.Point{}
		tr = dr.Add(image.Pt(-dr.Min.X, -dr.Min.Y))
		d.lh = 0
	}
	if err := t.SetSubImage(0, tr.Min, maskImage(mask, maskp, sz)); err != nil {
		return image.Point{}, nil, 0
	}
	d.p.X += tr.Dx() + 1
	if h := tr.Dy() + 1; h > d.lh {
		d.lh = h
	}
	index := len(d.glyphs)
	d.glyphs = append(d.glyphs, *t.Region(tr, org))
	d.cache[key] = cacheValue{index, advance}
	return image.Point{X: ix, Y: iy}, &d.glyphs[index], advance
}

// maskImage converts the glyph mask returned by font.Face.Glyph to a
// single-channel pixel buffer starting at maskp.
func maskImage(mask image.Image, maskp image.Point, sz image.Point) *gltex.ImageData {
	if m, ok := mask.(*image.Alpha); ok {
		return gltex.FromAlpha(m.SubImage(image.Rect(maskp.X, maskp.Y, maskp.X+sz.X, maskp.Y+sz.Y)).(*image.Alpha))
	}
	m := image.NewAlpha(image.Rect(0, 0, sz.X, sz.Y))
	draw.Draw(m, m.Bounds(), mask, maskp, draw.Src)
	return gltex.FromAlpha(m)
}

// Close deletes the atlas textures and closes the font face.
//
func (d *Drawer) Close() error {
	for _, t := range d.ts {
		t.Delete()
	}
	return d.face.Close()
}

// BoundBytes returns the bounding box of s, drawn at a dot equal to the
// origin, as well as the advance.
//
// It is equivalent to BoundString(string(s)) but may be more efficient.
//
func (d *Drawer) BoundBytes(s []byte) (bounds fixed.Rectangle26_6, advance fixed.Int26_6) {
	return font.BoundBytes(d.face, s)
}

// BoundString returns the bounding box of s, drawn at a dot equal to
// the origin, as well as the advance.
//
func (d *Drawer) BoundString(s string) (bounds fixed.Rectangle26_6, advance fixed.Int26_6) {
	return font.BoundString(d.face, s)
}

// MeasureBytes returns how far dot would advance by drawing s.
//
func (d *Drawer) MeasureBytes(s []byte) (advance fixed.Int26_6) {
	return font.MeasureBytes(d.face, s)
}

// MeasureString returns how far dot would advance by drawing s.
//
func (d *Drawer) MeasureString(s string) (advance fixed.Int26_6) {
	return font.MeasureString(d.face, s)
}
