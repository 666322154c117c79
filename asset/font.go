package asset

import (
	"io/ioutil"
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
)

type fontAsset struct {
	fnt *truetype.Font

	m     sync.Mutex
	faces map[faceKey]font.Face
}

type faceKey struct {
	size    float64
	hinting font.Hinting
}

func loadFont(m *Manager, name string) (interface{}, error) {
	r, err := m.open(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	fnt, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	return &fontAsset{fnt: fnt, faces: make(map[faceKey]font.Face)}, nil
}

func (m *Manager) font(name string) (*fontAsset, error) {
	m.m.Lock()
	defer m.m.Unlock()
	for {
		a := Font(name)
		data, s := m.getAsset(a)
		switch s {
		case stateMissing:
			data, err := m.syncLoad(a, loadFont)
			if err != nil {
				return nil, err
			}
			return data.(*fontAsset), nil
		case stateLoaded:
			if data, ok := data.(*fontAsset); ok {
				return data, nil
			}
			return nil, errors.Errorf("asset %s is not a font", name)
		}
		m.cond.Wait()
	}
}

// Font returns the named font asset, loading it as needed.
//
func (m *Manager) Font(name string) (*truetype.Font, error) {
	fa, err := m.font(name)
	if err != nil {
		return nil, err
	}
	return fa.fnt, nil
}

// Face returns a font.Face for the named font asset at the given point
// size. Faces are cached per size and hinting mode; the returned Face
// is safe for sequential use only, like any truetype face.
//
func (m *Manager) Face(name string, size float64, hinting font.Hinting) (font.Face, error) {
	fa, err := m.font(name)
	if err != nil {
		return nil, err
	}
	k := faceKey{size, hinting}
	fa.m.Lock()
	defer fa.m.Unlock()
	if f, ok := fa.faces[k]; ok {
		return f, nil
	}
	f := truetype.NewFace(fa.fnt, &truetype.Options{
		Size:    size,
		Hinting: hinting,
	})
	fa.faces[k] = f
	return f, nil
}
