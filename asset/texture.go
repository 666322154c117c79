package asset

import (
	"image"

	"github.com/pkg/errors"

	"github.com/gfxkit/gltex"
	"github.com/gfxkit/gltex/texture"

	// decoders for common texture image formats
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

func loadImage(m *Manager, name string) (interface{}, error) {
	r, err := m.open(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return gltex.FromImage(src), nil
}

// Image returns the named image asset decoded to a pixel buffer. The
// image is loaded and cached as needed. This function does not require
// an active GL context.
//
func (m *Manager) Image(name string) (*gltex.ImageData, error) {
	m.m.Lock()
	defer m.m.Unlock()
	for {
		a := Image(name)
		data, s := m.getAsset(a)
		switch s {
		case stateMissing:
			data, err := m.syncLoad(a, loadImage)
			if err != nil {
				return nil, err
			}
			return data.(*gltex.ImageData), nil
		case stateLoaded:
			switch data := data.(type) {
			case *gltex.ImageData:
				return data, nil
			case *tex2D:
				return nil, errors.Errorf("image asset %s already converted to a texture", name)
			default:
				return nil, errors.Errorf("asset %s is not an image", name)
			}
		}
		m.cond.Wait()
	}
}

// tex2D wraps a Texture2D so that Discard and Close release the GL
// object.
type tex2D struct {
	*texture.Texture2D
}

func (t *tex2D) Close() error {
	t.Delete()
	return nil
}

// Texture returns the named image asset as a 2D texture, uploading it
// on first use. The source pixel buffer is dropped from the cache once
// converted. Must be called with an active GL context on the calling
// goroutine.
//
func (m *Manager) Texture(name string, params ...texture.Parameter) (*texture.Texture2D, error) {
	m.m.Lock()
	defer m.m.Unlock()
	for {
		a := Image(name)
		data, s := m.getAsset(a)
		switch s {
		case stateMissing:
			data, err := m.syncLoad(a, loadImage)
			if err != nil {
				return nil, err
			}
			return m.makeTexture(a, data.(*gltex.ImageData), params)
		case stateLoaded:
			switch data := data.(type) {
			case *gltex.ImageData:
				return m.makeTexture(a, data, params)
			case *tex2D:
				if len(params) > 0 {
					data.Parameters(params...)
				}
				return data.Texture2D, nil
			default:
				return nil, errors.Errorf("asset %s is not an image", name)
			}
		}
		m.cond.Wait()
	}
}

// makeTexture uploads img and replaces the cache entry. Callers must
// hold m.m.
func (m *Manager) makeTexture(a Asset, img *gltex.ImageData, params []texture.Parameter) (*texture.Texture2D, error) {
	if img.Dims() != 2 {
		return nil, errors.Errorf("asset %s is not a 2D image", a.Name)
	}
	t := texture.New2D(img.Rect().Dx(), img.Rect().Dy(), params...)
	if err := t.SetImage(0, img); err != nil {
		t.Delete()
		return nil, errors.Wrapf(err, "upload %s", a)
	}
	m.assets[a] = &tex2D{t}
	return t, nil
}
