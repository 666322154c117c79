// Package asset loads and caches texture images, fonts and raw files
// from an overlay filesystem. Loading is safe for concurrent use; GL
// object creation happens lazily in the accessors that need a context.
package asset

import (
	"io"
	"io/ioutil"
	"path"
	"runtime"
	"strings"
	"sync"

	"github.com/db47h/ofs"
	"github.com/pkg/errors"
)

type errorList []error

func (e errorList) Error() string {
	var sb strings.Builder
	for i, err := range e {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Closer is implemented by cached assets owning resources.
//
type Closer interface {
	Close() error
}

// A Manager manages asynchronous (pre)loading and caching of texture
// images, fonts and raw files.
//
type Manager struct {
	fs      ofs.FileSystem
	cfg     *config
	m       sync.Mutex
	cond    *sync.Cond
	assets  map[Asset]interface{}
	pending map[Asset]struct{}
}

type config struct {
	imagePath string
	fontPath  string
	filePath  string
}

// Option is implemented by option functions passed as arguments to
// NewManager.
//
type Option interface {
	set(*config)
}

type cfn func(*config)

func (f cfn) set(cfg *config) {
	f(cfg)
}

// ImagePath returns an Option that sets the default path for texture
// images.
//
func ImagePath(name string) Option {
	return cfn(func(cfg *config) {
		cfg.imagePath = name
	})
}

// FontPath returns an Option that sets the default font path.
//
func FontPath(name string) Option {
	return cfn(func(cfg *config) {
		cfg.fontPath = name
	})
}

// FilePath returns an Option that sets the default path for raw files.
//
func FilePath(name string) Option {
	return cfn(func(cfg *config) {
		cfg.filePath = name
	})
}

// NewManager returns a new asset Manager backed by fs.
//
func NewManager(fs ofs.FileSystem, options ...Option) *Manager {
	cfg := new(config)
	for _, o := range options {
		o.set(cfg)
	}

	m := &Manager{
		fs:      fs,
		cfg:     cfg,
		assets:  make(map[Asset]interface{}),
		pending: make(map[Asset]struct{}),
	}
	m.cond = sync.NewCond(&m.m)
	return m
}

// Type designates the type of an asset.
//
type Type int

const (
	TypeImage Type = iota
	TypeFont
	TypeFile
)

// Asset uniquely describes an asset.
//
type Asset struct {
	Type
	Name string
}

func (a Asset) String() string {
	switch a.Type {
	case TypeImage:
		return "image asset " + a.Name
	case TypeFont:
		return "font asset " + a.Name
	case TypeFile:
		return "file asset " + a.Name
	}
	return "unknown asset " + a.Name
}

// Image, Font and File return the Asset descriptor for the named asset.
func Image(name string) Asset { return Asset{TypeImage, name} }
func Font(name string) Asset  { return Asset{TypeFont, name} }
func File(name string) Asset  { return Asset{TypeFile, name} }

func (m *Manager) assetPath(a Asset) string {
	switch a.Type {
	case TypeImage:
		return path.Join(m.cfg.imagePath, a.Name)
	case TypeFont:
		return path.Join(m.cfg.fontPath, a.Name)
	case TypeFile:
		return path.Join(m.cfg.filePath, a.Name)
	}
	return a.Name
}

func (m *Manager) open(name string) (io.ReadCloser, error) {
	return m.fs.Open(name)
}

type loadState int

const (
	stateMissing loadState = iota
	statePending
	stateLoaded
)

func (m *Manager) getAsset(a Asset) (data interface{}, state loadState) {
	if data, ok := m.assets[a]; ok {
		return data, stateLoaded
	}
	if _, ok := m.pending[a]; ok {
		return nil, statePending
	}
	return nil, stateMissing
}

type loadFunc func(m *Manager, name string) (interface{}, error)

func loaderFor(t Type) loadFunc {
	switch t {
	case TypeImage:
		return loadImage
	case TypeFont:
		return loadFont
	case TypeFile:
		return loadFile
	}
	panic("unknown asset type")
}

// syncLoad loads an asset synchronously. Callers must hold m.m; the
// lock is released for the duration of the disk access.
func (m *Manager) syncLoad(a Asset, f loadFunc) (interface{}, error) {
	m.pending[a] = struct{}{}
	m.m.Unlock()
	data, err := f(m, m.assetPath(a))
	m.m.Lock()
	delete(m.pending, a)
	m.cond.Broadcast()
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", a)
	}
	m.assets[a] = data
	return data, nil
}

// File returns the contents of the named raw file asset.
//
func (m *Manager) File(name string) ([]byte, error) {
	m.m.Lock()
	defer m.m.Unlock()
	for {
		a := File(name)
		data, s := m.getAsset(a)
		switch s {
		case stateMissing:
			data, err := m.syncLoad(a, loadFile)
			if err != nil {
				return nil, err
			}
			return data.(rawFile), nil
		case stateLoaded:
			if data, ok := data.(rawFile); ok {
				return data, nil
			}
			return nil, errors.Errorf("asset %s is not a raw file", name)
		}
		m.cond.Wait()
	}
}

type rawFile []byte

func loadFile(m *Manager, name string) (interface{}, error) {
	r, err := m.open(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return rawFile(data), nil
}

// Discard removes the given asset from the cache, closing it if it owns
// resources.
//
func (m *Manager) Discard(a Asset) (err error) {
	defer func() {
		if err != nil {
			err = errors.Wrapf(err, "discard %s", a)
		}
	}()
	m.m.Lock()
	for {
		if data, ok := m.assets[a]; ok {
			delete(m.assets, a)
			m.m.Unlock()
			if cl, ok := data.(Closer); ok {
				return cl.Close()
			}
			return nil
		}
		if _, ok := m.pending[a]; !ok {
			m.m.Unlock()
			return errors.New("asset not found")
		}
		m.cond.Wait()
	}
}

// Close discards all assets.
//
func (m *Manager) Close() error {
	m.m.Lock()
	defer m.m.Unlock()
	var errs errorList
	for k, a := range m.assets {
		delete(m.assets, k)
		if cl, ok := a.(Closer); ok {
			if err := cl.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	if errs != nil {
		return errs
	}
	return nil
}

// Result wraps the result from preloading an asset.
//
type Result struct {
	Asset
	Err error
}

// Preload bulk preloads assets in the background and returns a channel
// to read results from along with the number of assets that will
// actually load (those neither cached nor already pending). The channel
// closes once all loads complete. If flush is true, cached assets not
// present in the list are discarded first.
//
func (m *Manager) Preload(assets []Asset, flush bool) (rc <-chan Result, n int) {
	var closers []Closer
	m.m.Lock()
	if flush {
		keep := make(map[Asset]struct{}, len(assets))
		for _, a := range assets {
			keep[a] = struct{}{}
		}
		for k, data := range m.assets {
			if _, ok := keep[k]; ok {
				continue
			}
			delete(m.assets, k)
			if cl, ok := data.(Closer); ok {
				closers = append(closers, cl)
			}
		}
	}

	// skip loaded and pending assets, mark the rest pending
	load := make([]Asset, 0, len(assets))
	for _, a := range assets {
		if _, state := m.getAsset(a); state != stateMissing {
			continue
		}
		m.pending[a] = struct{}{}
		load = append(load, a)
	}
	m.m.Unlock()

	for _, cl := range closers {
		_ = cl.Close()
	}

	c := make(chan Result)
	go m.preload(load, c)
	return c, len(load)
}

func (m *Manager) preload(assets []Asset, rc chan<- Result) {
	// bounded workers: prevents excessive simultaneous disk access
	var wg sync.WaitGroup
	c := make(chan Asset)
	for i := 0; i < 2*runtime.NumCPU(); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for a := range c {
				data, err := loaderFor(a.Type)(m, m.assetPath(a))
				m.m.Lock()
				if err != nil {
					err = errors.Wrapf(err, "preload %s", a)
				} else {
					m.assets[a] = data
				}
				delete(m.pending, a)
				m.cond.Broadcast()
				m.m.Unlock()
				rc <- Result{Asset: a, Err: err}
			}
		}()
	}
	for _, a := range assets {
		c <- a
	}
	close(c)
	wg.Wait()
	close(rc)
}

// Wait waits for completion of a previous Preload and returns any load
// errors.
//
func Wait(rc <-chan Result) error {
	var errs errorList
	for r := range rc {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	if errs != nil {
		return errs
	}
	return nil
}
