package glfmt

import (
	"fmt"

	"github.com/pkg/errors"
)

// API identifies a GL API flavor.
//
type API int

const (
	OpenGL API = iota
	OpenGLES
	WebGL
)

func (a API) String() string {
	switch a {
	case OpenGL:
		return "OpenGL"
	case OpenGLES:
		return "OpenGL ES"
	case WebGL:
		return "WebGL"
	}
	return fmt.Sprintf("API(%d)", int(a))
}

// Version identifies the API flavor and version of a GL context. It
// selects which entries of the translation tables are visible: the
// runtime equivalent of the original target build switches.
//
type Version struct {
	API   API
	Major int
	Minor int
}

// ParseVersion parses a GL_VERSION string. Desktop GL strings start
// with the bare version number ("4.6.0 NVIDIA 535.54.03"), embedded
// and web contexts carry an API prefix ("OpenGL ES 3.2 Mesa 23.1",
// "WebGL 1.0 (OpenGL ES 2.0 Chromium)").
//
func ParseVersion(s string) (Version, error) {
	var v Version
	var n int
	if _, err := fmt.Sscanf(s, "OpenGL ES-CM %d.%d", &v.Major, &v.Minor); err == nil {
		// common lite profile prefix used by some ES 1.x drivers
		v.API = OpenGLES
		return v, nil
	}
	if _, err := fmt.Sscanf(s, "OpenGL ES %d.%d", &v.Major, &v.Minor); err == nil {
		v.API = OpenGLES
		return v, nil
	}
	if _, err := fmt.Sscanf(s, "WebGL %d.%d", &v.Major, &v.Minor); err == nil {
		v.API = WebGL
		return v, nil
	}
	n, err := fmt.Sscanf(s, "%d.%d", &v.Major, &v.Minor)
	if err != nil || n < 2 {
		return Version{}, errors.Errorf("unsupported GL version string %q", s)
	}
	v.API = OpenGL
	return v, nil
}

func (v Version) String() string {
	return fmt.Sprintf("%v %d.%d", v.API, v.Major, v.Minor)
}

// AtLeast reports whether v is at least version major.minor of its API.
//
func (v Version) AtLeast(major, minor int) bool {
	return v.Major > major || (v.Major == major && v.Minor >= minor)
}

// GLES reports whether v is an OpenGL ES or WebGL context.
//
func (v Version) GLES() bool {
	return v.API == OpenGLES || v.API == WebGL
}

// IsWebGL reports whether v is a WebGL context.
//
func (v Version) IsWebGL() bool {
	return v.API == WebGL
}

// ES2 reports whether v has only the OpenGL ES 2.0 feature set: ES
// before 3.0 or WebGL 1. Such contexts have no sized internal formats,
// no integer formats and no snorm formats.
//
func (v Version) ES2() bool {
	switch v.API {
	case OpenGLES:
		return v.Major < 3
	case WebGL:
		return v.Major < 2
	}
	return false
}
