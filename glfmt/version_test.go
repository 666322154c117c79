package glfmt

import "testing"

func TestParseVersion(t *testing.T) {
	tests := []struct {
		s       string
		want    Version
		wantErr bool
	}{
		{s: "4.6.0 NVIDIA 535.54.03", want: Version{OpenGL, 4, 6}},
		{s: "3.3 (Core Profile) Mesa 23.1.9", want: Version{OpenGL, 3, 3}},
		{s: "2.1 Metal - 88.1", want: Version{OpenGL, 2, 1}},
		{s: "OpenGL ES 3.2 Mesa 23.1.9", want: Version{OpenGLES, 3, 2}},
		{s: "OpenGL ES 2.0 (ANGLE 2.1.0)", want: Version{OpenGLES, 2, 0}},
		{s: "OpenGL ES-CM 1.1 Apple", want: Version{OpenGLES, 1, 1}},
		{s: "WebGL 1.0 (OpenGL ES 2.0 Chromium)", want: Version{WebGL, 1, 0}},
		{s: "WebGL 2.0", want: Version{WebGL, 2, 0}},
		{s: "", wantErr: true},
		{s: "OpenGL", wantErr: true},
		{s: "mesa 3d", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			got, err := ParseVersion(tt.s)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseVersion(%q) = %v, want error", tt.s, got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("ParseVersion(%q) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

func TestVersionPredicates(t *testing.T) {
	tests := []struct {
		v       Version
		gles    bool
		es2     bool
		webgl   bool
		atLeast bool // AtLeast(3, 0)
	}{
		{Version{OpenGL, 4, 6}, false, false, false, true},
		{Version{OpenGL, 2, 1}, false, false, false, false},
		{Version{OpenGLES, 2, 0}, true, true, false, false},
		{Version{OpenGLES, 3, 0}, true, false, false, true},
		{Version{OpenGLES, 3, 2}, true, false, false, true},
		{Version{WebGL, 1, 0}, true, true, true, false},
		{Version{WebGL, 2, 0}, true, false, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.v.String(), func(t *testing.T) {
			if got := tt.v.GLES(); got != tt.gles {
				t.Errorf("GLES() = %v, want %v", got, tt.gles)
			}
			if got := tt.v.ES2(); got != tt.es2 {
				t.Errorf("ES2() = %v, want %v", got, tt.es2)
			}
			if got := tt.v.IsWebGL(); got != tt.webgl {
				t.Errorf("IsWebGL() = %v, want %v", got, tt.webgl)
			}
			if got := tt.v.AtLeast(3, 0); got != tt.atLeast {
				t.Errorf("AtLeast(3, 0) = %v, want %v", got, tt.atLeast)
			}
		})
	}
}
