// Package gltex translates an engine-level, vendor-neutral pixel format
// enumeration to native OpenGL enums and wraps OpenGL texture objects.
//
// The root package is GL-free: it defines the pixel formats, sampler
// settings and CPU-side image containers that the rest of the module
// consumes. Package glfmt performs the format/type translation for a
// given GL version, and package texture drives the actual texture
// objects.
package gltex
