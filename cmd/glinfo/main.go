// Command glinfo creates an offscreen OpenGL context and reports which
// generic pixel formats the implementation supports along with their
// native mappings. With -img, it also uploads the named image as a 2D
// texture as a smoke test.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"text/tabwriter"

	"github.com/db47h/ofs"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gfxkit/gltex"
	"github.com/gfxkit/gltex/asset"
	"github.com/gfxkit/gltex/glfmt"
	"github.com/gfxkit/gltex/texture"
)

func init() {
	// main() must run on the main thread for GLFW.
	runtime.LockOSThread()
}

var (
	assetDir = flag.String("assets", ".", "base directory for -img")
	imgName  = flag.String("img", "", "image file to upload as a texture")
	all      = flag.Bool("all", false, "list unsupported formats as well")
)

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("glinfo: ")

	if err := glfw.Init(); err != nil {
		log.Fatal(err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	w, err := glfw.CreateWindow(64, 64, "glinfo", nil, nil)
	if err != nil {
		log.Fatal(err)
	}
	defer w.Destroy()
	w.MakeContextCurrent()

	v, err := texture.Init(glfw.GetProcAddress)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Version:  %s (%s)\n", v, gl.GoStr(gl.GetString(gl.VERSION)))
	fmt.Printf("Renderer: %s\n", gl.GoStr(gl.GetString(gl.RENDERER)))
	fmt.Printf("Vendor:   %s\n", gl.GoStr(gl.GetString(gl.VENDOR)))
	fmt.Printf("Max texture size: %d\n\n", texture.MaxSize())

	printFormats(v)
	printCompressedFormats(v)

	if *imgName != "" {
		if err := uploadImage(*assetDir, *imgName); err != nil {
			log.Fatal(err)
		}
	}
}

func printFormats(v glfmt.Version) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "FORMAT\tSIZE\tINTERNAL\tFORMAT\tTYPE")
	for _, f := range gltex.Formats() {
		t, err := glfmt.FormatFor(v, f)
		if err != nil {
			if *all {
				fmt.Fprintf(tw, "%s\t%d\tunsupported\t\t\n", f, f.Size())
			}
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t0x%04x\t0x%04x\t0x%04x\n", f, f.Size(), uint32(t.Internal), uint32(t.Format), uint32(t.Type))
	}
	tw.Flush()
	fmt.Println()
}

func printCompressedFormats(v glfmt.Version) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "COMPRESSED FORMAT\tBLOCK\tBYTES\tINTERNAL")
	for _, f := range gltex.CompressedFormats() {
		bs := f.BlockSize()
		e, err := glfmt.CompressedFormatFor(v, f)
		if err != nil {
			if *all {
				fmt.Fprintf(tw, "%s\t%dx%d\t%d\tunsupported\n", f, bs.X, bs.Y, f.BlockDataSize())
			}
			continue
		}
		fmt.Fprintf(tw, "%s\t%dx%d\t%d\t0x%04x\n", f, bs.X, bs.Y, f.BlockDataSize(), uint32(e))
	}
	tw.Flush()
	fmt.Println()
}

func uploadImage(dir, name string) error {
	var ovl ofs.Overlay
	if err := ovl.Add(false, dir); err != nil {
		return err
	}
	mgr := asset.NewManager(&ovl)
	defer mgr.Close()

	t, err := mgr.Texture(name,
		texture.Filter(gltex.Linear, gltex.Linear, gltex.MipmapLinear),
		texture.Wrap(gltex.ClampToEdge, gltex.ClampToEdge, gltex.ClampToEdge))
	if err != nil {
		return err
	}
	t.Bind(0)
	t.GenerateMipmap()
	sz := t.Size()
	fmt.Printf("uploaded %s: %dx%d texture, id %d\n", name, sz.X, sz.Y, t.NativeID())
	return nil
}
