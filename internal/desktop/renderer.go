package desktop

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"pong/internal/game"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer draws the game canvas as one nearest-filtered texture, scaled up
// and letterboxed to the framebuffer.
type Renderer struct {
	prog uint32
	vao  uint32
	vbo  uint32
	tex  uint32

	uTex int32
}

func NewRenderer() (*Renderer, error) {
	prog, err := linkProgram(
		shaderSource{gl.VERTEX_SHADER, screenVertSrc},
		shaderSource{gl.FRAGMENT_SHADER, screenFragSrc},
	)
	if err != nil {
		return nil, fmt.Errorf("screen program: %w", err)
	}
	r := &Renderer{prog: prog}

	// Unit quad (6 vertices, 2 triangles).
	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	quadVerts := [12]float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
	gl.BindVertexArray(0)

	gl.UseProgram(prog)
	r.uTex = gl.GetUniformLocation(prog, gl.Str("uTex\x00"))
	gl.Uniform1i(r.uTex, 0)

	// Canvas texture, filled on the first upload.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.GenTextures(1, &r.tex)
	gl.BindTexture(gl.TEXTURE_2D, r.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA8,
		game.ScreenWidth, game.ScreenHeight, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, nil,
	)

	if e := gl.GetError(); e != gl.NO_ERROR {
		r.Destroy()
		return nil, fmt.Errorf("setup: gl error 0x%x", e)
	}
	return r, nil
}

func (r *Renderer) Destroy() {
	if r.tex != 0 {
		gl.DeleteTextures(1, &r.tex)
		r.tex = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
		r.prog = 0
	}
}

// upload re-sends the canvas pixels if they changed since the last frame.
func (r *Renderer) upload(c *game.Canvas) {
	gl.BindTexture(gl.TEXTURE_2D, r.tex)
	if !c.NeedsUpload {
		return
	}
	gl.TexSubImage2D(
		gl.TEXTURE_2D, 0, 0, 0,
		game.ScreenWidth, game.ScreenHeight,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(c.Pixels),
	)
	c.NeedsUpload = false
}

// Draw clears the framebuffer to black and draws the canvas into the
// letterboxed viewport.
func (r *Renderer) Draw(c *game.Canvas, fbW, fbH int) error {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	// GL viewports count from the bottom-left corner.
	vp := game.Letterbox(fbW, fbH)
	gl.Viewport(int32(vp.Min.X), int32(fbH-vp.Max.Y), int32(vp.Dx()), int32(vp.Dy()))

	gl.UseProgram(r.prog)
	gl.BindVertexArray(r.vao)
	gl.ActiveTexture(gl.TEXTURE0)
	r.upload(c)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)

	if e := gl.GetError(); e != gl.NO_ERROR {
		return fmt.Errorf("draw: gl error 0x%x", e)
	}
	return nil
}
