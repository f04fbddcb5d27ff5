package desktop

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Screen vertex shader: unit quad stretched over the viewport, v=0 at the top.
const screenVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos; // 0..1 quad vertex

out vec2 vUV;

void main() {
    vUV = aPos;
    gl_Position = vec4(aPos.x * 2.0 - 1.0, 1.0 - aPos.y * 2.0, 0.0, 1.0);
}
` + "\x00"

// Screen fragment shader: nearest-sampled canvas texture.
const screenFragSrc = `#version 410 core

uniform sampler2D uTex;

in vec2 vUV;
out vec4 FragColor;

void main() {
    FragColor = vec4(texture(uTex, vUV).rgb, 1.0);
}
` + "\x00"

// compileShader builds one stage. The error carries the driver's log.
func compileShader(stage uint32, src string) (uint32, error) {
	id := gl.CreateShader(stage)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(id, 1, csrc, nil)
	free()
	gl.CompileShader(id)

	var ok int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &ok)
	if ok != gl.FALSE {
		return id, nil
	}
	var n int32
	gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &n)
	msg := infoLog(n, func(size int32, buf *uint8) { gl.GetShaderInfoLog(id, size, nil, buf) })
	gl.DeleteShader(id)
	return 0, fmt.Errorf("compile %s shader: %s", stageName(stage), msg)
}

type shaderSource struct {
	stage uint32
	src   string
}

// linkProgram compiles and links the given stages. Shader objects are
// released on every path; only the program survives.
func linkProgram(stages ...shaderSource) (uint32, error) {
	var ids []uint32
	defer func() {
		for _, id := range ids {
			gl.DeleteShader(id)
		}
	}()
	for _, s := range stages {
		id, err := compileShader(s.stage, s.src)
		if err != nil {
			return 0, err
		}
		ids = append(ids, id)
	}

	prog := gl.CreateProgram()
	for _, id := range ids {
		gl.AttachShader(prog, id)
	}
	gl.LinkProgram(prog)
	for _, id := range ids {
		gl.DetachShader(prog, id)
	}

	var ok int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &ok)
	if ok != gl.FALSE {
		return prog, nil
	}
	var n int32
	gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &n)
	msg := infoLog(n, func(size int32, buf *uint8) { gl.GetProgramInfoLog(prog, size, nil, buf) })
	gl.DeleteProgram(prog)
	return 0, fmt.Errorf("link program: %s", msg)
}

// infoLog reads an n byte GL info log through fetch, without the trailing
// NUL and newlines.
func infoLog(n int32, fetch func(size int32, buf *uint8)) string {
	if n <= 0 {
		return "no log"
	}
	buf := make([]uint8, n)
	fetch(n, &buf[0])
	return strings.TrimRight(string(buf), "\x00\n")
}

func stageName(stage uint32) string {
	switch stage {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	}
	return "unknown"
}
