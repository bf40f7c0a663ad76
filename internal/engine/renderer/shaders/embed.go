// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// PhongVertexShader transforms mesh vertices into world and clip space.
//
//go:embed phong.vert
var PhongVertexShader string

// PhongFragmentShader shades with Blinn-Phong point, directional and spot lights.
//
//go:embed phong.frag
var PhongFragmentShader string
