// Package shaders holds the GLSL sources of the scene renderers.
package shaders

import (
	"fmt"
	"strings"
)

// Define inserts "#define name value" right after the #version line of src.
func Define(src, name string, value any) string {
	line := fmt.Sprintf("#define %s %v\n", name, value)
	if i := strings.Index(src, "\n"); i >= 0 && strings.HasPrefix(src, "#version") {
		return src[:i+1] + line + src[i+1:]
	}
	return line + src
}

// lightingFunc is shared by both fragment shaders. It expects MAX_POINT_LIGHTS.
const lightingFunc = `
uniform vec3 uAmbient;
uniform vec3 uLightDir;
uniform vec3 uLightColor;

uniform int uPointLightCount;
uniform vec3 uPointLightPositions[MAX_POINT_LIGHTS];
uniform vec3 uPointLightColors[MAX_POINT_LIGHTS];
uniform float uPointLightRanges[MAX_POINT_LIGHTS];
uniform float uPointLightIntensities[MAX_POINT_LIGHTS];

vec3 lighting(vec3 normal, vec3 worldPos) {
    vec3 n = normalize(normal);
    vec3 light = uAmbient + uLightColor * max(dot(n, normalize(uLightDir)), 0.0);

    for (int i = 0; i < uPointLightCount; i++) {
        vec3 toLight = uPointLightPositions[i] - worldPos;
        float dist = length(toLight);
        float atten = 1.0;
        if (uPointLightRanges[i] > 0.0) {
            atten = clamp(1.0 - dist / uPointLightRanges[i], 0.0, 1.0);
        }
        float ndotl = max(dot(n, toLight / max(dist, 0.0001)), 0.0);
        light += uPointLightColors[i] * uPointLightIntensities[i] * ndotl * atten;
    }
    return light;
}
`

// LandscapeVertex transforms the pre-positioned landscape mesh.
const LandscapeVertex = `#version 410 core
layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aTexCoord;

uniform mat4 uViewProj;

out vec3 vNormal;
out vec2 vTexCoord;
out vec3 vWorldPos;

void main() {
    vNormal = aNormal;
    vTexCoord = aTexCoord;
    vWorldPos = aPosition;
    gl_Position = uViewProj * vec4(aPosition, 1.0);
}
`

// LandscapeFragment samples the block atlas and lights it.
const LandscapeFragment = `#version 410 core
in vec3 vNormal;
in vec2 vTexCoord;
in vec3 vWorldPos;

uniform sampler2D uAtlas;
` + lightingFunc + `
out vec4 FragColor;

void main() {
    vec4 tex = texture(uAtlas, vTexCoord);
    FragColor = vec4(tex.rgb * lighting(vNormal, vWorldPos), tex.a);
}
`

// MeshVertex transforms scene graph geometry by its world matrix.
const MeshVertex = `#version 410 core
layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;

uniform mat4 uViewProj;
uniform mat4 uModel;

out vec3 vNormal;
out vec3 vWorldPos;

void main() {
    vec4 world = uModel * vec4(aPosition, 1.0);
    vNormal = mat3(transpose(inverse(uModel))) * aNormal;
    vWorldPos = world.xyz;
    gl_Position = uViewProj * world;
}
`

// MeshFragment is flat-colored Lambert shading plus emission.
const MeshFragment = `#version 410 core
in vec3 vNormal;
in vec3 vWorldPos;

uniform vec3 uColor;
uniform vec3 uEmission;
` + lightingFunc + `
out vec4 FragColor;

void main() {
    FragColor = vec4(uColor * lighting(vNormal, vWorldPos) + uEmission, 1.0);
}
`
