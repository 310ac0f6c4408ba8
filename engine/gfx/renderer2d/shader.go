package renderer2d

// Built-in batch shader for the pos2/color4/uv2/texIndex1 layout. The vertex
// stage flips V so atlases uploaded top-left-first sample upright.
const DefaultVertexShader = `
#version 330 core
layout(location=0) in vec2 aPos;
layout(location=1) in vec4 aColor;
layout(location=2) in vec2 aUV;
layout(location=3) in float aTex;
uniform mat4 uVP;
out vec4 vColor;
out vec2 vUV;
out float vTex;
void main() {
    vColor = aColor;
    vUV = vec2(aUV.x, 1.0 - aUV.y);
    vTex = aTex;
    gl_Position = uVP * vec4(aPos, 0.0, 1.0);
}
` + "\x00"

// GLSL 330 requires dynamically uniform sampler indexing, hence the switch.
const DefaultFragmentShader = `
#version 330 core
in vec4 vColor;
in vec2 vUV;
in float vTex;
uniform sampler2D uTex[16];
out vec4 FragColor;
void main() {
    int i = int(vTex + 0.5);
    vec4 texel;
    switch (i) {
    case 0:  texel = texture(uTex[0],  vUV); break;
    case 1:  texel = texture(uTex[1],  vUV); break;
    case 2:  texel = texture(uTex[2],  vUV); break;
    case 3:  texel = texture(uTex[3],  vUV); break;
    case 4:  texel = texture(uTex[4],  vUV); break;
    case 5:  texel = texture(uTex[5],  vUV); break;
    case 6:  texel = texture(uTex[6],  vUV); break;
    case 7:  texel = texture(uTex[7],  vUV); break;
    case 8:  texel = texture(uTex[8],  vUV); break;
    case 9:  texel = texture(uTex[9],  vUV); break;
    case 10: texel = texture(uTex[10], vUV); break;
    case 11: texel = texture(uTex[11], vUV); break;
    case 12: texel = texture(uTex[12], vUV); break;
    case 13: texel = texture(uTex[13], vUV); break;
    case 14: texel = texture(uTex[14], vUV); break;
    default: texel = texture(uTex[15], vUV); break;
    }
    FragColor = vColor * texel;
}
` + "\x00"
