package core

// Renderer is the backend contract. Handles returned here are opaque and
// valid only with the Renderer that created them.
type Renderer interface {
	Init() error
	Shutdown()
	Resize(w, h int)
	Clear(r, g, b, a float32)

	CreatePipeline(desc PipelineDesc) (Pipeline, error)
	CreateMesh(desc MeshDesc) (Mesh, error)
	UpdateMesh(m Mesh, vertices []float32, indices []uint32) error
	CreateTexture(desc TextureDesc) (Texture, error)
	DestroyTexture(t Texture)
	Draw(cmd DrawCmd)

	GPUVendor() string
	GPURenderer() string
	GPUVersion() string
}

// Texture is a GPU texture handle. Size reports pixel dimensions.
type Texture interface {
	Size() (w, h int)
}

// Pipeline is a compiled shader program handle.
type Pipeline interface{}

// Mesh is a vertex/index buffer pair handle.
type Mesh interface{}

type TextureFormat int

const (
	TextureRGBA8 TextureFormat = iota
)

// TextureDesc describes an immutable texture upload.
// Filter values: "nearest", "linear". Wrap values: "clamp", "repeat".
type TextureDesc struct {
	Width, Height int
	Format        TextureFormat
	Pixels        []byte // tightly packed, row-major, top-left origin
	MinFilter     string
	MagFilter     string
	WrapU, WrapV  string
}

type PipelineDesc struct {
	VertexSource   string
	FragmentSource string
	DepthTest      bool
	Blend          bool
}

type AttribType int

const (
	AttribFloat32 AttribType = iota
)

type VertexAttrib struct {
	Location int
	Size     int
	Type     AttribType
	Offset   int // bytes
}

type VertexLayout struct {
	Stride     int // bytes
	Attributes []VertexAttrib
}

// MeshDesc sizes a dynamic mesh; contents are replaced via UpdateMesh.
type MeshDesc struct {
	Vertices []float32
	Indices  []uint32
	Layout   VertexLayout
}

// DrawCmd is one draw call. Uniforms accepts [16]float32 (mat4), [4]float32
// (vec4), float32 and int. Samplers bind textures by uniform name.
type DrawCmd struct {
	Pipe     Pipeline
	Mesh     Mesh
	Uniforms map[string]any
	Samplers map[string]Texture
}
