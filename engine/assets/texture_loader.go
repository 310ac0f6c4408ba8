package assets

import (
	"fmt"

	"github.com/hubastard/thicket/engine/core"
)

// LoadTexture decodes a PNG from assets/textures and uploads it. Pixel-art
// defaults: nearest filtering, clamped edges.
func LoadTexture(r core.Renderer, relPath string) (core.Texture, error) {
	w, h, pixels, err := LoadPNG(relPath)
	if err != nil {
		return nil, err
	}
	tex, err := r.CreateTexture(core.TextureDesc{
		Width:     w,
		Height:    h,
		Format:    core.TextureRGBA8,
		Pixels:    pixels,
		MinFilter: "nearest",
		MagFilter: "nearest",
		WrapU:     "clamp",
		WrapV:     "clamp",
	})
	if err != nil {
		return nil, fmt.Errorf("upload %q: %w", relPath, err)
	}
	return tex, nil
}
