package sdlui

import (
	"math"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/tarallo/pkg/tarallo"
	"github.com/BrandonKowalski/tarallo/pkg/tarallo/internal"
)

func sdlColor(c tarallo.Color) sdl.Color {
	return sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// fillRoundedRect fills rect with the corners named in mask rounded to
// radius. The fill is row by row; runs of rows with equal insets collapse
// into single rects, so the straight middle of the shape is one fill call.
func fillRoundedRect(renderer *sdl.Renderer, rect sdl.Rect, radius float64, mask tarallo.Corner, color tarallo.Color) {
	if rect.W <= 0 || rect.H <= 0 || color.A == 0 {
		return
	}

	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	renderer.SetDrawColor(color.R, color.G, color.B, color.A)

	insets := internal.RoundedRowInsets(rect.W, rect.H, int32(math.Round(radius)), uint8(mask))
	for y := int32(0); y < rect.H; {
		in := insets[y]
		run := int32(1)
		for y+run < rect.H && insets[y+run] == in {
			run++
		}
		w := rect.W - in.Left - in.Right
		if w > 0 {
			renderer.FillRect(&sdl.Rect{X: rect.X + in.Left, Y: rect.Y + y, W: w, H: run})
		}
		y += run
	}
}

// drawText renders one line of text centered on (cx, cy). Textures are
// created and destroyed per call; labels are short and few, and their size
// changes every frame mid-animation, so caching buys nothing here.
func drawText(renderer *sdl.Renderer, font *ttf.Font, text string, cx, cy int32, color tarallo.Color) {
	if font == nil || text == "" || color.A == 0 {
		return
	}

	surface, err := font.RenderUTF8Blended(text, sdlColor(color))
	if err != nil {
		return
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return
	}
	defer texture.Destroy()

	texture.SetAlphaMod(color.A)
	dst := sdl.Rect{
		X: cx - surface.W/2,
		Y: cy - surface.H/2,
		W: surface.W,
		H: surface.H,
	}
	renderer.Copy(texture, nil, &dst)
}

// drawIcon copies an icon texture centered on (cx, cy) at the given square
// size, tinted with color. The tint is reset afterwards so cached textures
// stay reusable.
func drawIcon(renderer *sdl.Renderer, texture *sdl.Texture, cx, cy, size int32, color tarallo.Color) {
	if texture == nil || size <= 0 {
		return
	}

	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	texture.SetColorMod(color.R, color.G, color.B)
	texture.SetAlphaMod(color.A)

	dst := sdl.Rect{X: cx - size/2, Y: cy - size/2, W: size, H: size}
	renderer.Copy(texture, nil, &dst)

	texture.SetColorMod(255, 255, 255)
	texture.SetAlphaMod(255)
}
