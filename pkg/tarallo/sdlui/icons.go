package sdlui

import (
	"bytes"
	"context"
	"fmt"
	"hash/fnv"
	"image"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/tarallo/pkg/tarallo/internal"
)

const iconFetchTimeout = 10 * time.Second

// iconSource turns the opaque icon handles carried by items into textures.
// Three handle kinds are understood:
//
//   - *sdl.Texture is used as-is; the caller keeps ownership.
//   - string is a file path, or an http(s) URL fetched once. SVG content is
//     rasterized at the configured icon size; everything else goes through
//     SDL_image.
//   - []byte is raw image or SVG data, keyed by content hash.
//
// Decoded textures live in an LRU cache. A handle that fails to resolve is
// remembered so the failure logs once, not every frame.
type iconSource struct {
	renderer *sdl.Renderer
	cache    *textureCache
	failed   map[string]struct{}
	sizePx   int32
	client   *http.Client
}

func newIconSource(renderer *sdl.Renderer, iconSize float64, cacheSize int) *iconSource {
	return &iconSource{
		renderer: renderer,
		cache:    newTextureCache(cacheSize),
		failed:   make(map[string]struct{}),
		sizePx:   int32(iconSize),
		client:   &http.Client{Timeout: iconFetchTimeout},
	}
}

// texture resolves an icon handle, or returns nil when it cannot be drawn.
func (s *iconSource) texture(handle any) *sdl.Texture {
	switch h := handle.(type) {
	case nil:
		return nil
	case *sdl.Texture:
		return h
	case string:
		return s.resolve("loc:"+h, func() ([]byte, error) { return s.readLocation(h) })
	case []byte:
		return s.resolve(contentKey(h), func() ([]byte, error) { return h, nil })
	default:
		key := fmt.Sprintf("type:%T", handle)
		if _, seen := s.failed[key]; !seen {
			s.failed[key] = struct{}{}
			internal.GetInternalLogger().Warn("Unsupported icon handle type", "type", fmt.Sprintf("%T", handle))
		}
		return nil
	}
}

func (s *iconSource) resolve(key string, load func() ([]byte, error)) *sdl.Texture {
	if tex := s.cache.get(key); tex != nil {
		return tex
	}
	if _, seen := s.failed[key]; seen {
		return nil
	}

	data, err := load()
	if err == nil {
		var tex *sdl.Texture
		tex, err = s.decode(data)
		if err == nil {
			s.cache.set(key, tex)
			return tex
		}
	}

	s.failed[key] = struct{}{}
	internal.GetInternalLogger().Warn("Failed to load icon", "icon", key, "error", err)
	return nil
}

func (s *iconSource) readLocation(loc string) ([]byte, error) {
	if strings.HasPrefix(loc, "http://") || strings.HasPrefix(loc, "https://") {
		return s.fetch(loc)
	}
	return os.ReadFile(loc)
}

func (s *iconSource) fetch(url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), iconFetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (s *iconSource) decode(data []byte) (*sdl.Texture, error) {
	if looksLikeSVG(data) {
		return s.decodeSVG(data)
	}

	rw, err := sdl.RWFromMem(data)
	if err != nil {
		return nil, err
	}
	return img.LoadTextureRW(s.renderer, rw, true)
}

func (s *iconSource) decodeSVG(data []byte) (*sdl.Texture, error) {
	rgba, err := rasterizeSVG(data, int(s.sizePx))
	if err != nil {
		return nil, err
	}

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]),
		s.sizePx, s.sizePx, 32, int32(rgba.Stride),
		sdl.PIXELFORMAT_ABGR8888)
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	return s.renderer.CreateTextureFromSurface(surface)
}

func (s *iconSource) destroy() {
	s.cache.destroy()
}

// rasterizeSVG renders SVG markup into a square RGBA image, stretching the
// document's view box to fill it.
func rasterizeSVG(data []byte, sizePx int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(sizePx), float64(sizePx))

	rgba := image.NewRGBA(image.Rect(0, 0, sizePx, sizePx))
	scanner := rasterx.NewScannerGV(sizePx, sizePx, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(sizePx, sizePx, scanner), 1)
	return rgba, nil
}

// looksLikeSVG sniffs for an <svg> root within the leading bytes, past any
// XML declaration, comments or whitespace.
func looksLikeSVG(data []byte) bool {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	trimmed := bytes.TrimLeft(head, " \t\r\n\xef\xbb\xbf")
	if len(trimmed) == 0 || trimmed[0] != '<' {
		return false
	}
	return bytes.Contains(head, []byte("<svg"))
}

func contentKey(data []byte) string {
	h := fnv.New64a()
	h.Write(data)
	return fmt.Sprintf("mem:%016x", h.Sum64())
}
