package bramble

import (
	"fmt"
	_ "image/png" // decoder for TextureCache.LoadFile
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Texture is a reference-counted image shared between polygons and whoever
// loaded it. A new Texture holds one reference owned by its creator. Each
// polygon using it holds another. When the count drops to zero the image is
// deallocated and the texture must not be used again.
type Texture struct {
	name          string
	image         *ebiten.Image
	premultiplied bool
	filter        ebiten.Filter
	address       ebiten.Address
	refs          int
}

// NewTexture wraps img. premultiplied describes the source pixel data and
// selects the default blend function of polygons using the texture. Sampling
// starts as linear filtering with clamp-to-zero addressing.
func NewTexture(name string, img *ebiten.Image, premultiplied bool) *Texture {
	if img == nil {
		panic("bramble: NewTexture with nil image")
	}
	return &Texture{
		name:          name,
		image:         img,
		premultiplied: premultiplied,
		filter:        ebiten.FilterLinear,
		address:       ebiten.AddressClampToZero,
		refs:          1,
	}
}

// Name returns the texture's name, used as its handle in caches and logs.
func (t *Texture) Name() string { return t.name }

// Image returns the underlying image, or nil once released.
func (t *Texture) Image() *ebiten.Image { return t.image }

// PixelsWide returns the texture width in pixels.
func (t *Texture) PixelsWide() int {
	if t.image == nil {
		return 0
	}
	return t.image.Bounds().Dx()
}

// PixelsHigh returns the texture height in pixels.
func (t *Texture) PixelsHigh() int {
	if t.image == nil {
		return 0
	}
	return t.image.Bounds().Dy()
}

// Premultiplied reports whether the source pixel data is premultiplied by alpha.
func (t *Texture) Premultiplied() bool { return t.premultiplied }

// SetSampling sets the filter and address mode used when the texture is drawn.
func (t *Texture) SetSampling(filter ebiten.Filter, address ebiten.Address) {
	t.filter = filter
	t.address = address
}

// Filter returns the sampling filter.
func (t *Texture) Filter() ebiten.Filter { return t.filter }

// Address returns the sampling address mode.
func (t *Texture) Address() ebiten.Address { return t.address }

// IsPowerOfTwo reports whether both pixel dimensions are powers of two.
func (t *Texture) IsPowerOfTwo() bool {
	w, h := t.PixelsWide(), t.PixelsHigh()
	return w > 0 && h > 0 && w == NextPOT(w) && h == NextPOT(h)
}

// Retain adds a reference and returns t.
func (t *Texture) Retain() *Texture {
	if t.refs <= 0 {
		panic(fmt.Sprintf("bramble: retain of released texture %q", t.name))
	}
	t.refs++
	return t
}

// Release drops a reference. The last release deallocates the image.
// Panics on over-release.
func (t *Texture) Release() {
	if t.refs <= 0 {
		panic(fmt.Sprintf("bramble: texture %q released too many times", t.name))
	}
	t.refs--
	if t.refs == 0 {
		t.image.Deallocate()
		t.image = nil
	}
}

// RefCount returns the number of live references.
func (t *Texture) RefCount() int { return t.refs }

// IsReleased reports whether the last reference has been dropped.
func (t *Texture) IsReleased() bool { return t.refs <= 0 }

// NextPOT returns the smallest power of two >= n. Returns 1 for n <= 1.
func NextPOT(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// --- TextureCache ---

// TextureCache shares textures by name. The cache holds one reference to each
// entry; Get hands out additional references the caller must Release.
type TextureCache struct {
	textures map[string]*Texture
}

// NewTextureCache creates an empty cache.
func NewTextureCache() *TextureCache {
	return &TextureCache{textures: make(map[string]*Texture)}
}

// Add registers img under name and returns the cached texture without taking
// an extra reference. An existing entry with the same name is replaced and
// its cache reference released.
func (c *TextureCache) Add(name string, img *ebiten.Image, premultiplied bool) *Texture {
	if old, ok := c.textures[name]; ok {
		old.Release()
	}
	t := NewTexture(name, img, premultiplied)
	c.textures[name] = t
	return t
}

// LoadFile decodes the image at path and adds it under name. Ebitengine keeps
// image pixels in premultiplied alpha, so the texture is marked premultiplied.
func (c *TextureCache) LoadFile(name, path string) (*Texture, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("bramble: load texture %q: %w", name, err)
	}
	return c.Add(name, img, true), nil
}

// Get returns a retained reference to the named texture.
func (c *TextureCache) Get(name string) (*Texture, bool) {
	t, ok := c.textures[name]
	if !ok {
		if globalDebug {
			log.Printf("bramble: texture %q not in cache", name)
		}
		return nil, false
	}
	return t.Retain(), true
}

// Remove drops the cache's reference to the named texture. Polygons still
// holding it keep it alive.
func (c *TextureCache) Remove(name string) {
	t, ok := c.textures[name]
	if !ok {
		return
	}
	delete(c.textures, name)
	t.Release()
}

// Purge removes every texture referenced only by the cache and returns how
// many were removed.
func (c *TextureCache) Purge() int {
	removed := 0
	for name, t := range c.textures {
		if t.refs == 1 {
			delete(c.textures, name)
			t.Release()
			removed++
		}
	}
	return removed
}

// Len returns the number of cached textures.
func (c *TextureCache) Len() int {
	return len(c.textures)
}
