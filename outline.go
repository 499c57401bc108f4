package bramble

import (
	"encoding/json"
	"fmt"
	"sort"
)

// OutlineDef describes one polygon in an outline file.
type OutlineDef struct {
	Points          []Vec2
	DetermineBounds bool
	// Texture is the TextureCache key used by Build.
	Texture string
}

type jsonOutline struct {
	Points          [][2]float64 `json:"points"`
	DetermineBounds bool         `json:"determineBounds"`
	Texture         string       `json:"texture"`
}

// LoadOutlines parses polygon outlines from JSON of the form
//
//	{"polygons": {"rock": {"points": [[0,0],[64,0],[32,48]], "determineBounds": true, "texture": "rock"}}}
//
// Every outline needs at least 3 points.
func LoadOutlines(jsonData []byte) (map[string]OutlineDef, error) {
	var doc struct {
		Polygons map[string]jsonOutline `json:"polygons"`
	}
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, fmt.Errorf("bramble: failed to parse outline JSON: %w", err)
	}
	if doc.Polygons == nil {
		return nil, fmt.Errorf("bramble: outline JSON has no \"polygons\" key")
	}

	defs := make(map[string]OutlineDef, len(doc.Polygons))
	for name, o := range doc.Polygons {
		if len(o.Points) < 3 {
			return nil, fmt.Errorf("bramble: outline %q has %d points, need at least 3", name, len(o.Points))
		}
		pts := make([]Vec2, len(o.Points))
		for i, p := range o.Points {
			pts[i] = Vec2{X: p[0], Y: p[1]}
		}
		defs[name] = OutlineDef{Points: pts, DetermineBounds: o.DetermineBounds, Texture: o.Texture}
	}
	return defs, nil
}

// Build creates a FilledPolygon from the definition, taking its texture from
// cache. The polygon holds its own texture reference.
func (d OutlineDef) Build(name string, cache *TextureCache) (*FilledPolygon, *Node, error) {
	tex, ok := cache.Get(d.Texture)
	if !ok {
		return nil, nil, fmt.Errorf("bramble: outline %q: texture %q not in cache", name, d.Texture)
	}
	p, n := NewFilledPolygon(name, tex, d.Points, d.DetermineBounds)
	tex.Release() // drop the reference returned by Get
	return p, n, nil
}

// SortedOutlineNames returns the keys of defs in lexical order, for building
// polygons deterministically.
func SortedOutlineNames(defs map[string]OutlineDef) []string {
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
