package render

import (
	"fmt"
	"sort"
	"sync"
)

// AssetKind classifies tracked render assets.
type AssetKind string

const (
	AssetTexture  AssetKind = "texture"
	AssetMesh     AssetKind = "mesh"
	AssetMaterial AssetKind = "material"
	AssetShader   AssetKind = "shader"
)

// Asset is one tracked render asset.
type Asset struct {
	Kind AssetKind
	Name string
	Size int64 // bytes on the GPU or in the cache
	Refs int
}

// AssetRegistry tracks what the render layer has loaded so the console can
// list memory usage and leaked references. Entities reference assets by name;
// Acquire/Release keep the refcounts honest.
type AssetRegistry struct {
	mu     sync.Mutex
	assets map[string]*Asset
}

func NewAssetRegistry() *AssetRegistry {
	return &AssetRegistry{assets: make(map[string]*Asset, 64)}
}

func key(kind AssetKind, name string) string {
	return string(kind) + "/" + name
}

// Track registers an asset, replacing size info on re-register but keeping
// the existing refcount.
func (r *AssetRegistry) Track(kind AssetKind, name string, size int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := key(kind, name)
	if a, ok := r.assets[k]; ok {
		a.Size = size
		return
	}
	r.assets[k] = &Asset{Kind: kind, Name: name, Size: size}
}

// Acquire bumps the refcount of a tracked asset.
func (r *AssetRegistry) Acquire(kind AssetKind, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.assets[key(kind, name)]
	if !ok {
		return fmt.Errorf("unknown %s asset %q", kind, name)
	}
	a.Refs++
	return nil
}

// Release drops one reference. Refcounts never go negative.
func (r *AssetRegistry) Release(kind AssetKind, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.assets[key(kind, name)]
	if !ok {
		return fmt.Errorf("unknown %s asset %q", kind, name)
	}
	if a.Refs == 0 {
		return fmt.Errorf("%s asset %q released below zero", kind, name)
	}
	a.Refs--
	return nil
}

// Untrack drops an asset regardless of refcount.
func (r *AssetRegistry) Untrack(kind AssetKind, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.assets, key(kind, name))
}

// List returns assets sorted by size descending, so the heaviest objects
// lead the console listing. Kind and name break ties. An empty kind lists
// all.
func (r *AssetRegistry) List(kind AssetKind) []Asset {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Asset, 0, len(r.assets))
	for _, a := range r.assets {
		if kind != "" && a.Kind != kind {
			continue
		}
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Size != out[j].Size {
			return out[i].Size > out[j].Size
		}
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// TotalBytes sums the size of all tracked assets.
func (r *AssetRegistry) TotalBytes() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total int64
	for _, a := range r.assets {
		total += a.Size
	}
	return total
}
