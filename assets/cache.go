package assets

import "github.com/hajimehoshi/ebiten/v2"

// Cache is the shared sprite-sheet atlas. Each distinct path is decoded at
// most once for the life of the process; every animation player referencing
// the same sheet shares one image. Entries are never evicted (the asset set
// is bounded).
type Cache struct {
	images map[string]*ebiten.Image
}

func NewCache() *Cache {
	return &Cache{images: make(map[string]*ebiten.Image)}
}

// Image returns the decoded image for path, loading it on first use.
func (c *Cache) Image(path string) (*ebiten.Image, error) {
	if img, ok := c.images[path]; ok {
		return img, nil
	}
	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	c.images[path] = img
	return img, nil
}
