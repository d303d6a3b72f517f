package dialog

// Rect is a screen rectangle. W and H are exclusive bounds.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) falls inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a clickable area recorded during rendering.
type Region struct {
	ID      string
	Rect    Rect
	Handler Handler
}

// HitMap holds the regions of one rendered frame. Regions added later sit
// above earlier ones.
type HitMap struct {
	regions []Region
}

func NewHitMap() *HitMap {
	return &HitMap{}
}

// Add records a region. Empty rectangles are ignored.
func (h *HitMap) Add(id string, r Rect, handler Handler) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	h.regions = append(h.regions, Region{ID: id, Rect: r, Handler: handler})
}

// Test returns the topmost region containing (x, y), or nil.
func (h *HitMap) Test(x, y int) *Region {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Rect.Contains(x, y) {
			return &h.regions[i]
		}
	}
	return nil
}

// Len returns the number of recorded regions.
func (h *HitMap) Len() int { return len(h.regions) }

// Clear drops all regions.
func (h *HitMap) Clear() { h.regions = h.regions[:0] }

// merge appends other's regions shifted by (dx, dy), keeping their order.
func (h *HitMap) merge(other *HitMap, dx, dy int) {
	for _, r := range other.regions {
		r.Rect.X += dx
		r.Rect.Y += dy
		h.regions = append(h.regions, r)
	}
}
