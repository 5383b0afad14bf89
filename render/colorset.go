package render

import (
	"hash/fnv"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorSet hands out a stable color per label.
type ColorSet struct {
	mu     sync.Mutex
	colors map[string]colorful.Color
}

func NewColorSet() *ColorSet {
	return &ColorSet{
		colors: make(map[string]colorful.Color),
	}
}

func (cs *ColorSet) HexColor(label string) string {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	c, ok := cs.colors[label]
	if !ok {
		h := fnv.New32a()
		_, _ = h.Write([]byte(label))
		hue := float64(h.Sum32()%360) + 0.5
		c = colorful.Hcl(hue, 0.45, 0.65).Clamped()
		cs.colors[label] = c
	}

	return c.Hex()
}
