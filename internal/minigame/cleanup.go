package minigame

import (
	"errors"
	"fmt"
	"slices"

	"github.com/ecoamazonia/guardioes/internal/catalog"
)

// ErrUnknownBin is returned for a bin outside Bins.
var ErrUnknownBin = errors.New("unknown bin")

// Bins are the river cleanup's recycling bins in display order.
var Bins = catalog.CleanupBins

// Litter is one item floating in the river.
type Litter struct {
	Name string
	Bin  string
}

// Cleanup is the river cleanup: each item leaves the river only when it is
// dropped into its own bin. The game is won when the river is empty.
type Cleanup struct {
	river  []Litter
	misses int
}

func NewCleanup(items []Litter) (*Cleanup, error) {
	if len(items) == 0 {
		return nil, ErrEmptyInput
	}
	for _, it := range items {
		if !slices.Contains(Bins, it.Bin) {
			return nil, fmt.Errorf("%s: %w %q", it.Name, ErrUnknownBin, it.Bin)
		}
	}
	return &Cleanup{river: slices.Clone(items)}, nil
}

// Current returns the next item to sort.
func (c *Cleanup) Current() (Litter, bool) {
	if len(c.river) == 0 {
		return Litter{}, false
	}
	return c.river[0], true
}

// Drop puts the current item into bin and reports whether it belonged
// there. A wrong bin leaves the item in the river.
func (c *Cleanup) Drop(bin string) (bool, error) {
	item, ok := c.Current()
	if !ok {
		return false, ErrGameOver
	}
	if !slices.Contains(Bins, bin) {
		return false, fmt.Errorf("%w %q", ErrUnknownBin, bin)
	}
	if item.Bin != bin {
		c.misses++
		return false, nil
	}
	c.river = c.river[1:]
	return true, nil
}

// Remaining is the number of items still in the river.
func (c *Cleanup) Remaining() int { return len(c.river) }

// Misses counts wrong drops.
func (c *Cleanup) Misses() int { return c.misses }

func (c *Cleanup) Status() Status {
	if len(c.river) == 0 {
		return Won
	}
	return Playing
}
