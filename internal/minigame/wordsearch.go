package minigame

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"unicode"

	"github.com/ecoamazonia/guardioes/internal/i18n"
)

// Cell is a zero-based grid coordinate.
type Cell struct {
	Row, Col int
}

const (
	placementTries = 200
	gridRetries    = 20
	fillAlphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// WordSearch is a square letter grid hiding words horizontally and
// vertically. A word is found by selecting its first and last cells, in
// either order.
type WordSearch struct {
	grid    [][]rune
	words   []string // folded, as hidden in the grid
	display []string
	found   []bool
}

// NewWordSearch builds a grid of at least size cells per side. Words are
// folded to upper case without accents or spaces before being hidden.
func NewWordSearch(words []string, size int, rng *rand.Rand) (*WordSearch, error) {
	ws := &WordSearch{}
	longest := 0
	for _, w := range words {
		f := gridWord(w)
		if f == "" {
			continue
		}
		ws.words = append(ws.words, f)
		ws.display = append(ws.display, w)
		longest = max(longest, len([]rune(f)))
	}
	if len(ws.words) == 0 {
		return nil, ErrEmptyInput
	}
	ws.found = make([]bool, len(ws.words))
	size = max(size, longest)

	// Longest words first leaves the most room for the rest.
	order := make([]int, len(ws.words))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return len([]rune(ws.words[b])) - len([]rune(ws.words[a]))
	})

	for {
		for range gridRetries {
			if grid, ok := placeAll(ws.words, order, size, rng); ok {
				fill(grid, rng)
				ws.grid = grid
				return ws, nil
			}
		}
		size++
		if size > 4*longest+len(ws.words) {
			return nil, fmt.Errorf("cannot place %d words in a word search grid", len(ws.words))
		}
	}
}

func gridWord(w string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return r
		}
		return -1
	}, i18n.Fold(w))
}

func placeAll(words []string, order []int, size int, rng *rand.Rand) ([][]rune, bool) {
	grid := make([][]rune, size)
	for i := range grid {
		grid[i] = make([]rune, size)
	}
	for _, idx := range order {
		if !place(grid, []rune(words[idx]), rng) {
			return nil, false
		}
	}
	return grid, true
}

func place(grid [][]rune, word []rune, rng *rand.Rand) bool {
	size := len(grid)
	for range placementTries {
		dr, dc := 0, 1
		if rng.IntN(2) == 1 {
			dr, dc = 1, 0
		}
		r := rng.IntN(size - dr*(len(word)-1))
		c := rng.IntN(size - dc*(len(word)-1))

		fits := true
		for i, ch := range word {
			cur := grid[r+dr*i][c+dc*i]
			if cur != 0 && cur != ch {
				fits = false
				break
			}
		}
		if !fits {
			continue
		}
		for i, ch := range word {
			grid[r+dr*i][c+dc*i] = ch
		}
		return true
	}
	return false
}

func fill(grid [][]rune, rng *rand.Rand) {
	for _, row := range grid {
		for c := range row {
			if row[c] == 0 {
				row[c] = rune(fillAlphabet[rng.IntN(len(fillAlphabet))])
			}
		}
	}
}

// Size is the grid's side length.
func (ws *WordSearch) Size() int { return len(ws.grid) }

// Letter returns the letter at c.
func (ws *WordSearch) Letter(c Cell) rune { return ws.grid[c.Row][c.Col] }

// Rows renders the grid one string per row.
func (ws *WordSearch) Rows() []string {
	out := make([]string, len(ws.grid))
	for i, row := range ws.grid {
		out[i] = string(row)
	}
	return out
}

// Words returns the words to find as written in the catalog.
func (ws *WordSearch) Words() []string { return ws.display }

// IsFound reports whether word i has been found.
func (ws *WordSearch) IsFound(i int) bool { return ws.found[i] }

// FoundCount is the number of words found so far.
func (ws *WordSearch) FoundCount() int {
	n := 0
	for _, f := range ws.found {
		if f {
			n++
		}
	}
	return n
}

// Select reads the straight line from a to b and marks the word it spells,
// forwards or backwards, as found. It returns the word's catalog form.
func (ws *WordSearch) Select(a, b Cell) (string, bool) {
	if !ws.inside(a) || !ws.inside(b) {
		return "", false
	}
	if a.Row != b.Row && a.Col != b.Col {
		return "", false
	}

	var line []rune
	dr, dc := sign(b.Row-a.Row), sign(b.Col-a.Col)
	for r, c := a.Row, a.Col; ; r, c = r+dr, c+dc {
		line = append(line, ws.grid[r][c])
		if r == b.Row && c == b.Col {
			break
		}
	}
	fwd := string(line)
	slices.Reverse(line)
	rev := string(line)

	for i, w := range ws.words {
		if ws.found[i] {
			continue
		}
		if w == fwd || w == rev {
			ws.found[i] = true
			return ws.display[i], true
		}
	}
	return "", false
}

func (ws *WordSearch) inside(c Cell) bool {
	return c.Row >= 0 && c.Col >= 0 && c.Row < len(ws.grid) && c.Col < len(ws.grid)
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

func (ws *WordSearch) Status() Status {
	if ws.FoundCount() == len(ws.words) {
		return Won
	}
	return Playing
}
