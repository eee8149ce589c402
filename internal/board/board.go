// Package board sources letter boards for a round, either from JSON data
// files or from a frequency-weighted random generator.
package board

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"wordrush.gg/wordrush/internal/grid"
)

// Config is the on-disk form of a board, one string per row.
type Config struct {
	Name string   `json:"name"`
	Rows []string `json:"rows"`
}

// Entry is a board file discovered by ScanDir.
type Entry struct {
	Name string // display name from the file, or the filename stem
	Path string
}

// Load reads a board file and builds its grid. Unlike grid.New, a board
// file must describe a playable board: empty or ragged boards are errors
// here, so an empty grid can never reach the interactive screen.
func Load(path string) (*grid.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read board file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse board file %s: %w", path, err)
	}
	if len(cfg.Rows) == 0 {
		return nil, fmt.Errorf("board file %s has no rows", path)
	}

	rows := make([]string, len(cfg.Rows))
	for i, r := range cfg.Rows {
		rows[i] = strings.ToUpper(strings.TrimSpace(r))
		if rows[i] == "" {
			return nil, fmt.Errorf("board file %s row %d is empty", path, i)
		}
	}

	g, err := grid.FromStrings(rows)
	if err != nil {
		return nil, fmt.Errorf("board file %s: %w", path, err)
	}
	return g, nil
}

// ScanDir lists the board files under dir. A missing directory is not an
// error; it just yields no entries and the caller falls back to random
// boards.
func ScanDir(dir string) ([]Entry, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan board directory: %w", err)
	}

	var entries []Entry
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != ".json" {
			continue
		}
		path := filepath.Join(dir, f.Name())
		name := strings.TrimSuffix(f.Name(), ".json")
		// Prefer the display name from the file when it parses.
		if data, err := os.ReadFile(path); err == nil {
			var cfg Config
			if json.Unmarshal(data, &cfg) == nil && cfg.Name != "" {
				name = cfg.Name
			}
		}
		entries = append(entries, Entry{Name: name, Path: path})
	}
	return entries, nil
}

// letterWeights approximates English letter frequency (per mille). Rare
// letters keep a small weight so they still show up.
var letterWeights = []struct {
	letter rune
	weight int
}{
	{'E', 120}, {'A', 85}, {'R', 75}, {'I', 73}, {'O', 72}, {'T', 70},
	{'N', 66}, {'S', 57}, {'L', 55}, {'C', 45}, {'U', 36}, {'D', 34},
	{'P', 32}, {'M', 30}, {'H', 30}, {'G', 25}, {'B', 21}, {'F', 18},
	{'Y', 18}, {'W', 13}, {'K', 11}, {'V', 10}, {'X', 4}, {'Z', 3},
	{'J', 3}, {'Q', 2},
}

var totalWeight = func() int {
	total := 0
	for _, lw := range letterWeights {
		total += lw.weight
	}
	return total
}()

// Generate builds a rows x cols board of frequency-weighted random
// letters from the injected generator, so a seeded round reproduces its
// board exactly.
func Generate(rng *rand.Rand, rows, cols int) *grid.Grid {
	letters := make([][]rune, rows)
	for r := 0; r < rows; r++ {
		letters[r] = make([]rune, cols)
		for c := 0; c < cols; c++ {
			letters[r][c] = randomLetter(rng)
		}
	}
	g, _ := grid.New(letters) // rows are rectangular by construction
	return g
}

func randomLetter(rng *rand.Rand) rune {
	n := rng.Intn(totalWeight)
	for _, lw := range letterWeights {
		n -= lw.weight
		if n < 0 {
			return lw.letter
		}
	}
	return 'E'
}
