package region

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/vectorize/internal/geom"
)

// textGrid is a Grid built from rows of '#' (foreground) and '.' cells.
type textGrid []string

func (g textGrid) Size() (int, int) {
	if len(g) == 0 {
		return 0, 0
	}
	return len(g[0]), len(g)
}

func (g textGrid) IsForeground(x, y int) bool {
	return g[y][x] == '#'
}

// countingGrid records how often each pixel is inspected.
type countingGrid struct {
	textGrid
	reads map[[2]int]int
}

func (g *countingGrid) IsForeground(x, y int) bool {
	g.reads[[2]int{x, y}]++
	return g.textGrid.IsForeground(x, y)
}

func seq(seed int, xy ...int) Sequence {
	s := Sequence{SeedRow: seed}
	for i := 0; i+1 < len(xy); i += 2 {
		s.Points = append(s.Points, geom.Pt(float64(xy[i]), float64(xy[i+1])))
	}
	return s
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		grid textGrid
		want []Sequence
	}{
		{
			name: "empty grid",
			grid: textGrid{},
			want: nil,
		},
		{
			name: "all background",
			grid: textGrid{"...", "...", "..."},
			want: nil,
		},
		{
			name: "single row",
			grid: textGrid{"###"},
			want: []Sequence{seq(0, 0, 0, 1, 0, 2, 0)},
		},
		{
			name: "isolated centre pixel is never reached",
			grid: textGrid{"...", ".#.", "..."},
			want: nil,
		},
		{
			name: "two blobs split by background row",
			grid: textGrid{"###", "...", "###"},
			want: []Sequence{
				seq(0, 0, 0, 1, 0, 2, 0),
				seq(2, 0, 2, 1, 2, 2, 2),
			},
		},
		{
			name: "square block traversal order",
			grid: textGrid{"##", "##"},
			want: []Sequence{seq(0, 0, 0, 1, 0, 1, 1, 0, 1)},
		},
		{
			name: "hook shape",
			grid: textGrid{"#..", "#.#", "###"},
			want: []Sequence{seq(0, 0, 0, 0, 1, 0, 2, 1, 2, 2, 2, 2, 1)},
		},
		{
			name: "traversal climbs into an earlier row",
			grid: textGrid{"..#", "###"},
			want: []Sequence{seq(1, 0, 1, 1, 1, 2, 1, 2, 0)},
		},
		{
			name: "diagonal neighbours are not connected",
			grid: textGrid{"#.#", ".#.", "#.#"},
			want: []Sequence{seq(0, 0, 0), seq(2, 0, 2)},
		},
		{
			name: "u shape",
			grid: textGrid{"#...#", "#####"},
			want: []Sequence{seq(0, 0, 0, 0, 1, 1, 1, 2, 1, 3, 1, 4, 1, 4, 0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.grid)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtract_NilGrid(t *testing.T) {
	if got := Extract(nil); got != nil {
		t.Errorf("Extract(nil) = %v, want nil", got)
	}
}

func TestExtract_RowDone(t *testing.T) {
	grid := textGrid{"##.", "...", "#..", "..."}
	var rows []int
	Extract(grid, WithRowDone(func(y, height int) {
		if height != 4 {
			t.Errorf("RowFunc height = %d, want 4", height)
		}
		rows = append(rows, y)
	}))
	if diff := cmp.Diff([]int{0, 1, 2, 3}, rows); diff != "" {
		t.Errorf("row callbacks mismatch (-want +got):\n%s", diff)
	}
}

// Each pixel is inspected at most once per run.
func TestExtract_VisitsPixelOnce(t *testing.T) {
	g := &countingGrid{
		textGrid: textGrid{"####", "#..#", "####", "#.##"},
		reads:    map[[2]int]int{},
	}
	Extract(g)
	for c, n := range g.reads {
		if n != 1 {
			t.Errorf("pixel %v inspected %d times, want 1", c, n)
		}
	}
}

func randomGrid(rng *rand.Rand, w, h int, density float64) textGrid {
	g := make(textGrid, h)
	for y := range g {
		row := make([]byte, w)
		for x := range row {
			row[x] = '.'
			if rng.Float64() < density {
				row[x] = '#'
			}
		}
		g[y] = string(row)
	}
	return g
}

func TestExtract_Properties(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for iter := 0; iter < 100; iter++ {
		w, h := 1+rng.IntN(20), 1+rng.IntN(20)
		grid := randomGrid(rng, w, h, rng.Float64())

		seqs := Extract(grid)
		seen := map[geom.Point]bool{}
		lastSeed := -1
		for _, s := range seqs {
			if s.Len() == 0 {
				t.Fatalf("Extract() returned an empty sequence")
			}
			if s.SeedRow <= lastSeed {
				t.Errorf("seed rows not increasing: %d after %d", s.SeedRow, lastSeed)
			}
			lastSeed = s.SeedRow
			if s.Points[0] != geom.Pt(0, float64(s.SeedRow)) {
				t.Errorf("sequence starts at %v, want seed (0, %d)", s.Points[0], s.SeedRow)
			}
			for _, p := range s.Points {
				x, y := int(p.X), int(p.Y)
				if !grid.IsForeground(x, y) {
					t.Errorf("background pixel %v collected", p)
				}
				if seen[p] {
					t.Errorf("pixel %v appears in more than one sequence", p)
				}
				seen[p] = true
			}
		}
	}
}

func TestExtract_AllBackgroundProperty(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	for iter := 0; iter < 20; iter++ {
		grid := randomGrid(rng, 1+rng.IntN(30), 1+rng.IntN(30), 0)
		if got := Extract(grid); len(got) != 0 {
			t.Errorf("Extract(all background) = %v, want none", got)
		}
	}
}

// A fully covered grid is a single region; the explicit stack must cope
// with it without recursion.
func TestExtract_LargeFilledGrid(t *testing.T) {
	const size = 512
	row := make([]byte, size)
	for i := range row {
		row[i] = '#'
	}
	grid := make(textGrid, size)
	for i := range grid {
		grid[i] = string(row)
	}

	seqs := Extract(grid)
	if len(seqs) != 1 {
		t.Fatalf("Extract() returned %d sequences, want 1", len(seqs))
	}
	if got := seqs[0].Len(); got != size*size {
		t.Errorf("sequence length = %d, want %d", got, size*size)
	}
}
