package simplify

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/vectorize/internal/geom"
)

func pts(xy ...float64) []geom.Point {
	out := make([]geom.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, geom.Pt(xy[i], xy[i+1]))
	}
	return out
}

func TestRDP(t *testing.T) {
	tests := []struct {
		name    string
		in      []geom.Point
		epsilon float64
		want    []geom.Point
	}{
		{
			name:    "two points unchanged",
			in:      pts(0, 0, 5, 5),
			epsilon: 1,
			want:    pts(0, 0, 5, 5),
		},
		{
			name:    "three collinear collapse",
			in:      pts(0, 0, 1, 0, 2, 0),
			epsilon: 1,
			want:    pts(0, 0, 2, 0),
		},
		{
			name:    "classic polyline",
			in:      pts(0, 0, 1, 0.1, 2, -0.1, 3, 5, 4, 6, 5, 7, 6, 8.1, 7, 9, 8, 9, 9, 9),
			epsilon: 1,
			want:    pts(0, 0, 2, -0.1, 3, 5, 7, 9, 9, 9),
		},
		{
			name:    "zigzag kept at zero tolerance",
			in:      pts(0, 0, 1, 1, 2, 0, 3, 1, 4, 0),
			epsilon: 0,
			want:    pts(0, 0, 1, 1, 2, 0, 3, 1, 4, 0),
		},
		{
			name:    "zigzag flattened at large tolerance",
			in:      pts(0, 0, 1, 1, 2, 0, 3, 1, 4, 0),
			epsilon: 2,
			want:    pts(0, 0, 4, 0),
		},
		{
			name:    "collinear collapse at zero tolerance",
			in:      pts(0, 0, 1, 1, 2, 2, 3, 3),
			epsilon: 0,
			want:    pts(0, 0, 3, 3),
		},
		{
			name:    "deviation equal to tolerance is dropped",
			in:      pts(0, 0, 1, 1, 2, 0),
			epsilon: 1,
			want:    pts(0, 0, 2, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RDP(tt.in, tt.epsilon)
			if err != nil {
				t.Fatalf("RDP() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("RDP() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRDP_Errors(t *testing.T) {
	tests := []struct {
		name    string
		in      []geom.Point
		epsilon float64
		want    error
	}{
		{"nil", nil, 1, ErrTooFewPoints},
		{"single point", pts(1, 1), 1, ErrTooFewPoints},
		{"negative tolerance", pts(0, 0, 1, 1), -1, ErrInvalidTolerance},
		{"NaN tolerance", pts(0, 0, 1, 1), math.NaN(), ErrInvalidTolerance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RDP(tt.in, tt.epsilon)
			if !errors.Is(err, tt.want) {
				t.Errorf("RDP() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRDP_InfiniteToleranceKeepsEndpoints(t *testing.T) {
	in := pts(0, 0, 3, 9, -4, 2, 8, 8, 1, -7, 5, 5)
	got, err := RDP(in, math.Inf(1))
	if err != nil {
		t.Fatalf("RDP() error = %v", err)
	}
	if diff := cmp.Diff(pts(0, 0, 5, 5), got); diff != "" {
		t.Errorf("RDP(+Inf) mismatch (-want +got):\n%s", diff)
	}
}

// A closed loop has a zero-length outer chord; the result must be finite
// and keep the repeated endpoint exactly once at each end.
func TestRDP_ClosedLoop(t *testing.T) {
	loop := pts(0, 0, 2, 0, 2, 2, 0, 2, 0, 0)

	got, err := RDP(loop, 1)
	if err != nil {
		t.Fatalf("RDP() error = %v", err)
	}
	if diff := cmp.Diff(loop, got); diff != "" {
		t.Errorf("RDP(loop, 1) mismatch (-want +got):\n%s", diff)
	}

	got, err = RDP(loop, 10)
	if err != nil {
		t.Fatalf("RDP() error = %v", err)
	}
	if diff := cmp.Diff(pts(0, 0, 0, 0), got); diff != "" {
		t.Errorf("RDP(loop, 10) mismatch (-want +got):\n%s", diff)
	}
}

func TestRDP_NoDuplicateTrailingPoint(t *testing.T) {
	for _, in := range [][]geom.Point{
		pts(0, 0, 1, 0, 2, 0),
		pts(0, 0, 1, 5, 2, 0),
		pts(0, 0, 0, 0),
	} {
		got, err := RDP(in, 1)
		if err != nil {
			t.Fatalf("RDP(%v) error = %v", in, err)
		}
		n := len(got)
		if n >= 3 && got[n-1] == got[n-2] && in[len(in)-2] != in[len(in)-1] {
			t.Errorf("RDP(%v) = %v, trailing point duplicated", in, got)
		}
		if n > len(in) {
			t.Errorf("RDP(%v) = %v, grew from %d to %d points", in, got, len(in), n)
		}
	}
}

func TestRDP_Properties(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for iter := 0; iter < 200; iter++ {
		n := 2 + rng.IntN(60)
		in := make([]geom.Point, n)
		for i := range in {
			in[i] = geom.Pt(float64(rng.IntN(40)), float64(rng.IntN(40)))
		}
		orig := append([]geom.Point(nil), in...)
		epsilon := rng.Float64() * 5

		got, err := RDP(in, epsilon)
		if err != nil {
			t.Fatalf("RDP() error = %v", err)
		}
		if len(got) < 2 || len(got) > n {
			t.Fatalf("RDP() returned %d points for %d input points", len(got), n)
		}
		if got[0] != in[0] || got[len(got)-1] != in[n-1] {
			t.Errorf("RDP() endpoints = %v..%v, want %v..%v", got[0], got[len(got)-1], in[0], in[n-1])
		}
		if diff := cmp.Diff(orig, in); diff != "" {
			t.Fatalf("RDP() modified its input (-orig +now):\n%s", diff)
		}

		// Output must be a subsequence of the input.
		j := 0
		for _, p := range in {
			if j < len(got) && p == got[j] {
				j++
			}
		}
		if j != len(got) {
			t.Errorf("RDP() output %v is not a subsequence of %v", got, in)
		}
	}
}

func TestRDP_Idempotent(t *testing.T) {
	inputs := [][]geom.Point{
		pts(0, 0, 1, 0.1, 2, -0.1, 3, 5, 4, 6, 5, 7, 6, 8.1, 7, 9, 8, 9, 9, 9),
		pts(0, 0, 1, 1, 2, 0, 3, 1, 4, 0),
		pts(0, 0, 2, 0, 2, 2, 0, 2, 0, 0),
		pts(0, 0, 1, 0, 2, 0, 2, 1, 2, 2),
	}
	for _, in := range inputs {
		once, err := RDP(in, 1)
		if err != nil {
			t.Fatalf("RDP() error = %v", err)
		}
		twice, err := RDP(once, 1)
		if err != nil {
			t.Fatalf("RDP() error = %v", err)
		}
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Errorf("RDP() not idempotent for %v (-once +twice):\n%s", in, diff)
		}
	}
}

func BenchmarkRDP(b *testing.B) {
	in := make([]geom.Point, 10000)
	for i := range in {
		in[i] = geom.Pt(float64(i), math.Sin(float64(i)/50)*20)
	}
	b.ReportAllocs()
	for b.Loop() {
		_, _ = RDP(in, 0.5)
	}
}
