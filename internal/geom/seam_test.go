package geom

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// equator returns n points stepping from lon1 by step degrees, wrapped like
// an interpolator would.
func equator(lon1, step float64, n int) Polyline {
	pts := make(Polyline, n)
	for i := range pts {
		pts[i] = LonLat{Lon: WrapLon(lon1 + step*float64(i)), Lat: float64(i)}
	}
	return pts
}

func TestWrapLon(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0}, {180, 180}, {-180, -180}, {190, -170}, {-190, 170}, {360, 0}, {-350, 10},
	}
	for _, tt := range tests {
		if got := WrapLon(tt.in); got != tt.want {
			t.Errorf("WrapLon(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCrossesSeam(t *testing.T) {
	tests := []struct {
		lon1, lon2 float64
		want       bool
	}{
		{170, -170, true},
		{-10, 10, false},
		{0, 180, true},
		{-90, 90, true},
		{-89, 90, false},
		{190, 170, true},
		{190, -160, false},
		{350, -10, false},
	}
	for _, tt := range tests {
		if got := CrossesSeam(tt.lon1, tt.lon2); got != tt.want {
			t.Errorf("CrossesSeam(%v, %v) = %v, want %v", tt.lon1, tt.lon2, got, tt.want)
		}
	}
}

func TestSplitAtSeamEastbound(t *testing.T) {
	// 170, 175, 180, -175, -170: the jump is between index 2 and 3.
	pts := equator(170, 5, 5)
	orig := append(Polyline(nil), pts...)

	parts, err := SplitAtSeam(pts, 170, -170)
	if err != nil {
		t.Fatalf("SplitAtSeam: %v", err)
	}
	if len(parts) != 2 {
		t.Fatalf("got %d parts, want 2", len(parts))
	}
	head, tail := parts[0], parts[1]

	// The point after the break (-170) is west of the seam, so the head
	// ends on the east edge and the tail starts on the west edge.
	wantHead := Polyline{{170, 0}, {175, 1}, {180, 2}, {180, 4}}
	wantTail := Polyline{{-180, 3}, {-175, 3}, {-170, 4}}
	if d := cmp.Diff(wantHead, head); d != "" {
		t.Errorf("head mismatch (-want +got):\n%s", d)
	}
	if d := cmp.Diff(wantTail, tail); d != "" {
		t.Errorf("tail mismatch (-want +got):\n%s", d)
	}

	rebuilt := append(append(Polyline(nil), head[:len(head)-1]...), tail[1:]...)
	if d := cmp.Diff(orig, rebuilt); d != "" {
		t.Errorf("concatenation does not rebuild input (-want +got):\n%s", d)
	}
	if d := cmp.Diff(orig, pts); d != "" {
		t.Errorf("input mutated (-want +got):\n%s", d)
	}
}

func TestSplitAtSeamWestbound(t *testing.T) {
	// -170, -175, -180, 175, 170: the jump is between index 2 and 3.
	pts := equator(-170, -5, 5)
	parts, err := SplitAtSeam(pts, -170, 170)
	if err != nil {
		t.Fatalf("SplitAtSeam: %v", err)
	}
	want := []Polyline{
		{{-170, 0}, {-175, 1}, {-180, 2}, {-180, 4}},
		{{180, 3}, {175, 3}, {170, 4}},
	}
	if d := cmp.Diff(want, parts); d != "" {
		t.Errorf("parts mismatch (-want +got):\n%s", d)
	}
}

func TestSplitAtSeamBreakOnLastStep(t *testing.T) {
	pts := Polyline{{170, 0}, {175, 0}, {179, 0}, {-179, 1}}
	parts, err := SplitAtSeam(pts, 170, -179)
	if err != nil {
		t.Fatalf("SplitAtSeam: %v", err)
	}
	want := []Polyline{
		{{170, 0}, {175, 0}, {179, 0}, {180, 1}},
		{{-180, 1}, {-179, 1}},
	}
	if d := cmp.Diff(want, parts); d != "" {
		t.Errorf("parts mismatch (-want +got):\n%s", d)
	}
}

func TestSplitAtSeamNoCrossing(t *testing.T) {
	pts := equator(-10, 1, 21)
	parts, err := SplitAtSeam(pts, -10, 10)
	if err != nil {
		t.Fatalf("SplitAtSeam: %v", err)
	}
	if len(parts) != 1 || len(parts[0]) != len(pts) {
		t.Fatalf("got %d parts, want the input back unchanged", len(parts))
	}
}

func TestSplitAtSeamInconsistent(t *testing.T) {
	tests := []struct {
		name string
		pts  Polyline
	}{
		{"no jump", Polyline{{0, 0}, {90, 0}, {180, 0}}},
		{"two jumps", Polyline{{170, 0}, {-170, 0}, {170, 0}, {-170, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SplitAtSeam(tt.pts, 0, 180)
			if !errors.Is(err, ErrSeamInconsistency) {
				t.Errorf("SplitAtSeam error = %v, want ErrSeamInconsistency", err)
			}
		})
	}
}
