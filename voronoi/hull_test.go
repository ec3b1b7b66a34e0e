package voronoi

import "testing"

func TestMergeHullsTwoSites(t *testing.T) {
	left := []Site{NewSite(0, 0, 0)}
	right := []Site{NewSite(1, 2, 0)}

	merged, lLeft, lRight, qLeft, qRight := MergeHulls(left, right)

	if len(merged) != 2 {
		t.Fatalf("merged hull has %d points, want 2", len(merged))
	}
	if lLeft.ID != 0 || lRight.ID != 1 {
		t.Errorf("upper tangent = (%d,%d), want (0,1)", lLeft.ID, lRight.ID)
	}
	if qLeft.ID != 0 || qRight.ID != 1 {
		t.Errorf("lower tangent = (%d,%d), want (0,1)", qLeft.ID, qRight.ID)
	}
}

func TestMergeHullsSquare(t *testing.T) {
	// Left column {(0,0), (0,2)}, right column {(2,0), (2,2)}.
	left := []Site{NewSite(0, 0, 0), NewSite(1, 0, 2)}
	right := []Site{NewSite(2, 2, 0), NewSite(3, 2, 2)}

	merged, lLeft, lRight, qLeft, qRight := MergeHulls(left, right)

	if len(merged) != 4 {
		t.Fatalf("merged hull has %d points, want 4", len(merged))
	}

	if lLeft.ID != 1 || lRight.ID != 3 {
		t.Errorf("upper tangent = (%d,%d), want (1,3) [the two y=2 tops]", lLeft.ID, lRight.ID)
	}
	if qLeft.ID != 0 || qRight.ID != 2 {
		t.Errorf("lower tangent = (%d,%d), want (0,2) [the two y=0 bottoms]", qLeft.ID, qRight.ID)
	}

	if area := polygonArea(merged); area <= 0 {
		t.Errorf("merged hull is not counter-clockwise (signed area = %v)", area)
	}
}

func polygonArea(pts []Site) float64 {
	var sum float64
	n := len(pts)
	for i := 0; i < n; i++ {
		a := pts[i].Pt
		b := pts[(i+1)%n].Pt
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}
