package merge

import (
	"testing"

	"github.com/arl/vormerge/geom"
	"github.com/arl/vormerge/internal/bftest"
	"github.com/arl/vormerge/voronoi"
)

// TestMergeRoundTripAgainstBruteForce checks a round-trip property:
// merging two halves built independently by the brute-force oracle
// must agree with the oracle's own direct build of the union, at
// every finite (non-extrapolated) vertex.
func TestMergeRoundTripAgainstBruteForce(t *testing.T) {
	leftSites := []voronoi.Site{voronoi.NewSite(0, 0, 0), voronoi.NewSite(1, 0, 2)}
	rightSites := []voronoi.Site{voronoi.NewSite(2, 2, 0), voronoi.NewSite(3, 2, 2)}

	left := bftest.Build(leftSites)
	right := bftest.Build(rightSites)

	merged, err := Merge(nil, DefaultConfig(), left, right)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if err := merged.Validate(); err != nil {
		t.Fatalf("merged diagram invalid: %v", err)
	}

	direct := bftest.Build(append(append([]voronoi.Site(nil), leftSites...), rightSites...))
	if err := direct.Validate(); err != nil {
		t.Fatalf("direct diagram invalid: %v", err)
	}

	triplePoint := geom.Vec2{X: 1, Y: 1}
	wantOwners := map[[2]int]bool{{0, 1}: true, {2, 3}: true, {1, 3}: true, {0, 2}: true}

	for _, d := range []*voronoi.Diagram{merged, direct} {
		gotOwners := map[[2]int]bool{}
		touches := 0
		for _, e := range d.Edges {
			a, b := e.Left, e.Right
			if a > b {
				a, b = b, a
			}
			gotOwners[[2]int{a, b}] = true
			if e.Start.Approx(triplePoint, geom.Float2Equals) || e.End.Approx(triplePoint, geom.Float2Equals) {
				touches++
			}
		}
		for k := range wantOwners {
			if !gotOwners[k] {
				t.Errorf("diagram missing edge with owners %v", k)
			}
		}
		if touches != 4 {
			t.Errorf("%d edges touch the triple point %v, want 4", touches, triplePoint)
		}
	}
}

func TestMergeRoundTripTwoSites(t *testing.T) {
	leftSites := []voronoi.Site{voronoi.NewSite(0, 0, 0)}
	rightSites := []voronoi.Site{voronoi.NewSite(1, 3, 0)}

	left := bftest.Build(leftSites)
	right := bftest.Build(rightSites)

	merged, err := Merge(nil, DefaultConfig(), left, right)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if len(merged.Edges) != 1 {
		t.Fatalf("got %d edges, want 1", len(merged.Edges))
	}
	if x := merged.Edges[0].Start.X; x < 1.4 || x > 1.6 {
		t.Errorf("bisector at x=%v, want close to 1.5 (midpoint of 0 and 3)", x)
	}
}
