package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/arl/vormerge/geom"
	"github.com/arl/vormerge/internal/sitegrid"
	"github.com/arl/vormerge/voronoi"
)

var validateCmd = &cobra.Command{
	Use:   "validate DIAGRAM.yaml",
	Short: "check a diagram against its invariants",
	Long: `Load a diagram from YAML and check its data model invariants
(region membership, finite edges, site index consistency); the hull
is not checked. On success,
also reports the nearest neighbor of every site using a spatial hash.`,
	Args: cobra.ExactArgs(1),
	Run:  runValidate,
}

func init() {
	RootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) {
	var loaded voronoi.Diagram
	check(unmarshalYAMLFile(args[0], &loaded))

	// Unmarshaling populates Sites, Edges, Hull and Regions but not
	// SiteIndex, which has no yaml key. NewDiagram builds SiteIndex and
	// rebuilds Regions from Edges, so the Regions read from the file are
	// discarded rather than checked.
	d := voronoi.NewDiagram(loaded.Sites, loaded.Edges, loaded.Hull)

	if err := d.Validate(); err != nil {
		fmt.Println("INVALID:", err)
		return
	}
	fmt.Printf("OK: %d sites, %d edges, %d hull points\n", len(d.Sites), len(d.Edges), len(d.Hull))

	if len(d.Sites) < 2 {
		return
	}

	cellSize := neighborCellSize(d.Sites)
	grid := sitegrid.New(cellSize)
	grid.AddAll(d.Sites)

	for _, s := range d.Sites {
		if n, dist, ok := nearestOther(grid, cellSize, s); ok {
			fmt.Printf("  site %d: nearest neighbor %d (dist %.4f)\n", s.ID, n.ID, dist)
		}
	}
}

// neighborCellSize derives a cell size on the order of the average
// spacing between sites, the sizing sitegrid.New recommends.
func neighborCellSize(sites []voronoi.Site) float64 {
	pts := make([]geom.Vec2, len(sites))
	for i, s := range sites {
		pts[i] = s.Pt
	}
	extent := geom.BoundsOf(pts).MaxExtent()
	if extent == 0 {
		return 1
	}
	return extent / math.Sqrt(float64(len(sites)))
}

// nearestOther returns the site closest to s other than s itself,
// growing the query radius until a candidate within it is found.
func nearestOther(grid *sitegrid.Grid, cellSize float64, s voronoi.Site) (voronoi.Site, float64, bool) {
	radius := cellSize
	if radius <= 0 {
		radius = 1
	}
	for i := 0; i < 64; i++ {
		candidates := grid.QueryBox(
			geom.Vec2{X: s.Pt.X - radius, Y: s.Pt.Y - radius},
			geom.Vec2{X: s.Pt.X + radius, Y: s.Pt.Y + radius},
		)
		best, bestDist, found := voronoi.Site{}, math.Inf(1), false
		for _, c := range candidates {
			if c.ID == s.ID {
				continue
			}
			if d := s.Pt.Dist(c.Pt); d < bestDist {
				best, bestDist, found = c, d, true
			}
		}
		if found && bestDist <= radius {
			return best, bestDist, true
		}
		radius *= 2
	}
	return voronoi.Site{}, 0, false
}
