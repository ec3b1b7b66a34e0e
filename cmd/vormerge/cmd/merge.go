package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arl/vormerge/internal/bftest"
	"github.com/arl/vormerge/merge"
	"github.com/arl/vormerge/voronoi"
)

// siteList is the YAML shape a merge input file takes: a flat list of
// sites, reusing voronoi.Site's own yaml tags.
type siteList struct {
	Sites []voronoi.Site `yaml:"sites"`
}

var (
	outPath    string
	mergeCfg   string
	enableLog  bool
	enableTime bool
)

var mergeCmd = &cobra.Command{
	Use:   "merge LEFT.yaml RIGHT.yaml",
	Short: "merge two half-diagrams",
	Long: `Load two site lists from YAML, build each half's diagram with the
brute-force reference builder, merge them with the dividing-chain
algorithm, and write the merged diagram to -o.

LEFT.yaml's sites must all have an X coordinate at most every site in
RIGHT.yaml's; this is checked before building anything.`,
	Args: cobra.ExactArgs(2),
	Run:  runMerge,
}

func init() {
	RootCmd.AddCommand(mergeCmd)
	mergeCmd.Flags().StringVarP(&outPath, "output", "o", "merged.yaml", "output diagram file")
	mergeCmd.Flags().StringVar(&mergeCfg, "config", "", "merge.Config file (YAML); defaults used if absent")
	mergeCmd.Flags().BoolVar(&enableLog, "log", false, "enable merge progress logging")
	mergeCmd.Flags().BoolVar(&enableTime, "timers", false, "enable merge phase timers")
}

func runMerge(cmd *cobra.Command, args []string) {
	var leftSites, rightSites siteList
	check(unmarshalYAMLFile(args[0], &leftSites))
	check(unmarshalYAMLFile(args[1], &rightSites))

	if err := checkSeparated(leftSites.Sites, rightSites.Sites); err != nil {
		check(&merge.Error{Kind: merge.PreconditionViolation, Msg: err.Error()})
	}

	cfg := merge.DefaultConfig()
	if mergeCfg != "" {
		check(unmarshalYAMLFile(mergeCfg, &cfg))
	}
	cfg.EnableLog = cfg.EnableLog || enableLog
	cfg.EnableTimers = cfg.EnableTimers || enableTime

	left := bftest.Build(leftSites.Sites)
	right := bftest.Build(rightSites.Sites)

	ctx := merge.NewContext(false)
	ctx.EnableLog(cfg.EnableLog)
	ctx.EnableTimers(cfg.EnableTimers)

	out, err := merge.Merge(ctx, cfg, left, right)
	check(err)

	for _, line := range ctx.Messages() {
		fmt.Println(line)
	}

	check(marshalYAMLFile(outPath, out))
	fmt.Printf("merged diagram written to '%s' (%d sites, %d edges)\n", outPath, len(out.Sites), len(out.Edges))
}

// checkSeparated reports an error if some left site has a larger X
// than some right site, the precondition merge.Merge assumes but does
// not itself check.
func checkSeparated(left, right []voronoi.Site) error {
	for _, l := range left {
		for _, r := range right {
			if l.Pt.X > r.Pt.X {
				return fmt.Errorf("left site %d (x=%g) is not left of right site %d (x=%g)", l.ID, l.Pt.X, r.ID, r.Pt.X)
			}
		}
	}
	return nil
}
