// Command vormerge is the command-line front end accompanying the
// vormerge library. It builds half-diagrams from bare site lists with
// the brute-force reference builder, merges them with the
// dividing-chain algorithm, and can validate an existing diagram file
// or write a default configuration.
package main

import "github.com/arl/vormerge/cmd/vormerge/cmd"

func main() {
	cmd.Execute()
}
