// Command reach ranks the nodes of undirected graphs by closeness
// centrality. See `reach --help` for the available subcommands.
package main

import "github.com/mkravets/reach/internal/cli"

func main() {
	cli.Execute()
}
