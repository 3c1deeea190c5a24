package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkravets/reach/bfs"
	"github.com/mkravets/reach/closeness"
	"github.com/mkravets/reach/core"
	"github.com/mkravets/reach/dijkstra"
	"github.com/mkravets/reach/internal/dataset"
)

// The enumerated command set of the interactive loop.
const (
	cmdHelp  = "help"
	cmdShow  = "show"
	cmdScore = "score"
	cmdRank  = "rank"
	cmdQuit  = "quit"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"menu"},
	Short:   "Explore a dataset through an interactive prompt",
	Long:    "Start a read-eval loop over one of the built-in datasets.\nCommands: show, score <node>, rank, help, quit.",
	RunE:    runInteractive,
}

func init() {
	interactiveCmd.Flags().StringP("dataset", "d", "social", "dataset: social or routes")
	rootCmd.AddCommand(interactiveCmd)
}

// session holds the graph under exploration. The graph is built once and
// read-only afterwards; every command is a pure query.
type session struct {
	ds  *dataset.Dataset
	g   *core.Graph
	out io.Writer
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	name, _ := cmd.Flags().GetString("dataset")
	ds, err := builtinDataset(name)
	if err != nil {
		return err
	}
	g, err := ds.Build()
	if err != nil {
		return err
	}

	s := &session{ds: ds, g: g, out: cmd.OutOrStdout()}
	fmt.Fprintf(s.out, "reach — dataset %q (%d nodes, %d edges). Type %q for commands.\n",
		ds.Name, len(ds.Names), len(ds.Edges), cmdHelp)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case cmdQuit, "exit":
			return nil
		case cmdHelp:
			s.help()
		case cmdShow:
			if err := s.show(); err != nil {
				return err
			}
		case cmdRank:
			if err := s.rank(); err != nil {
				return err
			}
		case cmdScore:
			if len(fields) != 2 {
				fmt.Fprintf(s.out, "usage: %s <node>\n", cmdScore)
				continue
			}
			if err := s.score(fields[1]); err != nil {
				return err
			}
		default:
			fmt.Fprintf(s.out, "unknown command %q\n", fields[0])
			s.help()
		}
	}
}

func (s *session) help() {
	fmt.Fprintf(s.out, `commands:
  %s           print the adjacency list
  %s <node>   influence score of one node
  %s           full influence ranking
  %s           leave the prompt
`, cmdShow, cmdScore, cmdRank, cmdQuit)
}

func (s *session) show() error {
	for id, name := range s.ds.Names {
		nbrs, err := s.g.Neighbors(id)
		if err != nil {
			return err
		}
		refs := make([]neighborRef, 0, len(nbrs))
		for _, e := range nbrs {
			refs = append(refs, neighborRef{Node: s.ds.Names[e.To], Weight: e.Weight})
		}
		fmt.Fprintf(s.out, "  %s: %s\n", name, formatNeighbors(refs, s.ds.Weighted))
	}

	return nil
}

func (s *session) rank() error {
	ranking, err := closeness.Rank(s.g, s.ds.Weighted)
	if err != nil {
		return err
	}
	for i, ns := range ranking {
		fmt.Fprintf(s.out, "  #%d %s: %.4f\n", i+1, s.ds.Names[ns.Node], ns.Score)
	}

	return nil
}

func (s *session) score(name string) error {
	id, ok := s.ds.Index(name)
	if !ok {
		fmt.Fprintf(s.out, "no node named %q\n", name)
		return nil
	}

	var dist []float64
	var err error
	if s.ds.Weighted {
		dist, err = dijkstra.Distances(s.g, id)
	} else {
		dist, err = bfs.Distances(s.g, id)
	}
	if err != nil {
		return err
	}

	score, err := closeness.Score(dist, id)
	if err != nil {
		return err
	}
	if score == 0 {
		fmt.Fprintf(s.out, "%s cannot reach every other node: influence 0\n", name)
		return nil
	}
	fmt.Fprintf(s.out, "%s: %.4f\n", name, score)

	return nil
}
