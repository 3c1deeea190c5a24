// This file turns a dataset into the report every command prints:
// the adjacency list plus the full influence ranking, as text or JSON.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/viper"

	"github.com/mkravets/reach/closeness"
	"github.com/mkravets/reach/internal/dataset"
)

type neighborRef struct {
	Node   string  `json:"node"`
	Weight float64 `json:"weight"`
}

type adjacencyRow struct {
	Node      string        `json:"node"`
	Neighbors []neighborRef `json:"neighbors"`
}

type scoreRow struct {
	Rank  int     `json:"rank"`
	Node  string  `json:"node"`
	Score float64 `json:"score"`
}

type report struct {
	Dataset   string         `json:"dataset"`
	Weighted  bool           `json:"weighted"`
	Adjacency []adjacencyRow `json:"adjacency"`
	Ranking   []scoreRow     `json:"ranking"`
}

// buildReport constructs the graph, ranks every node, and resolves ids back
// to the dataset's human-readable names.
func buildReport(ds *dataset.Dataset) (*report, error) {
	g, err := ds.Build()
	if err != nil {
		return nil, err
	}

	ranking, err := closeness.Rank(g, ds.Weighted)
	if err != nil {
		return nil, err
	}

	rep := &report{
		Dataset:  ds.Name,
		Weighted: ds.Weighted,
	}

	for id, name := range ds.Names {
		nbrs, err := g.Neighbors(id)
		if err != nil {
			return nil, err
		}
		row := adjacencyRow{Node: name, Neighbors: make([]neighborRef, 0, len(nbrs))}
		for _, e := range nbrs {
			row.Neighbors = append(row.Neighbors, neighborRef{
				Node:   ds.Names[e.To],
				Weight: e.Weight,
			})
		}
		rep.Adjacency = append(rep.Adjacency, row)
	}

	for i, ns := range ranking {
		rep.Ranking = append(rep.Ranking, scoreRow{
			Rank:  i + 1,
			Node:  ds.Names[ns.Node],
			Score: ns.Score,
		})
	}

	return rep, nil
}

// writeReport renders rep in the configured output format.
func writeReport(w io.Writer, rep *report) error {
	if strings.EqualFold(viper.GetString("output"), "json") {
		return rep.writeJSON(w)
	}

	return rep.writeText(w)
}

func (rep *report) writeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(rep)
}

func (rep *report) writeText(w io.Writer) error {
	kind := "unweighted"
	if rep.Weighted {
		kind = "weighted"
	}
	fmt.Fprintf(w, "Dataset %q (%s)\n\nAdjacency list:\n", rep.Dataset, kind)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, row := range rep.Adjacency {
		fmt.Fprintf(tw, "  %s\t%s\n", row.Node, formatNeighbors(row.Neighbors, rep.Weighted))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprint(w, "\nInfluence ranking:\n")
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, row := range rep.Ranking {
		fmt.Fprintf(tw, "  #%d\t%s\t%.4f\n", row.Rank, row.Node, row.Score)
	}

	return tw.Flush()
}

func formatNeighbors(nbrs []neighborRef, weighted bool) string {
	if len(nbrs) == 0 {
		return "(isolated)"
	}

	parts := make([]string, 0, len(nbrs))
	for _, n := range nbrs {
		if weighted {
			parts = append(parts, fmt.Sprintf("%s (%g)", n.Node, n.Weight))
		} else {
			parts = append(parts, n.Node)
		}
	}

	return strings.Join(parts, ", ")
}
