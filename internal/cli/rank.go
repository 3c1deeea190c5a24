package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mkravets/reach/internal/dataset"
)

var rankCmd = &cobra.Command{
	Use:   "rank <edges-file>",
	Short: "Rank the nodes of an edge-list file by influence",
	Long: `Read a whitespace-separated edge list and print the influence ranking.

Each line is "u v" (unweighted) or "u v w" (weighted); blank lines and
lines starting with # are skipped. Any explicit weight switches the whole
graph to the weighted engine unless --weighted overrides the choice.`,
	Args: cobra.ExactArgs(1),
	RunE: runRank,
}

func init() {
	rankCmd.Flags().Bool("weighted", false, "force the weighted engine even without explicit weights")
	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, args []string) error {
	lg := newLogger()
	defer func() { _ = lg.Sync() }()

	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open edge list: %w", err)
	}
	defer f.Close()

	name := filepath.Base(path)
	ds, err := dataset.ParseEdgeList(name, f)
	if err != nil {
		return err
	}
	if forced, _ := cmd.Flags().GetBool("weighted"); forced {
		ds.Weighted = true
	}
	lg.Debug("edge list parsed",
		zap.String("file", path),
		zap.Bool("weighted", ds.Weighted),
		zap.Int("nodes", len(ds.Names)),
		zap.Int("edges", len(ds.Edges)),
	)

	rep, err := buildReport(ds)
	if err != nil {
		return err
	}

	return writeReport(cmd.OutOrStdout(), rep)
}
