package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/surfgraph/pagerank/internal/config"
	"github.com/surfgraph/pagerank/rank"
	"github.com/surfgraph/pagerank/vis"
)

var renderCmd = &cobra.Command{
	Use:   "render <edge-list>",
	Short: "Render the top-ranked subgraph as an HTML page",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("out", "o", "index.html", "output HTML file")
	renderCmd.Flags().String("serve", "", "serve the rendered page on this address (e.g. :7000)")
	renderCmd.Flags().Int("top-n", 10, "number of top-ranked nodes to seed the subgraph")
	renderCmd.Flags().Float64("neighbor-threshold", 0.0010, "minimum rank for a neighbor to be drawn")
	renderCmd.Flags().Float64("highlight-threshold", 0.0015, "rank above which a node is highlighted")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cmd.Flags().Changed("top-n") {
		cfg.TopN, _ = cmd.Flags().GetInt("top-n")
	}
	if cmd.Flags().Changed("neighbor-threshold") {
		cfg.NeighborThreshold, _ = cmd.Flags().GetFloat64("neighbor-threshold")
	}
	if cmd.Flags().Changed("highlight-threshold") {
		cfg.HighlightThreshold, _ = cmd.Flags().GetFloat64("highlight-threshold")
	}
	log := newLogger(cfg.Verbose)

	model, edges, err := loadModel(args[0])
	if err != nil {
		return err
	}
	log.Info("edge list loaded", "path", args[0], "edges", len(edges), "nodes", model.Len())

	ranks, err := rank.Rank(cmd.Context(), model, nil, rank.Options{
		Damping:       cfg.Damping,
		Epsilon:       cfg.Epsilon,
		MaxIterations: cfg.MaxIterations,
		Workers:       cfg.Workers,
	})
	if err != nil {
		return fmt.Errorf("computing ranks: %w", err)
	}

	data := vis.Subgraph(edges, ranks, vis.SubgraphOptions{
		TopN:               cfg.TopN,
		NeighborThreshold:  cfg.NeighborThreshold,
		HighlightThreshold: cfg.HighlightThreshold,
	})
	log.Debug("subgraph selected", "nodes", len(data.Nodes), "links", len(data.Links))

	out, _ := cmd.Flags().GetString("out")
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	title := fmt.Sprintf("top %d ranked nodes of %s", cfg.TopN, filepath.Base(args[0]))
	if err := vis.Render(f, data, title); err != nil {
		f.Close()
		return fmt.Errorf("rendering page: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Info("page rendered", "path", out)

	if addr, _ := cmd.Flags().GetString("serve"); addr != "" {
		log.Info("serving rendered page", "addr", addr)
		return vis.Serve(addr, filepath.Dir(out))
	}
	return nil
}
