package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/surfgraph/pagerank/edgelist"
	"github.com/surfgraph/pagerank/internal/config"
	"github.com/surfgraph/pagerank/rank"
)

var rankCmd = &cobra.Command{
	Use:   "rank <edge-list>",
	Short: "Compute PageRank scores for an edge-list dataset",
	Args:  cobra.ExactArgs(1),
	RunE:  runRank,
}

func init() {
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().Float64("damping", 0.85, "damping factor in (0,1)")
	rankCmd.Flags().Float64("epsilon", 0.000001, "per-node convergence tolerance")
	rankCmd.Flags().Int("max-iterations", 150, "iteration cap before giving up")
	rankCmd.Flags().Int("workers", 1, "sweep parallelism")
	rankCmd.Flags().String("labels", "", "node label file for personalization")
	rankCmd.Flags().String("category", "", "label category to personalize toward")
}

func runRank(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyRankFlags(cmd, &cfg)
	log := newLogger(cfg.Verbose)

	model, edges, err := loadModel(args[0])
	if err != nil {
		return err
	}
	log.Info("edge list loaded", "path", args[0], "edges", len(edges), "nodes", model.Len())
	log.Debug("transition model derived", "dangling", len(model.Dangling()))

	p, err := personalization(model, cfg)
	if err != nil {
		return err
	}

	ranks, err := rank.Rank(cmd.Context(), model, p, rank.Options{
		Damping:       cfg.Damping,
		Epsilon:       cfg.Epsilon,
		MaxIterations: cfg.MaxIterations,
		Workers:       cfg.Workers,
	})
	if err != nil {
		return fmt.Errorf("computing ranks: %w", err)
	}
	log.Debug("rank computation converged")

	writeRanks(cmd.OutOrStdout(), ranks)
	return nil
}

// applyRankFlags lets explicitly set flags override file and env config.
func applyRankFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("damping") {
		cfg.Damping, _ = cmd.Flags().GetFloat64("damping")
	}
	if cmd.Flags().Changed("epsilon") {
		cfg.Epsilon, _ = cmd.Flags().GetFloat64("epsilon")
	}
	if cmd.Flags().Changed("max-iterations") {
		cfg.MaxIterations, _ = cmd.Flags().GetInt("max-iterations")
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers, _ = cmd.Flags().GetInt("workers")
	}
	if cmd.Flags().Changed("labels") {
		cfg.Labels, _ = cmd.Flags().GetString("labels")
	}
	if cmd.Flags().Changed("category") {
		cfg.Category, _ = cmd.Flags().GetString("category")
	}
}

// loadModel parses an edge-list file and derives its transition model.
func loadModel(path string) (*rank.Transition, []edgelist.Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	edges, err := edgelist.Parse(f)
	if err != nil {
		return nil, nil, err
	}
	graph, err := edgelist.Build(edges)
	if err != nil {
		return nil, nil, err
	}
	model, err := rank.NewTransition(graph)
	if err != nil {
		return nil, nil, err
	}
	return model, edges, nil
}

// personalization resolves the personalization vector: uniform unless a
// label file and category are configured.
func personalization(model *rank.Transition, cfg config.Config) (rank.Personalization, error) {
	if cfg.Labels == "" {
		return nil, nil
	}
	if cfg.Category == "" {
		return nil, fmt.Errorf("--labels requires --category")
	}

	f, err := os.Open(cfg.Labels)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	labels, err := edgelist.ParseLabels(f)
	if err != nil {
		return nil, err
	}
	return rank.FromWeights(model, edgelist.CategoryWeights(labels, cfg.Category))
}

// writeRanks prints "id: rank" lines, highest rank first, rounded to four
// decimal places.
func writeRanks(w io.Writer, ranks map[string]float64) {
	for _, scored := range rank.Order(ranks) {
		fmt.Fprintf(w, "%s: %.4f\n", scored.ID, scored.Rank)
	}
}
