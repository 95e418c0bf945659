package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/born-ml/neurosym/internal/config"
	"github.com/born-ml/neurosym/internal/kb"
	"github.com/born-ml/neurosym/internal/serialization"
)

type source struct {
	definition string
	snapshot   string
}

func (s *source) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.definition, "kb", "", "Knowledge-base definition file (YAML)")
	cmd.Flags().StringVar(&s.snapshot, "snapshot", "", "Knowledge-base snapshot file")
	cmd.MarkFlagsMutuallyExclusive("kb", "snapshot")
	cmd.MarkFlagsOneRequired("kb", "snapshot")
}

// load builds the knowledge base and returns the saved queries, if any.
func (s *source) load() (*kb.KnowledgeBase, []config.Query, error) {
	opts := []kb.Option{kb.WithLogger(slog.Default())}

	if s.snapshot != "" {
		base, header, err := serialization.ReadFile(s.snapshot, opts...)
		if err != nil {
			return nil, nil, fmt.Errorf("load snapshot: %w", err)
		}
		slog.Info("snapshot loaded", "path", s.snapshot, "snapshot_id", header.SnapshotID,
			"facts", base.FactCount(), "relations", len(header.Tensors))
		return base, nil, nil
	}

	def, err := config.LoadFromFile(s.definition)
	if err != nil {
		return nil, nil, fmt.Errorf("load definition: %w", err)
	}
	base, err := def.Build(opts...)
	if err != nil {
		return nil, nil, err
	}
	slog.Info("definition loaded", "path", s.definition,
		"facts", base.FactCount(), "relations", len(base.RelationNames()))
	return base, def.Queries, nil
}

func reasonCmd() *cobra.Command {
	var (
		src    source
		query  string
		chain  []string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "reason",
		Short: "Run a reasoning query",
		Long: `Propagates confidence from a query fact along a chain of relations.

Without --query, every query saved in the definition file is run.`,
		Example: `  neurosym reason --kb syllogism.yaml --query Socrates --chain isA,isA
  neurosym reason --snapshot kb.safetensors --query Rain --chain causes,causes --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, saved, err := src.load()
			if err != nil {
				return err
			}

			queries := saved
			if query != "" {
				queries = []config.Query{{Fact: query, Chain: chain}}
			}
			if len(queries) == 0 {
				return errors.New("no query: pass --query or save queries in the definition file")
			}

			results := make([]*kb.Result, 0, len(queries))
			for _, q := range queries {
				res, err := base.Reason(q.Fact, q.Chain)
				if err != nil {
					return err
				}
				results = append(results, res)
			}
			return printResults(cmd.OutOrStdout(), results, asJSON)
		},
	}

	src.register(cmd)
	cmd.Flags().StringVarP(&query, "query", "q", "", "Fact to start from")
	cmd.Flags().StringSliceVarP(&chain, "chain", "c", nil, "Comma-separated relation chain")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as JSON")

	return cmd
}

func printResults(w io.Writer, results []*kb.Result, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if len(results) == 1 {
			return enc.Encode(results[0])
		}
		return enc.Encode(results)
	}

	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s via %v\n", res.Query, res.Relations)
		if len(res.Results) == 0 {
			fmt.Fprintln(w, "  (no facts reached)")
		}
		for _, inf := range res.Results {
			fmt.Fprintf(w, "  %-20s %.4f\n", inf.Fact, inf.Confidence)
		}
	}
	return nil
}
