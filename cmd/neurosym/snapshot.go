package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/born-ml/neurosym/internal/config"
	"github.com/born-ml/neurosym/internal/serialization"
)

func snapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Save and inspect knowledge-base snapshots",
	}

	var definition, out string
	save := &cobra.Command{
		Use:     "save",
		Short:   "Build a knowledge base from a definition and save a snapshot",
		Example: `  neurosym snapshot save --kb syllogism.yaml --out kb.safetensors`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := config.LoadFromFile(definition)
			if err != nil {
				return err
			}
			base, err := def.Build()
			if err != nil {
				return err
			}

			id, err := serialization.WriteFile(out, base)
			if err != nil {
				return fmt.Errorf("save snapshot: %w", err)
			}
			slog.Info("snapshot written", "path", out, "snapshot_id", id)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", id, out)
			return nil
		},
	}
	save.Flags().StringVar(&definition, "kb", "", "Knowledge-base definition file (YAML)")
	save.Flags().StringVarP(&out, "out", "o", "", "Snapshot output path")
	_ = save.MarkFlagRequired("kb")
	_ = save.MarkFlagRequired("out")

	show := &cobra.Command{
		Use:   "show FILE",
		Short: "Print a snapshot's header",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			//nolint:gosec // G304: snapshot path is supplied by the user
			file, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer func() {
				_ = file.Close()
			}()

			header, err := serialization.ReadHeader(file)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "snapshot: %s\n", header.SnapshotID)
			fmt.Fprintf(w, "version:  %s\n", header.Version)
			fmt.Fprintf(w, "facts:    %v\n", header.Facts)
			for _, t := range header.Tensors {
				fmt.Fprintf(w, "relation: %s %v\n", t.Relation, t.Shape)
			}
			return nil
		},
	}

	cmd.AddCommand(save, show)
	return cmd
}
