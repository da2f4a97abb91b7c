package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spacetime/frw"
	"github.com/katalvlaran/spacetime/render"
)

var showCmd = &cobra.Command{
	Use:   "show [topology]",
	Short: "Print the metric tensor for a topology",
	Long: `Show builds the FRW metric for the given topology (flat, closed or
open; defaults to the configured topology) and prints its component grid
in the selected format.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	addMetricFlags(showCmd)
	showCmd.Flags().Bool("compact-zeros", false, "render zero components as ·")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	top, err := resolveTopology(args)
	if err != nil {
		return err
	}
	format, err := resolveFormat(cmd)
	if err != nil {
		return err
	}
	fopts, err := metricOptions(cmd)
	if err != nil {
		return err
	}

	g, err := frw.Metric(top, fopts...)
	if err != nil {
		return fmt.Errorf("failed to build metric: %w", err)
	}

	ropts := []render.Option{render.WithFormat(format)}
	if compact, _ := cmd.Flags().GetBool("compact-zeros"); compact {
		ropts = append(ropts, render.WithCompactZeros())
	}
	out, err := render.Matrix(g, ropts...)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
