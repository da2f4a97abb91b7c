package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spacetime/frw"
	"github.com/katalvlaran/spacetime/render"
)

var lineCmd = &cobra.Command{
	Use:   "line [topology]",
	Short: "Print the ds² line element for a topology",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLine,
}

func init() {
	addMetricFlags(lineCmd)
	rootCmd.AddCommand(lineCmd)
}

func runLine(cmd *cobra.Command, args []string) error {
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

	out, err := render.LineElement(g, render.WithFormat(format))
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
