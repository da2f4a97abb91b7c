package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spacetime/expr"
	"github.com/katalvlaran/spacetime/frw"
)

var topologiesCmd = &cobra.Command{
	Use:   "topologies",
	Short: "List supported topologies and their radial profiles",
	Args:  cobra.NoArgs,
	RunE:  runTopologies,
}

func init() {
	rootCmd.AddCommand(topologiesCmd)
}

func runTopologies(cmd *cobra.Command, _ []string) error {
	x := expr.Sym("x")
	for _, top := range frw.Topologies() {
		f, err := frw.RadialProfile(top)
		if err != nil {
			return err
		}
		k := fmt.Sprintf("%+d", top.Curvature())
		if top.Curvature() == 0 {
			k = " 0"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-8s k = %s  f(x) = %s\n", top, k, f(x))
	}
	return nil
}
