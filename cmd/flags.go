package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/spacetime/frw"
	"github.com/katalvlaran/spacetime/render"
)

// addMetricFlags registers the flags shared by every command that builds
// a metric.
func addMetricFlags(c *cobra.Command) {
	c.Flags().String("scale", "", "scale-factor function name (default \"a\")")
	c.Flags().String("radius-symbol", "", "curvature radius symbol (default \"R\")")
	c.Flags().Float64("radius", 0, "pin the curvature radius to a numeric value")
	c.Flags().StringSlice("coords", nil, "coordinate names: time,radial,polar,azimuth")
	c.Flags().String("signature", "", "sign convention: mostly-plus or mostly-minus")
}

// resolveTopology picks the topology from the positional argument, falling
// back to the configured default.
func resolveTopology(args []string) (frw.Topology, error) {
	label := viper.GetString("topology")
	if len(args) > 0 {
		label = args[0]
	}
	return frw.ParseTopology(label)
}

// resolveFormat picks the output format from --format, falling back to
// the configured default.
func resolveFormat(cmd *cobra.Command) (render.Format, error) {
	label, _ := cmd.Flags().GetString("format")
	if label == "" {
		label = viper.GetString("format")
	}
	return render.ParseFormat(label)
}

// metricOptions translates command flags into frw options. Flag input is
// user input, so everything the frw constructors would panic on is
// validated here and returned as an error instead.
func metricOptions(cmd *cobra.Command) ([]frw.Option, error) {
	var opts []frw.Option

	if scale, _ := cmd.Flags().GetString("scale"); scale != "" {
		opts = append(opts, frw.WithScaleFunc(scale))
	}
	if sym, _ := cmd.Flags().GetString("radius-symbol"); sym != "" {
		opts = append(opts, frw.WithCurvatureRadius(sym))
	}
	if cmd.Flags().Changed("radius") {
		r, _ := cmd.Flags().GetFloat64("radius")
		if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
			return nil, fmt.Errorf("--radius must be finite and positive, got %v", r)
		}
		opts = append(opts, frw.WithCurvatureRadiusValue(r))
	}
	if coords, _ := cmd.Flags().GetStringSlice("coords"); len(coords) > 0 {
		if len(coords) != 4 {
			return nil, fmt.Errorf("--coords needs exactly 4 names, got %d", len(coords))
		}
		for _, c := range coords {
			if c == "" {
				return nil, fmt.Errorf("--coords names must be non-empty")
			}
		}
		opts = append(opts, frw.WithCoordinates(coords[0], coords[1], coords[2], coords[3]))
	}
	if label, _ := cmd.Flags().GetString("signature"); label != "" {
		sig, err := frw.ParseSignature(label)
		if err != nil {
			return nil, err
		}
		opts = append(opts, frw.WithSignature(sig))
	}

	return opts, nil
}
