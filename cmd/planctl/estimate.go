package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hyunwoo-ji/tabiori/internal/travel"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate <from-lat> <from-lng> <to-lat> <to-lng>",
	Short: "Estimate travel time between two coordinates",
	Args:  cobra.ExactArgs(4),
	RunE:  runEstimate,
}

func init() {
	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(cmd *cobra.Command, args []string) error {
	coords := make([]float64, 4)
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("argument %d: %q is not a number", i+1, arg)
		}
		coords[i] = v
	}

	est := travel.EstimateLeg(coords[0], coords[1], coords[2], coords[3])

	fmt.Fprintf(cmd.OutOrStdout(), "%s, %s (%s)\n",
		est.Mode,
		travel.FormatMinutes(est.Minutes),
		travel.FormatDistance(est.DistanceKm),
	)
	return nil
}
