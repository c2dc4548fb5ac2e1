package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyunwoo-ji/tabiori/internal/catalog"
	"github.com/hyunwoo-ji/tabiori/internal/idgen"
	"github.com/hyunwoo-ji/tabiori/internal/share"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <token>",
	Short: "Decode a share token and print the itinerary it carries",
	Args:  cobra.ExactArgs(1),
	RunE:  runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	trip := share.NewCodec(idgen.UUID{}).Decode(args[0])
	if trip == nil {
		return errors.New("token does not decode to a valid itinerary")
	}

	// Place names are best-effort: a token may reference places the local
	// catalog does not know.
	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n", trip.Title, trip.CityID)
	if trip.StartDate != "" {
		fmt.Fprintf(out, "  %s – %s\n", trip.StartDate, trip.EndDate)
	}
	for _, day := range trip.Days {
		fmt.Fprintf(out, "Day %d\n", day.DayNumber)
		if len(day.Items) == 0 {
			fmt.Fprintln(out, "  (empty)")
			continue
		}
		for _, item := range day.Items {
			name := item.PlaceID
			if place, ok := cat.Lookup(item.PlaceID); ok {
				name = place.Name
			}
			line := "  " + name
			if item.StartTime != "" {
				line = "  " + item.StartTime + "  " + name
			}
			if item.Memo != "" {
				line += "  — " + item.Memo
			}
			fmt.Fprintln(out, line)
		}
	}
	return nil
}
