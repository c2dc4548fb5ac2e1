package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hyunwoo-ji/tabiori/internal/domain"
	"github.com/hyunwoo-ji/tabiori/internal/idgen"
	"github.com/hyunwoo-ji/tabiori/internal/share"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <trip.json>",
	Short: "Encode a trip JSON document into a share token",
	Args:  cobra.ExactArgs(1),
	RunE:  runEncode,
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read trip file: %w", err)
	}

	var trip domain.Trip
	if err := json.Unmarshal(raw, &trip); err != nil {
		return fmt.Errorf("parse trip file: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), share.NewCodec(idgen.UUID{}).Encode(trip))
	return nil
}
