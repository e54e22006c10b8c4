package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	s3transfer "github.com/input-output-hk/catalyst-forge-libs/aws/s3transfer"
)

var mvCmd = &cobra.Command{
	Use:   "mv <source> <destination>",
	Short: "Move a file or object",
	Long: `Move between the local filesystem and S3, or between two S3 locations.
The source is deleted only after the transfer succeeds.`,
	Args: cobra.ExactArgs(2),
	RunE: runMv,
}

func init() {
	registerAttrFlags(mvCmd)
	rootCmd.AddCommand(mvCmd)
}

func runMv(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	attrs, err := attrsFromFlags(cmd)
	if err != nil {
		return err
	}

	task, err := s3transfer.NewTransferTask(client, s3transfer.TransferSpec{
		Src:       parseLocation(args[0]),
		Dst:       parseLocation(args[1]),
		Operation: "mv",
		Attrs:     attrs,
	})
	if err != nil {
		return err
	}

	if err := task.Move(cmd.Context()); err != nil {
		return err
	}

	log.Info().Str("src", args[0]).Str("dst", args[1]).Msg("move complete")
	return nil
}
