package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	s3transfer "github.com/input-output-hk/catalyst-forge-libs/aws/s3transfer"
)

var rmCmd = &cobra.Command{
	Use:   "rm <path>",
	Short: "Delete a file or object",
	Args:  cobra.ExactArgs(1),
	RunE:  runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	task, err := s3transfer.NewTransferTask(client, s3transfer.TransferSpec{
		Src:       parseLocation(args[0]),
		Operation: "rm",
	})
	if err != nil {
		return err
	}

	if err := task.Delete(cmd.Context()); err != nil {
		return err
	}

	log.Info().Str("path", args[0]).Msg("delete complete")
	return nil
}
