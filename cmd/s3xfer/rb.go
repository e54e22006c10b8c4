package main

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	s3transfer "github.com/input-output-hk/catalyst-forge-libs/aws/s3transfer"
)

var rbCmd = &cobra.Command{
	Use:   "rb s3://<bucket>",
	Short: "Remove a bucket",
	Long:  `Remove a bucket. The bucket must be empty.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runRb,
}

func init() {
	rootCmd.AddCommand(rbCmd)
}

func runRb(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	bucket := strings.TrimPrefix(args[0], remoteScheme)
	task, err := s3transfer.NewBucketTask(client, bucket)
	if err != nil {
		return err
	}

	if err := task.Remove(cmd.Context()); err != nil {
		return err
	}

	log.Info().Str("bucket", bucket).Msg("bucket removed")
	return nil
}
