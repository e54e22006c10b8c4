package main

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	s3transfer "github.com/input-output-hk/catalyst-forge-libs/aws/s3transfer"
)

var mbCmd = &cobra.Command{
	Use:   "mb s3://<bucket>",
	Short: "Create a bucket",
	Args:  cobra.ExactArgs(1),
	RunE:  runMb,
}

func init() {
	rootCmd.AddCommand(mbCmd)
}

func runMb(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	bucket := strings.TrimPrefix(args[0], remoteScheme)
	task, err := s3transfer.NewBucketTask(client, bucket)
	if err != nil {
		return err
	}

	if err := task.Create(cmd.Context()); err != nil {
		return err
	}

	log.Info().Str("bucket", bucket).Msg("bucket created")
	return nil
}
