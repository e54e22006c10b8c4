package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	s3transfer "github.com/input-output-hk/catalyst-forge-libs/aws/s3transfer"
	"github.com/input-output-hk/catalyst-forge-libs/aws/s3transfer/errors"
)

var cpCmd = &cobra.Command{
	Use:   "cp <source> <destination>",
	Short: "Copy a file or object",
	Long: `Copy between the local filesystem and S3, or between two S3 locations.
Exactly one of source and destination must carry the s3:// scheme, or both
for an in-store copy.`,
	Args: cobra.ExactArgs(2),
	RunE: runCp,
}

func init() {
	registerAttrFlags(cpCmd)
	rootCmd.AddCommand(cpCmd)
}

func runCp(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	attrs, err := attrsFromFlags(cmd)
	if err != nil {
		return err
	}

	src := parseLocation(args[0])
	dst := parseLocation(args[1])

	task, err := s3transfer.NewTransferTask(client, s3transfer.TransferSpec{
		Src:       src,
		Dst:       dst,
		Operation: "cp",
		Attrs:     attrs,
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	switch {
	case src.Kind == s3transfer.KindLocal && dst.Kind == s3transfer.KindRemote:
		err = task.Upload(ctx)
	case src.Kind == s3transfer.KindRemote && dst.Kind == s3transfer.KindLocal:
		err = task.Download(ctx)
	case src.Kind == s3transfer.KindRemote && dst.Kind == s3transfer.KindRemote:
		err = task.Copy(ctx)
	default:
		return fmt.Errorf("%w: cannot copy %s to %s", errors.ErrInvalidPath, src.Kind, dst.Kind)
	}
	if err != nil {
		return err
	}

	log.Info().Str("src", args[0]).Str("dst", args[1]).Msg("copy complete")
	return nil
}
