package main

import (
	"bufio"
	"os"
	"strings"

	"github.com/spf13/cobra"

	s3transfer "github.com/input-output-hk/catalyst-forge-libs/aws/s3transfer"
)

var lsCmd = &cobra.Command{
	Use:   "ls [s3://bucket[/prefix]]",
	Short: "List buckets or objects",
	Long: `List all buckets when called without arguments, or the objects and
common prefixes under a bucket path.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLs,
}

func init() {
	lsCmd.Flags().Bool("human-readable", false, "print object sizes in human-readable form")
	rootCmd.AddCommand(lsCmd)
}

func runLs(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	path := ""
	if len(args) == 1 {
		path = strings.TrimPrefix(args[0], remoteScheme)
	}

	task, err := s3transfer.NewBucketTask(client, path)
	if err != nil {
		return err
	}
	task.HumanReadable = NewFlagLoader(cmd).Bool("human-readable")

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	return task.List(cmd.Context(), w)
}
