package main

import (
	"strings"

	s3transfer "github.com/input-output-hk/catalyst-forge-libs/aws/s3transfer"
)

const remoteScheme = "s3://"

// parseLocation maps a command-line path to a Location. Paths with the
// s3:// scheme are remote (bucket/key), everything else is local.
func parseLocation(raw string) s3transfer.Location {
	if strings.HasPrefix(raw, remoteScheme) {
		return s3transfer.Remote(strings.TrimPrefix(raw, remoteScheme))
	}
	return s3transfer.Local(raw)
}
