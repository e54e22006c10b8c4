package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	s3transfer "github.com/input-output-hk/catalyst-forge-libs/aws/s3transfer"
)

func TestParseLocation(t *testing.T) {
	remote := parseLocation("s3://bucket/path/file.txt")
	assert.Equal(t, s3transfer.KindRemote, remote.Kind)
	assert.Equal(t, "bucket/path/file.txt", remote.Path)

	local := parseLocation("/tmp/file.txt")
	assert.Equal(t, s3transfer.KindLocal, local.Kind)
	assert.Equal(t, "/tmp/file.txt", local.Path)

	relative := parseLocation("file.txt")
	assert.Equal(t, s3transfer.KindLocal, relative.Kind)
}
