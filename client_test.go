package s3transfer

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/input-output-hk/catalyst-forge-libs/fs/billy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/catalyst-forge-libs/aws/s3transfer/internal/testutil"
)

func TestNewWithClient(t *testing.T) {
	mock := &testutil.MockS3Client{}

	client := NewWithClient(mock, "eu-central-1")
	assert.Equal(t, "eu-central-1", client.Region())
	assert.NotNil(t, client.filesystem())

	defaulted := NewWithClient(mock, "")
	assert.Equal(t, DefaultRegion, defaulted.Region())
}

func TestClient_SetFilesystem(t *testing.T) {
	client := NewWithClient(&testutil.MockS3Client{}, "")

	memFS := billy.NewInMemoryFS()
	client.SetFilesystem(memFS)
	require.NoError(t, memFS.WriteFile("/probe.txt", []byte("ok"), 0o644))

	data, err := client.filesystem().ReadFile("/probe.txt")
	require.NoError(t, err)
	assert.Equal(t, "ok", string(data))
}

func TestNew_WithCustomConfig(t *testing.T) {
	cfg := aws.Config{Region: "ap-southeast-2"}

	client, err := New(WithAWSConfig(&cfg))
	require.NoError(t, err)
	assert.Equal(t, "ap-southeast-2", client.Region())
}

func TestNew_OptionOverridesConfigRegion(t *testing.T) {
	cfg := aws.Config{Region: "ap-southeast-2"}

	client, err := New(WithAWSConfig(&cfg), WithRegion("us-west-2"))
	require.NoError(t, err)
	assert.Equal(t, "us-west-2", client.Region())
}

func TestNew_DefaultsRegion(t *testing.T) {
	client, err := New(WithAWSConfig(&aws.Config{}))
	require.NoError(t, err)
	assert.Equal(t, DefaultRegion, client.Region())
}

func TestNew_EndpointOptions(t *testing.T) {
	client, err := New(
		WithAWSConfig(&aws.Config{}),
		WithEndpoint("http://localhost:9000"),
		WithForcePathStyle(true),
		WithTimeout(5*time.Second),
		WithMaxRetries(7),
	)
	require.NoError(t, err)
	assert.NotNil(t, client.api())
}
