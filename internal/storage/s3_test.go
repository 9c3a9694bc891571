package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfg "github.com/templui/momentum/internal/config"
)

func TestObjectBaseURL(t *testing.T) {
	assert.Equal(t, "https://media.s3.eu-west-1.amazonaws.com",
		objectBaseURL(S3Config{Bucket: "media", Region: "eu-west-1"}))
	assert.Equal(t, "http://localhost:9000/media",
		objectBaseURL(S3Config{Bucket: "media", Endpoint: "http://localhost:9000/"}))
}

func TestNewWithoutBucketIsDisabled(t *testing.T) {
	st, err := New(context.Background(), &cfg.Config{})
	require.NoError(t, err)

	assert.ErrorIs(t, st.Save(context.Background(), "k", "image/png", strings.NewReader("x")), ErrStorageDisabled)
	_, err = st.URL(context.Background(), "k")
	assert.ErrorIs(t, err, ErrStorageDisabled)
}
