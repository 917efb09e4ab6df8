//go:build integration
// +build integration

package storage

import (
	"context"
	"testing"

	"github.com/linskybing/projecthub-go/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinioStore_RoundTrip(t *testing.T) {
	ep, cleanup := testutils.SetupMinioForIntegration()
	defer cleanup()
	ctx := context.Background()

	store, err := NewMinioStore(ctx, MinioConfig{
		Endpoint:  ep.Addr,
		AccessKey: ep.AccessKey,
		SecretKey: ep.SecretKey,
		Bucket:    "phase-files-test",
	})
	require.NoError(t, err)

	// a second store finds the existing bucket
	_, err = NewMinioStore(ctx, MinioConfig{
		Endpoint:  ep.Addr,
		AccessKey: ep.AccessKey,
		SecretKey: ep.SecretKey,
		Bucket:    "phase-files-test",
	})
	require.NoError(t, err)

	data := []byte("%PDF-1.4 proposal")
	require.NoError(t, store.Put(ctx, "abc_proposal.pdf", "application/pdf", data))

	size, err := store.Stat(ctx, "abc_proposal.pdf")
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), size)

	require.NoError(t, store.Delete(ctx, "abc_proposal.pdf"))
	_, err = store.Stat(ctx, "abc_proposal.pdf")
	assert.Error(t, err)
}
