package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/sewmaster/internal/repository"
)

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	_, err := s.Load(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	payload := []byte(`[1,2]`)
	require.NoError(t, s.Save(ctx, "k", payload))
	payload[0] = 'x'

	got, err := s.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, string(got))
}
