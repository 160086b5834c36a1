package runid

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextRoundTrip(t *testing.T) {
	ctx, id := NewContext(context.Background())
	got, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, id, got)

	_, err := uuid.Parse(id)
	assert.NoError(t, err)

	_, ok = FromContext(context.Background())
	assert.False(t, ok)
}

func TestNewContextIsUnique(t *testing.T) {
	_, a := NewContext(context.Background())
	_, b := NewContext(context.Background())
	assert.NotEqual(t, a, b)
}
