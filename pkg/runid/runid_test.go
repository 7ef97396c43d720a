package runid_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/userconfig/pkg/runid"
)

func TestNew(t *testing.T) {
	t.Parallel()

	a, b := runid.New(), runid.New()
	assert.NotEqual(t, a, b)

	_, err := uuid.Parse(a)
	require.NoError(t, err)
}

func TestContext(t *testing.T) {
	t.Parallel()

	assert.Empty(t, runid.FromContext(context.Background()))
	//nolint:staticcheck // nil context is handled explicitly
	assert.Empty(t, runid.FromContext(nil))

	ctx := runid.WithContext(context.Background(), "run-1")
	assert.Equal(t, "run-1", runid.FromContext(ctx))
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := runid.LoggerExtractor()

	_, ok := extract(context.Background())
	assert.False(t, ok)

	attr, ok := extract(runid.WithContext(context.Background(), "run-1"))
	require.True(t, ok)
	assert.Equal(t, "run_id", attr.Key)
	assert.Equal(t, "run-1", attr.Value.String())
}
