package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twinops/twinctl/pkg/twin"
)

func TestAppendLearningCopyOnWrite(t *testing.T) {
	original := []twin.Learning{
		{ID: "L1", Name: "Goroutines"},
		{ID: "L2", Name: "Channels"},
	}

	updated := appendLearning(original, twin.Learning{ID: "L3", Name: "Interfaces"})

	require.Len(t, updated, 3)
	assert.Len(t, original, 2, "source collection must not grow")
	assert.Equal(t, original[0], updated[0])
	assert.Equal(t, original[1], updated[1])
	assert.Equal(t, "L3", updated[2].ID)
}

func TestRemoveLearningCopyOnWrite(t *testing.T) {
	original := []twin.Learning{
		{ID: "L1", Name: "Goroutines"},
		{ID: "L2", Name: "Channels"},
	}

	updated := removeLearning(original, "L1")
	require.Len(t, updated, 1)
	assert.Equal(t, "L2", updated[0].ID)
	assert.Len(t, original, 2)

	// Unknown id: content unchanged.
	unchanged := removeLearning(original, "no-such-id")
	assert.Equal(t, original, unchanged)
}

func TestReplaceLearningCopyOnWrite(t *testing.T) {
	original := []twin.Learning{
		{ID: "L1", Name: "Goroutines", Content: "old"},
		{ID: "L2", Name: "Channels"},
	}

	updated := replaceLearning(original, twin.Learning{ID: "L1", Name: "Goroutines", Content: "new"})
	require.Len(t, updated, 2)
	assert.Equal(t, "new", updated[0].Content)
	assert.Equal(t, "old", original[0].Content, "source element must not change")
}
