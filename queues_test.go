package vkboot

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v3/core1_0"
)

func graphicsFamily() *core1_0.QueueFamilyProperties {
	return &core1_0.QueueFamilyProperties{QueueFlags: core1_0.QueueGraphics}
}

func computeFamily() *core1_0.QueueFamilyProperties {
	return &core1_0.QueueFamilyProperties{QueueFlags: core1_0.QueueCompute}
}

func presentAt(supported ...int) func(int) (bool, error) {
	return func(family int) (bool, error) {
		for _, s := range supported {
			if s == family {
				return true, nil
			}
		}
		return false, nil
	}
}

func TestResolveQueueFamiliesFirstWins(t *testing.T) {
	// Two graphics-capable families, both presentable. The first must
	// win both roles even though the second could serve them too.
	families := []*core1_0.QueueFamilyProperties{graphicsFamily(), graphicsFamily()}

	indices, err := resolveQueueFamilies(families, presentAt(0, 1))
	require.NoError(t, err)
	require.True(t, indices.Complete())
	assert.Equal(t, 0, *indices.Graphics)
	assert.Equal(t, 0, *indices.Present)
	assert.True(t, indices.Aliased())
}

func TestResolveQueueFamiliesSplitRoles(t *testing.T) {
	// Graphics on family 0, presentation only on family 1.
	families := []*core1_0.QueueFamilyProperties{graphicsFamily(), computeFamily()}

	indices, err := resolveQueueFamilies(families, presentAt(1))
	require.NoError(t, err)
	require.True(t, indices.Complete())
	assert.Equal(t, 0, *indices.Graphics)
	assert.Equal(t, 1, *indices.Present)
	assert.False(t, indices.Aliased())
}

func TestResolveQueueFamiliesIncomplete(t *testing.T) {
	families := []*core1_0.QueueFamilyProperties{computeFamily()}

	indices, err := resolveQueueFamilies(families, presentAt())
	require.NoError(t, err)
	assert.False(t, indices.Complete())
	assert.Nil(t, indices.Graphics)
	assert.Nil(t, indices.Present)
}

func TestResolveQueueFamiliesNoFamilies(t *testing.T) {
	indices, err := resolveQueueFamilies(nil, presentAt())
	require.NoError(t, err)
	assert.False(t, indices.Complete())
}

func TestResolveQueueFamiliesPropagatesProbeError(t *testing.T) {
	probeErr := errors.New("surface query failed")
	families := []*core1_0.QueueFamilyProperties{graphicsFamily()}

	_, err := resolveQueueFamilies(families, func(int) (bool, error) {
		return false, probeErr
	})
	assert.ErrorIs(t, err, probeErr)
}

func TestQueueFamilyIndicesAliased(t *testing.T) {
	zero, one := 0, 1

	assert.False(t, QueueFamilyIndices{}.Aliased())
	assert.False(t, QueueFamilyIndices{Graphics: &zero}.Aliased())
	assert.False(t, QueueFamilyIndices{Graphics: &zero, Present: &one}.Aliased())
	assert.True(t, QueueFamilyIndices{Graphics: &zero, Present: &zero}.Aliased())
}
