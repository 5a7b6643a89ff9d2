package vkboot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vkngwrapper/core/v3/core1_0"
)

func TestSharingPolicyAliasedFamilies(t *testing.T) {
	zero := 0
	mode, families := sharingPolicy(QueueFamilyIndices{Graphics: &zero, Present: &zero})

	assert.Equal(t, core1_0.SharingModeExclusive, mode)
	assert.Nil(t, families)
}

func TestSharingPolicyDistinctFamilies(t *testing.T) {
	zero, two := 0, 2
	mode, families := sharingPolicy(QueueFamilyIndices{Graphics: &zero, Present: &two})

	assert.Equal(t, core1_0.SharingModeConcurrent, mode)
	assert.Equal(t, []int{0, 2}, families)
}
