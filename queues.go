package vkboot

import (
	"github.com/vkngwrapper/core/v3/core1_0"
)

// QueueFamilyIndices maps the queue roles the bootstrap needs to concrete
// family indices on one device. A nil entry means the role is unresolved.
// Both roles may resolve to the same family.
type QueueFamilyIndices struct {
	Graphics *int
	Present  *int
}

// Complete reports whether every role has a family assigned. A device is
// only selectable once this holds.
func (i QueueFamilyIndices) Complete() bool {
	return i.Graphics != nil && i.Present != nil
}

// Aliased reports whether graphics and presentation share one family.
func (i QueueFamilyIndices) Aliased() bool {
	return i.Complete() && *i.Graphics == *i.Present
}

// resolveQueueFamilies walks the families in index order and assigns each
// role to the first family satisfying its predicate, first-wins. It stops
// as soon as both roles are assigned, so it can report two distinct
// families even when a later family could serve both. presentSupport is a
// per-index query against the surface.
func resolveQueueFamilies(families []*core1_0.QueueFamilyProperties, presentSupport func(family int) (bool, error)) (QueueFamilyIndices, error) {
	var indices QueueFamilyIndices

	for idx, family := range families {
		if indices.Graphics == nil && family.QueueFlags&core1_0.QueueGraphics != 0 {
			graphics := idx
			indices.Graphics = &graphics
		}

		if indices.Present == nil {
			supported, err := presentSupport(idx)
			if err != nil {
				return QueueFamilyIndices{}, err
			}
			if supported {
				present := idx
				indices.Present = &present
			}
		}

		if indices.Complete() {
			break
		}
	}

	return indices, nil
}
