package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifierPlaceable(t *testing.T) {
	c := DefaultClassifier()

	placeable := []string{
		"minecraft:stone",
		"minecraft:cobblestone",
		"minecraft:oak_planks",
		"minecraft:torch",
		"minecraft:crafting_table",
		"minecraft:water", // false positive accepted by the heuristic
	}
	for _, id := range placeable {
		assert.True(t, c.Placeable(id), "%s should be judged placeable", id)
	}

	denied := []string{
		"minecraft:diamond_sword",
		"minecraft:iron_pickaxe",
		"minecraft:golden_apple",
		"minecraft:bread",
		"minecraft:leather_boots",
		"minecraft:water_bucket",
		"minecraft:flint_and_steel",
		"minecraft:shears",
		"minecraft:baked_potato",
		"minecraft:mushroom_stew",
	}
	for _, id := range denied {
		assert.False(t, c.Placeable(id), "%s should be denied", id)
	}
}

func TestClassifierRejectsForeignNamespace(t *testing.T) {
	c := DefaultClassifier()

	assert.False(t, c.Placeable("modid:stone"))
	assert.False(t, c.Placeable("stone"))
	assert.False(t, c.Placeable(""))
}

func TestClassifierCustomDenyList(t *testing.T) {
	c := NewClassifier("minecraft:", []string{"_sword"})

	assert.False(t, c.Placeable("minecraft:diamond_sword"))
	assert.True(t, c.Placeable("minecraft:bread"))
}
