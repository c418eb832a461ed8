package stats

import "strings"

// itemNamespace is the identifier prefix of vanilla items
const itemNamespace = "minecraft:"

// nonPlaceableSubstrings marks item categories that are used but never
// placed: tools, armor, weapons, foods, consumables. An item whose
// identifier contains any of these is excluded from the blocks-placed
// estimate. The list is a known-lossy heuristic; false positives and
// negatives are accepted.
var nonPlaceableSubstrings = []string{
	"_sword",
	"_pickaxe",
	"_axe",
	"_shovel",
	"_hoe",
	"_helmet",
	"_chestplate",
	"_leggings",
	"_boots",
	"bow", // also covers crossbow
	"trident",
	"shield",
	"fishing_rod",
	"elytra",
	"_horse_armor",
	"bucket",
	"potion",
	"bottle",
	"stew",
	"soup",
	"apple",
	"bread",
	"carrot",
	"potato",
	"beef",
	"porkchop",
	"mutton",
	"chicken",
	"salmon",
	"cod",
	"cookie",
	"shears",
	"flint_and_steel",
}

// Classifier judges whether an item identifier looks like a placeable
// block. There is no direct "blocks placed" counter in the stats schema,
// so placement is estimated from the used category with non-block item
// categories denied.
type Classifier struct {
	namespace string
	deny      []string
}

// DefaultClassifier returns a classifier with the stock deny-list
func DefaultClassifier() *Classifier {
	return NewClassifier(itemNamespace, nonPlaceableSubstrings)
}

// NewClassifier builds a classifier for the given item namespace and
// ordered deny-list of identifier substrings
func NewClassifier(namespace string, deny []string) *Classifier {
	return &Classifier{
		namespace: namespace,
		deny:      deny,
	}
}

// Placeable reports whether itemID is judged to be a placeable block
func (c *Classifier) Placeable(itemID string) bool {
	if !strings.HasPrefix(itemID, c.namespace) {
		return false
	}
	for _, bad := range c.deny {
		if strings.Contains(itemID, bad) {
			return false
		}
	}
	return true
}
