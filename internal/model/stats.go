package model

// Statistic category keys as they appear in vanilla stats files
const (
	CategoryMined    = "minecraft:mined"
	CategoryUsed     = "minecraft:used"
	CategoryCrafted  = "minecraft:crafted"
	CategoryKilled   = "minecraft:killed"
	CategoryKilledBy = "minecraft:killed_by"
	CategoryPickedUp = "minecraft:picked_up"
	CategoryDropped  = "minecraft:dropped"
	CategoryBroken   = "minecraft:broken"
	CategoryCustom   = "minecraft:custom"
)

// Custom counters used by the leaderboard
const (
	CustomPlayTime = "minecraft:play_time"
	CustomDeaths   = "minecraft:deaths"
	CustomMobKills = "minecraft:mob_kills"
)

// DistanceCounters are the movement-mode counters summed into total distance.
// All are measured in centimeters.
var DistanceCounters = []string{
	"minecraft:walk_one_cm",
	"minecraft:sprint_one_cm",
	"minecraft:fly_one_cm",
	"minecraft:swim_one_cm",
	"minecraft:walk_under_water_one_cm",
	"minecraft:walk_on_water_one_cm",
	"minecraft:boat_one_cm",
	"minecraft:minecart_one_cm",
	"minecraft:horse_one_cm",
	"minecraft:aviate_one_cm",
	"minecraft:climb_one_cm",
	"minecraft:crouch_one_cm",
}

// StatisticsDocument is one player's stats file after decoding.
// The schema is only loosely typed: categories and counters may be missing
// and values may be any JSON type. Readers coerce on access rather than
// trusting the shape.
type StatisticsDocument struct {
	Stats       map[string]map[string]any
	DataVersion int
}

// Category returns the counter map for a category, or nil if absent.
// Safe to call on a nil document.
func (d *StatisticsDocument) Category(name string) map[string]any {
	if d == nil || d.Stats == nil {
		return nil
	}
	return d.Stats[name]
}

// Custom returns the raw value of a custom counter, or nil if absent.
func (d *StatisticsDocument) Custom(counter string) any {
	custom := d.Category(CategoryCustom)
	if custom == nil {
		return nil
	}
	return custom[counter]
}
