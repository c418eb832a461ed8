package model

import "strings"

// SortKey selects which metric a leaderboard is ranked by
type SortKey string

const (
	SortByPlayTime     SortKey = "playTime"
	SortByDeaths       SortKey = "deaths"
	SortByDistance     SortKey = "distance"
	SortByBlocksMined  SortKey = "blocksMined"
	SortByBlocksPlaced SortKey = "blocksPlaced"
	SortByItemsCrafted SortKey = "itemsCrafted"
	SortByMobKills     SortKey = "mobKills"
)

// ParseSortKey parses a sort key from its string form
func ParseSortKey(s string) (SortKey, bool) {
	switch SortKey(s) {
	case SortByPlayTime, SortByDeaths, SortByDistance, SortByBlocksMined,
		SortByBlocksPlaced, SortByItemsCrafted, SortByMobKills:
		return SortKey(s), true
	default:
		return SortByPlayTime, false
	}
}

// LeaderboardRow is one player's derived metrics, normalized for ranking.
// All metric fields are finite; malformed source counters contribute zero.
type LeaderboardRow struct {
	UUID          string  `json:"uuid"` // canonical 32-char lowercase hex
	Name          string  `json:"name"`
	PlayTimeTicks float64 `json:"play_time_ticks"`
	Deaths        float64 `json:"deaths"`
	DistanceCm    float64 `json:"distance_cm"`
	BlocksMined   float64 `json:"blocks_mined"`
	BlocksPlaced  float64 `json:"blocks_placed"`
	ItemsCrafted  float64 `json:"items_crafted"`
	MobKills      float64 `json:"mob_kills"`
}

// Metric returns the value of the field selected by key
func (r LeaderboardRow) Metric(key SortKey) float64 {
	switch key {
	case SortByDeaths:
		return r.Deaths
	case SortByDistance:
		return r.DistanceCm
	case SortByBlocksMined:
		return r.BlocksMined
	case SortByBlocksPlaced:
		return r.BlocksPlaced
	case SortByItemsCrafted:
		return r.ItemsCrafted
	case SortByMobKills:
		return r.MobKills
	default:
		return r.PlayTimeTicks
	}
}

// CompareRows orders rows descending by the metric selected by key, with
// ties broken by ascending display name. The result is a strict total
// order suitable for slices.SortFunc.
func CompareRows(a, b LeaderboardRow, key SortKey) int {
	av, bv := a.Metric(key), b.Metric(key)
	switch {
	case av > bv:
		return -1
	case av < bv:
		return 1
	}
	an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
	if an != bn {
		return strings.Compare(an, bn)
	}
	return strings.Compare(a.Name, b.Name)
}
