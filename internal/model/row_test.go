package model

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSortKey(t *testing.T) {
	for _, valid := range []string{
		"playTime", "deaths", "distance", "blocksMined",
		"blocksPlaced", "itemsCrafted", "mobKills",
	} {
		key, ok := ParseSortKey(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, SortKey(valid), key)
	}

	key, ok := ParseSortKey("bogus")
	assert.False(t, ok)
	assert.Equal(t, SortByPlayTime, key)

	_, ok = ParseSortKey("")
	assert.False(t, ok)
}

func TestMetric(t *testing.T) {
	row := LeaderboardRow{
		PlayTimeTicks: 1,
		Deaths:        2,
		DistanceCm:    3,
		BlocksMined:   4,
		BlocksPlaced:  5,
		ItemsCrafted:  6,
		MobKills:      7,
	}

	assert.Equal(t, float64(1), row.Metric(SortByPlayTime))
	assert.Equal(t, float64(2), row.Metric(SortByDeaths))
	assert.Equal(t, float64(3), row.Metric(SortByDistance))
	assert.Equal(t, float64(4), row.Metric(SortByBlocksMined))
	assert.Equal(t, float64(5), row.Metric(SortByBlocksPlaced))
	assert.Equal(t, float64(6), row.Metric(SortByItemsCrafted))
	assert.Equal(t, float64(7), row.Metric(SortByMobKills))
}

func TestCompareRowsDescending(t *testing.T) {
	rows := []LeaderboardRow{
		{Name: "A", PlayTimeTicks: 10},
		{Name: "B", PlayTimeTicks: 30},
		{Name: "C", PlayTimeTicks: 20},
	}

	slices.SortFunc(rows, func(a, b LeaderboardRow) int {
		return CompareRows(a, b, SortByPlayTime)
	})

	got := []float64{rows[0].PlayTimeTicks, rows[1].PlayTimeTicks, rows[2].PlayTimeTicks}
	assert.Equal(t, []float64{30, 20, 10}, got)
}

func TestCompareRowsTieBreaksByNameAscending(t *testing.T) {
	a := LeaderboardRow{Name: "alice", Deaths: 5}
	b := LeaderboardRow{Name: "Bob", Deaths: 5}

	// Case-insensitive: "alice" sorts before "Bob"
	assert.Negative(t, CompareRows(a, b, SortByDeaths))
	assert.Positive(t, CompareRows(b, a, SortByDeaths))
}

func TestCompareRowsEqual(t *testing.T) {
	a := LeaderboardRow{Name: "Same", MobKills: 9}
	assert.Zero(t, CompareRows(a, a, SortByMobKills))
}

func TestCompareRowsAntisymmetric(t *testing.T) {
	rows := []LeaderboardRow{
		{Name: "A", BlocksMined: 3},
		{Name: "B", BlocksMined: 3},
		{Name: "b", BlocksMined: 3},
		{Name: "C", BlocksMined: 1},
	}

	for _, x := range rows {
		for _, y := range rows {
			assert.Equal(t, CompareRows(x, y, SortByBlocksMined), -CompareRows(y, x, SortByBlocksMined))
		}
	}
}
