package response

import (
	"github.com/statboard/statboard/internal/model"
	"github.com/statboard/statboard/internal/services/leaderboard"
)

// RowResponse is one ranked leaderboard row
type RowResponse struct {
	Rank          int     `json:"rank"`
	UUID          string  `json:"uuid"`
	Name          string  `json:"name"`
	PlayTimeTicks float64 `json:"play_time_ticks"`
	PlayTime      string  `json:"play_time"`
	Deaths        float64 `json:"deaths"`
	DistanceCm    float64 `json:"distance_cm"`
	Distance      string  `json:"distance"`
	BlocksMined   float64 `json:"blocks_mined"`
	BlocksPlaced  float64 `json:"blocks_placed"`
	ItemsCrafted  float64 `json:"items_crafted"`
	MobKills      float64 `json:"mob_kills"`
}

// LeaderboardResponse is the body of GET /leaderboard
type LeaderboardResponse struct {
	SortedBy string        `json:"sorted_by"`
	Rows     []RowResponse `json:"rows"`
}

// LeaderboardResponseFrom builds a response from ranked display rows
func LeaderboardResponseFrom(key model.SortKey, display []leaderboard.DisplayRow) LeaderboardResponse {
	rows := make([]RowResponse, len(display))
	for i, d := range display {
		rows[i] = RowResponse{
			Rank:          d.Rank,
			UUID:          d.Row.UUID,
			Name:          d.Row.Name,
			PlayTimeTicks: d.Row.PlayTimeTicks,
			PlayTime:      d.PlayTime,
			Deaths:        d.Row.Deaths,
			DistanceCm:    d.Row.DistanceCm,
			Distance:      d.Distance,
			BlocksMined:   d.Row.BlocksMined,
			BlocksPlaced:  d.Row.BlocksPlaced,
			ItemsCrafted:  d.Row.ItemsCrafted,
			MobKills:      d.Row.MobKills,
		}
	}
	return LeaderboardResponse{
		SortedBy: string(key),
		Rows:     rows,
	}
}

// PlayerNameResponse is the body of GET /players/{uuid}/name
type PlayerNameResponse struct {
	UUID    string  `json:"uuid"`
	Name    string  `json:"name"`
	SkinURL *string `json:"skin_url,omitempty"`
}
