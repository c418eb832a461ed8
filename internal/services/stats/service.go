// Package stats parses raw player statistics files and derives normalized
// leaderboard rows from them.
package stats

import (
	"encoding/json"

	"github.com/statboard/statboard/internal/model"
)

// Service turns raw stats payloads into leaderboard rows
type Service struct {
	placeable *Classifier
}

// New creates a new stats Service
func New(placeable *Classifier) *Service {
	if placeable == nil {
		placeable = DefaultClassifier()
	}
	return &Service{
		placeable: placeable,
	}
}

// Parse decodes a raw stats payload into a StatisticsDocument.
// Returns ok=false for anything that is not a JSON object; it never
// panics and no decode error escapes. Missing categories are fine,
// readers treat absence as zero.
func (s *Service) Parse(text string) (*model.StatisticsDocument, bool) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &root); err != nil || root == nil {
		return nil, false
	}

	doc := &model.StatisticsDocument{
		Stats: make(map[string]map[string]any),
	}

	if raw, ok := root["DataVersion"]; ok {
		var version int
		if err := json.Unmarshal(raw, &version); err == nil {
			doc.DataVersion = version
		}
	}

	if raw, ok := root["stats"]; ok {
		var categories map[string]json.RawMessage
		if err := json.Unmarshal(raw, &categories); err == nil {
			for name, rawCounters := range categories {
				var counters map[string]any
				if err := json.Unmarshal(rawCounters, &counters); err == nil && counters != nil {
					doc.Stats[name] = counters
				}
			}
		}
	}

	return doc, true
}

// BuildRow derives one player's leaderboard row from a parsed stats
// document. A nil document yields a zero-filled row, so a player whose
// stats failed to parse still appears rather than breaking the build.
func (s *Service) BuildRow(uuid, name string, doc *model.StatisticsDocument) model.LeaderboardRow {
	return model.LeaderboardRow{
		UUID:          uuid,
		Name:          name,
		PlayTimeTicks: coerce(doc.Custom(model.CustomPlayTime)),
		Deaths:        coerce(doc.Custom(model.CustomDeaths)),
		DistanceCm:    s.sumDistance(doc),
		BlocksMined:   sumAll(doc.Category(model.CategoryMined)),
		BlocksPlaced:  s.estimateBlocksPlaced(doc.Category(model.CategoryUsed)),
		ItemsCrafted:  sumAll(doc.Category(model.CategoryCrafted)),
		MobKills:      coerce(doc.Custom(model.CustomMobKills)),
	}
}

// sumDistance totals the movement-mode distance counters, in centimeters
func (s *Service) sumDistance(doc *model.StatisticsDocument) float64 {
	var total float64
	for _, counter := range model.DistanceCounters {
		total += coerce(doc.Custom(counter))
	}
	return total
}

// estimateBlocksPlaced approximates blocks placed from the used category.
// Only identifiers the classifier judges placeable contribute.
func (s *Service) estimateBlocksPlaced(used map[string]any) float64 {
	var total float64
	for itemID, v := range used {
		if s.placeable.Placeable(itemID) {
			total += coerce(v)
		}
	}
	return total
}
