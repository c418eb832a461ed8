// Package leaderboard assembles sorted leaderboards from a stats source,
// resolving player identities along the way.
package leaderboard

import (
	"context"
	"log/slog"
	"slices"

	"github.com/statboard/statboard/internal/model"
	"github.com/statboard/statboard/internal/services/stats"
	"github.com/statboard/statboard/internal/source"
)

// Source supplies raw per-player stats payloads
type Source interface {
	Entries(ctx context.Context) ([]source.Entry, error)
}

// NameResolver maps UUIDs to display names, order-preserving
type NameResolver interface {
	ResolveNames(ctx context.Context, uuids []string) ([]string, error)
}

// Controller builds leaderboards
type Controller struct {
	source   Source
	stats    *stats.Service
	resolver NameResolver
	logger   *slog.Logger
}

// NewController creates a new leaderboard controller
func NewController(src Source, statsService *stats.Service, resolver NameResolver, logger *slog.Logger) *Controller {
	return &Controller{
		source:   src,
		stats:    statsService,
		resolver: resolver,
		logger:   logger,
	}
}

// Build reads every player from the source and returns rows sorted
// descending by the given key. A player whose stats payload does not
// parse gets a zero-filled row; a player whose name does not resolve is
// shown under the raw UUID.
func (c *Controller) Build(ctx context.Context, key model.SortKey) ([]model.LeaderboardRow, error) {
	entries, err := c.source.Entries(ctx)
	if err != nil {
		return nil, err
	}

	uuids := make([]string, len(entries))
	for i, e := range entries {
		uuids[i] = e.UUID
	}

	names, err := c.resolver.ResolveNames(ctx, uuids)
	if err != nil {
		return nil, err
	}

	rows := make([]model.LeaderboardRow, len(entries))
	for i, e := range entries {
		doc, ok := c.stats.Parse(e.Raw)
		if !ok {
			c.logger.Warn("stats payload did not parse, zero-filling row",
				slog.String("uuid", e.UUID))
		}
		rows[i] = c.stats.BuildRow(e.UUID, names[i], doc)
	}

	slices.SortFunc(rows, func(a, b model.LeaderboardRow) int {
		return model.CompareRows(a, b, key)
	})
	return rows, nil
}

// DisplayRow is a ranked row with human-readable time and distance
type DisplayRow struct {
	Rank     int                  `json:"rank"`
	Row      model.LeaderboardRow `json:"row"`
	PlayTime string               `json:"play_time"`
	Distance string               `json:"distance"`
}

// Display annotates sorted rows with ranks and formatted strings
func Display(rows []model.LeaderboardRow) []DisplayRow {
	out := make([]DisplayRow, len(rows))
	for i, row := range rows {
		out[i] = DisplayRow{
			Rank:     i + 1,
			Row:      row,
			PlayTime: stats.FormatPlayTime(row.PlayTimeTicks),
			Distance: stats.FormatDistance(row.DistanceCm),
		}
	}
	return out
}
