package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Leaderboard:
		o.printLeaderboard(v)
	case PlayerName:
		o.printPlayerName(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Row response type (matches API)
type Row struct {
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

// Leaderboard response type
type Leaderboard struct {
	SortedBy string `json:"sorted_by"`
	Rows     []Row  `json:"rows"`
}

// PlayerName response type
type PlayerName struct {
	UUID    string  `json:"uuid"`
	Name    string  `json:"name"`
	SkinURL *string `json:"skin_url,omitempty"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printLeaderboard(l Leaderboard) {
	fmt.Printf("Leaderboard (sorted by %s):\n", l.SortedBy)

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tNAME\tPLAY TIME\tDEATHS\tDISTANCE\tMINED\tPLACED\tCRAFTED\tMOB KILLS")
	for _, r := range l.Rows {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.0f\t%s\t%.0f\t%.0f\t%.0f\t%.0f\n",
			r.Rank, r.Name, r.PlayTime, r.Deaths, r.Distance,
			r.BlocksMined, r.BlocksPlaced, r.ItemsCrafted, r.MobKills)
	}
	_ = w.Flush()
}

func (o *Output) printPlayerName(p PlayerName) {
	fmt.Printf("Player: %s (%s)\n", p.Name, p.UUID)
	if p.SkinURL != nil {
		fmt.Printf("Skin: %s\n", *p.SkinURL)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
