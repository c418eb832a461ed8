package model

// CachedProfile is a persisted identity record for one player.
// Keyed by canonical UUID; entries never expire on their own.
type CachedProfile struct {
	UUID    string  `json:"uuid"`
	Name    string  `json:"name"`
	SkinURL *string `json:"skin_url,omitempty"` // nil when the skin is unknown
}
