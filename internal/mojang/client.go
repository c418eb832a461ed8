// Package mojang implements a client for the Mojang profile APIs.
//
// Name lookups go through the public profile lookup endpoint; skin URLs
// come from the session server, which wraps the texture data in a
// base64-encoded JSON property.
package mojang

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/statboard/statboard/internal/model"
)

// Client errors
var (
	ErrNotFound    = errors.New("mojang: profile not found")
	ErrUnavailable = errors.New("mojang: upstream unavailable")
)

// Config holds client configuration
type Config struct {
	// BaseURL is the Mojang API base URL
	BaseURL string
	// SessionURL is the session server base URL (texture/skin data)
	SessionURL string
	// Timeout is the HTTP request timeout
	Timeout time.Duration
	// UserAgent is sent with every request
	UserAgent string
}

// DefaultConfig returns sensible defaults pointing at the public API
func DefaultConfig() Config {
	return Config{
		BaseURL:    "https://api.mojang.com",
		SessionURL: "https://sessionserver.mojang.com",
		Timeout:    10 * time.Second,
		UserAgent:  "statboard",
	}
}

// Client is an HTTP client for the Mojang profile APIs
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a new Mojang API client
func NewClient(cfg Config) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// lookupResponse is the body of a profile lookup
type lookupResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// sessionProfile is the session server profile body
type sessionProfile struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Properties []struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	} `json:"properties"`
}

// texturePayload is the decoded "textures" property value
type texturePayload struct {
	Textures struct {
		Skin struct {
			URL string `json:"url"`
		} `json:"SKIN"`
	} `json:"textures"`
}

// LookupName resolves a canonical UUID to the player's current name.
// A non-success status is a resolution failure surfaced to the caller.
func (c *Client) LookupName(ctx context.Context, uuid string) (string, error) {
	url := fmt.Sprintf("%s/minecraft/profile/lookup/%s", strings.TrimSuffix(c.cfg.BaseURL, "/"), uuid)

	var res lookupResponse
	if err := c.getJSON(ctx, url, &res); err != nil {
		return "", err
	}
	if res.Name == "" {
		return "", ErrNotFound
	}
	return res.Name, nil
}

// LookupProfile resolves a canonical UUID to a full profile via the
// session server: display name plus skin URL. A missing or undecodable
// textures property yields a nil skin URL, not an error.
func (c *Client) LookupProfile(ctx context.Context, uuid string) (*model.CachedProfile, error) {
	url := fmt.Sprintf("%s/session/minecraft/profile/%s", strings.TrimSuffix(c.cfg.SessionURL, "/"), uuid)

	var res sessionProfile
	if err := c.getJSON(ctx, url, &res); err != nil {
		return nil, err
	}
	if res.Name == "" {
		return nil, ErrNotFound
	}

	profile := &model.CachedProfile{
		UUID: uuid,
		Name: res.Name,
	}
	for _, prop := range res.Properties {
		if prop.Name != "textures" {
			continue
		}
		if url := decodeSkinURL(prop.Value); url != "" {
			profile.SkinURL = &url
		}
		break
	}
	return profile, nil
}

// decodeSkinURL extracts textures.SKIN.url from a base64-encoded texture
// property. Returns "" when the blob is missing, undecodable or has no
// skin entry.
func decodeSkinURL(value string) string {
	data, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return ""
	}
	var payload texturePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	return payload.Textures.Skin.URL
}

// getJSON performs a GET request and decodes the JSON response
func (c *Client) getJSON(ctx context.Context, url string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fallthrough to decode
	case resp.StatusCode == http.StatusNoContent || resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: HTTP %d", ErrUnavailable, resp.StatusCode)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("mojang: HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("mojang: decoding response: %w", err)
	}
	return nil
}
