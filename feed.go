package mako

import (
	"encoding/json"
	"time"
)

// FeedEntry is one row of the discovery feed consumed by external
// collaborators (agent crawlers enumerating a site's capsules).
type FeedEntry struct {
	URL     string `json:"url"`
	Type    Type   `json:"type"`
	Tokens  int    `json:"tokens"`
	Updated string `json:"updated"` // ISO 8601 date
	Entity  string `json:"entity"`
}

// BuildFeed serializes capsule records as the JSON discovery feed: an
// array of {url, type, tokens, updated, entity} entries.
func BuildFeed(records []*CapsuleRecord) ([]byte, error) {
	entries := make([]FeedEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, FeedEntry{
			URL:     r.URL,
			Type:    r.Type,
			Tokens:  r.Tokens,
			Updated: r.Updated.Format("2006-01-02"),
			Entity:  r.Entity,
		})
	}
	return json.MarshalIndent(entries, "", "  ")
}

// CapsuleRecord is the stored index entry for a generated capsule.
// The index powers the discovery feed and incremental regeneration.
type CapsuleRecord struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Type        Type      `json:"type"`
	Entity      string    `json:"entity"`
	Tokens      int       `json:"tokens"`
	Language    string    `json:"language"`
	Updated     time.Time `json:"updated"`
	ContentHash string    `json:"contentHash"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *CapsuleRecord) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "capsule record URL required")
	}
	if r.Entity == "" {
		return Errorf(EINVALID, "capsule record entity required")
	}
	return nil
}
