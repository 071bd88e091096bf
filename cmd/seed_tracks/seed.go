package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	domainagg "github.com/amcdental/dentalhub-backend/internal/domain/aggregates"
	"github.com/amcdental/dentalhub-backend/internal/domain/tracks"
)

// seedFile is the YAML layout. Content entries carry a local key that track
// items reference; items may instead point at an existing row by itemId.
type seedFile struct {
	Articles []seedArticle `yaml:"articles"`
	Lessons  []seedLesson  `yaml:"lessons"`
	Tools    []seedTool    `yaml:"tools"`
	Tracks   []seedTrack   `yaml:"tracks"`
}

type seedArticle struct {
	Key      string `yaml:"key"`
	Title    string `yaml:"title"`
	Slug     string `yaml:"slug"`
	Summary  string `yaml:"summary"`
	Category string `yaml:"category"`
	FileURL  string `yaml:"fileUrl"`
}

type seedLesson struct {
	Key         string `yaml:"key"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	VideoURL    string `yaml:"videoUrl"`
	Duration    int    `yaml:"duration"`
}

type seedTool struct {
	Key         string `yaml:"key"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
	FileURL     string `yaml:"fileUrl"`
}

type seedTrack struct {
	Title       string                 `yaml:"title"`
	Description string                 `yaml:"description"`
	Published   bool                   `yaml:"published"`
	Metadata    map[string]interface{} `yaml:"metadata"`
	Items       []seedItem             `yaml:"items"`
}

type seedItem struct {
	Type   string `yaml:"type"`
	Ref    string `yaml:"ref"`
	ItemID string `yaml:"itemId"`
	Order  *int   `yaml:"order"`
}

func parseSeedFile(raw []byte) (*seedFile, error) {
	var f seedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse seed yaml: %w", err)
	}
	seen := map[string]bool{}
	check := func(key string) error {
		key = strings.TrimSpace(key)
		if key == "" {
			return nil
		}
		if seen[key] {
			return fmt.Errorf("duplicate content key %q", key)
		}
		seen[key] = true
		return nil
	}
	for _, a := range f.Articles {
		if err := check(a.Key); err != nil {
			return nil, err
		}
	}
	for _, l := range f.Lessons {
		if err := check(l.Key); err != nil {
			return nil, err
		}
	}
	for _, t := range f.Tools {
		if err := check(t.Key); err != nil {
			return nil, err
		}
	}
	return &f, nil
}

// trackInput resolves item refs against the keys created earlier in the run.
func (t seedTrack) trackInput(keys map[string]tracks.ItemRef) (domainagg.CreateTrackInput, error) {
	in := domainagg.CreateTrackInput{
		Title:       t.Title,
		Description: t.Description,
		Published:   t.Published,
	}
	if len(t.Metadata) > 0 {
		raw, err := json.Marshal(t.Metadata)
		if err != nil {
			return in, fmt.Errorf("track %q metadata: %w", t.Title, err)
		}
		in.Metadata = raw
	}
	for i, it := range t.Items {
		var ref tracks.ItemRef
		if key := strings.TrimSpace(it.Ref); key != "" {
			r, ok := keys[key]
			if !ok {
				return in, fmt.Errorf("track %q item %d: unknown ref %q", t.Title, i, key)
			}
			ref = r
		} else {
			typ, err := tracks.ParseItemType(it.Type)
			if err != nil {
				return in, fmt.Errorf("track %q item %d: %w", t.Title, i, err)
			}
			id, err := uuid.Parse(strings.TrimSpace(it.ItemID))
			if err != nil {
				return in, fmt.Errorf("track %q item %d: invalid itemId: %w", t.Title, i, err)
			}
			ref = tracks.ItemRef{Type: typ, ID: id}
		}
		in.Items = append(in.Items, domainagg.TrackItemInput{Type: ref.Type, ItemID: ref.ID, Order: it.Order})
	}
	return in, nil
}
