package main

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amcdental/dentalhub-backend/internal/domain/tracks"
)

const sampleSeed = `
articles:
  - key: isolation
    title: Isolation techniques
    category: restorative
lessons:
  - key: dam
    title: Rubber dam in five minutes
    duration: 300
tracks:
  - title: Restorative foundations
    published: true
    metadata:
      cover: restorative.png
    items:
      - ref: isolation
      - ref: dam
        order: 4
      - type: tool
        itemId: 6f1c1c2e-9c1b-4c43-9a57-3f0f3b1b2c11
`

func TestParseSeedFileAndResolveRefs(t *testing.T) {
	f, err := parseSeedFile([]byte(sampleSeed))
	require.NoError(t, err)
	require.Len(t, f.Tracks, 1)

	articleID, lessonID := uuid.New(), uuid.New()
	keys := map[string]tracks.ItemRef{
		"isolation": {Type: tracks.ItemTypeArticle, ID: articleID},
		"dam":       {Type: tracks.ItemTypeLesson, ID: lessonID},
	}
	in, err := f.Tracks[0].trackInput(keys)
	require.NoError(t, err)

	assert.Equal(t, "Restorative foundations", in.Title)
	assert.True(t, in.Published)
	var meta map[string]string
	require.NoError(t, json.Unmarshal(in.Metadata, &meta))
	assert.Equal(t, "restorative.png", meta["cover"])

	require.Len(t, in.Items, 3)
	assert.Equal(t, articleID, in.Items[0].ItemID)
	assert.Nil(t, in.Items[0].Order)
	assert.Equal(t, tracks.ItemTypeLesson, in.Items[1].Type)
	require.NotNil(t, in.Items[1].Order)
	assert.Equal(t, 4, *in.Items[1].Order)
	assert.Equal(t, tracks.ItemTypeTool, in.Items[2].Type)
}

func TestParseSeedFileRejectsDuplicateKeys(t *testing.T) {
	_, err := parseSeedFile([]byte(`
articles:
  - key: same
    title: A
tools:
  - key: same
    title: B
`))
	assert.Error(t, err)
}

func TestTrackInputUnknownRef(t *testing.T) {
	tr := seedTrack{Title: "T", Items: []seedItem{{Ref: "missing"}}}
	_, err := tr.trackInput(map[string]tracks.ItemRef{})
	assert.Error(t, err)

	tr = seedTrack{Title: "T", Items: []seedItem{{Type: "podcast", ItemID: uuid.NewString()}}}
	_, err = tr.trackInput(nil)
	assert.Error(t, err)
}
