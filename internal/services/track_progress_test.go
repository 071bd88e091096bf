package services_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repotest "github.com/amcdental/dentalhub-backend/internal/data/repos/testutil"
	types "github.com/amcdental/dentalhub-backend/internal/domain"
	domainagg "github.com/amcdental/dentalhub-backend/internal/domain/aggregates"
	"github.com/amcdental/dentalhub-backend/internal/realtime"
)

func seedTwoItemTrack(t *testing.T, e *env) (*types.Track, *types.TrackItem, *types.TrackItem) {
	t.Helper()
	tr := repotest.SeedTrack(t, e.ctx, e.db, "Composites", true)
	a := repotest.SeedTrackItem(t, e.ctx, e.db, tr.ID, types.ItemTypeArticle, uuid.New(), 0)
	b := repotest.SeedTrackItem(t, e.ctx, e.db, tr.ID, types.ItemTypeLesson, uuid.New(), 1)
	return tr, a, b
}

func TestMarkCompleteTwiceKeepsOneRow(t *testing.T) {
	e := newEnv(t)
	tr, a, _ := seedTwoItemTrack(t, e)

	first, err := e.marks.MarkComplete(e.ctx, 11, tr.ID, a.ID)
	require.NoError(t, err)
	second, err := e.marks.MarkComplete(e.ctx, 11, tr.ID, a.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(1), e.countProgress(t))
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.Completed)
	assert.NotNil(t, second.CompletedAt)
}

func TestCompletionIsScopedPerUserAndItem(t *testing.T) {
	e := newEnv(t)
	tr, a, _ := seedTwoItemTrack(t, e)

	_, err := e.marks.MarkComplete(e.ctx, 1, tr.ID, a.ID)
	require.NoError(t, err)

	owner, other := int64(1), int64(2)
	mine, err := e.tracks.GetTrack(e.ctx, tr.ID, &owner)
	require.NoError(t, err)
	assert.True(t, mine.Items[0].Completed)
	assert.False(t, mine.Items[1].Completed)

	theirs, err := e.tracks.GetTrack(e.ctx, tr.ID, &other)
	require.NoError(t, err)
	assert.False(t, theirs.Items[0].Completed)
	assert.False(t, theirs.Items[1].Completed)
	assert.Equal(t, 0, theirs.Progress.Completed)
}

func TestMarkIncompleteCreatesOrClearsRow(t *testing.T) {
	e := newEnv(t)
	tr, a, b := seedTwoItemTrack(t, e)

	fresh, err := e.marks.MarkIncomplete(e.ctx, 5, tr.ID, b.ID)
	require.NoError(t, err)
	assert.False(t, fresh.Completed)
	assert.Nil(t, fresh.CompletedAt)

	done, err := e.marks.MarkComplete(e.ctx, 5, tr.ID, a.ID)
	require.NoError(t, err)
	undone, err := e.marks.MarkIncomplete(e.ctx, 5, tr.ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, done.ID, undone.ID)
	assert.False(t, undone.Completed)
	assert.Nil(t, undone.CompletedAt)
	assert.Equal(t, int64(2), e.countProgress(t))
}

func TestMarkCompleteIgnoresGate(t *testing.T) {
	e := newEnv(t)
	tr, _, b := seedTwoItemTrack(t, e)

	row, err := e.marks.MarkComplete(e.ctx, 9, tr.ID, b.ID)
	require.NoError(t, err)
	assert.True(t, row.Completed)
}

func TestMarkCompleteLookupErrors(t *testing.T) {
	e := newEnv(t)
	tr, a, _ := seedTwoItemTrack(t, e)
	other := repotest.SeedTrack(t, e.ctx, e.db, "Other", true)

	_, err := e.marks.MarkComplete(e.ctx, 1, other.ID, a.ID)
	assert.Equal(t, domainagg.CodeNotFound, domainagg.CodeOf(err))

	_, err = e.marks.MarkComplete(e.ctx, 1, tr.ID, uuid.New())
	assert.Equal(t, domainagg.CodeNotFound, domainagg.CodeOf(err))

	_, err = e.marks.MarkIncomplete(e.ctx, 0, tr.ID, a.ID)
	assert.Equal(t, domainagg.CodeValidation, domainagg.CodeOf(err))

	assert.Zero(t, e.countProgress(t))
	assert.Empty(t, e.bus.Events())
}

func TestMarkPublishesProgressEvents(t *testing.T) {
	e := newEnv(t)
	tr, a, _ := seedTwoItemTrack(t, e)

	_, err := e.marks.MarkComplete(e.ctx, 3, tr.ID, a.ID)
	require.NoError(t, err)
	_, err = e.marks.MarkIncomplete(e.ctx, 3, tr.ID, a.ID)
	require.NoError(t, err)

	events := e.bus.Events()
	require.Len(t, events, 2)
	assert.Equal(t, realtime.EventTrackProgressChanged, events[0].Type)
	assert.Equal(t, int64(3), events[0].UserID)
	assert.Equal(t, tr.ID, events[0].TrackID)
	assert.Equal(t, a.ID, events[0].TrackItemID)
	assert.True(t, events[0].Completed)
	assert.NotNil(t, events[0].CompletedAt)
	assert.False(t, events[1].Completed)
	assert.Nil(t, events[1].CompletedAt)
}

func TestPublishFailureDoesNotFailTheWrite(t *testing.T) {
	e := newEnv(t)
	e.bus.err = errors.New("redis down")
	tr, a, _ := seedTwoItemTrack(t, e)

	row, err := e.marks.MarkComplete(e.ctx, 3, tr.ID, a.ID)
	require.NoError(t, err)
	assert.True(t, row.Completed)

	expected := `
# HELP dentalhub_progress_events_total Progress change events published by outcome.
# TYPE dentalhub_progress_events_total counter
dentalhub_progress_events_total{outcome="failed"} 1
`
	assert.NoError(t, promtest.GatherAndCompare(e.registry, strings.NewReader(expected), "dentalhub_progress_events_total"))
}

func TestListProgress(t *testing.T) {
	e := newEnv(t)
	tr, a, b := seedTwoItemTrack(t, e)
	_, err := e.marks.MarkComplete(e.ctx, 8, tr.ID, a.ID)
	require.NoError(t, err)
	_, err = e.marks.MarkIncomplete(e.ctx, 8, tr.ID, b.ID)
	require.NoError(t, err)
	_, err = e.marks.MarkComplete(e.ctx, 99, tr.ID, b.ID)
	require.NoError(t, err)

	rows, err := e.marks.ListProgress(e.ctx, 8, tr.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, int64(8), r.UserID)
	}

	none, err := e.marks.ListProgress(e.ctx, 12, tr.ID)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	_, err = e.marks.ListProgress(e.ctx, 8, uuid.New())
	assert.Equal(t, domainagg.CodeNotFound, domainagg.CodeOf(err))
	_, err = e.marks.ListProgress(e.ctx, -1, tr.ID)
	assert.Equal(t, domainagg.CodeValidation, domainagg.CodeOf(err))
}
