package tracks

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/amcdental/dentalhub-backend/internal/data/repos/testutil"
	types "github.com/amcdental/dentalhub-backend/internal/domain"
	"github.com/amcdental/dentalhub-backend/internal/platform/dbctx"
)

func TestTrackRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewTrackRepo(db, testutil.Logger(t))

	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	older := &types.Track{Title: "Rubber dam basics", Published: true, CreatedAt: base, UpdatedAt: base}
	newer := &types.Track{Title: "Composite layering", Published: true, CreatedAt: base.Add(time.Hour), UpdatedAt: base.Add(time.Hour)}
	draft := &types.Track{Title: "Draft", Published: false, CreatedAt: base.Add(2 * time.Hour), UpdatedAt: base.Add(2 * time.Hour)}
	if _, err := repo.Create(dbc, []*types.Track{older, newer, draft}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if older.ID == uuid.Nil {
		t.Fatalf("Create did not assign id")
	}

	got, err := repo.GetByID(dbc, newer.ID)
	if err != nil || got == nil || got.Title != "Composite layering" {
		t.Fatalf("GetByID: err=%v got=%v", err, got)
	}
	if missing, err := repo.GetByID(dbc, uuid.New()); err != nil || missing != nil {
		t.Fatalf("GetByID(missing): err=%v got=%v", err, missing)
	}

	published, err := repo.List(dbc, true)
	if err != nil {
		t.Fatalf("List(published): %v", err)
	}
	if len(published) != 2 || published[0].ID != newer.ID || published[1].ID != older.ID {
		t.Fatalf("List(published) order wrong: %+v", published)
	}
	all, err := repo.List(dbc, false)
	if err != nil || len(all) != 3 || all[0].ID != draft.ID {
		t.Fatalf("List(all): err=%v len=%d", err, len(all))
	}

	if err := repo.UpdateFields(dbc, draft.ID, map[string]interface{}{"published": true, "title": "Now live"}); err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}
	got, _ = repo.GetByID(dbc, draft.ID)
	if got == nil || !got.Published || got.Title != "Now live" {
		t.Fatalf("UpdateFields not applied: %+v", got)
	}

	n, err := repo.FullDeleteByIDs(dbc, []uuid.UUID{older.ID})
	if err != nil || n != 1 {
		t.Fatalf("FullDeleteByIDs: err=%v n=%d", err, n)
	}
	if rows, err := repo.GetByIDs(dbc, []uuid.UUID{older.ID}); err != nil || len(rows) != 0 {
		t.Fatalf("after FullDeleteByIDs GetByIDs: err=%v len=%d", err, len(rows))
	}
}
