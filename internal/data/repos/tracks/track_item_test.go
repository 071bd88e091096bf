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

func TestTrackItemRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewTrackItemRepo(db, testutil.Logger(t))

	tr := testutil.SeedTrack(t, ctx, tx, "Implant planning", true)
	other := testutil.SeedTrack(t, ctx, tx, "Other", true)

	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	rows := []*types.TrackItem{
		{TrackID: tr.ID, Type: types.ItemTypeLesson, ItemID: uuid.New(), Order: 2, CreatedAt: base},
		{TrackID: tr.ID, Type: types.ItemTypeArticle, ItemID: uuid.New(), Order: 0, CreatedAt: base.Add(time.Second)},
		// same position as the first row, inserted later
		{TrackID: tr.ID, Type: types.ItemTypeTool, ItemID: uuid.New(), Order: 2, CreatedAt: base.Add(2 * time.Second)},
		{TrackID: other.ID, Type: types.ItemTypeTool, ItemID: uuid.New(), Order: 0, CreatedAt: base},
	}
	if _, err := repo.Create(dbc, rows); err != nil {
		t.Fatalf("Create: %v", err)
	}

	list, err := repo.ListByTrackID(dbc, tr.ID)
	if err != nil {
		t.Fatalf("ListByTrackID: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("ListByTrackID len=%d want 3", len(list))
	}
	if list[0].ID != rows[1].ID || list[1].ID != rows[0].ID || list[2].ID != rows[2].ID {
		t.Fatalf("ListByTrackID order wrong: %v %v %v", list[0].Order, list[1].Order, list[2].Order)
	}

	got, err := repo.GetByID(dbc, rows[3].ID)
	if err != nil || got == nil || got.TrackID != other.ID {
		t.Fatalf("GetByID: err=%v got=%+v", err, got)
	}
	if got, err := repo.GetByID(dbc, uuid.New()); err != nil || got != nil {
		t.Fatalf("GetByID(missing): err=%v got=%+v", err, got)
	}

	n, err := repo.FullDeleteByTrackIDs(dbc, []uuid.UUID{tr.ID})
	if err != nil || n != 3 {
		t.Fatalf("FullDeleteByTrackIDs: err=%v n=%d", err, n)
	}
	if list, err := repo.ListByTrackIDs(dbc, []uuid.UUID{tr.ID, other.ID}); err != nil || len(list) != 1 {
		t.Fatalf("after delete ListByTrackIDs: err=%v len=%d", err, len(list))
	}
}
