package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/amcdental/dentalhub-backend/internal/domain"
)

func SeedArticle(tb testing.TB, ctx context.Context, tx *gorm.DB, title string) *types.Article {
	tb.Helper()
	a := &types.Article{
		ID:       uuid.New(),
		Title:    title,
		Slug:     "article-" + uuid.NewString()[:8],
		Summary:  "summary of " + title,
		Category: "endodontics",
	}
	if err := tx.WithContext(ctx).Create(a).Error; err != nil {
		tb.Fatalf("seed article: %v", err)
	}
	return a
}

func SeedLesson(tb testing.TB, ctx context.Context, tx *gorm.DB, title string) *types.Lesson {
	tb.Helper()
	l := &types.Lesson{
		ID:       uuid.New(),
		Title:    title,
		VideoURL: "https://videos.example.com/" + uuid.NewString(),
		Duration: 600,
	}
	if err := tx.WithContext(ctx).Create(l).Error; err != nil {
		tb.Fatalf("seed lesson: %v", err)
	}
	return l
}

func SeedTool(tb testing.TB, ctx context.Context, tx *gorm.DB, title string) *types.Tool {
	tb.Helper()
	tl := &types.Tool{
		ID:       uuid.New(),
		Title:    title,
		Category: "checklists",
		FileURL:  "https://files.example.com/" + uuid.NewString() + ".pdf",
	}
	if err := tx.WithContext(ctx).Create(tl).Error; err != nil {
		tb.Fatalf("seed tool: %v", err)
	}
	return tl
}

func SeedTrack(tb testing.TB, ctx context.Context, tx *gorm.DB, title string, published bool) *types.Track {
	tb.Helper()
	tr := &types.Track{
		ID:        uuid.New(),
		Title:     title,
		Published: published,
		Metadata:  datatypes.JSON([]byte("{}")),
	}
	if err := tx.WithContext(ctx).Create(tr).Error; err != nil {
		tb.Fatalf("seed track: %v", err)
	}
	return tr
}

func SeedTrackItem(tb testing.TB, ctx context.Context, tx *gorm.DB, trackID uuid.UUID, typ types.ItemType, itemID uuid.UUID, order int) *types.TrackItem {
	tb.Helper()
	it := &types.TrackItem{
		ID:      uuid.New(),
		TrackID: trackID,
		Type:    typ,
		ItemID:  itemID,
		Order:   order,
	}
	if err := tx.WithContext(ctx).Create(it).Error; err != nil {
		tb.Fatalf("seed track item: %v", err)
	}
	return it
}

func SeedProgress(tb testing.TB, ctx context.Context, tx *gorm.DB, userID int64, trackItemID uuid.UUID, completed bool) *types.TrackProgress {
	tb.Helper()
	p := &types.TrackProgress{
		ID:          uuid.New(),
		UserID:      userID,
		TrackItemID: trackItemID,
		Completed:   completed,
	}
	if completed {
		p.CompletedAt = PtrTime(time.Now().UTC())
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed progress: %v", err)
	}
	return p
}

func PtrTime(t time.Time) *time.Time { return &t }
func PtrInt(v int) *int { return &v }
func PtrBool(v bool) *bool { return &v }
func PtrString(v string) *string { return &v }
