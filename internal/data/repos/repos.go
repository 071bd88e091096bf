package repos

import (
	"gorm.io/gorm"

	"github.com/amcdental/dentalhub-backend/internal/data/repos/content"
	"github.com/amcdental/dentalhub-backend/internal/data/repos/tracks"
	"github.com/amcdental/dentalhub-backend/internal/platform/logger"
)

type ArticleRepo = content.ArticleRepo
type LessonRepo = content.LessonRepo
type ToolRepo = content.ToolRepo

type TrackRepo = tracks.TrackRepo
type TrackItemRepo = tracks.TrackItemRepo
type TrackProgressRepo = tracks.TrackProgressRepo

func NewArticleRepo(db *gorm.DB, baseLog *logger.Logger) ArticleRepo {
	return content.NewArticleRepo(db, baseLog)
}
func NewLessonRepo(db *gorm.DB, baseLog *logger.Logger) LessonRepo {
	return content.NewLessonRepo(db, baseLog)
}
func NewToolRepo(db *gorm.DB, baseLog *logger.Logger) ToolRepo {
	return content.NewToolRepo(db, baseLog)
}

func NewTrackRepo(db *gorm.DB, baseLog *logger.Logger) TrackRepo {
	return tracks.NewTrackRepo(db, baseLog)
}
func NewTrackItemRepo(db *gorm.DB, baseLog *logger.Logger) TrackItemRepo {
	return tracks.NewTrackItemRepo(db, baseLog)
}
func NewTrackProgressRepo(db *gorm.DB, baseLog *logger.Logger) TrackProgressRepo {
	return tracks.NewTrackProgressRepo(db, baseLog)
}
