package app

import (
	"gorm.io/gorm"

	"github.com/amcdental/dentalhub-backend/internal/data/repos"
	"github.com/amcdental/dentalhub-backend/internal/platform/logger"
)

type Repos struct {
	Article repos.ArticleRepo
	Lesson  repos.LessonRepo
	Tool    repos.ToolRepo

	Track         repos.TrackRepo
	TrackItem     repos.TrackItemRepo
	TrackProgress repos.TrackProgressRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Article:       repos.NewArticleRepo(db, log),
		Lesson:        repos.NewLessonRepo(db, log),
		Tool:          repos.NewToolRepo(db, log),
		Track:         repos.NewTrackRepo(db, log),
		TrackItem:     repos.NewTrackItemRepo(db, log),
		TrackProgress: repos.NewTrackProgressRepo(db, log),
	}
}
