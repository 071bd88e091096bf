package domain

import (
	"github.com/amcdental/dentalhub-backend/internal/domain/content"
	"github.com/amcdental/dentalhub-backend/internal/domain/tracks"
)

type (
	Article        = content.Article
	Lesson         = content.Lesson
	Tool           = content.Tool
	ContentSummary = content.Summary

	Track         = tracks.Track
	TrackItem     = tracks.TrackItem
	TrackProgress = tracks.Progress
	TrackView     = tracks.View
	TrackItemView = tracks.ItemView
	ItemType      = tracks.ItemType
	ItemRef       = tracks.ItemRef
)

const (
	ItemTypeArticle = tracks.ItemTypeArticle
	ItemTypeLesson  = tracks.ItemTypeLesson
	ItemTypeTool    = tracks.ItemTypeTool
)
