package handlers

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	domainagg "github.com/amcdental/dentalhub-backend/internal/domain/aggregates"
	"github.com/amcdental/dentalhub-backend/internal/domain/tracks"
	"github.com/amcdental/dentalhub-backend/internal/http/response"
	"github.com/amcdental/dentalhub-backend/internal/platform/apierr"
	"github.com/amcdental/dentalhub-backend/internal/services"
)

type TrackHandler struct {
	tracks   services.TrackService
	progress services.TrackProgressService
}

func NewTrackHandler(tracks services.TrackService, progress services.TrackProgressService) *TrackHandler {
	return &TrackHandler{tracks: tracks, progress: progress}
}

type trackItemRequest struct {
	Type   string `json:"type"`
	ItemID string `json:"itemId"`
	Order  *int   `json:"order"`
}

type createTrackRequest struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Published   bool               `json:"published"`
	Metadata    json.RawMessage    `json:"metadata"`
	Items       []trackItemRequest `json:"items"`
}

// Items distinguishes "absent" (nil) from "replace with empty" (pointer to empty slice).
type updateTrackRequest struct {
	Title       *string             `json:"title"`
	Description *string             `json:"description"`
	Published   *bool               `json:"published"`
	Metadata    json.RawMessage     `json:"metadata"`
	Items       *[]trackItemRequest `json:"items"`
}

type completionRequest struct {
	UserID *int64 `json:"userId"`
}

func toItemInputs(in []trackItemRequest) ([]domainagg.TrackItemInput, error) {
	out := make([]domainagg.TrackItemInput, 0, len(in))
	for i, raw := range in {
		typ, err := tracks.ParseItemType(raw.Type)
		if err != nil {
			return nil, domainagg.Validation("Tracks.Track.Input", fmt.Sprintf("items[%d]: %v", i, err))
		}
		id, err := uuid.Parse(strings.TrimSpace(raw.ItemID))
		if err != nil || id == uuid.Nil {
			return nil, domainagg.Validation("Tracks.Track.Input", fmt.Sprintf("items[%d]: itemId must be a uuid", i))
		}
		out = append(out, domainagg.TrackItemInput{Type: typ, ItemID: id, Order: raw.Order})
	}
	return out, nil
}

// POST /api/tracks
func (h *TrackHandler) CreateTrack(c *gin.Context) {
	var req createTrackRequest
	if err := bindJSON(c, &req); err != nil {
		response.RespondAppError(c, err)
		return
	}
	meta, err := jsonObject(req.Metadata, "metadata")
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	items, err := toItemInputs(req.Items)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	view, err := h.tracks.CreateTrack(c.Request.Context(), domainagg.CreateTrackInput{
		Title:       req.Title,
		Description: req.Description,
		Published:   req.Published,
		Metadata:    datatypes.JSON(meta),
		Items:       items,
	})
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"track": view})
}

// GET /api/tracks?published=true|all
func (h *TrackHandler) ListTracks(c *gin.Context) {
	publishedOnly := true
	switch strings.ToLower(strings.TrimSpace(c.DefaultQuery("published", "true"))) {
	case "true", "1", "":
	case "all", "false", "0":
		publishedOnly = false
	default:
		response.RespondAppError(c, apierr.BadRequest("invalid_query", "published must be true or all"))
		return
	}
	views, err := h.tracks.ListTracks(c.Request.Context(), publishedOnly)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"tracks": views})
}

// GET /api/tracks/:id?userId=<int>
func (h *TrackHandler) GetTrack(c *gin.Context) {
	trackID, err := pathUUID(c, "id", "track")
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	viewer, err := optionalUserID(c)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	view, err := h.tracks.GetTrack(c.Request.Context(), trackID, viewer)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"track": view})
}

// PUT /api/tracks/:id
func (h *TrackHandler) UpdateTrack(c *gin.Context) {
	trackID, err := pathUUID(c, "id", "track")
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	var req updateTrackRequest
	if err := bindJSON(c, &req); err != nil {
		response.RespondAppError(c, err)
		return
	}
	meta, err := jsonObject(req.Metadata, "metadata")
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	in := domainagg.UpdateTrackInput{
		TrackID:     trackID,
		Title:       req.Title,
		Description: req.Description,
		Published:   req.Published,
		Metadata:    datatypes.JSON(meta),
	}
	if req.Items != nil {
		items, err := toItemInputs(*req.Items)
		if err != nil {
			response.RespondAppError(c, err)
			return
		}
		in.ReplaceItems = true
		in.Items = items
	}
	view, err := h.tracks.UpdateTrack(c.Request.Context(), in)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"track": view})
}

// DELETE /api/tracks/:id
func (h *TrackHandler) DeleteTrack(c *gin.Context) {
	trackID, err := pathUUID(c, "id", "track")
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	if err := h.tracks.DeleteTrack(c.Request.Context(), trackID); err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// POST /api/tracks/:id/items/:itemId/complete
func (h *TrackHandler) MarkComplete(c *gin.Context) {
	h.setCompletion(c, true)
}

// POST /api/tracks/:id/items/:itemId/uncomplete
func (h *TrackHandler) MarkIncomplete(c *gin.Context) {
	h.setCompletion(c, false)
}

func (h *TrackHandler) setCompletion(c *gin.Context, completed bool) {
	trackID, err := pathUUID(c, "id", "track")
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	itemID, err := pathUUID(c, "itemId", "track item")
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	var req completionRequest
	if err := bindJSON(c, &req); err != nil {
		response.RespondAppError(c, err)
		return
	}
	if req.UserID == nil || *req.UserID <= 0 {
		response.RespondAppError(c, apierr.BadRequest("invalid_user_id", "userId must be a positive integer"))
		return
	}

	mark := h.progress.MarkIncomplete
	if completed {
		mark = h.progress.MarkComplete
	}
	row, err := mark(c.Request.Context(), *req.UserID, trackID, itemID)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true, "completed": row.Completed, "progress": row})
}

// GET /api/tracks/:id/progress?userId=<int>
func (h *TrackHandler) ListProgress(c *gin.Context) {
	trackID, err := pathUUID(c, "id", "track")
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	userID, err := requiredUserID(c)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	rows, err := h.progress.ListProgress(c.Request.Context(), userID, trackID)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"progress": rows})
}
