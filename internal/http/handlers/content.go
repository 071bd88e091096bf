package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/amcdental/dentalhub-backend/internal/http/response"
	"github.com/amcdental/dentalhub-backend/internal/services"
)

type ContentHandler struct {
	catalog services.ContentCatalog
}

func NewContentHandler(catalog services.ContentCatalog) *ContentHandler {
	return &ContentHandler{catalog: catalog}
}

type createArticleRequest struct {
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Summary  string `json:"summary"`
	Category string `json:"category"`
	FileURL  string `json:"fileUrl"`
}

type createLessonRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	VideoURL    string `json:"videoUrl"`
	Duration    int    `json:"duration"`
}

type createToolRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	FileURL     string `json:"fileUrl"`
}

// POST /api/articles
func (h *ContentHandler) CreateArticle(c *gin.Context) {
	var req createArticleRequest
	if err := bindJSON(c, &req); err != nil {
		response.RespondAppError(c, err)
		return
	}
	row, err := h.catalog.CreateArticle(c.Request.Context(), services.CreateArticleInput(req))
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"article": row})
}

// GET /api/articles?category=&limit=
func (h *ContentHandler) ListArticles(c *gin.Context) {
	limit, err := listLimit(c)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	rows, err := h.catalog.ListArticles(c.Request.Context(), c.Query("category"), limit)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"articles": rows})
}

// GET /api/articles/:id
func (h *ContentHandler) GetArticle(c *gin.Context) {
	id, err := pathUUID(c, "id", "article")
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	row, err := h.catalog.GetArticle(c.Request.Context(), id)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"article": row})
}

// POST /api/lessons
func (h *ContentHandler) CreateLesson(c *gin.Context) {
	var req createLessonRequest
	if err := bindJSON(c, &req); err != nil {
		response.RespondAppError(c, err)
		return
	}
	row, err := h.catalog.CreateLesson(c.Request.Context(), services.CreateLessonInput(req))
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"lesson": row})
}

// GET /api/lessons?limit=
func (h *ContentHandler) ListLessons(c *gin.Context) {
	limit, err := listLimit(c)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	rows, err := h.catalog.ListLessons(c.Request.Context(), limit)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"lessons": rows})
}

// GET /api/lessons/:id
func (h *ContentHandler) GetLesson(c *gin.Context) {
	id, err := pathUUID(c, "id", "lesson")
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	row, err := h.catalog.GetLesson(c.Request.Context(), id)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"lesson": row})
}

// POST /api/tools
func (h *ContentHandler) CreateTool(c *gin.Context) {
	var req createToolRequest
	if err := bindJSON(c, &req); err != nil {
		response.RespondAppError(c, err)
		return
	}
	row, err := h.catalog.CreateTool(c.Request.Context(), services.CreateToolInput(req))
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"tool": row})
}

// GET /api/tools?category=&limit=
func (h *ContentHandler) ListTools(c *gin.Context) {
	limit, err := listLimit(c)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	rows, err := h.catalog.ListTools(c.Request.Context(), c.Query("category"), limit)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"tools": rows})
}

// GET /api/tools/:id
func (h *ContentHandler) GetTool(c *gin.Context) {
	id, err := pathUUID(c, "id", "tool")
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	row, err := h.catalog.GetTool(c.Request.Context(), id)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"tool": row})
}
