package split

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Benjamin-taro/spliting-the-bill/internal/extract"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/receipts/extract", h.Extract)

	sessions := r.Group("/sessions")
	{
		sessions.POST("", h.Create)
		sessions.GET("/:id", h.Get)
		sessions.POST("/:id/items", h.AddBlank)
		sessions.PATCH("/:id/items/:index", h.EditItem)
		sessions.DELETE("/:id/items/:index", h.RemoveItem)
		sessions.PUT("/:id/participants", h.SetParticipants)
		sessions.PUT("/:id/subtotal", h.SetSubtotal)
		sessions.POST("/:id/confirm", h.Confirm)
		sessions.POST("/:id/back", h.Back)
		sessions.PUT("/:id/items/:index/assignments/:person", h.SetAssignment)
		sessions.GET("/:id/totals", h.Totals)
	}
}

// --------------------------------------------------
// Extraction
// --------------------------------------------------

// Extract accepts a receipt photo, runs it through the vision model
// and opens a fresh review-phase session.
func (h *Handler) Extract(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}

	session, err := h.service.CreateFromImage(c.Request.Context(), image, header.Filename)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

// Create opens a session from an already-extracted raw record.
func (h *Handler) Create(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read body"})
		return
	}

	session, err := h.service.CreateFromRecord(raw)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

// --------------------------------------------------
// Session state
// --------------------------------------------------

func (h *Handler) Get(c *gin.Context) {
	session, err := h.service.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *Handler) AddBlank(c *gin.Context) {
	session, err := h.service.AddBlank(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *Handler) EditItem(c *gin.Context) {
	index, ok := pathIndex(c, "index")
	if !ok {
		return
	}

	var edit ItemEdit
	if err := c.BindJSON(&edit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if edit.Name == nil && edit.Quantity == nil && edit.UnitPrice == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no editable field provided"})
		return
	}

	session, err := h.service.EditItem(c.Param("id"), index, edit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *Handler) RemoveItem(c *gin.Context) {
	index, ok := pathIndex(c, "index")
	if !ok {
		return
	}

	session, err := h.service.RemoveItem(c.Param("id"), index)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *Handler) SetParticipants(c *gin.Context) {
	var req struct {
		Participants int `json:"participants"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	session, err := h.service.SetParticipants(c.Param("id"), req.Participants)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *Handler) SetSubtotal(c *gin.Context) {
	var req struct {
		OCRSubtotal float64 `json:"ocr_subtotal"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	session, err := h.service.SetOCRSubtotal(c.Param("id"), req.OCRSubtotal)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *Handler) Confirm(c *gin.Context) {
	session, err := h.service.Confirm(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *Handler) Back(c *gin.Context) {
	session, err := h.service.Back(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SetAssignment writes a clamped share. The full session is returned
// so the client can observe the effective (possibly clamped) value.
func (h *Handler) SetAssignment(c *gin.Context) {
	index, ok := pathIndex(c, "index")
	if !ok {
		return
	}
	person, ok := pathIndex(c, "person")
	if !ok {
		return
	}

	var req struct {
		Value int `json:"value"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	session, err := h.service.SetAssignment(c.Param("id"), index, person, req.Value)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *Handler) Totals(c *gin.Context) {
	totals, err := h.service.Totals(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func pathIndex(c *gin.Context, name string) (int, bool) {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return n, true
}

func respondError(c *gin.Context, err error) {
	var confirmErr *ConfirmError
	var parseErr *extract.ParseError

	switch {
	case errors.As(err, &confirmErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":    confirmErr.Error(),
			"problems": confirmErr.Problems,
		})
	case errors.As(err, &parseErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": parseErr.Error(),
			"raw":   parseErr.Raw,
		})
	case errors.Is(err, ErrSessionNotFound),
		errors.Is(err, ErrIndexOutOfRange),
		errors.Is(err, ErrPersonOutOfRange):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrInvalidParticipants),
		errors.Is(err, ErrNotReviewing):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
