package api

import (
	"errors"
	"net/http"

	reqdto "wheel-promo-api/internal/handler/dto/request"
	resdto "wheel-promo-api/internal/handler/dto/response"
	"wheel-promo-api/internal/usecase/commands"
	"wheel-promo-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminSegmentHandler struct {
	segmentCommands commands.SegmentCommands
	segmentReads    queries.AdminSegmentReadStore
}

func NewAdminSegmentHandler(segmentCommands commands.SegmentCommands, segmentReads queries.AdminSegmentReadStore) *AdminSegmentHandler {
	return &AdminSegmentHandler{
		segmentCommands: segmentCommands,
		segmentReads:    segmentReads,
	}
}

// @Summary List all segments
// @Description Every wheel segment including inactive ones
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.SegmentResponse
// @Router /admin/wheel/segments [get]
func (h *AdminSegmentHandler) List(c *gin.Context) {
	views, err := h.segmentReads.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromSegmentViews(views))
}

// @Summary Create a segment
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateSegmentRequest true "Segment"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /admin/wheel/segments [post]
func (h *AdminSegmentHandler) Create(c *gin.Context) {
	var req reqdto.CreateSegmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.segmentCommands.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, commands.ErrSegmentValidation) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid segment data",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Update a segment
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Segment ID"
// @Param request body reqdto.UpdateSegmentRequest true "Segment"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/wheel/segments/{id} [patch]
func (h *AdminSegmentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid segment ID",
		})
		return
	}

	var req reqdto.UpdateSegmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.segmentCommands.Update(c.Request.Context(), id, req); err != nil {
		switch {
		case errors.Is(err, commands.ErrSegmentValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid segment data",
			})
		case errors.Is(err, commands.ErrSegmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Segment not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete a segment
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Segment ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/wheel/segments/{id} [delete]
func (h *AdminSegmentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid segment ID",
		})
		return
	}

	if err := h.segmentCommands.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrSegmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Segment not found",
			})
		case errors.Is(err, commands.ErrSegmentInUse):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Segment has recorded spins, deactivate it instead",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
