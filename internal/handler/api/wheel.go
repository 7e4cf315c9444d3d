package api

import (
	"errors"
	"net/http"

	resdto "wheel-promo-api/internal/handler/dto/response"
	"wheel-promo-api/internal/handler/middleware"
	"wheel-promo-api/internal/usecase/commands"
	"wheel-promo-api/internal/usecase/queries"
	"wheel-promo-api/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WheelHandler struct {
	wheelCommands commands.WheelCommands
	claimCommands commands.ClaimCommands
	wheelQueries  queries.WheelQueries
}

func NewWheelHandler(
	wheelCommands commands.WheelCommands,
	claimCommands commands.ClaimCommands,
	wheelQueries queries.WheelQueries,
) *WheelHandler {
	return &WheelHandler{
		wheelCommands: wheelCommands,
		claimCommands: claimCommands,
		wheelQueries:  wheelQueries,
	}
}

// identity assembles who is calling from the auth context and session header.
func identity(c *gin.Context) shared.Identity {
	id := shared.Identity{Session: middleware.GetWheelSession(c)}
	if userID, ok := middleware.GetUserID(c); ok {
		id.UserID = &userID
	}
	return id
}

// @Summary List wheel segments
// @Description Active wheel layout in display order
// @Tags wheel
// @Produce json
// @Success 200 {array} resdto.SegmentResponse
// @Router /wheel/segments [get]
func (h *WheelHandler) ListSegments(c *gin.Context) {
	views, err := h.wheelQueries.ListSegments(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromSegmentViews(views))
}

// @Summary Check spin eligibility
// @Description Whether the caller may spin right now
// @Tags wheel
// @Produce json
// @Success 200 {object} resdto.EligibilityResponse
// @Router /wheel/eligibility [get]
func (h *WheelHandler) Eligibility(c *gin.Context) {
	view, err := h.wheelQueries.CheckEligibility(c.Request.Context(), identity(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.EligibilityResponse{
		CanSpin:        view.CanSpin,
		NextEligibleAt: view.NextEligibleAt,
	})
}

// @Summary Spin the wheel
// @Description Draw a prize. Anonymous spins are parked on the wheel session; authenticated spins issue a coupon.
// @Tags wheel
// @Produce json
// @Param X-Wheel-Session header string false "Anonymous wheel session UUID"
// @Param Idempotency-Key header string false "Idempotency key for authenticated spins"
// @Success 200 {object} resdto.SpinResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /wheel/spin [post]
func (h *WheelHandler) Spin(c *gin.Context) {
	id := identity(c)
	if !id.IsAuthenticated() && id.Session.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Wheel session header required for anonymous spins",
		})
		return
	}

	var idempotencyKey *uuid.UUID
	if raw := c.GetHeader("Idempotency-Key"); raw != "" {
		key, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid idempotency key",
			})
			return
		}
		idempotencyKey = &key
	}

	result, err := h.wheelCommands.Spin(c.Request.Context(), id, idempotencyKey)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSpinNotEligible):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Spin not available yet",
			})
		case errors.Is(err, commands.ErrNoActiveSegments):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Wheel is not configured",
			})
		case errors.Is(err, commands.ErrIdempotencyInProgress):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Request already in progress",
			})
		case errors.Is(err, commands.ErrIdempotencyConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Idempotency key already used for a different request",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSpinResult(result))
}

// @Summary Pending spin for the session
// @Description The anonymous win parked on this session, if any
// @Tags wheel
// @Produce json
// @Param X-Wheel-Session header string true "Anonymous wheel session UUID"
// @Success 200 {object} resdto.PendingSpinResponse
// @Router /wheel/pending [get]
func (h *WheelHandler) Pending(c *gin.Context) {
	id := identity(c)
	if id.Session.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Wheel session header required",
		})
		return
	}

	prize, err := h.wheelQueries.PendingPrize(c.Request.Context(), id.Session)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromPendingPrize(prize))
}

// @Summary Wheel dialog state
// @Description Current dialog state machine for the wheel session
// @Tags wheel
// @Produce json
// @Param X-Wheel-Session header string true "Anonymous wheel session UUID"
// @Success 200 {object} resdto.FlowResponse
// @Router /wheel/flow [get]
func (h *WheelHandler) Flow(c *gin.Context) {
	id := identity(c)
	if id.Session.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Wheel session header required",
		})
		return
	}

	view, err := h.wheelCommands.FlowState(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromFlowView(view))
}

// @Summary Dismiss the wheel dialog
// @Description Close the dialog without touching persisted wins
// @Tags wheel
// @Produce json
// @Param X-Wheel-Session header string true "Anonymous wheel session UUID"
// @Success 200 {object} resdto.FlowResponse
// @Router /wheel/dismiss [post]
func (h *WheelHandler) Dismiss(c *gin.Context) {
	id := identity(c)
	if id.Session.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Wheel session header required",
		})
		return
	}

	view, err := h.wheelCommands.Dismiss(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromFlowView(view))
}

// @Summary Claim a pending spin
// @Description Convert the session's anonymous win into a coupon for the authenticated user
// @Tags wheel
// @Security BearerAuth
// @Produce json
// @Param X-Wheel-Session header string true "Anonymous wheel session UUID"
// @Success 200 {object} resdto.ClaimResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /wheel/claim [post]
func (h *WheelHandler) Claim(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	result, err := h.claimCommands.Claim(c.Request.Context(), userID, middleware.GetWheelSession(c))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrNoPendingSpin):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No pending spin to claim",
			})
		case errors.Is(err, commands.ErrClaimNotEligible):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Pending spin forfeited, a recent spin is already recorded",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromClaimResult(result))
}
