package api

import (
	"errors"
	"net/http"

	reqdto "wheel-promo-api/internal/handler/dto/request"
	resdto "wheel-promo-api/internal/handler/dto/response"
	"wheel-promo-api/internal/handler/middleware"
	"wheel-promo-api/internal/usecase/commands"
	"wheel-promo-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	couponCommands commands.CouponCommands
	couponQueries  queries.CouponQueries
}

func NewCouponHandler(couponCommands commands.CouponCommands, couponQueries queries.CouponQueries) *CouponHandler {
	return &CouponHandler{
		couponCommands: couponCommands,
		couponQueries:  couponQueries,
	}
}

// @Summary List my coupons
// @Description Coupons issued to the authenticated user, newest first
// @Tags coupons
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.CouponResponse
// @Router /coupons [get]
func (h *CouponHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	views, err := h.couponQueries.ListUserCoupons(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponViews(views))
}

// @Summary Redeem a coupon
// @Description Consume the coupon for an order
// @Tags coupons
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param code path string true "Coupon code"
// @Param request body reqdto.RedeemCouponRequest true "Redeem request"
// @Success 200 {object} resdto.RedeemResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /coupons/{code}/redeem [post]
func (h *CouponHandler) Redeem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req reqdto.RedeemCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.couponCommands.Redeem(c.Request.Context(), userID, c.Param("code"), req.OrderID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCouponNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Coupon not found",
			})
		case errors.Is(err, commands.ErrCouponAlreadyUsed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Coupon already used",
			})
		case errors.Is(err, commands.ErrCouponExpired):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Coupon expired",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.RedeemResponse{
		CouponID: result.CouponID,
		OrderID:  result.OrderID,
	})
}
