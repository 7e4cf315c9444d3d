package request

import (
	"github.com/google/uuid"
)

type RedeemCouponRequest struct {
	OrderID uuid.UUID `json:"order_id" binding:"required"`
}
