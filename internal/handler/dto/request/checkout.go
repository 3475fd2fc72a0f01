package request

import (
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/commands"

	"github.com/google/uuid"
)

// Field names follow the storefront script.
type CreateCheckoutRequest struct {
	ProductID  uuid.UUID `json:"productId" binding:"required"`
	BuyerEmail string    `json:"buyerEmail" binding:"omitempty,max=254"`
}

func (r *CreateCheckoutRequest) ToCommand() commands.CreateCheckoutRequest {
	return commands.CreateCheckoutRequest{
		ProductID:  r.ProductID,
		BuyerEmail: r.BuyerEmail,
	}
}
