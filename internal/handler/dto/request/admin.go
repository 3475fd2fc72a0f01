package request

import (
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/commands"

	"github.com/google/uuid"
)

type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UploadCodesRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Codes     []string  `json:"codes" binding:"required,min=1,max=10000"`
}

type CreateProductRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description" binding:"max=2000"`
	PriceCents  int64  `json:"price_cents" binding:"required,gt=0"`
	Currency    string `json:"currency" binding:"omitempty,len=3"`
}

func (r *CreateProductRequest) ToCommand() commands.CreateProductRequest {
	return commands.CreateProductRequest{
		Name:        r.Name,
		Description: r.Description,
		PriceMinor:  r.PriceCents,
		Currency:    r.Currency,
	}
}

// ResendCodeRequest optionally redirects the resend to a new address.
type ResendCodeRequest struct {
	Email string `json:"email" binding:"omitempty,email"`
}
