package response

import (
	"time"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/commands"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type UploadCodesResponse struct {
	OK        bool  `json:"ok"`
	Uploaded  int   `json:"uploaded"`
	Inserted  int   `json:"inserted"`
	Skipped   int   `json:"skipped"`
	Available int64 `json:"available"`
}

func FromUploadResult(r *commands.UploadCodesResult) UploadCodesResponse {
	return UploadCodesResponse{
		OK:        true,
		Uploaded:  r.Received,
		Inserted:  r.Inserted,
		Skipped:   r.Skipped,
		Available: r.Available,
	}
}

type CreatedResponse struct {
	OK bool      `json:"ok"`
	ID uuid.UUID `json:"id"`
}

type OrderResponse struct {
	ID          uuid.UUID  `json:"id"`
	SessionID   string     `json:"session_id"`
	ProductID   uuid.UUID  `json:"product_id"`
	ProductName string     `json:"product_name"`
	AmountCents int64      `json:"amount_cents"`
	Currency    string     `json:"currency"`
	BuyerEmail  string     `json:"buyer_email"`
	Status      string     `json:"status"`
	Fulfilled   bool       `json:"fulfilled"`
	FulfilledAt *time.Time `json:"fulfilled_at,omitempty"`
	StockoutAt  *time.Time `json:"stockout_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func FromOrder(rm *readmodel.OrderRM) OrderResponse {
	var res OrderResponse
	_ = copier.Copy(&res, rm)
	res.AmountCents = rm.AmountMinor
	return res
}

func FromOrders(rms []*readmodel.OrderRM) []OrderResponse {
	res := make([]OrderResponse, len(rms))
	for i, rm := range rms {
		res[i] = FromOrder(rm)
	}
	return res
}

type DeliveryResponse struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Status    string    `json:"status"`
	Attempts  int32     `json:"attempts"`
	RunAt     time.Time `json:"run_at"`
	LastError *string   `json:"last_error,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

type OrderDetailResponse struct {
	OrderResponse
	Code       *CodeResponse      `json:"code,omitempty"`
	Deliveries []DeliveryResponse `json:"deliveries"`
}

func FromOrderDetail(rm *readmodel.OrderDetailRM) OrderDetailResponse {
	res := OrderDetailResponse{
		OrderResponse: FromOrder(&rm.OrderRM),
		Deliveries:    make([]DeliveryResponse, 0, len(rm.Deliveries)),
	}
	if rm.Code != nil {
		code := FromCode(rm.Code)
		res.Code = &code
	}
	for _, d := range rm.Deliveries {
		var dr DeliveryResponse
		_ = copier.Copy(&dr, &d)
		res.Deliveries = append(res.Deliveries, dr)
	}
	return res
}

type CodeResponse struct {
	ID         uuid.UUID  `json:"id"`
	ProductID  uuid.UUID  `json:"product_id"`
	Code       string     `json:"code"`
	Sold       bool       `json:"sold"`
	SoldAt     *time.Time `json:"sold_at,omitempty"`
	OrderID    *uuid.UUID `json:"order_id,omitempty"`
	BuyerEmail *string    `json:"buyer_email,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func FromCode(rm *readmodel.CodeRM) CodeResponse {
	var res CodeResponse
	_ = copier.Copy(&res, rm)
	return res
}

func FromCodes(rms []*readmodel.CodeRM) []CodeResponse {
	res := make([]CodeResponse, len(rms))
	for i, rm := range rms {
		res[i] = FromCode(rm)
	}
	return res
}

type AlertResponse struct {
	ID         uuid.UUID  `json:"id"`
	Kind       string     `json:"kind"`
	SessionID  string     `json:"session_id"`
	OrderID    *uuid.UUID `json:"order_id,omitempty"`
	ProductID  *uuid.UUID `json:"product_id,omitempty"`
	Message    string     `json:"message"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func FromAlerts(rms []*readmodel.AlertRM) []AlertResponse {
	res := make([]AlertResponse, len(rms))
	for i, rm := range rms {
		_ = copier.Copy(&res[i], rm)
	}
	return res
}

type ReconcileResponse struct {
	Outcome       string     `json:"outcome"`
	OrderID       *uuid.UUID `json:"order_id,omitempty"`
	CodeID        *uuid.UUID `json:"code_id,omitempty"`
	DeliveryJobID *uuid.UUID `json:"delivery_job_id,omitempty"`
}

func FromReconcileResult(r *commands.ReconcileResult) ReconcileResponse {
	return ReconcileResponse{
		Outcome:       string(r.Outcome),
		OrderID:       r.OrderID,
		CodeID:        r.CodeID,
		DeliveryJobID: r.DeliveryJobID,
	}
}

type ResendResponse struct {
	DeliveryJobID uuid.UUID `json:"delivery_job_id"`
	Recipient     string    `json:"recipient"`
	Status        string    `json:"status"`
}

// Field names match the original dashboard script.
type AnalyticsResponse struct {
	TotalSales     int64                  `json:"totalSales"`
	TotalSold      int64                  `json:"totalSold"`
	SalesByProduct []ProductSalesResponse `json:"salesByProduct"`
	SalesLast30    []DailySalesResponse   `json:"salesLast30"`
	RecentOrders   []OrderResponse        `json:"recentOrders"`
}

type ProductSalesResponse struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Count     int64     `json:"count"`
	Revenue   int64     `json:"revenue"`
}

type DailySalesResponse struct {
	Day     string `json:"day"`
	Revenue int64  `json:"revenue"`
}

func FromAnalytics(rm *readmodel.AnalyticsRM) AnalyticsResponse {
	res := AnalyticsResponse{
		TotalSales:     rm.TotalSalesMinor,
		TotalSold:      rm.TotalSold,
		SalesByProduct: make([]ProductSalesResponse, len(rm.SalesByProduct)),
		SalesLast30:    make([]DailySalesResponse, len(rm.SalesLast30)),
		RecentOrders:   make([]OrderResponse, len(rm.RecentOrders)),
	}
	for i, p := range rm.SalesByProduct {
		res.SalesByProduct[i] = ProductSalesResponse{ProductID: p.ProductID, Name: p.Name, Count: p.Count, Revenue: p.RevenueMinor}
	}
	for i, d := range rm.SalesLast30 {
		res.SalesLast30[i] = DailySalesResponse{Day: d.Day, Revenue: d.RevenueMinor}
	}
	for i := range rm.RecentOrders {
		res.RecentOrders[i] = FromOrder(&rm.RecentOrders[i])
	}
	return res
}
