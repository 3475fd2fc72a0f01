package readmodel

import "github.com/google/uuid"

type AnalyticsRM struct {
	TotalSalesMinor int64            `json:"total_sales_minor"`
	TotalSold       int64            `json:"total_sold"`
	SalesByProduct  []ProductSalesRM `json:"sales_by_product"`
	SalesLast30     []DailySalesRM   `json:"sales_last_30"`
	RecentOrders    []OrderRM        `json:"recent_orders"`
}

type ProductSalesRM struct {
	ProductID    uuid.UUID `json:"product_id"`
	Name         string    `json:"name"`
	Count        int64     `json:"count"`
	RevenueMinor int64     `json:"revenue_minor"`
}

type DailySalesRM struct {
	Day          string `json:"day"`
	RevenueMinor int64  `json:"revenue_minor"`
}
