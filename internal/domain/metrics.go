package domain

import "time"

// Period describes the date window a metrics snapshot covers.
type Period struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Days      int       `json:"days"`
}

// MetricsSummary holds the headline figures for a period, compared against
// the equal-length period immediately before it.
type MetricsSummary struct {
	TotalRevenue          float64 `json:"totalRevenue"`
	TotalOrders           int     `json:"totalOrders"`
	AverageOrderValue     float64 `json:"averageOrderValue"`
	PreviousPeriodRevenue float64 `json:"previousPeriodRevenue"`
	PreviousPeriodOrders  int     `json:"previousPeriodOrders"`
	RevenueGrowth         float64 `json:"revenueGrowth"`
	OrdersGrowth          float64 `json:"ordersGrowth"`
}

// TopProduct is one entry of the revenue ranking.
type TopProduct struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Revenue   float64 `json:"revenue"`
	UnitsSold int     `json:"unitsSold"`
	Orders    int     `json:"orders"`
}

// DailySales aggregates completed orders for a single UTC calendar day.
// Days without orders do not appear in the series.
type DailySales struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// FunnelStage is one step of the estimated conversion funnel. The funnel
// is derived arithmetically from the completed-order count, it is not
// measured traffic.
type FunnelStage struct {
	Stage      string  `json:"stage"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

// RevenuePoint and OrderPoint are the trend projections of the daily
// sales series.
type RevenuePoint struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

type OrderPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Trends re-shapes the daily sales series for charting consumers.
type Trends struct {
	RevenueByDay []RevenuePoint `json:"revenueByDay"`
	OrdersByDay  []OrderPoint   `json:"ordersByDay"`
}

// MetricsSnapshot is the full comparative analytics view for a period.
// It is produced fresh on every aggregation call and never persisted on
// its own; the insight cache keeps a copy alongside each narrative.
type MetricsSnapshot struct {
	Period      Period         `json:"period"`
	Summary     MetricsSummary `json:"summary"`
	TopProducts []*TopProduct  `json:"topProducts"`
	DailySales  []*DailySales  `json:"dailySales"`
	Funnel      []*FunnelStage `json:"funnel"`
	Trends      Trends         `json:"trends"`
}
