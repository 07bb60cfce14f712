package reporting

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/BenTran203/AI-Dashboard-analytics/infrastructure/repository"
	"github.com/BenTran203/AI-Dashboard-analytics/internal/domain"
	"github.com/BenTran203/AI-Dashboard-analytics/pkg/utils"
)

const (
	// MaxRangeDays is the widest window a single aggregation may cover.
	MaxRangeDays = 90

	topProductsLimit = 5
)

// Funnel stage multipliers, estimated from completed-order counts. These
// are assumptions, not measured traffic: 10% of visitors convert, 33% add
// to cart, 50% of cart adders start checkout.
const (
	visitorsPerOrder = 10
	cartAddsPerOrder = 3
	checkoutPerOrder = 1.5
)

// Service implements Reporter on top of the order store.
type Service struct {
	orderRepository repository.OrderRepository
}

func NewService(orderRepo repository.OrderRepository) Reporter {
	return &Service{
		orderRepository: orderRepo,
	}
}

// AggregateMetrics aggregates completed orders over [startDate, endDate].
// The previous period is the equal-length window ending the day before
// startDate; all growth figures compare against it.
func (s *Service) AggregateMetrics(startDate, endDate time.Time) (*domain.MetricsSnapshot, error) {
	startDate = startDate.UTC()
	endDate = endDate.UTC()

	if startDate.After(endDate) {
		return nil, fmt.Errorf("%w: start date is after end date", ErrInvalidRange)
	}

	days := int(math.Ceil(endDate.Sub(startDate).Hours() / 24))
	if days > MaxRangeDays {
		return nil, fmt.Errorf("%w: range covers %d days, the limit is %d", ErrInvalidRange, days, MaxRangeDays)
	}

	previousEnd := startDate.AddDate(0, 0, -1)
	previousStart := previousEnd.AddDate(0, 0, -(days - 1))

	// The two windows are independent, fetch them concurrently.
	var (
		currentOrders  []*domain.Order
		previousOrders []*domain.Order
		currentErr     error
		previousErr    error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		currentOrders, currentErr = s.orderRepository.FindCompletedOrders(startDate, endDate)
	}()

	go func() {
		defer wg.Done()
		previousOrders, previousErr = s.orderRepository.FindCompletedOrders(previousStart, previousEnd)
	}()

	wg.Wait()

	// Store failures propagate unchanged, no retry at this layer.
	if currentErr != nil {
		return nil, currentErr
	}
	if previousErr != nil {
		return nil, previousErr
	}

	dailySales := groupDailySales(currentOrders)

	snapshot := &domain.MetricsSnapshot{
		Period: domain.Period{
			StartDate: startDate,
			EndDate:   endDate,
			Days:      days,
		},
		Summary:     calculateSummary(currentOrders, previousOrders),
		TopProducts: rankTopProducts(currentOrders),
		DailySales:  dailySales,
		Funnel:      estimateFunnel(len(currentOrders)),
		Trends:      projectTrends(dailySales),
	}

	logrus.WithFields(logrus.Fields{
		"start_date":   startDate.Format(time.DateOnly),
		"end_date":     endDate.Format(time.DateOnly),
		"days":         days,
		"total_orders": snapshot.Summary.TotalOrders,
	}).Debug("metrics snapshot aggregated")

	return snapshot, nil
}

// calculateSummary computes the headline numbers and their growth against
// the previous period. Growth is a signed percentage and stays at zero
// whenever the previous-period base is zero.
func calculateSummary(currentOrders, previousOrders []*domain.Order) domain.MetricsSummary {
	totalRevenue := 0.0
	for _, order := range currentOrders {
		totalRevenue += order.Total
	}
	totalOrders := len(currentOrders)

	averageOrderValue := 0.0
	if totalOrders > 0 {
		averageOrderValue = totalRevenue / float64(totalOrders)
	}

	previousRevenue := 0.0
	for _, order := range previousOrders {
		previousRevenue += order.Total
	}
	previousOrdersCount := len(previousOrders)

	revenueGrowth := 0.0
	if previousRevenue > 0 {
		revenueGrowth = utils.RoundWithTwoDecimalPlace((totalRevenue - previousRevenue) / previousRevenue * 100)
	}

	ordersGrowth := 0.0
	if previousOrdersCount > 0 {
		ordersGrowth = utils.RoundWithTwoDecimalPlace(float64(totalOrders-previousOrdersCount) / float64(previousOrdersCount) * 100)
	}

	return domain.MetricsSummary{
		TotalRevenue:          totalRevenue,
		TotalOrders:           totalOrders,
		AverageOrderValue:     averageOrderValue,
		PreviousPeriodRevenue: previousRevenue,
		PreviousPeriodOrders:  previousOrdersCount,
		RevenueGrowth:         revenueGrowth,
		OrdersGrowth:          ordersGrowth,
	}
}

// rankTopProducts groups line items by product and returns the five
// biggest earners. Ties on revenue fall back to the product ID so the
// ranking is reproducible.
func rankTopProducts(orders []*domain.Order) []*domain.TopProduct {
	type productAggregate struct {
		product  *domain.TopProduct
		orderIDs map[string]struct{}
	}

	byProduct := make(map[string]*productAggregate)

	for _, order := range orders {
		for _, item := range order.Items {
			agg, ok := byProduct[item.ProductID]
			if !ok {
				agg = &productAggregate{
					product:  &domain.TopProduct{ID: item.ProductID},
					orderIDs: make(map[string]struct{}),
				}
				if item.Product != nil {
					agg.product.Name = item.Product.Name
					agg.product.Category = item.Product.Category
				}
				byProduct[item.ProductID] = agg
			}

			agg.product.Revenue += item.Subtotal
			agg.product.UnitsSold += item.Quantity
			agg.orderIDs[order.ID] = struct{}{}
		}
	}

	ranked := make([]*domain.TopProduct, 0, len(byProduct))
	for _, agg := range byProduct {
		agg.product.Orders = len(agg.orderIDs)
		ranked = append(ranked, agg.product)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Revenue != ranked[j].Revenue {
			return ranked[i].Revenue > ranked[j].Revenue
		}
		return ranked[i].ID < ranked[j].ID
	})

	if len(ranked) > topProductsLimit {
		ranked = ranked[:topProductsLimit]
	}

	return ranked
}

// groupDailySales buckets completed orders by UTC calendar day, ascending.
// Days without any order do not appear in the series.
func groupDailySales(orders []*domain.Order) []*domain.DailySales {
	byDay := make(map[string]*domain.DailySales)

	for _, order := range orders {
		day := utils.TruncateToDay(order.OrderDate).Format(time.DateOnly)
		entry, ok := byDay[day]
		if !ok {
			entry = &domain.DailySales{Date: day}
			byDay[day] = entry
		}
		entry.Revenue += order.Total
		entry.Orders++
	}

	series := make([]*domain.DailySales, 0, len(byDay))
	for _, entry := range byDay {
		series = append(series, entry)
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Date < series[j].Date
	})

	return series
}

// estimateFunnel derives the conversion funnel from the completed-order
// count. With zero orders every stage short-circuits to zero.
func estimateFunnel(completedOrders int) []*domain.FunnelStage {
	completed := float64(completedOrders)
	visitors := completed * visitorsPerOrder
	cartAdds := completed * cartAddsPerOrder
	checkoutStarts := completed * checkoutPerOrder

	percentage := func(value float64) float64 {
		if visitors == 0 {
			return 0
		}
		return utils.RoundWithTwoDecimalPlace(value / visitors * 100)
	}

	visitorsPercentage := 0.0
	if visitors > 0 {
		visitorsPercentage = 100
	}

	return []*domain.FunnelStage{
		{Stage: "Visitors", Value: visitors, Percentage: visitorsPercentage},
		{Stage: "Add to Cart", Value: cartAdds, Percentage: percentage(cartAdds)},
		{Stage: "Checkout", Value: checkoutStarts, Percentage: percentage(checkoutStarts)},
		{Stage: "Completed", Value: completed, Percentage: percentage(completed)},
	}
}

// projectTrends re-shapes the daily series for the chart consumers. It is
// a projection, not a second computation, so it can never drift from the
// daily sales figures.
func projectTrends(dailySales []*domain.DailySales) domain.Trends {
	trends := domain.Trends{
		RevenueByDay: make([]domain.RevenuePoint, 0, len(dailySales)),
		OrdersByDay:  make([]domain.OrderPoint, 0, len(dailySales)),
	}

	for _, day := range dailySales {
		trends.RevenueByDay = append(trends.RevenueByDay, domain.RevenuePoint{Date: day.Date, Amount: day.Revenue})
		trends.OrdersByDay = append(trends.OrdersByDay, domain.OrderPoint{Date: day.Date, Count: day.Orders})
	}

	return trends
}
