package entities

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DashboardDays         = 7
	DashboardMonths       = 6
	RecentQuotationsLimit = 5
)

// RevenuePoint is one bar of a revenue chart. Start is the first UTC day of
// the bucket; Label is its short day or month name ("Mon", "Jan").
type RevenuePoint struct {
	Label   string
	Start   time.Time
	Revenue decimal.Decimal
}

// DashboardSummary aggregates the work queue for the landing page.
//
//   - AcceptedRevenue: sum of Accepted amounts
//   - PipelineValue: sum of Pending and Sent amounts (quotations still open)
//   - Weekly/Monthly/YearlyRevenue: Accepted amounts dated in the last 7 days,
//     the current calendar month and the current calendar year
//   - RevenueByDay / RevenueByMonth: the same Accepted amounts bucketed for the
//     charts, oldest bucket first
//   - Recent: newest items by Date
//
// Periods are UTC calendar days; items dated after today count in no period.
type DashboardSummary struct {
	Total           int
	Pending         int
	Sent            int
	Accepted        int
	Failed          int
	AcceptedRevenue decimal.Decimal
	PipelineValue   decimal.Decimal
	AcceptanceRate  decimal.Decimal

	WeeklyRevenue  decimal.Decimal
	MonthlyRevenue decimal.Decimal
	YearlyRevenue  decimal.Decimal
	RevenueByDay   []RevenuePoint
	RevenueByMonth []RevenuePoint
	Recent         []WorkQueueItem
}

func SummarizeWorkQueue(items []WorkQueueItem, now time.Time) DashboardSummary {
	s := DashboardSummary{
		Total:           len(items),
		AcceptedRevenue: decimal.Zero,
		PipelineValue:   decimal.Zero,
		AcceptanceRate:  decimal.Zero,
		WeeklyRevenue:   decimal.Zero,
		MonthlyRevenue:  decimal.Zero,
		YearlyRevenue:   decimal.Zero,
	}

	today := utcDay(now)
	weekStart := today.AddDate(0, 0, -(DashboardDays - 1))
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	seriesStart := monthStart.AddDate(0, -(DashboardMonths - 1), 0)

	s.RevenueByDay = make([]RevenuePoint, DashboardDays)
	for i := range s.RevenueByDay {
		start := weekStart.AddDate(0, 0, i)
		s.RevenueByDay[i] = RevenuePoint{Label: start.Weekday().String()[:3], Start: start, Revenue: decimal.Zero}
	}
	s.RevenueByMonth = make([]RevenuePoint, DashboardMonths)
	for i := range s.RevenueByMonth {
		start := seriesStart.AddDate(0, i, 0)
		s.RevenueByMonth[i] = RevenuePoint{Label: start.Month().String()[:3], Start: start, Revenue: decimal.Zero}
	}

	for _, it := range items {
		switch it.Status {
		case WorkQueueStatusPending:
			s.Pending++
			s.PipelineValue = s.PipelineValue.Add(it.Amount)
		case WorkQueueStatusSent:
			s.Sent++
			s.PipelineValue = s.PipelineValue.Add(it.Amount)
		case WorkQueueStatusAccepted:
			s.Accepted++
			s.AcceptedRevenue = s.AcceptedRevenue.Add(it.Amount)
			s.addPeriodRevenue(it, today, weekStart, seriesStart)
		case WorkQueueStatusFailed:
			s.Failed++
		}
	}
	// Rate over quotations that reached the customer.
	if reached := s.Sent + s.Accepted; reached > 0 {
		s.AcceptanceRate = decimal.NewFromInt(int64(s.Accepted)).
			Div(decimal.NewFromInt(int64(reached))).
			Round(4)
	}
	s.Recent = RecentWorkQueueItems(items, RecentQuotationsLimit)
	return s
}

func (s *DashboardSummary) addPeriodRevenue(it WorkQueueItem, today, weekStart, seriesStart time.Time) {
	day := utcDay(it.Date)
	if day.After(today) {
		return
	}
	if day.Year() == today.Year() {
		s.YearlyRevenue = s.YearlyRevenue.Add(it.Amount)
		if day.Month() == today.Month() {
			s.MonthlyRevenue = s.MonthlyRevenue.Add(it.Amount)
		}
	}
	if !day.Before(weekStart) {
		i := int(day.Sub(weekStart).Hours() / 24)
		s.RevenueByDay[i].Revenue = s.RevenueByDay[i].Revenue.Add(it.Amount)
		s.WeeklyRevenue = s.WeeklyRevenue.Add(it.Amount)
	}
	if !day.Before(seriesStart) {
		i := (day.Year()-seriesStart.Year())*12 + int(day.Month()) - int(seriesStart.Month())
		s.RevenueByMonth[i].Revenue = s.RevenueByMonth[i].Revenue.Add(it.Amount)
	}
}

// RecentWorkQueueItems returns up to limit items, newest Date first. Items
// sharing a date are ordered latest-added first.
func RecentWorkQueueItems(items []WorkQueueItem, limit int) []WorkQueueItem {
	out := make([]WorkQueueItem, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		out = append(out, items[i])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func utcDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
