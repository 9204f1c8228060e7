package response

import "quotedesk/internal/domain/entities"

type RevenuePointResponse struct {
	Label   string `json:"label"`
	Start   string `json:"start"`
	Revenue string `json:"revenue"`
}

type DashboardResponse struct {
	Counts           WorkQueueCountsResponse `json:"counts"`
	AcceptedRevenue  string                  `json:"accepted_revenue"`
	PipelineValue    string                  `json:"pipeline_value"`
	AcceptanceRate   string                  `json:"acceptance_rate"`
	WeeklyRevenue    string                  `json:"weekly_revenue"`
	MonthlyRevenue   string                  `json:"monthly_revenue"`
	YearlyRevenue    string                  `json:"yearly_revenue"`
	RevenueByDay     []RevenuePointResponse  `json:"revenue_by_day"`
	RevenueByMonth   []RevenuePointResponse  `json:"revenue_by_month"`
	RecentQuotations []WorkQueueItemResponse `json:"recent_quotations"`
}

func FromDashboardSummary(s entities.DashboardSummary) DashboardResponse {
	return DashboardResponse{
		Counts: WorkQueueCountsResponse{
			All:      s.Total,
			Pending:  s.Pending,
			Sent:     s.Sent,
			Accepted: s.Accepted,
			Failed:   s.Failed,
		},
		AcceptedRevenue:  entities.FormatAmount(s.AcceptedRevenue),
		PipelineValue:    entities.FormatAmount(s.PipelineValue),
		AcceptanceRate:   s.AcceptanceRate.StringFixed(4),
		WeeklyRevenue:    entities.FormatAmount(s.WeeklyRevenue),
		MonthlyRevenue:   entities.FormatAmount(s.MonthlyRevenue),
		YearlyRevenue:    entities.FormatAmount(s.YearlyRevenue),
		RevenueByDay:     fromRevenuePoints(s.RevenueByDay),
		RevenueByMonth:   fromRevenuePoints(s.RevenueByMonth),
		RecentQuotations: FromWorkQueueItems(s.Recent),
	}
}

func fromRevenuePoints(points []entities.RevenuePoint) []RevenuePointResponse {
	out := make([]RevenuePointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, RevenuePointResponse{
			Label:   p.Label,
			Start:   p.Start.Format("2006-01-02"),
			Revenue: entities.FormatAmount(p.Revenue),
		})
	}
	return out
}
