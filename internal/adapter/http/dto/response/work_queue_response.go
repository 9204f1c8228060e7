package response

import (
	"quotedesk/internal/domain/entities"
	"quotedesk/internal/usecase"
)

type WorkQueueItemResponse struct {
	ID           string `json:"id"`
	CustomerName string `json:"customer_name"`
	Amount       string `json:"amount"`
	Status       string `json:"status"`
	SendMethod   string `json:"send_method"`
	Date         string `json:"date"`
}

type WorkQueueCountsResponse struct {
	All      int `json:"all"`
	Pending  int `json:"pending"`
	Sent     int `json:"sent"`
	Accepted int `json:"accepted"`
	Failed   int `json:"failed"`
}

type WorkQueueListResponse struct {
	Filter string                  `json:"filter"`
	Items  []WorkQueueItemResponse `json:"items"`
}

type SendPendingResponse struct {
	Sent   []WorkQueueItemResponse `json:"sent"`
	Failed []WorkQueueItemResponse `json:"failed"`
}

type DocumentLinkResponse struct {
	URL string `json:"url"`
}

func FromWorkQueueItem(it entities.WorkQueueItem) WorkQueueItemResponse {
	return WorkQueueItemResponse{
		ID:           it.ID,
		CustomerName: it.CustomerName,
		Amount:       entities.FormatAmount(it.Amount),
		Status:       string(it.Status),
		SendMethod:   string(it.SendMethod),
		Date:         it.Date.Format("2006-01-02"),
	}
}

func FromWorkQueueItems(items []entities.WorkQueueItem) []WorkQueueItemResponse {
	out := make([]WorkQueueItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromWorkQueueItem(it))
	}
	return out
}

func FromWorkQueueCounts(c usecase.WorkQueueCounts) WorkQueueCountsResponse {
	return WorkQueueCountsResponse{
		All:      c.All,
		Pending:  c.Pending,
		Sent:     c.Sent,
		Accepted: c.Accepted,
		Failed:   c.Failed,
	}
}

func FromSendPendingResult(r usecase.SendPendingResult) SendPendingResponse {
	return SendPendingResponse{
		Sent:   FromWorkQueueItems(r.Sent),
		Failed: FromWorkQueueItems(r.Failed),
	}
}
