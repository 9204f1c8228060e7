package entities

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrWorkItemNotFound       = errors.New("work queue item not found")
	ErrWorkItemAlreadyExists  = errors.New("work queue item already exists")
	ErrInvalidWorkQueueStatus = errors.New("invalid work queue status")
	ErrInvalidSendMethod      = errors.New("invalid send method")
	ErrUnknownWorkQueueAction = errors.New("unknown work queue action")
)

// WorkQueueStatus is the delivery state of a submitted quotation.
//
// Transitions are explicit user actions. None of them check the source state:
// the dashboard only offers "send" on Pending rows and "retry" on Failed rows,
// and the queue itself stays permissive.
type WorkQueueStatus string

const (
	WorkQueueStatusPending  WorkQueueStatus = "Pending"
	WorkQueueStatusSent     WorkQueueStatus = "Sent"
	WorkQueueStatusAccepted WorkQueueStatus = "Accepted"
	WorkQueueStatusFailed   WorkQueueStatus = "Failed"
)

// WorkQueueStatuses lists every status in display order.
var WorkQueueStatuses = []WorkQueueStatus{
	WorkQueueStatusPending,
	WorkQueueStatusSent,
	WorkQueueStatusAccepted,
	WorkQueueStatusFailed,
}

// ParseWorkQueueStatus is case-insensitive ("accepted" == "Accepted").
func ParseWorkQueueStatus(s string) (WorkQueueStatus, error) {
	s = strings.TrimSpace(s)
	for _, st := range WorkQueueStatuses {
		if strings.EqualFold(s, string(st)) {
			return st, nil
		}
	}
	return "", ErrInvalidWorkQueueStatus
}

// StatusFilter selects either one status or every item ("all").
type StatusFilter struct {
	status WorkQueueStatus
	all    bool
}

var StatusFilterAll = StatusFilter{all: true}

func FilterStatus(s WorkQueueStatus) StatusFilter {
	return StatusFilter{status: s}
}

// ParseStatusFilter treats "" and "all" as StatusFilterAll.
func ParseStatusFilter(s string) (StatusFilter, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") {
		return StatusFilterAll, nil
	}
	st, err := ParseWorkQueueStatus(s)
	if err != nil {
		return StatusFilter{}, err
	}
	return FilterStatus(st), nil
}

func (f StatusFilter) Matches(s WorkQueueStatus) bool {
	return f.all || f.status == s
}

func (f StatusFilter) String() string {
	if f.all {
		return "all"
	}
	return strings.ToLower(string(f.status))
}

// SendMethod is the channel a quotation is delivered through.
type SendMethod string

const (
	SendMethodEmail    SendMethod = "Email"
	SendMethodWhatsApp SendMethod = "WhatsApp"
)

func ParseSendMethod(s string) (SendMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "email":
		return SendMethodEmail, nil
	case "whatsapp":
		return SendMethodWhatsApp, nil
	}
	return "", ErrInvalidSendMethod
}

// WorkQueueItem is the delivery record of one quotation. Only Status changes
// after creation.
type WorkQueueItem struct {
	ID           string
	CustomerName string
	Amount       decimal.Decimal
	SendMethod   SendMethod
	Status       WorkQueueStatus
	Date         time.Time
}

// WorkQueueAction is a user-triggered transition.
type WorkQueueAction string

const (
	WorkQueueActionSend   WorkQueueAction = "send"
	WorkQueueActionRetry  WorkQueueAction = "retry"
	WorkQueueActionAccept WorkQueueAction = "accept"
	WorkQueueActionFail   WorkQueueAction = "fail"
)

// Target returns the status an action moves an item to.
func (a WorkQueueAction) Target() (WorkQueueStatus, error) {
	switch a {
	case WorkQueueActionSend:
		return WorkQueueStatusSent, nil
	case WorkQueueActionRetry:
		return WorkQueueStatusPending, nil
	case WorkQueueActionAccept:
		return WorkQueueStatusAccepted, nil
	case WorkQueueActionFail:
		return WorkQueueStatusFailed, nil
	}
	return "", ErrUnknownWorkQueueAction
}

// WorkQueue is an insertion-ordered set of delivery records keyed by id.
// Items are never deleted.
type WorkQueue struct {
	items []WorkQueueItem
	index map[string]int
}

func NewWorkQueue(items ...WorkQueueItem) (*WorkQueue, error) {
	q := &WorkQueue{index: make(map[string]int, len(items))}
	for _, it := range items {
		if err := q.Add(it); err != nil {
			return nil, err
		}
	}
	return q, nil
}

func (q *WorkQueue) Add(it WorkQueueItem) error {
	if q.index == nil {
		q.index = map[string]int{}
	}
	if _, ok := q.index[it.ID]; ok {
		return ErrWorkItemAlreadyExists
	}
	if _, err := ParseWorkQueueStatus(string(it.Status)); err != nil {
		return err
	}
	q.index[it.ID] = len(q.items)
	q.items = append(q.items, it)
	return nil
}

func (q *WorkQueue) Get(id string) (WorkQueueItem, bool) {
	idx, ok := q.index[id]
	if !ok {
		return WorkQueueItem{}, false
	}
	return q.items[idx], true
}

func (q *WorkQueue) Items() []WorkQueueItem {
	return append([]WorkQueueItem(nil), q.items...)
}

func (q *WorkQueue) Len() int {
	return len(q.items)
}

func (q *WorkQueue) Send(id string) (WorkQueueItem, error) {
	return q.setStatus(id, WorkQueueStatusSent)
}

func (q *WorkQueue) Retry(id string) (WorkQueueItem, error) {
	return q.setStatus(id, WorkQueueStatusPending)
}

func (q *WorkQueue) Accept(id string) (WorkQueueItem, error) {
	return q.setStatus(id, WorkQueueStatusAccepted)
}

func (q *WorkQueue) MarkFailed(id string) (WorkQueueItem, error) {
	return q.setStatus(id, WorkQueueStatusFailed)
}

// Apply runs the transition named by action.
func (q *WorkQueue) Apply(id string, action WorkQueueAction) (WorkQueueItem, error) {
	target, err := action.Target()
	if err != nil {
		return WorkQueueItem{}, err
	}
	return q.setStatus(id, target)
}

func (q *WorkQueue) setStatus(id string, status WorkQueueStatus) (WorkQueueItem, error) {
	idx, ok := q.index[id]
	if !ok {
		return WorkQueueItem{}, ErrWorkItemNotFound
	}
	q.items[idx].Status = status
	return q.items[idx], nil
}

// FilterByStatus keeps insertion order.
func (q *WorkQueue) FilterByStatus(f StatusFilter) []WorkQueueItem {
	out := make([]WorkQueueItem, 0, len(q.items))
	for _, it := range q.items {
		if f.Matches(it.Status) {
			out = append(out, it)
		}
	}
	return out
}

// CountByStatus does not allocate; it must agree with len(FilterByStatus(f)).
func (q *WorkQueue) CountByStatus(f StatusFilter) int {
	if f.all {
		return len(q.items)
	}
	n := 0
	for _, it := range q.items {
		if it.Status == f.status {
			n++
		}
	}
	return n
}
