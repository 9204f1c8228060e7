package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"quotedesk/internal/domain/entities"
	"quotedesk/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T, failMethods ...entities.SendMethod) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Port:     "0",
		Archive:  config.ArchiveConfig{Backend: config.ArchiveBackendNone},
		Delivery: config.DeliveryConfig{FailMethods: failMethods, Concurrency: 2},
	}
	router := gin.New()
	setMiddlewares(router)
	if err := getRoutes(router, cfg); err != nil {
		t.Fatalf("getRoutes: %v", err)
	}
	return router
}

func call(t *testing.T, r http.Handler, method, path, body string, out any) int {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("%s %s: missing request id", method, path)
	}
	if out != nil {
		if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
			t.Fatalf("%s %s: invalid json %q", method, path, w.Body.String())
		}
	}
	return w.Code
}

func TestPing(t *testing.T) {
	r := newTestRouter(t)
	var body map[string]string
	if code := call(t, r, http.MethodGet, "/v1/ping", "", &body); code != http.StatusOK || body["message"] != "pong" {
		t.Fatalf("unexpected ping: %d %v", code, body)
	}
}

func TestQuotationToWorkQueueFlow(t *testing.T) {
	r := newTestRouter(t)

	var counts map[string]int
	call(t, r, http.MethodGet, "/v1/work-queue/counts", "", &counts)
	seeded := counts["all"]
	if seeded != 8 {
		t.Fatalf("expected 8 seeded items, got %d", seeded)
	}

	var draft struct {
		ID    string `json:"id"`
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
		Total string `json:"total"`
	}
	if code := call(t, r, http.MethodPost, "/v1/quotations", "", &draft); code != http.StatusCreated {
		t.Fatalf("create: %d", code)
	}
	first := draft.Items[0].ID

	if code := call(t, r, http.MethodDelete, "/v1/quotations/"+draft.ID+"/items/"+first, "", nil); code != http.StatusConflict {
		t.Fatalf("removing the last item should conflict, got %d", code)
	}

	call(t, r, http.MethodPut, "/v1/quotations/"+draft.ID+"/customer", `{"name":"John Smith"}`, nil)
	call(t, r, http.MethodPatch, "/v1/quotations/"+draft.ID+"/items/"+first, `{"field":"quantity","value":2}`, nil)
	call(t, r, http.MethodPatch, "/v1/quotations/"+draft.ID+"/items/"+first, `{"field":"unitPrice","value":"10"}`, nil)
	call(t, r, http.MethodPost, "/v1/quotations/"+draft.ID+"/items", "", &draft)
	second := draft.Items[1].ID
	call(t, r, http.MethodPatch, "/v1/quotations/"+draft.ID+"/items/"+second, `{"field":"unitPrice","value":5}`, &draft)
	if draft.Total != "27.50" {
		t.Fatalf("expected total 27.50, got %s", draft.Total)
	}

	var item struct {
		ID         string `json:"id"`
		Amount     string `json:"amount"`
		Status     string `json:"status"`
		SendMethod string `json:"send_method"`
	}
	if code := call(t, r, http.MethodPost, "/v1/quotations/"+draft.ID+"/submit", `{"send_method":"email"}`, &item); code != http.StatusCreated {
		t.Fatalf("submit: %d", code)
	}
	if item.Status != "Pending" || item.Amount != "27.50" || item.SendMethod != "Email" {
		t.Fatalf("unexpected queued item: %+v", item)
	}
	if code := call(t, r, http.MethodGet, "/v1/quotations/"+draft.ID, "", nil); code != http.StatusNotFound {
		t.Fatalf("submitted draft should be gone, got %d", code)
	}

	if code := call(t, r, http.MethodPost, "/v1/work-queue/"+item.ID+"/send", "", &item); code != http.StatusOK || item.Status != "Sent" {
		t.Fatalf("send: %d %+v", code, item)
	}

	var list struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
	}
	call(t, r, http.MethodGet, "/v1/work-queue?status=SENT", "", &list)
	found := false
	for _, it := range list.Items {
		found = found || it.ID == item.ID
	}
	if !found {
		t.Fatalf("sent item missing from sent filter")
	}

	call(t, r, http.MethodGet, "/v1/work-queue/counts", "", &counts)
	if counts["all"] != seeded+1 {
		t.Fatalf("expected %d items, got %d", seeded+1, counts["all"])
	}
}

func TestDeliveryFailureMarksItemFailed(t *testing.T) {
	r := newTestRouter(t, entities.SendMethodWhatsApp)

	// QT-2024-002 is seeded as a Pending WhatsApp quotation.
	if code := call(t, r, http.MethodPost, "/v1/work-queue/QT-2024-002/send", "", nil); code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", code)
	}
	var item map[string]any
	call(t, r, http.MethodGet, "/v1/work-queue/QT-2024-002", "", &item)
	if item["status"] != "Failed" {
		t.Fatalf("expected Failed, got %v", item["status"])
	}
	if code := call(t, r, http.MethodPost, "/v1/work-queue/QT-2024-002/retry", "", &item); code != http.StatusOK || item["status"] != "Pending" {
		t.Fatalf("retry: %d %v", code, item)
	}
}

func TestUploadsDisabledWithoutObjectStorage(t *testing.T) {
	r := newTestRouter(t)
	if code := call(t, r, http.MethodPost, "/v1/work-queue/QT-2024-001/document/link", "", nil); code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", code)
	}
}
