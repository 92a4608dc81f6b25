package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/color3/backend/internal/application/usecase/color"
	tricolorday "github.com/color3/backend/internal/application/usecase/tricolor_day"
	domainerror "github.com/color3/backend/internal/domain/error"
	"github.com/color3/backend/internal/integration/entrypoint/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	return resp
}

func TestHandleDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "invalid hex",
			err:        domainerror.NewColorError(domainerror.ErrCodeInvalidHexColor, "bad hex", domainerror.ErrInvalidHexColor),
			wantStatus: http.StatusBadRequest,
			wantCode:   "CLR-010001",
		},
		{
			name:       "submission not found",
			err:        domainerror.NewSubmissionError(domainerror.ErrCodeSubmissionNotFound, "missing", domainerror.ErrSubmissionNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   "SUB-010001",
		},
		{
			name:       "array lengths",
			err:        domainerror.NewSubmissionError(domainerror.ErrCodeInvalidArrayLengths, "lengths", domainerror.ErrInvalidArrayLengths),
			wantStatus: http.StatusBadRequest,
			wantCode:   "SUB-010002",
		},
		{
			name:       "submission internal",
			err:        domainerror.NewSubmissionError(domainerror.ErrCodeSubmissionInternalError, "db down", errors.New("conn refused")),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "SUB-990001",
		},
		{
			name:       "invalid horizon",
			err:        domainerror.NewTriColorError(domainerror.ErrCodeInvalidHorizon, "horizon", domainerror.ErrInvalidHorizon),
			wantStatus: http.StatusBadRequest,
			wantCode:   "TCD-010001",
		},
		{
			name:       "snapshot not found",
			err:        domainerror.NewAggregateError(domainerror.ErrCodeSnapshotNotFound, "none", domainerror.ErrSnapshotNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   "AGG-010001",
		},
		{
			name:       "wrapped coded error",
			err:        fmt.Errorf("outer: %w", domainerror.NewColorError(domainerror.ErrCodeUnknownColorFamily, "teal", domainerror.ErrUnknownColorFamily)),
			wantStatus: http.StatusBadRequest,
			wantCode:   "CLR-010003",
		},
		{
			name:       "uncoded error",
			err:        errors.New("unexpected"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/", func(c *gin.Context) { handleDomainError(c, tt.err) })

			w := doRequest(r, http.MethodGet, "/", "")
			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}

			resp := decodeError(t, w)
			if resp.Code != tt.wantCode {
				t.Errorf("expected code %q, got %q", tt.wantCode, resp.Code)
			}
			if tt.wantStatus == http.StatusInternalServerError && resp.Error != "An internal error occurred" {
				t.Errorf("expected generic message for 500, got %q", resp.Error)
			}
		})
	}
}

func newColorRouter() *gin.Engine {
	c := NewColorController(color.NewListFamiliesUseCase(), color.NewClassifyColorUseCase())
	r := gin.New()
	r.GET("/colors/families", c.ListFamilies)
	r.GET("/colors/classify", c.Classify)
	return r
}

func TestColorController_ListFamilies(t *testing.T) {
	w := doRequest(newColorRouter(), http.MethodGet, "/colors/families", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp dto.ColorFamilyListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Families) != 11 {
		t.Fatalf("expected 11 families, got %d", len(resp.Families))
	}
	if resp.Families[0].Family != "red" || resp.Families[0].Label != "Red" {
		t.Errorf("expected red first, got %+v", resp.Families[0])
	}
}

func TestColorController_Classify(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantFamily string
		wantCode   string
	}{
		{"valid red", "?hex=%23FF0000", http.StatusOK, "red", ""},
		{"without hash", "?hex=16a34a", http.StatusOK, "green", ""},
		{"missing hex", "", http.StatusBadRequest, "", "CLR-010004"},
		{"invalid hex", "?hex=zzz", http.StatusBadRequest, "", "CLR-010001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(newColorRouter(), http.MethodGet, "/colors/classify"+tt.query, "")
			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}

			if tt.wantStatus != http.StatusOK {
				if resp := decodeError(t, w); resp.Code != tt.wantCode {
					t.Errorf("expected code %q, got %q", tt.wantCode, resp.Code)
				}
				return
			}

			var resp dto.ClassifyColorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Family != tt.wantFamily {
				t.Errorf("expected family %q, got %q", tt.wantFamily, resp.Family)
			}
		})
	}
}

func newTriColorRouter() *gin.Engine {
	uc := tricolorday.NewFindTriColorDaysUseCase(
		tricolorday.HorizonPolicy{DefaultMonths: 12, MaxMonths: 120},
		fixedClock{now: time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)},
	)
	c := NewTriColorController(uc)
	r := gin.New()
	r.POST("/tricolor-days", c.Find)
	return r
}

func TestTriColorController_Find(t *testing.T) {
	body := `{"months":{"9":"red"},"days_of_month":{"13":"red"},"days_of_week":{"2":"red"},"months_ahead":1}`

	w := doRequest(newTriColorRouter(), http.MethodPost, "/tricolor-days", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp dto.TriColorDaysResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Count != 1 || len(resp.Days) != 1 {
		t.Fatalf("expected a single match, got %d", resp.Count)
	}
	day := resp.Days[0]
	if day.Date != "2026-10-13" || day.MonthName != "October" || day.DayOfWeekName != "Tuesday" {
		t.Errorf("unexpected match %+v", day)
	}
	if resp.Window.Start != "2026-10-01" || resp.Window.End != "2026-11-01" {
		t.Errorf("unexpected window %+v", resp.Window)
	}
	if got := resp.ByMonth["2026-10"]; len(got) != 1 || got[0] != 13 {
		t.Errorf("expected by_month 2026-10 = [13], got %v", got)
	}
	if resp.Mapping == nil || resp.Mapping.DaysOfMonth["13"] != "red" {
		t.Errorf("expected mapping echo, got %+v", resp.Mapping)
	}
}

func TestTriColorController_FindErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{"unknown family", `{"months":{"0":"teal"}}`, "CLR-010003"},
		{"slot out of range", `{"months":{"12":"red"}}`, "TCD-010002"},
		{"non-integer slot key", `{"days_of_week":{"monday":"red"}}`, "TCD-010002"},
		{"horizon too large", `{"months_ahead":121}`, "TCD-010001"},
		{"horizon zero", `{"months_ahead":0}`, "TCD-010001"},
		{"malformed body", `{"months":`, "TCD-010003"},
		{"months given as a list", `{"months":["red"]}`, "TCD-010003"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(newTriColorRouter(), http.MethodPost, "/tricolor-days", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
			}
			if resp := decodeError(t, w); resp.Code != tt.wantCode {
				t.Errorf("expected code %q, got %q", tt.wantCode, resp.Code)
			}
		})
	}
}

func TestSubmissionController_RequestValidation(t *testing.T) {
	// Every case is rejected before a use case runs.
	c := NewSubmissionController(nil, nil, nil, nil)
	r := gin.New()
	r.POST("/submissions", c.Create)
	r.PUT("/submissions/:id", c.Update)
	r.GET("/submissions/:id", c.Get)
	r.GET("/submissions/:id/tricolor-days", c.TriColorDays)

	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		wantCode string
	}{
		{"malformed json", http.MethodPost, "/submissions", `{"months":[`, "SUB-010005"},
		{"missing arrays", http.MethodPost, "/submissions", `{"months":[]}`, "SUB-010005"},
		{"non-object entry", http.MethodPost, "/submissions", `{"months":[1],"days_of_month":[],"days_of_week":[]}`, "SUB-010003"},
		{"bad id on update", http.MethodPut, "/submissions/not-a-uuid", `{}`, "SUB-010004"},
		{"bad id on get", http.MethodGet, "/submissions/not-a-uuid", "", "SUB-010004"},
		{"bad id on tricolor days", http.MethodGet, "/submissions/123/tricolor-days", "", "SUB-010004"},
		{"bad months query", http.MethodGet, "/submissions/6f1c0a52-3b7e-4d3a-9a8e-5b0a1d2c3e4f/tricolor-days?months=abc", "", "TCD-010001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, tt.method, tt.path, tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
			}
			if resp := decodeError(t, w); resp.Code != tt.wantCode {
				t.Errorf("expected code %q, got %q", tt.wantCode, resp.Code)
			}
		})
	}
}

func TestHealthController_Check(t *testing.T) {
	tests := []struct {
		name      string
		db        func() bool
		cache     func() bool
		wantDB    string
		wantCache string
	}{
		{"all up", func() bool { return true }, func() bool { return true }, "connected", "connected"},
		{"cache down", func() bool { return true }, func() bool { return false }, "connected", "disconnected"},
		{"cache disabled", func() bool { return false }, nil, "disconnected", "disabled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthController(tt.db, tt.cache)
			r := gin.New()
			r.GET("/health", h.Check)

			w := doRequest(r, http.MethodGet, "/health", "")
			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", w.Code)
			}

			var resp HealthResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Database != tt.wantDB || resp.Cache != tt.wantCache {
				t.Errorf("expected db=%s cache=%s, got db=%s cache=%s", tt.wantDB, tt.wantCache, resp.Database, resp.Cache)
			}
		})
	}
}
