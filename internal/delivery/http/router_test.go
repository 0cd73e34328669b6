package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventcheckin/internal/clock"
	"eventcheckin/internal/delivery/http/controllers"
	"eventcheckin/internal/delivery/http/helpers"
	"eventcheckin/internal/delivery/http/middleware"
	"eventcheckin/internal/domain"
	"eventcheckin/internal/metrics"
	"eventcheckin/internal/repository/memory"
	"eventcheckin/internal/services"
	"eventcheckin/internal/textnorm"
)

var (
	testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
	testNow    = time.Date(2025, 4, 2, 19, 30, 0, 0, time.UTC)
)

func newTestRouter(t *testing.T, secret string) http.Handler {
	t.Helper()
	repo, err := memory.NewEventRepository(memory.DefaultEvents())
	require.NoError(t, err)
	col, err := textnorm.NewCollator("pt-BR")
	require.NoError(t, err)
	clk := clock.NewFixed(testNow)
	m := metrics.New()

	return NewRouter(RouterOptions{
		Logger:    testLogger,
		Health:    controllers.NewHealthController(clk),
		Events:    controllers.NewEventController(testLogger, services.NewEventService(repo)),
		Attendees: controllers.NewAttendeeController(testLogger, services.NewAttendeeService(repo, clk, col, m), 0),
		Metrics:   m,
		Auth:      middleware.AuthOptions{Secret: secret},
	})
}

func do(t *testing.T, h http.Handler, method, target, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) *helpers.APIError {
	t.Helper()
	var resp helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.NotNil(t, resp.Error)
	return resp.Error
}

func TestHealth(t *testing.T) {
	h := newTestRouter(t, "")
	rr := do(t, h, http.MethodGet, "/health", "", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	var body controllers.HealthResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "ok", body.Status)
	assert.True(t, testNow.Equal(body.Time))
	assert.NotEmpty(t, rr.Header().Get(middleware.RequestIDHeader))
}

func TestListEvents_Golden(t *testing.T) {
	h := newTestRouter(t, "")
	rr := do(t, h, http.MethodGet, "/events", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var pretty bytes.Buffer
	require.NoError(t, json.Indent(&pretty, bytes.TrimSpace(rr.Body.Bytes()), "", "  "))
	pretty.WriteByte('\n')

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "list_events", pretty.Bytes())
}

func TestListEvents_StatsInvariant(t *testing.T) {
	h := newTestRouter(t, "")
	rr := do(t, h, http.MethodGet, "/events", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var events []domain.EventSummary
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&events))
	require.NotEmpty(t, events)
	for _, e := range events {
		assert.Equal(t, e.Stats.Total, e.Stats.CheckedIn+e.Stats.Absent, e.ID)
	}
}

// Scenario A
func TestGetEvent_Stats(t *testing.T) {
	h := newTestRouter(t, "")
	rr := do(t, h, http.MethodGet, "/events/evt_123", "", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	var ev domain.EventSummary
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&ev))
	assert.Equal(t, "evt_123", ev.ID)
	assert.Equal(t, domain.Stats{Total: 3, CheckedIn: 1, Absent: 2}, ev.Stats)
}

// Scenario E
func TestGetEvent_NotFound(t *testing.T) {
	h := newTestRouter(t, "")
	rr := do(t, h, http.MethodGet, "/events/does_not_exist", "", nil)

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, helpers.ErrCodeNotFound, decodeError(t, rr).Code)
}

// Scenario B
func TestListAttendees_Search(t *testing.T) {
	h := newTestRouter(t, "")
	rr := do(t, h, http.MethodGet, "/events/evt_123/attendees?search=ana", "", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	var page domain.AttendeePage
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&page))
	require.Len(t, page.Data, 1)
	assert.Equal(t, "att_001", page.Data[0].ID)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.Limit)
}

func TestListAttendees_Pagination(t *testing.T) {
	h := newTestRouter(t, "")

	tests := []struct {
		name      string
		query     string
		wantIDs   []string
		wantPage  int
		wantLimit int
	}{
		{"first page", "page=1&limit=2", []string{"att_001", "att_002"}, 1, 2},
		{"second page", "page=2&limit=2", []string{"att_003"}, 2, 2},
		{"beyond the end", "page=9&limit=2", []string{}, 9, 2},
		{"invalid values use defaults", "page=x&limit=y", []string{"att_001", "att_002", "att_003"}, 1, 20},
		{"values below one are floored", "page=0&limit=-4", []string{"att_001"}, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, h, http.MethodGet, "/events/evt_123/attendees?"+tt.query, "", nil)
			require.Equal(t, http.StatusOK, rr.Code)

			var raw map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
			assert.NotEqual(t, "null", string(raw["data"]), "data is always an array")

			var page domain.AttendeePage
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &page))
			got := make([]string, 0, len(page.Data))
			for _, a := range page.Data {
				got = append(got, a.ID)
			}
			assert.Equal(t, tt.wantIDs, got)
			assert.Equal(t, 3, page.Total)
			assert.Equal(t, tt.wantPage, page.Page)
			assert.Equal(t, tt.wantLimit, page.Limit)
		})
	}
}

func TestListAttendees_UnknownEvent(t *testing.T) {
	h := newTestRouter(t, "")
	rr := do(t, h, http.MethodGet, "/events/nope/attendees", "", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

// Scenario C
func TestCheckIn_ThenConflict(t *testing.T) {
	h := newTestRouter(t, "")

	rr := do(t, h, http.MethodPost, "/events/evt_456/checkin", `{"attendeeId":"att_101"}`, nil)
	require.Equal(t, http.StatusCreated, rr.Code)
	var created domain.CheckInResult
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&created))
	assert.Equal(t, "att_101", created.AttendeeID)
	assert.True(t, testNow.Equal(created.CheckedInAt))

	rr = do(t, h, http.MethodPost, "/events/evt_456/checkin", `{"attendeeId":"att_101"}`, nil)
	require.Equal(t, http.StatusConflict, rr.Code)
	var conflict controllers.CheckInConflictResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&conflict))
	require.NotNil(t, conflict.Error)
	assert.Equal(t, helpers.ErrCodeAlreadyCheckedIn, conflict.Error.Code)
	require.NotNil(t, conflict.Data)
	assert.True(t, created.CheckedInAt.Equal(conflict.Data.CheckedInAt))

	rr = do(t, h, http.MethodGet, "/events/evt_456", "", nil)
	var ev domain.EventSummary
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&ev))
	assert.Equal(t, domain.Stats{Total: 3, CheckedIn: 2, Absent: 1}, ev.Stats)
}

func TestCheckIn_Failures(t *testing.T) {
	h := newTestRouter(t, "")

	tests := []struct {
		name       string
		target     string
		body       string
		wantStatus int
		wantCode   string
	}{
		// Scenario D
		{"attendee of another event", "/events/evt_123/checkin", `{"attendeeId":"att_999"}`, http.StatusUnprocessableEntity, helpers.ErrCodeAttendeeNotInEvent},
		{"missing attendee id", "/events/evt_123/checkin", `{}`, http.StatusBadRequest, helpers.ErrCodeBadRequest},
		{"blank attendee id", "/events/evt_123/checkin", `{"attendeeId":"  "}`, http.StatusBadRequest, helpers.ErrCodeBadRequest},
		{"no body", "/events/evt_123/checkin", ``, http.StatusBadRequest, helpers.ErrCodeBadRequest},
		{"malformed body", "/events/evt_123/checkin", `{"attendeeId":`, http.StatusBadRequest, helpers.ErrCodeBadRequest},
		{"unknown event", "/events/does_not_exist/checkin", `{"attendeeId":"att_001"}`, http.StatusNotFound, helpers.ErrCodeNotFound},
		{"seeded check-in conflicts", "/events/evt_123/checkin", `{"attendeeId":"att_002"}`, http.StatusConflict, helpers.ErrCodeAlreadyCheckedIn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, h, http.MethodPost, tt.target, tt.body, nil)
			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rr).Code)
		})
	}
}

func TestCheckIn_ConcurrentRequests(t *testing.T) {
	h := newTestRouter(t, "")

	var wg sync.WaitGroup
	codes := make([]int, 2)
	start := make(chan struct{})
	for i := range codes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			req := httptest.NewRequest(http.MethodPost, "/events/evt_456/checkin", strings.NewReader(`{"attendeeId":"att_101"}`))
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			codes[i] = rr.Code
		}(i)
	}
	close(start)
	wg.Wait()

	assert.ElementsMatch(t, []int{http.StatusCreated, http.StatusConflict}, codes)
}

func TestAuthGate(t *testing.T) {
	h := newTestRouter(t, "s3cret")

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		auth       string
		wantStatus int
	}{
		{"health without token", http.MethodGet, "/health", "", "", http.StatusUnauthorized},
		{"events without token", http.MethodGet, "/events", "", "", http.StatusUnauthorized},
		{"wrong token", http.MethodGet, "/events", "", "Bearer nope", http.StatusUnauthorized},
		{"metrics without token", http.MethodGet, "/metrics", "", "", http.StatusUnauthorized},
		{"unknown route without token", http.MethodGet, "/nope", "", "", http.StatusUnauthorized},
		{"check-in without token", http.MethodPost, "/events/evt_456/checkin", `{"attendeeId":"att_101"}`, "", http.StatusUnauthorized},
		{"health with token", http.MethodGet, "/health", "", "Bearer s3cret", http.StatusOK},
		{"events with token", http.MethodGet, "/events", "", "Bearer s3cret", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := map[string]string{}
			if tt.auth != "" {
				header["Authorization"] = tt.auth
			}
			rr := do(t, h, tt.method, tt.target, tt.body, header)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}

	// rejected check-in did not mutate
	rr := do(t, h, http.MethodPost, "/events/evt_456/checkin", `{"attendeeId":"att_101"}`, map[string]string{"Authorization": "Bearer s3cret"})
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestUnknownRoute(t *testing.T) {
	h := newTestRouter(t, "")
	rr := do(t, h, http.MethodGet, "/nope", "", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, helpers.ErrCodeNotFound, decodeError(t, rr).Code)
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestRouter(t, "")
	do(t, h, http.MethodPost, "/events/evt_456/checkin", `{"attendeeId":"att_101"}`, nil)
	do(t, h, http.MethodGet, "/events", "", nil)

	rr := do(t, h, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `checkin_checkins_total{outcome="created"} 1`)
	assert.Contains(t, body, `checkin_http_requests_total{method="GET",route="GET /events",status="200"} 1`)
}

func TestSwaggerDoc(t *testing.T) {
	h := newTestRouter(t, "")
	rr := do(t, h, http.MethodGet, "/swagger/doc.json", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &doc))
	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, paths, "/events/{eventID}/checkin")
}
