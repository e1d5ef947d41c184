package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"healthtrack/internal/models"
	"healthtrack/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// --- parseInterval unit tests ---

func TestParseInterval(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHandler(&service.Service{}, nil, Config{})

	cases := []struct {
		name string
		u    string
		want time.Duration
	}{
		{"default_when_missing", "/ws/measurements", 5 * time.Second},
		{"interval_string_valid", "/ws/measurements?interval=200ms", 200 * time.Millisecond},
		{"interval_ms_valid", "/ws/measurements?interval_ms=150", 150 * time.Millisecond},
		{"interval_too_large", "/ws/measurements?interval=2m", 5 * time.Second},
		{"interval_ms_too_large", "/ws/measurements?interval_ms=120000", 5 * time.Second},
		{"interval_invalid_string", "/ws/measurements?interval=bogus", 5 * time.Second},
		{"both_present_interval_wins", "/ws/measurements?interval=2s&interval_ms=150", 2 * time.Second},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.u, nil)
			c, _ := gin.CreateTestContext(w)
			c.Request = req
			got := h.parseInterval(c)
			if got != tc.want {
				t.Fatalf("got %v, want %v for %s", got, tc.want, tc.u)
			}
		})
	}
}

// --- websocket integration tests ---

func wsURL(t *testing.T, base, rawQuery string) string {
	t.Helper()
	u, err := url.Parse(base)
	if err != nil {
		t.Fatalf("parse server url: %v", err)
	}
	u.Scheme = "ws"
	u.Path = "/ws/measurements"
	u.RawQuery = rawQuery
	return u.String()
}

func TestWebSocketMeasurements_FirstFrameIsRecentList(t *testing.T) {
	auth := &mockAuth{parseClaims: userClaims("u1", models.RoleUser)}
	recent := models.RecentMeasurements{
		{ID: 1, Date: time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), WeightKg: 82},
		{ID: 2, Date: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), WeightKg: 81.5},
	}
	ms := &mockMeasurements{recent: recent}
	r := newTestRouter(&service.Service{Authorization: auth, Measurements: ms})

	srv := httptest.NewServer(r)
	defer srv.Close()

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(wsURL(t, srv.URL, "interval_ms=20"), authHeader("tok"))
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	defer conn.Close()

	type envelope struct {
		Type  string          `json:"type"`
		Data  json.RawMessage `json:"data"`
		Error string          `json:"error"`
	}

	// The current list arrives immediately, before the first tick.
	_ = conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	var env envelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read initial: %v", err)
	}
	if env.Type != "recent_measurements" || len(env.Data) == 0 {
		t.Fatalf("bad envelope: %+v", env)
	}
	var got models.RecentMeasurements
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("unmarshal list: %v", err)
	}
	if len(got) != 2 || got[0].WeightKg != 82 || got[1].WeightKg != 81.5 {
		t.Fatalf("unexpected list: %+v", got)
	}
	if ms.lastRecentUserID != "u1" {
		t.Fatalf("expected feed scoped to u1, got %q", ms.lastRecentUserID)
	}

	// A subsequent tick repeats the list.
	_ = conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	env = envelope{}
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read second: %v", err)
	}
	if env.Type != "recent_measurements" {
		t.Fatalf("expected type=recent_measurements, got %+v", env)
	}
}

func TestWebSocketMeasurements_RejectsMissingToken(t *testing.T) {
	r := newTestRouter(&service.Service{Measurements: &mockMeasurements{}})

	srv := httptest.NewServer(r)
	defer srv.Close()

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, resp, err := dialer.Dial(wsURL(t, srv.URL, ""), nil)
	if err == nil {
		conn.Close()
		t.Fatal("expected handshake to fail without a token")
	}
	if resp == nil || resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 handshake response, got %+v", resp)
	}
}
