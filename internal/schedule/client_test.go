package schedule

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const sampleWeek = `{
  "semana": 52,
  "año": 2025,
  "rango_fechas": "22 - 28 Diciembre",
  "dias": [
    {
      "nombre": "Jueves",
      "fecha": "25 Dic",
      "festivo": true,
      "festivo_badge": "NAVIDAD",
      "programas": [
        {"tipo": "crossfit", "titulo": "Cerrado", "rest_text": "Feliz Navidad", "icono": "🎄"}
      ]
    },
    {
      "nombre": "Viernes",
      "fecha": "26 Dic",
      "programas": [
        {"titulo": "WOD", "workouts": [{"titulo": "Fuerza", "detalles": "5x5 back squat"}], "feedback": "Escalar cargas"}
      ]
    }
  ]
}`

func TestClient_LoadWeekDecodesDocument(t *testing.T) {
	t.Parallel()

	var gotPath, gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleWeek))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL+"/box", time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	doc, err := c.LoadWeek(ctx, WeekKey{Week: 52, Year: 2025})
	if err != nil {
		t.Fatalf("LoadWeek returned error: %v", err)
	}
	if gotPath != "/box/semanas/semana_52_2025.json" {
		t.Fatalf("request path = %q, want /box/semanas/semana_52_2025.json", gotPath)
	}
	if !strings.HasPrefix(gotUserAgent, "wodview/") {
		t.Fatalf("User-Agent = %q, want wodview/*", gotUserAgent)
	}
	if doc.Week != 52 || doc.Year != 2025 || len(doc.Days) != 2 {
		t.Fatalf("doc = %+v, want week 52/2025 with 2 days", doc)
	}
	if !doc.Days[0].IsHoliday || doc.Days[0].HolidayBadge != "NAVIDAD" {
		t.Fatalf("day 0 = %+v, want holiday with badge", doc.Days[0])
	}
	if doc.Days[0].Programs[0].RestText != "Feliz Navidad" {
		t.Fatalf("rest text = %q, want Feliz Navidad", doc.Days[0].Programs[0].RestText)
	}
	prog := doc.Days[1].Programs[0]
	if prog.Kind() != "crossfit" || len(prog.Workouts) != 1 || prog.Workouts[0].Details != "5x5 back squat" {
		t.Fatalf("program = %+v, want crossfit with one workout", prog)
	}
}

func TestClient_LoadWeekNotFoundIsFetchError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.LoadWeek(context.Background(), WeekKey{Week: 3, Year: 2026})
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("LoadWeek error = %v, want *FetchError", err)
	}
	if fetchErr.Status != http.StatusNotFound {
		t.Fatalf("Status = %d, want 404", fetchErr.Status)
	}
	if fetchErr.Path != "semanas/semana_3_2026.json" {
		t.Fatalf("Path = %q, want semanas/semana_3_2026.json", fetchErr.Path)
	}
}

func TestClient_MalformedJSONIsParseError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not-json"))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.LoadWeek(context.Background(), WeekKey{Week: 1, Year: 2026})
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("LoadWeek error = %v, want *ParseError", err)
	}
}

func TestClient_NetworkFailureIsFetchError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	c, err := NewClient(url, time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.LoadWeek(context.Background(), WeekKey{Week: 1, Year: 2026})
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("LoadWeek error = %v, want *FetchError", err)
	}
	if fetchErr.Status != 0 {
		t.Fatalf("Status = %d, want 0 for network failure", fetchErr.Status)
	}
}

func TestClient_LoadConfigFreshBustsCache(t *testing.T) {
	t.Parallel()

	var gotQuery, gotCache string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/config.json" {
			http.NotFound(w, r)
			return
		}
		gotQuery = r.URL.Query().Get("t")
		gotCache = r.Header.Get("Cache-Control")
		_, _ = w.Write([]byte(`{"semanaActual": 1, "añoActual": 2026, "semanasDisponibles": [{"semana": 1, "año": 2026, "nombre": "semana_1_2026.json"}]}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	c.now = func() time.Time { return time.UnixMilli(1700000000123) }

	cfg, err := c.LoadConfig(context.Background(), true)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if gotQuery != "1700000000123" {
		t.Fatalf("t query = %q, want 1700000000123", gotQuery)
	}
	if gotCache != "no-cache" {
		t.Fatalf("Cache-Control = %q, want no-cache", gotCache)
	}
	if cfg.CurrentWeek == nil || *cfg.CurrentWeek != 1 || cfg.CurrentYear == nil || *cfg.CurrentYear != 2026 {
		t.Fatalf("cfg = %+v, want week 1/2026", cfg)
	}
	if cfg.Notifications != nil {
		t.Fatalf("Notifications = %v, want nil when absent", *cfg.Notifications)
	}
	if len(cfg.Refs()) != 1 {
		t.Fatalf("Refs() = %v, want 1 entry", cfg.Refs())
	}

	if _, err := c.LoadConfig(context.Background(), false); err != nil {
		t.Fatalf("LoadConfig(false) returned error: %v", err)
	}
	if gotQuery != "" || gotCache != "" {
		t.Fatalf("non-fresh request sent t=%q Cache-Control=%q, want neither", gotQuery, gotCache)
	}
}

func TestClient_StoreConfigIsReadOnly(t *testing.T) {
	c, err := NewClient("127.0.0.1:1", time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if err := c.StoreConfig(context.Background(), RemoteConfig{}); !errors.Is(err, ErrReadOnly) {
		t.Fatalf("StoreConfig error = %v, want ErrReadOnly", err)
	}
}

func TestParseBaseURL(t *testing.T) {
	if _, err := parseBaseURL("  "); err == nil {
		t.Fatalf("parseBaseURL(blank) returned nil error, want error")
	}
	u, err := parseBaseURL("example.com/programacion?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" || u.Path != "/programacion/" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("parseBaseURL = %q, want http://example.com/programacion/", u.String())
	}
}
