package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/teamlens/teamlens/internal/analytics"
	"github.com/teamlens/teamlens/internal/audit"
	"github.com/teamlens/teamlens/internal/llm"
	"github.com/teamlens/teamlens/internal/rag"
	"github.com/teamlens/teamlens/internal/vectordb"
)

type mockStore struct {
	docs []vectordb.Document
}

func (m *mockStore) AddDocuments(_ context.Context, docs []vectordb.Document) error {
	m.docs = append(m.docs, docs...)
	return nil
}

func (m *mockStore) Search(_ context.Context, query string, limit int, filter *vectordb.SearchFilter) ([]vectordb.SearchResult, error) {
	var results []vectordb.SearchResult
	for _, doc := range m.docs {
		if filter != nil && filter.ClusterType != nil && doc.Metadata.ClusterType != *filter.ClusterType {
			continue
		}
		results = append(results, vectordb.SearchResult{Document: doc, Similarity: 0.9})
		if len(results) >= limit {
			break
		}
	}
	return results, nil
}

func (m *mockStore) Reset(_ context.Context) error             { return nil }
func (m *mockStore) Persist(_ context.Context, _ string) error { return nil }
func (m *mockStore) Load(_ context.Context, _ string) error    { return nil }
func (m *mockStore) Count() int                                { return len(m.docs) }

type mockProvider struct {
	response string
}

func (m *mockProvider) Complete(_ context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	return &llm.CompletionResponse{
		Content:      m.response,
		InputTokens:  10,
		OutputTokens: 5,
		Model:        req.Model,
	}, nil
}

func (m *mockProvider) Name() string { return "mock" }

func testServer(t *testing.T, report *analytics.Report) *Server {
	t.Helper()

	store := &mockStore{docs: []vectordb.Document{
		{
			ID:      "employee:alice:0",
			Content: "alice committed five times",
			Metadata: vectordb.DocumentMetadata{
				ClusterType: vectordb.ClusterEmployee,
				ClusterKey:  "alice",
			},
		},
	}}
	engine := rag.NewEngine(store, &mockProvider{response: "alice did"}, "test-model", 3, time.Minute)

	history, err := audit.OpenMemory()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { history.Close() })

	return New(Config{Port: 0}, store, engine, report, history)
}

func TestHealthz(t *testing.T) {
	srv := testServer(t, nil)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestHandleSearch(t *testing.T) {
	srv := testServer(t, nil)

	body := `{"query": "alice commits", "limit": 3}`
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var resp searchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Results) != 1 || resp.Results[0].ClusterKey != "alice" {
		t.Errorf("results = %+v", resp.Results)
	}
}

func TestHandleSearchValidation(t *testing.T) {
	srv := testServer(t, nil)

	tests := []struct {
		name string
		body string
	}{
		{"empty query", `{"query": ""}`},
		{"bad json", `{`},
		{"bad cluster type", `{"query": "x", "cluster_type": "person"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(tt.body)))
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestHandleAsk(t *testing.T) {
	srv := testServer(t, nil)

	body := `{"question": "who worked most?"}`
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/ask", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var resp askResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Answer != "alice did" || resp.Mode != "profile" {
		t.Errorf("response = %+v", resp)
	}

	// The exchange lands in the history.
	histRec := httptest.NewRecorder()
	srv.Router().ServeHTTP(histRec, httptest.NewRequest(http.MethodGet, "/api/history", nil))
	if histRec.Code != http.StatusOK {
		t.Fatalf("history status = %d", histRec.Code)
	}
	if !strings.Contains(histRec.Body.String(), "who worked most?") {
		t.Errorf("history missing the question: %s", histRec.Body.String())
	}
}

func TestHandleAskInvalidMode(t *testing.T) {
	srv := testServer(t, nil)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/ask",
		strings.NewReader(`{"question": "q", "mode": "secret"}`)))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleStats(t *testing.T) {
	t.Run("no snapshot", func(t *testing.T) {
		srv := testServer(t, nil)
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stats", nil))
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("with snapshot", func(t *testing.T) {
		srv := testServer(t, &analytics.Report{
			Stats: analytics.TeamStats{TotalEmployees: 2, TotalCommits: 7},
		})
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stats", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"total_commits":7`) {
			t.Errorf("body = %s", rec.Body.String())
		}
	})
}

func TestHandleReport(t *testing.T) {
	srv := testServer(t, &analytics.Report{
		Stats: analytics.TeamStats{TotalEmployees: 1},
	})

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/report", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/html") {
		t.Errorf("content type = %q", got)
	}
	if !strings.Contains(rec.Body.String(), "Team Activity Report") {
		t.Error("report body missing the title")
	}
}

func TestHandleHistoryWithoutStore(t *testing.T) {
	store := &mockStore{}
	engine := rag.NewEngine(store, &mockProvider{}, "m", 3, time.Minute)
	srv := New(Config{Port: 0}, store, engine, nil, nil)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/history", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"entries":[]`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}
