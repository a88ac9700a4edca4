package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/teamlens/teamlens/internal/audit"
	"github.com/teamlens/teamlens/internal/rag"
	"github.com/teamlens/teamlens/internal/report"
	"github.com/teamlens/teamlens/internal/vectordb"
)

// searchRequest is the JSON body for the search endpoint.
type searchRequest struct {
	Query       string `json:"query"`
	Limit       int    `json:"limit"`
	ClusterType string `json:"cluster_type"`
}

type searchResponse struct {
	Results []searchHit `json:"results"`
}

type searchHit struct {
	ClusterType string  `json:"cluster_type"`
	ClusterKey  string  `json:"cluster_key"`
	ChunkIndex  int     `json:"chunk_index"`
	Similarity  float32 `json:"similarity"`
	Content     string  `json:"content"`
}

// askRequest is the JSON body for the ask endpoint.
type askRequest struct {
	Question string `json:"question"`
	Mode     string `json:"mode"`
}

type askResponse struct {
	Answer       string  `json:"answer"`
	Mode         string  `json:"mode"`
	Model        string  `json:"model"`
	InputTokens  int     `json:"input_tokens"`
	OutputTokens int     `json:"output_tokens"`
	CostUSD      float64 `json:"cost_usd"`
	DurationMS   int64   `json:"duration_ms"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Query == "" {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}
	if req.Limit <= 0 {
		req.Limit = 5
	}

	var filter *vectordb.SearchFilter
	if req.ClusterType != "" {
		clusterType := vectordb.ClusterType(req.ClusterType)
		if clusterType != vectordb.ClusterTask && clusterType != vectordb.ClusterEmployee {
			writeError(w, http.StatusBadRequest, "cluster_type must be task or employee")
			return
		}
		filter = &vectordb.SearchFilter{ClusterType: &clusterType}
	}

	results, err := s.store.Search(r.Context(), req.Query, req.Limit, filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	hits := make([]searchHit, 0, len(results))
	for _, res := range results {
		hits = append(hits, searchHit{
			ClusterType: string(res.Document.Metadata.ClusterType),
			ClusterKey:  res.Document.Metadata.ClusterKey,
			ChunkIndex:  res.Document.Metadata.ChunkIndex,
			Similarity:  res.Similarity,
			Content:     res.Document.Content,
		})
	}
	writeJSON(w, http.StatusOK, searchResponse{Results: hits})
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Question == "" {
		writeError(w, http.StatusBadRequest, "question is required")
		return
	}

	mode := rag.ModeProfile
	if req.Mode != "" {
		var err error
		mode, err = rag.ParseMode(req.Mode)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	answer, err := s.engine.Answer(r.Context(), req.Question, mode)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, rag.ErrRetrievalFailed) {
			status = http.StatusInternalServerError
		}
		writeError(w, status, err.Error())
		return
	}

	s.recordAnswer(r, req.Question, answer)

	writeJSON(w, http.StatusOK, askResponse{
		Answer:       answer.Text,
		Mode:         string(answer.Mode),
		Model:        answer.Model,
		InputTokens:  answer.InputTokens,
		OutputTokens: answer.OutputTokens,
		CostUSD:      answer.CostUSD,
		DurationMS:   answer.Duration.Milliseconds(),
	})
}

func (s *Server) recordAnswer(r *http.Request, question string, answer *rag.Answer) {
	if s.history == nil {
		return
	}
	_, err := s.history.Record(r.Context(), audit.Entry{
		Question:     question,
		Mode:         string(answer.Mode),
		Answer:       answer.Text,
		Model:        answer.Model,
		InputTokens:  answer.InputTokens,
		OutputTokens: answer.OutputTokens,
		CostUSD:      answer.CostUSD,
		Duration:     answer.Duration,
	})
	if err != nil {
		log.Printf("server: recording history entry: %v", err)
	}
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if s.report == nil {
		writeError(w, http.StatusNotFound, "no snapshot loaded")
		return
	}
	writeJSON(w, http.StatusOK, s.report)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	if s.report == nil {
		writeError(w, http.StatusNotFound, "no snapshot loaded")
		return
	}

	md := report.Markdown(s.report)
	page, err := report.HTML(md)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(page))
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		writeJSON(w, http.StatusOK, map[string]any{"entries": []audit.Entry{}})
		return
	}

	entries, err := s.history.Recent(r.Context(), 20)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if entries == nil {
		entries = []audit.Entry{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": entries})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("server: encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
