package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"seo-assistant/internal/models"
	"seo-assistant/internal/monetize"
	"seo-assistant/internal/seo"
	"seo-assistant/internal/youtube"
	"seo-assistant/shared/monitoring"
	"seo-assistant/shared/storage"
)

// Server exposes the analysis and regeneration API the browser UI talks to.
type Server struct {
	youtube *youtube.Client
	seo     *seo.Client
	history *storage.History
	monitor *monitoring.Monitor
}

func New(yt *youtube.Client, seoClient *seo.Client, history *storage.History, monitor *monitoring.Monitor) *Server {
	return &Server{
		youtube: yt,
		seo:     seoClient,
		history: history,
		monitor: monitor,
	}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/analyze", s.handleAnalyze)
	mux.HandleFunc("GET /api/search", s.handleSearch)
	mux.HandleFunc("GET /api/history", s.handleHistory)
	mux.HandleFunc("POST /api/regenerate/{section}", s.handleRegenerate)
	monitoring.RegisterHealthHandlers(mux, s.monitor)
	return mux
}

// AnalyzeResponse is the full payload for one analyzed video.
type AnalyzeResponse struct {
	Context     *models.VideoContext     `json:"context"`
	Formatted   FormattedStats           `json:"formatted"`
	Income      models.IncomeEstimate    `json:"income"`
	Suggestions *models.SuggestionBundle `json:"suggestions"`
	Generation  *seo.Report              `json:"generation"`
}

// FormattedStats carries display-ready strings so the UI does not reparse
// durations and counts.
type FormattedStats struct {
	Duration string `json:"duration"`
	Views    string `json:"views"`
	Likes    string `json:"likes"`
	Comments string `json:"comments"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	input := r.URL.Query().Get("video")
	if input == "" {
		writeError(w, http.StatusBadRequest, "missing video parameter")
		return
	}

	videoID, ok := youtube.ExtractVideoID(input)
	if !ok {
		writeError(w, http.StatusBadRequest, "not a valid YouTube video link or ID")
		return
	}

	vc, err := s.youtube.GetVideoContext(r.Context(), videoID)
	if err != nil {
		s.monitor.RecordFailure(err, time.Since(start))
		if errors.Is(err, youtube.ErrVideoNotFound) {
			writeError(w, http.StatusNotFound, "video not found")
			return
		}
		writeError(w, http.StatusBadGateway, "failed to fetch video metadata")
		return
	}

	bundle, report := s.seo.GenerateWithReport(r.Context(), vc)

	if err := s.history.Add(storage.Record{
		VideoID:  videoID,
		Title:    vc.Title,
		Category: vc.Category,
		SEOScore: bundle.SEOScore,
		Source:   report.Source,
	}); err != nil {
		log.Printf("Warning: failed to record analysis for %s: %v", videoID, err)
	}

	s.monitor.RecordAnalysis(
		fmt.Sprintf("video %s scored %d via %s", videoID, bundle.SEOScore, report.Source),
		time.Since(start),
	)

	writeJSON(w, http.StatusOK, AnalyzeResponse{
		Context: vc,
		Formatted: FormattedStats{
			Duration: youtube.FormatDuration(vc.Video.Duration),
			Views:    youtube.FormatCount(vc.Stats.Views),
			Likes:    youtube.FormatCount(vc.Stats.Likes),
			Comments: youtube.FormatCount(vc.Stats.Comments),
		},
		Income:      monetize.Estimate(vc.Stats.Views, vc.Channel.Country),
		Suggestions: bundle,
		Generation:  report,
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "missing q parameter")
		return
	}

	results, err := s.youtube.Search(r.Context(), query)
	if err != nil {
		if errors.Is(err, youtube.ErrNoResults) {
			writeError(w, http.StatusNotFound, "no videos found")
			return
		}
		writeError(w, http.StatusBadGateway, "search failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if _, err := fmt.Sscanf(v, "%d", &limit); err != nil || limit <= 0 {
			writeError(w, http.StatusBadRequest, "invalid limit parameter")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"history": s.history.Recent(limit)})
}

// regenerateRequest carries the stored context and the bundle the UI holds.
type regenerateRequest struct {
	Context     *models.VideoContext     `json:"context"`
	Suggestions *models.SuggestionBundle `json:"suggestions"`
}

func (s *Server) handleRegenerate(w http.ResponseWriter, r *http.Request) {
	section := r.PathValue("section")

	var req regenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Context == nil {
		writeError(w, http.StatusBadRequest, "missing context")
		return
	}

	updated, ok := s.seo.RegenerateSection(section, req.Context, req.Suggestions)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown section: "+section)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"section":     section,
		"suggestions": updated,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Warning: failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
