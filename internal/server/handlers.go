package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/lucasmonteiro/cvmatch/internal/analyzer"
	"github.com/lucasmonteiro/cvmatch/internal/ingestion"
	"github.com/lucasmonteiro/cvmatch/internal/types"
)

// AnalyzeRequest represents the request body for /analyze
type AnalyzeRequest struct {
	Resume         *types.ResumeRecord `json:"resume"`
	JobDescription string              `json:"job_description"`
}

// AnalyzeURLRequest represents the request body for /analyze/url
type AnalyzeURLRequest struct {
	Resume *types.ResumeRecord `json:"resume"`
	JobURL string              `json:"job_url"`
}

// AnalyzeResponse represents the response for both analyze endpoints
type AnalyzeResponse struct {
	AnalysisID string             `json:"analysis_id"`
	Analysis   *types.JobAnalysis `json:"analysis"`
}

// handleAnalyze analyzes a résumé against inline job-description text
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.Resume == nil {
		s.errorResponse(w, http.StatusBadRequest, "resume is required")
		return
	}
	if err := req.Resume.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume: "+err.Error())
		return
	}

	analysisID := uuid.New().String()
	log.Printf("Analyzing resume (analysis ID: %s)", analysisID)

	analysis := analyzer.Analyze(req.Resume, req.JobDescription)

	s.jsonResponse(w, http.StatusOK, AnalyzeResponse{
		AnalysisID: analysisID,
		Analysis:   analysis,
	})
}

// handleAnalyzeURL fetches a job posting from a URL and analyzes a résumé against it
func (s *Server) handleAnalyzeURL(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.Resume == nil {
		s.errorResponse(w, http.StatusBadRequest, "resume is required")
		return
	}
	if req.JobURL == "" {
		s.errorResponse(w, http.StatusBadRequest, "job_url is required")
		return
	}
	if err := req.Resume.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume: "+err.Error())
		return
	}

	jobText, _, err := ingestion.IngestFromURL(r.Context(), req.JobURL, false)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Failed to fetch job posting: "+err.Error())
		return
	}

	analysisID := uuid.New().String()
	log.Printf("Analyzing resume against %s (analysis ID: %s)", req.JobURL, analysisID)

	analysis := analyzer.Analyze(req.Resume, jobText)

	s.jsonResponse(w, http.StatusOK, AnalyzeResponse{
		AnalysisID: analysisID,
		Analysis:   analysis,
	})
}
