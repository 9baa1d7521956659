// Package web serves the expression pipeline over HTTP. It is the transport
// shell around package stepcalc: it corrects raw input, runs the pipeline,
// and serializes the result into a JSON envelope.
package web

import (
	"encoding/json"
	"net/http"

	"github.com/apexpr/stepcalc"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("stepcalc.web")

// Server handles expression-solving requests. It is safe for concurrent use:
// every request runs its own pipeline instances and no state is shared.
type Server struct {
	mux *http.ServeMux
}

// NewServer creates a server with its routes registered.
func NewServer() *Server {
	s := &Server{mux: http.NewServeMux()}
	s.mux.HandleFunc("/solve-expression", s.handleSolve)
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/", s.handleNotFound)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

type solveRequest struct {
	Expression string `json:"expression"`
}

type solveResponse struct {
	InputExpressionRaw  string        `json:"input_expression_raw"`
	ExpressionCorrected string        `json:"expression_corrected"`
	Solution            solutionBody  `json:"solution"`
	ExportFormats       exportFormats `json:"export_formats"`
	Status              string        `json:"status"`
}

type solutionBody struct {
	Steps       []string `json:"steps"`
	FinalResult float64  `json:"final_result"`
}

type exportFormats struct {
	LaTeX  string `json:"latex"`
	MathML string `json:"mathml"`
}

type errorResponse struct {
	Error  string `json:"error"`
	Status string `json:"status"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Expression == "" {
		writeError(w, http.StatusBadRequest, "no expression provided")
		return
	}

	corrected := stepcalc.Correct(req.Expression)
	sol, err := stepcalc.Solve(corrected)
	if err != nil {
		log.Errorf("solve %q (corrected %q): %s", req.Expression, corrected, err)
		writeError(w, http.StatusUnprocessableEntity, "processing error: "+err.Error())
		return
	}
	log.Infof("solved %q -> %s", req.Expression, sol.Normalized)

	steps := make([]string, len(sol.Steps))
	for i, step := range sol.Steps {
		steps[i] = stepcalc.FormatStep(step)
	}
	writeJSON(w, http.StatusOK, solveResponse{
		InputExpressionRaw:  req.Expression,
		ExpressionCorrected: sol.Normalized,
		Solution: solutionBody{
			Steps:       steps,
			FinalResult: sol.Result,
		},
		ExportFormats: exportFormats{
			LaTeX:  stepcalc.ToLaTeX(sol.Normalized),
			MathML: stepcalc.ToMathML(sol.Normalized),
		},
		Status: "success",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "expression solver is running",
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "endpoint not found")
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorResponse{Error: msg, Status: "error"})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("encode response: %s", err)
	}
}
