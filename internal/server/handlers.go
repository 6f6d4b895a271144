package server

import (
	"net/http"
	"strconv"

	chi "github.com/go-chi/chi/v5"

	"github.com/roach88/sango/internal/service"
)

type fetchResponse struct {
	UID    int64                  `json:"uid"`
	Builds []service.BuildOutcome `json:"builds"`
	Errors []string               `json:"errors,omitempty"`
}

// handleFetch pulls a player's showcase from upstream and records it.
// Characters that fail to assemble are reported alongside the ones that
// succeeded; the response is an error status only when nothing was
// recorded.
func (s *Server) handleFetch(w http.ResponseWriter, r *http.Request) {
	uid, err := strconv.ParseInt(chi.URLParam(r, "uid"), 10, 64)
	if err != nil || uid <= 0 {
		s.badRequest(w, "uid must be a positive integer")
		return
	}

	outcomes, err := s.svc.FetchAndRecord(r.Context(), uid)
	if err != nil && len(outcomes) == 0 {
		s.writeError(w, r, err)
		return
	}

	resp := fetchResponse{UID: uid, Builds: outcomes}
	if err != nil {
		resp.Errors = []string{err.Error()}
		s.log.Warn("partial snapshot", "uid", uid, "error", err)
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePlayer(w http.ResponseWriter, r *http.Request) {
	uid, err := strconv.ParseInt(chi.URLParam(r, "uid"), 10, 64)
	if err != nil || uid <= 0 {
		s.badRequest(w, "uid must be a positive integer")
		return
	}

	view, err := s.svc.PlayerBuilds(r.Context(), uid)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleBuild(w http.ResponseWriter, r *http.Request) {
	view, err := s.svc.GetBuild(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		s.badRequest(w, "id must be a positive integer")
		return
	}

	entry, err := s.svc.CatalogEntry(r.Context(), service.CatalogKind(chi.URLParam(r, "kind")), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, entry)
}
