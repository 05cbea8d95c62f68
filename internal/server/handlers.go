package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/dualahq/duala/internal/metrics"
	"github.com/dualahq/duala/internal/models"
	"github.com/dualahq/duala/internal/store"
)

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	s.logger.Debug("search request", zap.String("query", query))

	start := time.Now()
	results, err := s.engine.Search(r.Context(), query)
	if err != nil {
		s.logger.Error("search failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "search failed")
		return
	}
	observeSearch("simple", len(results), time.Since(start))
	s.respondJSON(w, http.StatusOK, results)
}

func (s *Server) handleAdvancedSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := models.SearchOptions{
		County:      q.Get("county"),
		City:        q.Get("city"),
		ServiceType: q.Get("serviceType"),
		Sort:        models.ParseSort(q.Get("sort")),
		Page:        intParam(q, "page"),
		Limit:       intParam(q, "limit"),
	}
	if v := q.Get("available"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			opts.Available = &b
		}
	}
	s.logger.Debug("advanced search request",
		zap.String("query", q.Get("q")),
		zap.String("county", opts.County),
		zap.String("city", opts.City),
		zap.String("serviceType", opts.ServiceType),
		zap.String("sort", string(opts.Sort)),
	)

	start := time.Now()
	page, err := s.engine.AdvancedSearch(r.Context(), q.Get("q"), opts)
	if err != nil {
		s.logger.Error("advanced search failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "search failed")
		return
	}
	observeSearch("advanced", len(page.Results), time.Since(start))
	s.respondJSON(w, http.StatusOK, page)
}

func (s *Server) handleByLocation(w http.ResponseWriter, r *http.Request) {
	county := r.URL.Query().Get("county")
	city := r.URL.Query().Get("city")
	s.logger.Debug("location request", zap.String("county", county), zap.String("city", city))

	start := time.Now()
	results, err := s.engine.ByLocation(r.Context(), county, city)
	if err != nil {
		s.logger.Error("location search failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "search failed")
		return
	}
	observeSearch("location", len(results), time.Since(start))
	s.respondJSON(w, http.StatusOK, results)
}

func (s *Server) handleCreateListing(w http.ResponseWriter, r *http.Request) {
	var listing models.Listing
	if err := json.NewDecoder(r.Body).Decode(&listing); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := listing.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.logger.Debug("create listing request", zap.String("name", listing.Name))
	if err := s.store.Create(r.Context(), &listing); err != nil {
		s.logger.Error("create listing failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "failed to create listing")
		return
	}
	s.respondJSON(w, http.StatusCreated, &listing)
}

func (s *Server) handleListListings(w http.ResponseWriter, r *http.Request) {
	var (
		listings []*models.Listing
		err      error
	)
	if r.URL.Query().Get("available") == "true" {
		listings, err = s.store.AllAvailable(r.Context())
	} else {
		listings, err = s.store.All(r.Context())
	}
	if err != nil {
		s.logger.Error("list listings failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "failed to list listings")
		return
	}
	if listings == nil {
		listings = []*models.Listing{}
	}
	s.respondJSON(w, http.StatusOK, listings)
}

func (s *Server) handleGetListing(w http.ResponseWriter, r *http.Request) {
	id, ok := s.listingID(w, r)
	if !ok {
		return
	}
	listing, err := s.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, "listing not found")
			return
		}
		s.logger.Error("get listing failed", zap.Int64("id", id), zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "failed to load listing")
		return
	}

	// Reading a listing counts as a view. A failed bump is logged, not
	// surfaced; the read itself already succeeded.
	if err := s.store.RecordView(r.Context(), id); err != nil {
		s.logger.Warn("failed to record view", zap.Int64("id", id), zap.Error(err))
	} else {
		listing.ViewCount++
		metrics.ListingViewsTotal.Inc()
	}

	s.respondJSON(w, http.StatusOK, listing)
}

func (s *Server) handleUpdateListing(w http.ResponseWriter, r *http.Request) {
	id, ok := s.listingID(w, r)
	if !ok {
		return
	}
	var listing models.Listing
	if err := json.NewDecoder(r.Body).Decode(&listing); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	listing.ID = id
	if err := listing.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.logger.Debug("update listing request", zap.Int64("id", id))
	if err := s.store.Update(r.Context(), &listing); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, "listing not found")
			return
		}
		s.logger.Error("update listing failed", zap.Int64("id", id), zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "failed to update listing")
		return
	}
	s.respondJSON(w, http.StatusOK, &listing)
}

func (s *Server) handleDeleteListing(w http.ResponseWriter, r *http.Request) {
	id, ok := s.listingID(w, r)
	if !ok {
		return
	}
	s.logger.Debug("delete listing request", zap.Int64("id", id))
	if err := s.store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, "listing not found")
			return
		}
		s.logger.Error("delete listing failed", zap.Int64("id", id), zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "failed to delete listing")
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	total, err := s.store.Count(ctx)
	if err != nil {
		s.logger.Error("status: count listings failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "failed to read status")
		return
	}
	available, err := s.store.CountAvailable(ctx)
	if err != nil {
		s.logger.Error("status: count available failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "failed to read status")
		return
	}

	resp := map[string]interface{}{
		"listings":        total,
		"available":       available,
		"lexicon_entries": s.lexicons.Current().Size(),
	}

	if s.config != nil {
		resp["config"] = map[string]interface{}{
			"default_limit": s.config.Search.DefaultLimit,
			"max_limit":     s.config.Search.MaxLimit,
			"database_path": s.config.Storage.DatabasePath,
			"lexicon_path":  s.config.Lexicon.Path,
		}
		if diskBytes, err := store.DatabaseSizeBytes(s.config.Storage.DatabasePath); err == nil {
			resp["disk_usage_bytes"] = diskBytes
		}
	}
	s.respondJSON(w, http.StatusOK, resp)
}

// listingID parses the {id} route parameter, responding with 400 on garbage.
func (s *Server) listingID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		s.respondError(w, http.StatusBadRequest, "invalid listing id")
		return 0, false
	}
	return id, true
}

// intParam parses a numeric query parameter, returning 0 for anything
// malformed so search options fall back to their defaults.
func intParam(q url.Values, name string) int {
	n, err := strconv.Atoi(q.Get(name))
	if err != nil {
		return 0
	}
	return n
}

func observeSearch(mode string, results int, took time.Duration) {
	metrics.SearchRequestsTotal.WithLabelValues(mode).Inc()
	metrics.SearchDuration.WithLabelValues(mode).Observe(took.Seconds())
	metrics.SearchResults.WithLabelValues(mode).Observe(float64(results))
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
