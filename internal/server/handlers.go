package server

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/aristath/esglens/internal/modules/accuracy"
	"github.com/aristath/esglens/internal/modules/dataset"
)

// filterFromQuery builds a dataset filter from request query parameters.
// Absent parameters leave the corresponding dimension unfiltered.
func (s *Server) filterFromQuery(r *http.Request) (dataset.Filter, error) {
	f := dataset.NewFilter(s.ds)
	q := r.URL.Query()

	if v := q.Get("year_min"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return f, fmt.Errorf("invalid year_min %q", v)
		}
		f.YearMin = year
	}
	if v := q.Get("year_max"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return f, fmt.Errorf("invalid year_max %q", v)
		}
		f.YearMax = year
	}
	if v := q.Get("region"); v != "" {
		f.Region = v
	}
	if v := q.Get("industry"); v != "" {
		f.Industry = v
	}
	if v := q.Get("min_esg"); v != "" {
		minESG, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, fmt.Errorf("invalid min_esg %q", v)
		}
		f.MinESG = minESG
	}
	if v := q.Get("include_outliers"); v != "" {
		include, err := strconv.ParseBool(v)
		if err != nil {
			return f, fmt.Errorf("invalid include_outliers %q", v)
		}
		f.IncludeOutliers = include
	}

	return f, nil
}

// handleDatasetSummary returns the summary of the (optionally filtered)
// dataset.
func (s *Server) handleDatasetSummary(w http.ResponseWriter, r *http.Request) {
	filter, err := s.filterFromQuery(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	filtered := filter.Apply(s.ds)
	s.writeJSON(w, http.StatusOK, dataset.Summarize(filtered))
}

// handleDatasetExport streams the filtered dataset as a CSV download
func (s *Server) handleDatasetExport(w http.ResponseWriter, r *http.Request) {
	filter, err := s.filterFromQuery(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	filtered := filter.Apply(s.ds)

	filename := fmt.Sprintf("esg_data_export_%s.csv", time.Now().UTC().Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := dataset.WriteCSV(w, filtered); err != nil {
		s.log.Error().Err(err).Msg("Failed to write CSV export")
	}
}

// scorecardForRequest returns the scorecard for the full dataset, serving
// a cached result when the dataset fingerprint already has one.
func (s *Server) scorecardForRequest() (interface{}, error) {
	fingerprint := s.ds.Fingerprint()

	if s.reportRepo != nil {
		cached, err := s.reportRepo.Latest(fingerprint)
		if err != nil {
			return nil, err
		}
		if cached != nil {
			return cached, nil
		}
	}

	card, err := s.engine.Evaluate(s.ds)
	if err != nil {
		return nil, err
	}

	if s.reportRepo != nil {
		if err := s.reportRepo.Save(card); err != nil {
			// Serving the fresh scorecard matters more than caching it
			s.log.Warn().Err(err).Msg("Failed to cache scorecard")
		}
	}

	return card, nil
}

// handleScorecard evaluates the dataset and returns the scorecard as JSON
func (s *Server) handleScorecard(w http.ResponseWriter, r *http.Request) {
	card, err := s.scorecardForRequest()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, card)
}

// handleScorecardReport returns the fixed-width text report
func (s *Server) handleScorecardReport(w http.ResponseWriter, r *http.Request) {
	card, err := s.engine.Evaluate(s.ds)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(accuracy.Render(card))); err != nil {
		s.log.Error().Err(err).Msg("Failed to write report response")
	}
}

// handleScorecardHistory returns recent stored scorecards
func (s *Server) handleScorecardHistory(w http.ResponseWriter, r *http.Request) {
	if s.reportRepo == nil {
		s.writeError(w, http.StatusNotFound, "scorecard history is not enabled")
		return
	}

	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid limit %q", v))
			return
		}
		limit = n
	}

	cards, err := s.reportRepo.History(limit)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, cards)
}
