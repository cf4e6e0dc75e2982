package router

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/opencustoms/tariff/internal/tariff/duty"
	"github.com/opencustoms/tariff/internal/tariff/model"
	"github.com/opencustoms/tariff/internal/tariff/service"
)

type TariffRouter struct {
	ds *service.DutyService
}

func NewTariffRouter(ds *service.DutyService) *TariffRouter {
	return &TariffRouter{ds: ds}
}

// HandleCalculateDuty handles POST /api/duty/calculate requests
// Request body: duty.Input
// Response: duty.Breakdown
func (tr *TariffRouter) HandleCalculateDuty(w http.ResponseWriter, r *http.Request) {
	var in duty.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, r, &duty.ValidationError{Field: "body", Message: "invalid request body: " + err.Error()})
		return
	}
	defer r.Body.Close()

	breakdown, err := tr.ds.CalculateDuty(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, breakdown)
}

// HandleGetRates handles GET /api/duty/rates/{hsCode} requests
func (tr *TariffRouter) HandleGetRates(w http.ResponseWriter, r *http.Request) {
	hsCode := r.PathValue("hsCode")
	if hsCode == "" {
		writeError(w, r, &duty.ValidationError{Field: "hsCode", Message: "missing hsCode in path"})
		return
	}

	rates, err := tr.ds.Rates(r.Context(), hsCode)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rates)
}

// HandleGetFtaRates handles GET /api/duty/fta-rates/{hsCode}/{countryCode} requests
func (tr *TariffRouter) HandleGetFtaRates(w http.ResponseWriter, r *http.Request) {
	hsCode := r.PathValue("hsCode")
	countryCode := r.PathValue("countryCode")
	if hsCode == "" || countryCode == "" {
		writeError(w, r, &duty.ValidationError{Field: "path", Message: "hsCode and countryCode are required"})
		return
	}

	rates, err := tr.ds.FtaRates(r.Context(), hsCode, countryCode)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rates)
}

// HandleTcoCheck handles GET /api/duty/tco-check/{hsCode} requests.
// Returns {"tco": null} when no current order exists.
func (tr *TariffRouter) HandleTcoCheck(w http.ResponseWriter, r *http.Request) {
	hsCode := r.PathValue("hsCode")
	if hsCode == "" {
		writeError(w, r, &duty.ValidationError{Field: "hsCode", Message: "missing hsCode in path"})
		return
	}

	tco, err := tr.ds.TcoCheck(r.Context(), hsCode)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]*model.Tco{"tco": tco})
}

// HandleSearchTariffCodes handles GET /api/tariff/codes requests
// Optional query filters: startsWith, level, offset, limit
func (tr *TariffRouter) HandleSearchTariffCodes(w http.ResponseWriter, r *http.Request) {
	var filter model.TariffCodeFilter

	if startsWith := r.URL.Query().Get("startsWith"); startsWith != "" {
		filter.StartsWith = &startsWith
	}
	if levelStr := r.URL.Query().Get("level"); levelStr != "" {
		level, err := strconv.Atoi(levelStr)
		if err != nil || !model.ValidLevel(level) {
			writeError(w, r, &duty.ValidationError{Field: "level", Message: "level must be 2, 4, 6, 8 or 10"})
			return
		}
		filter.Level = &level
	}
	if err := parsePagination(r, &filter.Offset, &filter.Limit); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := tr.ds.SearchTariffCodes(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// HandleGetTariffCode handles GET /api/tariff/codes/{hsCode} requests
func (tr *TariffRouter) HandleGetTariffCode(w http.ResponseWriter, r *http.Request) {
	hsCode := r.PathValue("hsCode")
	if hsCode == "" {
		writeError(w, r, &duty.ValidationError{Field: "hsCode", Message: "missing hsCode in path"})
		return
	}

	detail, err := tr.ds.TariffCode(r.Context(), hsCode)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

// HandleListAgreements handles GET /api/agreements requests
func (tr *TariffRouter) HandleListAgreements(w http.ResponseWriter, r *http.Request) {
	agreements, err := tr.ds.Agreements(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, agreements)
}

// HandleGetExportCode handles GET /api/export/codes/{aheccCode} requests
func (tr *TariffRouter) HandleGetExportCode(w http.ResponseWriter, r *http.Request) {
	aheccCode := r.PathValue("aheccCode")
	if aheccCode == "" {
		writeError(w, r, &duty.ValidationError{Field: "aheccCode", Message: "missing aheccCode in path"})
		return
	}

	code, err := tr.ds.ExportCode(r.Context(), aheccCode)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, code)
}

// HandleListNews handles GET /api/news requests
// Optional query filters: category, offset, limit
func (tr *TariffRouter) HandleListNews(w http.ResponseWriter, r *http.Request) {
	var filter model.NewsFilter

	if category := r.URL.Query().Get("category"); category != "" {
		filter.Category = &category
	}
	if err := parsePagination(r, &filter.Offset, &filter.Limit); err != nil {
		writeError(w, r, err)
		return
	}

	articles, err := tr.ds.News(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, articles)
}

// HandleGetNews handles GET /api/news/{newsID} requests
func (tr *TariffRouter) HandleGetNews(w http.ResponseWriter, r *http.Request) {
	newsIDStr := r.PathValue("newsID")
	newsID, err := uuid.Parse(newsIDStr)
	if err != nil {
		writeError(w, r, &duty.ValidationError{Field: "newsID", Message: "invalid news ID: " + err.Error()})
		return
	}

	article, err := tr.ds.NewsArticle(r.Context(), newsID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, article)
}

func parsePagination(r *http.Request, offset, limit **int) error {
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		v, err := strconv.Atoi(offsetStr)
		if err != nil {
			return &duty.ValidationError{Field: "offset", Message: "must be an integer"}
		}
		*offset = &v
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		v, err := strconv.Atoi(limitStr)
		if err != nil {
			return &duty.ValidationError{Field: "limit", Message: "must be an integer"}
		}
		*limit = &v
	}
	return nil
}
