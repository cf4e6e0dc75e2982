package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/opencustoms/tariff/internal/config"
	"github.com/opencustoms/tariff/internal/tariff/model"
	"github.com/opencustoms/tariff/internal/tariff/service"
	"github.com/opencustoms/tariff/internal/tariff/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, model.AutoMigrate(db))
	seedRouterFixtures(t, db)

	ds := service.NewDutyService(store.NewStore(db), config.DutyConfig{
		GSTRatePercent: decimal.NewFromInt(10),
	})
	tr := NewTariffRouter(ds)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/duty/calculate", tr.HandleCalculateDuty)
	mux.HandleFunc("GET /api/duty/rates/{hsCode}", tr.HandleGetRates)
	mux.HandleFunc("GET /api/duty/fta-rates/{hsCode}/{countryCode}", tr.HandleGetFtaRates)
	mux.HandleFunc("GET /api/duty/tco-check/{hsCode}", tr.HandleTcoCheck)
	mux.HandleFunc("GET /api/tariff/codes", tr.HandleSearchTariffCodes)
	mux.HandleFunc("GET /api/tariff/codes/{hsCode}", tr.HandleGetTariffCode)
	mux.HandleFunc("GET /api/agreements", tr.HandleListAgreements)
	mux.HandleFunc("GET /api/export/codes/{aheccCode}", tr.HandleGetExportCode)
	mux.HandleFunc("GET /api/news", tr.HandleListNews)
	mux.HandleFunc("GET /api/news/{newsID}", tr.HandleGetNews)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func seedRouterFixtures(t *testing.T, db *gorm.DB) {
	t.Helper()

	longAgo := time.Date(2005, time.January, 1, 0, 0, 0, 0, time.UTC)
	rate := decimal.RequireFromString("5.00")
	free := decimal.Zero

	require.NoError(t, db.Create(&[]model.TariffCode{
		{HSCode: "0101", Description: "Live horses, asses, mules and hinnies", Level: 4, IsActive: true},
		{HSCode: "010121", Description: "Pure-bred breeding horses", Level: 6, ParentCode: ptr("0101"), IsActive: true},
		{HSCode: "0101210000", Description: "Pure-bred breeding horses", Level: 10, ParentCode: ptr("010121"), IsActive: true},
	}).Error)
	require.NoError(t, db.Create(&model.DutyRate{
		HSCode:      "0101210000",
		GeneralRate: &rate,
		UnitType:    model.RateBasisAdValorem,
		RateText:    "5%",
	}).Error)
	require.NoError(t, db.Create(&model.TradeAgreement{
		FtaCode:        "AUSFTA",
		FullName:       "Australia-United States Free Trade Agreement",
		EntryForceDate: longAgo,
		Status:         model.AgreementStatusActive,
	}).Error)
	require.NoError(t, db.Create(&model.FtaRate{
		HSCode:           "0101210000",
		FtaCode:          "AUSFTA",
		CountryCode:      "USA",
		PreferentialRate: &free,
		EffectiveDate:    longAgo,
	}).Error)
	require.NoError(t, db.Create(&model.ExportCode{
		AheccCode:   "0101210010",
		Description: "Thoroughbred racehorses",
	}).Error)
}

func ptr(s string) *string { return &s }

func getJSON(t *testing.T, srv *httptest.Server, path string, wantStatus int) map[string]any {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, wantStatus, resp.StatusCode)
	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var doc map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	return doc
}

func TestCalculateDutyEndpoint(t *testing.T) {
	srv := newTestServer(t)

	body := `{"hsCode":"0101210000","countryCode":"USA","customsValue":"1000"}`
	resp, err := http.Post(srv.URL+"/api/duty/calculate", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var doc map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))

	general, ok := doc["general"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "50", general["amount"])

	rec, ok := doc["recommendation"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "fta", rec["source"])
	assert.Equal(t, "AUSFTA", rec["ftaCode"])
	assert.Equal(t, "50", rec["savings"])
}

func TestCalculateDutyEndpoint_ValidationError(t *testing.T) {
	srv := newTestServer(t)

	body := `{"hsCode":"01","countryCode":"USA","customsValue":"1000"}`
	resp, err := http.Post(srv.URL+"/api/duty/calculate", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var doc errorEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	assert.Equal(t, "validation_error", doc.Error.Type)
	assert.Equal(t, http.StatusUnprocessableEntity, doc.Error.StatusCode)
	assert.Contains(t, doc.Error.Message, "hsCode")
	assert.False(t, doc.Error.Timestamp.IsZero())
}

func TestCalculateDutyEndpoint_MalformedBody(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/duty/calculate", "application/json", strings.NewReader("{not json"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestGetRatesEndpoint(t *testing.T) {
	srv := newTestServer(t)

	doc := getJSON(t, srv, "/api/duty/rates/0101210000", http.StatusOK)

	dutyRate, ok := doc["dutyRate"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "5", dutyRate["generalRate"])

	ftaRates, ok := doc["ftaRates"].([]any)
	require.True(t, ok)
	assert.Len(t, ftaRates, 1)
}

func TestGetRatesEndpoint_UnknownCode(t *testing.T) {
	srv := newTestServer(t)

	doc := getJSON(t, srv, "/api/duty/rates/9999999999", http.StatusNotFound)

	errBody, ok := doc["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "not_found", errBody["type"])
}

func TestTcoCheckEndpoint_NoOrder(t *testing.T) {
	srv := newTestServer(t)

	doc := getJSON(t, srv, "/api/duty/tco-check/0101210000", http.StatusOK)

	// The key must be present with an explicit null
	v, present := doc["tco"]
	assert.True(t, present)
	assert.Nil(t, v)
}

func TestSearchTariffCodesEndpoint(t *testing.T) {
	srv := newTestServer(t)

	t.Run("prefix search", func(t *testing.T) {
		doc := getJSON(t, srv, "/api/tariff/codes?startsWith=0101", http.StatusOK)
		assert.Equal(t, float64(3), doc["totalCount"])
	})

	t.Run("invalid level rejected", func(t *testing.T) {
		doc := getJSON(t, srv, "/api/tariff/codes?level=3", http.StatusUnprocessableEntity)
		errBody := doc["error"].(map[string]any)
		assert.Equal(t, "validation_error", errBody["type"])
	})

	t.Run("non-numeric offset rejected", func(t *testing.T) {
		getJSON(t, srv, "/api/tariff/codes?offset=abc", http.StatusUnprocessableEntity)
	})
}

func TestGetTariffCodeEndpoint_IncludesChildren(t *testing.T) {
	srv := newTestServer(t)

	doc := getJSON(t, srv, "/api/tariff/codes/0101", http.StatusOK)

	children, ok := doc["children"].([]any)
	require.True(t, ok)
	assert.Len(t, children, 1)
}

func TestGetExportCodeEndpoint(t *testing.T) {
	srv := newTestServer(t)

	doc := getJSON(t, srv, "/api/export/codes/0101210010", http.StatusOK)
	assert.Equal(t, "Thoroughbred racehorses", doc["description"])
}

func TestGetNewsEndpoint_BadID(t *testing.T) {
	srv := newTestServer(t)

	doc := getJSON(t, srv, "/api/news/not-a-uuid", http.StatusUnprocessableEntity)
	errBody := doc["error"].(map[string]any)
	assert.Equal(t, "validation_error", errBody["type"])
}
