package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Flaque/filet"
	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/place-search-service/internal/config"
	httpDelivery "github.com/place-search-service/internal/delivery/http"
	"github.com/place-search-service/internal/delivery/http/handler"
	"github.com/place-search-service/internal/domain"
	"github.com/place-search-service/internal/domain/repository"
	"github.com/place-search-service/internal/metrics"
	"github.com/place-search-service/internal/report"
	"github.com/place-search-service/internal/repository/cache"
	"github.com/place-search-service/internal/repository/filestore"
	"github.com/place-search-service/internal/usecase"
	"github.com/place-search-service/internal/usecase/dto"
)

type geocodeFunc func(ctx context.Context, query string, origin domain.Coordinate, limit int) ([]domain.Candidate, error)

func (f geocodeFunc) Geocode(ctx context.Context, query string, origin domain.Coordinate, limit int) ([]domain.Candidate, error) {
	return f(ctx, query, origin, limit)
}

type routeFunc func(ctx context.Context, origin, destination domain.Coordinate, mode domain.TravelMode) (domain.RouteInfo, error)

func (f routeFunc) Route(ctx context.Context, origin, destination domain.Coordinate, mode domain.TravelMode) (domain.RouteInfo, error) {
	return f(ctx, origin, destination, mode)
}

var restaurants = []domain.Candidate{
	{ID: "poi.1", Name: "A", Address: "1 Rue A, Montreal", Position: domain.Coordinate{Lat: 45.51, Lon: -73.61}},
	{ID: "poi.2", Name: "B", Address: "2 Rue B, Montreal", Position: domain.Coordinate{Lat: 45.52, Lon: -73.62}},
}

func restaurantGeocoder() geocodeFunc {
	return func(_ context.Context, query string, _ domain.Coordinate, limit int) ([]domain.Candidate, error) {
		if query == "fail" {
			return nil, errors.New("mapbox API error: status 401")
		}
		if limit < len(restaurants) {
			return restaurants[:limit], nil
		}
		return restaurants, nil
	}
}

func restaurantRouter() routeFunc {
	return func(_ context.Context, _, dest domain.Coordinate, _ domain.TravelMode) (domain.RouteInfo, error) {
		if dest == restaurants[1].Position {
			return domain.RouteInfo{}, errors.New("no route")
		}
		return domain.NewRouteInfo(12.3, 1.0), nil
	}
}

type testServer struct {
	server *httpDelivery.Server
	root   string
}

func newTestServer(t *testing.T, history repository.HistoryRepository, tokenConfigured bool) *testServer {
	t.Helper()

	root := filet.TmpDir(t, "")
	t.Cleanup(func() { filet.CleanUp(t) })

	cfg := &config.Config{
		Provider: config.ProviderMapbox,
		Report:   config.ReportConfig{StaticDir: root},
		CORS:     config.CORSConfig{AllowOrigins: "*"},
	}

	logger := zap.NewNop()
	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics(reg)

	searchUC := usecase.NewSearchUseCase(
		restaurantGeocoder(),
		restaurantRouter(),
		history,
		m,
		usecase.SearchOptions{EnableRouting: true, DefaultLimit: 5, MaxLimit: 10, RoutingConcurrency: 1, GeohashPrecision: 6},
		logger,
	)

	store, err := filestore.New(root, "/static", "", logger)
	require.NoError(t, err)
	reportUC := usecase.NewReportUseCase(report.NewRenderer(report.DefaultOptions()), store, m, logger)
	savedUC := usecase.NewSavedSearchUseCase(nil, searchUC, logger)

	server := httpDelivery.NewServer(
		cfg,
		logger,
		reg,
		handler.NewSearchHandler(searchUC, logger),
		handler.NewReportHandler(reportUC, logger),
		handler.NewHealthHandler(config.ProviderMapbox, tokenConfigured, nil),
		handler.NewHistoryHandler(searchUC, logger),
		handler.NewSavedSearchHandler(savedUC, logger),
	)

	return &testServer{server: server, root: root}
}

func (ts *testServer) do(t *testing.T, method, target, body string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ts.server.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

type errorBody struct {
	Error   string                 `json:"error"`
	Code    string                 `json:"code"`
	Details map[string]interface{} `json:"details"`
}

func TestSearchEndpoint(t *testing.T) {
	ts := newTestServer(t, nil, true)

	t.Run("restaurant scenario", func(t *testing.T) {
		resp, body := ts.do(t, http.MethodGet, "/search?query=restaurant&lat=45.5&lon=-73.6&mode=walking&limit=2", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var raw []map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &raw))
		require.Len(t, raw, 2)

		assert.Equal(t, "A", raw[0]["name"])
		assert.Equal(t, 12.3, raw[0]["duration"])
		assert.Equal(t, 1.0, raw[0]["distance"])
		assert.Equal(t, "restaurant", raw[0]["category"])
		assert.Equal(t, "1 Rue A, Montreal", raw[0]["place_name"])

		assert.Equal(t, "B", raw[1]["name"])
		assert.Contains(t, raw[1], "duration")
		assert.Nil(t, raw[1]["duration"])
		assert.Nil(t, raw[1]["distance"])
	})

	t.Run("api prefix", func(t *testing.T) {
		resp, _ := ts.do(t, http.MethodGet, "/api/search?query=restaurant&lat=45.5&lon=-73.6", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("missing lat", func(t *testing.T) {
		resp, body := ts.do(t, http.MethodGet, "/search?query=restaurant&lon=-73.6", "")
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var e errorBody
		require.NoError(t, json.Unmarshal(body, &e))
		assert.Equal(t, "VALIDATION_ERROR", e.Code)
		assert.Contains(t, e.Error, "lat")
	})

	t.Run("non numeric lat", func(t *testing.T) {
		resp, body := ts.do(t, http.MethodGet, "/search?query=restaurant&lat=north&lon=-73.6", "")
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var e errorBody
		require.NoError(t, json.Unmarshal(body, &e))
		assert.Equal(t, "lat must be a number", e.Error)
	})

	t.Run("upstream failure", func(t *testing.T) {
		resp, body := ts.do(t, http.MethodGet, "/search?query=fail&lat=45.5&lon=-73.6", "")
		require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		var e errorBody
		require.NoError(t, json.Unmarshal(body, &e))
		assert.Equal(t, "UPSTREAM_ERROR", e.Code)
		assert.NotContains(t, e.Error, "401")
	})
}

func TestRouteEndpoint(t *testing.T) {
	ts := newTestServer(t, nil, true)

	resp, body := ts.do(t, http.MethodGet, "/api/route?from_lat=45.5&from_lon=-73.6&to_lat=45.51&to_lon=-73.61&mode=walking", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var route dto.RouteResponse
	require.NoError(t, json.Unmarshal(body, &route))
	assert.Equal(t, domain.TravelModeWalking, route.Mode)
	assert.Equal(t, 12.3, *route.Duration)

	resp, _ = ts.do(t, http.MethodGet, "/api/route?from_lat=45.5&from_lon=-73.6", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGeneratePDFEndpoint(t *testing.T) {
	ts := newTestServer(t, nil, true)

	t.Run("search output renders", func(t *testing.T) {
		_, searchBody := ts.do(t, http.MethodGet, "/search?query=restaurant&lat=45.5&lon=-73.6&mode=walking&limit=2", "")

		resp, body := ts.do(t, http.MethodPost, "/generate_pdf", `{"places":`+string(searchBody)+`}`)
		require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

		var out dto.ReportResponse
		require.NoError(t, json.Unmarshal(body, &out))
		assert.True(t, out.Success)
		assert.True(t, strings.HasPrefix(out.URL, "/static/reports/"))
		assert.True(t, strings.HasSuffix(out.Filename, ".pdf"))

		pdfResp, pdf := ts.do(t, http.MethodGet, out.URL, "")
		require.Equal(t, http.StatusOK, pdfResp.StatusCode)
		assert.True(t, strings.HasPrefix(string(pdf), "%PDF-"))
	})

	t.Run("empty list", func(t *testing.T) {
		resp, body := ts.do(t, http.MethodPost, "/api/generate_pdf", `{"places":[]}`)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var e errorBody
		require.NoError(t, json.Unmarshal(body, &e))
		assert.Equal(t, "EMPTY_REPORT", e.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		resp, body := ts.do(t, http.MethodPost, "/generate_pdf", `{"places":`)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var e errorBody
		require.NoError(t, json.Unmarshal(body, &e))
		assert.Equal(t, "VALIDATION_ERROR", e.Code)
	})
}

func TestHealthEndpoint(t *testing.T) {
	for _, configured := range []bool{true, false} {
		ts := newTestServer(t, nil, configured)

		for _, path := range []string{"/health", "/api/health"} {
			resp, body := ts.do(t, http.MethodGet, path, "")
			require.Equal(t, http.StatusOK, resp.StatusCode)

			var health dto.HealthResponse
			require.NoError(t, json.Unmarshal(body, &health))
			assert.Equal(t, "ok", health.Status)
			assert.Equal(t, "mapbox", health.Provider)
			assert.Equal(t, configured, health.TokenConfigured)
		}
	}
}

func TestHistoryEndpoints(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		ts := newTestServer(t, nil, true)

		resp, body := ts.do(t, http.MethodGet, "/api/history", "")
		require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var e errorBody
		require.NoError(t, json.Unmarshal(body, &e))
		assert.Equal(t, "FEATURE_UNAVAILABLE", e.Code)
	})

	t.Run("records searches", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { client.Close() })
		history := cache.NewHistoryRepository(cache.NewRedisWithClient(client, zap.NewNop()), 10)

		ts := newTestServer(t, history, true)
		ts.do(t, http.MethodGet, "/search?query=restaurant&lat=45.5&lon=-73.6", "")
		ts.do(t, http.MethodGet, "/search?query=cafe&lat=45.5&lon=-73.6", "")

		resp, body := ts.do(t, http.MethodGet, "/api/history?limit=5", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out dto.HistoryResponse
		require.NoError(t, json.Unmarshal(body, &out))
		require.Equal(t, 2, out.Total)
		assert.Equal(t, "cafe", out.Entries[0].Query)
		assert.Equal(t, "f25dv", out.Entries[0].OriginGeohash[:5])

		resp, _ = ts.do(t, http.MethodDelete, "/api/history", "")
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		assert.False(t, mr.Exists("search:history"))
	})
}

func TestSavedSearchesDisabled(t *testing.T) {
	ts := newTestServer(t, nil, true)

	resp, _ := ts.do(t, http.MethodGet, "/api/saved-searches", "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	resp, _ = ts.do(t, http.MethodPost, "/api/saved-searches", `{"name":"x","query":"cafe","lat":1,"lon":1}`)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestMetricsAndUnknownRoutes(t *testing.T) {
	ts := newTestServer(t, nil, true)
	ts.do(t, http.MethodGet, "/search?query=restaurant&lat=45.5&lon=-73.6", "")

	resp, body := ts.do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "place_search_results_per_search_count 1")
	assert.Contains(t, string(body), "place_search_routing_failures_total 1")

	resp, body = ts.do(t, http.MethodGet, "/does-not-exist", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var e errorBody
	require.NoError(t, json.Unmarshal(body, &e))
	assert.Equal(t, "NOT_FOUND", e.Code)
}
