package serverhttp

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dogbreed-service/internal/breeds/catalog"
	"dogbreed-service/internal/breeds/model"
	"dogbreed-service/internal/config"
	"dogbreed-service/internal/middleware"
)

func testServer(t *testing.T, cfg config.Config) *httptest.Server {
	t.Helper()
	holder := catalog.NewHolder(func() (*catalog.Catalog, catalog.LoadReport, error) {
		return catalog.New([]model.BreedRecord{
			{NameKo: "비글", NameEn: "Beagle", SizeType: "중형", EnergyLevel: 4, SheddingLevel: 3, BarkingLevel: 4, PopularityScore: 80},
			{NameKo: "푸들", NameEn: "Poodle", SizeType: "소형", EnergyLevel: 4, SheddingLevel: 1, BarkingLevel: 2, PopularityScore: 95},
		}), catalog.LoadReport{}, nil
	}, zerolog.Nop())
	require.NoError(t, holder.Reload())

	srv := httptest.NewServer(NewRouter(cfg, holder, catalog.NewAliasTable(catalog.DefaultAliases()), zerolog.Nop()))
	t.Cleanup(srv.Close)
	return srv
}

func testConfig() config.Config {
	return config.Config{AllowOrigins: []string{"*"}, MaxBodyKB: 1, RateLimitRPM: 0}
}

func TestRouter_Health(t *testing.T) {
	srv := testServer(t, testConfig())
	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	body := readAll(t, resp)
	assert.JSONEq(t, `{"status":"ok","breeds":2}`, body)
}

func TestRouter_Breeds(t *testing.T) {
	srv := testServer(t, testConfig())

	resp, err := http.Get(srv.URL + "/breeds/search?q=" + url.QueryEscape("악마견"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readAll(t, resp), `"name_ko": "비글"`)

	resp, err = http.Post(srv.URL+"/breeds/recommend", "application/json", strings.NewReader(`{"k":1}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readAll(t, resp), `"name_ko": "푸들"`)

	resp, err = http.Get(srv.URL + "/breeds/search?q=xyz")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/breeds/recommend")
	require.NoError(t, err)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	resp.Body.Close()
}

func TestRouter_BodyLimit(t *testing.T) {
	srv := testServer(t, testConfig())
	big := `{"living_space":"` + strings.Repeat("a", 4096) + `"}`
	resp, err := http.Post(srv.URL+"/breeds/recommend", "application/json", strings.NewReader(big))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
}

func TestRouter_RateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitRPM = 1
	srv := testServer(t, cfg)

	first, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	first.Body.Close()
	second, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	second.Body.Close()

	assert.Equal(t, http.StatusOK, first.StatusCode)
	assert.Equal(t, http.StatusTooManyRequests, second.StatusCode)
}

func TestRouter_Metrics(t *testing.T) {
	srv := testServer(t, testConfig())
	resp, err := http.Get(srv.URL + "/breeds/popular")
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	body := readAll(t, resp)
	assert.Contains(t, body, `breeds_requests_total{operation="popular",outcome="ok"}`)
	assert.Contains(t, body, "breeds_catalog_records 2")
}

func readAll(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}
