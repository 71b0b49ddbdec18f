package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"llamactld/pkg/types"
)

// mockService records calls and returns canned results.
type mockService struct {
	startedWith string
	stopCalls   int
	logsWith    int
}

func (m *mockService) Start(modelID string) types.StartResult {
	m.startedWith = modelID
	if modelID == "bogus" {
		return types.StartResult{Success: false, Error: "Unknown model: bogus"}
	}
	return types.StartResult{Success: true, Model: modelID, Name: "Model A", PID: 4242}
}

func (m *mockService) Stop() types.StopResult {
	m.stopCalls++
	return types.StopResult{Success: true, Stopped: "modelA", Name: "Model A"}
}

func (m *mockService) Status() types.StatusResponse {
	return types.StatusResponse{Running: false, RequestCount: 7}
}

func (m *mockService) Models() map[string]types.ModelSummary {
	return map[string]types.ModelSummary{
		"modelA": {Name: "Model A", Context: 8192},
	}
}

func (m *mockService) Logs(n int) []string {
	m.logsWith = n
	return []string{"[12:00:00] line"}
}

func (m *mockService) Stats(ctx context.Context) types.StatsResponse {
	return types.StatsResponse{}
}

func (m *mockService) Network() types.NetworkInfo {
	return types.NetworkInfo{Hostname: "host", Local: "10.0.0.5"}
}

const testKey = "test-key"

func newTestServer(t *testing.T) (*httptest.Server, *mockService) {
	t.Helper()
	svc := &mockService{}
	srv := httptest.NewServer(NewMux(svc, Options{APIKey: testKey, Version: "2.1.0", ServerName: "llamactld"}))
	t.Cleanup(srv.Close)
	return srv, svc
}

func doRequest(t *testing.T, method, url, key string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if key != "" {
		req.Header.Set("X-API-Key", key)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode body: %v", err)
	}
}

func TestRootPageServedWithoutAuth(t *testing.T) {
	srv, _ := newTestServer(t)
	resp := doRequest(t, http.MethodGet, srv.URL+"/", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Fatalf("content-type=%q", ct)
	}
}

func TestAPIRejectsMissingKey(t *testing.T) {
	srv, _ := newTestServer(t)
	for _, route := range []string{"/api/status", "/api/models", "/api/logs", "/api/version"} {
		resp := doRequest(t, http.MethodGet, srv.URL+route, "")
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("%s status=%d, want 401", route, resp.StatusCode)
		}
		var e types.ErrorResponse
		decodeBody(t, resp, &e)
		if e.Error != "Unauthorized" {
			t.Fatalf("%s body=%+v", route, e)
		}
	}
}

func TestAPIRejectsWrongKey(t *testing.T) {
	srv, _ := newTestServer(t)
	resp := doRequest(t, http.MethodGet, srv.URL+"/api/status", "wrong")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status=%d, want 401", resp.StatusCode)
	}
}

func TestStatusEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)
	resp := doRequest(t, http.MethodGet, srv.URL+"/api/status", testKey)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", resp.StatusCode)
	}
	var st types.StatusResponse
	decodeBody(t, resp, &st)
	if st.Running || st.RequestCount != 7 {
		t.Fatalf("status=%+v", st)
	}
}

func TestModelsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)
	resp := doRequest(t, http.MethodGet, srv.URL+"/api/models", testKey)
	var models map[string]types.ModelSummary
	decodeBody(t, resp, &models)
	if models["modelA"].Name != "Model A" || models["modelA"].Context != 8192 {
		t.Fatalf("models=%+v", models)
	}
}

func TestVersionEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)
	resp := doRequest(t, http.MethodGet, srv.URL+"/api/version", testKey)
	var v types.VersionResponse
	decodeBody(t, resp, &v)
	if v.Version != "2.1.0" || v.Name != "llamactld" {
		t.Fatalf("version=%+v", v)
	}
}

func TestLogsDefaultCount(t *testing.T) {
	srv, svc := newTestServer(t)
	resp := doRequest(t, http.MethodGet, srv.URL+"/api/logs", testKey)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", resp.StatusCode)
	}
	if svc.logsWith != defaultLogLines {
		t.Fatalf("lines=%d, want %d", svc.logsWith, defaultLogLines)
	}
}

func TestLogsExplicitCount(t *testing.T) {
	srv, svc := newTestServer(t)
	doRequest(t, http.MethodGet, srv.URL+"/api/logs?lines=5", testKey)
	if svc.logsWith != 5 {
		t.Fatalf("lines=%d, want 5", svc.logsWith)
	}
}

func TestLogsRejectsBadCount(t *testing.T) {
	srv, _ := newTestServer(t)
	for _, q := range []string{"lines=-1", "lines=abc"} {
		resp := doRequest(t, http.MethodGet, srv.URL+"/api/logs?"+q, testKey)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s status=%d, want 400", q, resp.StatusCode)
		}
		var e types.ErrorResponse
		decodeBody(t, resp, &e)
		if !strings.Contains(e.Error, "non-negative") {
			t.Fatalf("%s body=%+v", q, e)
		}
	}
}

func TestStartEndpoint(t *testing.T) {
	srv, svc := newTestServer(t)
	resp := doRequest(t, http.MethodPost, srv.URL+"/api/start/modelA", testKey)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", resp.StatusCode)
	}
	if svc.startedWith != "modelA" {
		t.Fatalf("started=%q", svc.startedWith)
	}
	var res types.StartResult
	decodeBody(t, resp, &res)
	if !res.Success || res.PID != 4242 {
		t.Fatalf("result=%+v", res)
	}
}

func TestStartUnknownModelStaysHTTP200(t *testing.T) {
	srv, _ := newTestServer(t)
	resp := doRequest(t, http.MethodPost, srv.URL+"/api/start/bogus", testKey)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d, want 200 with in-band error", resp.StatusCode)
	}
	var res types.StartResult
	decodeBody(t, resp, &res)
	if res.Success || res.Error != "Unknown model: bogus" {
		t.Fatalf("result=%+v", res)
	}
}

func TestStopEndpoint(t *testing.T) {
	srv, svc := newTestServer(t)
	resp := doRequest(t, http.MethodPost, srv.URL+"/api/stop", testKey)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", resp.StatusCode)
	}
	if svc.stopCalls != 1 {
		t.Fatalf("stop calls=%d", svc.stopCalls)
	}
	var res types.StopResult
	decodeBody(t, resp, &res)
	if !res.Success || res.Stopped != "modelA" {
		t.Fatalf("result=%+v", res)
	}
}

func TestUnknownRouteReturnsJSON404(t *testing.T) {
	srv, _ := newTestServer(t)
	resp := doRequest(t, http.MethodGet, srv.URL+"/nope", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status=%d", resp.StatusCode)
	}
	var e types.ErrorResponse
	decodeBody(t, resp, &e)
	if e.Error != "Not found" {
		t.Fatalf("body=%+v", e)
	}
}

func TestOptionsPreflightAllowed(t *testing.T) {
	srv, _ := newTestServer(t)
	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/status", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", "X-API-Key")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d, want 200 without auth", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("allow-origin=%q", got)
	}
}

func TestMetricsEndpointIsPublic(t *testing.T) {
	srv, _ := newTestServer(t)
	resp := doRequest(t, http.MethodGet, srv.URL+"/metrics", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", resp.StatusCode)
	}
}
