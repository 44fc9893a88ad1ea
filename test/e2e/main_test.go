package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/AlexXia007/comfyui-nodes/test/testutil"
)

// startHost boots the full unauthenticated node host on an ephemeral port.
func startHost(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(testutil.BuildHost(""))
	t.Cleanup(srv.Close)
	return srv
}

// runNode posts inputs to one node's run endpoint and returns the raw
// response.
func runNode(t *testing.T, baseURL, nodeID string, inputs map[string]any) *http.Response {
	t.Helper()
	b, err := json.Marshal(map[string]any{"inputs": inputs})
	if err != nil {
		t.Fatalf("could not marshal request: %v", err)
	}
	resp, err := http.Post(baseURL+"/nodes/"+nodeID+"/run", "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("HTTP request failed: %v", err)
	}
	return resp
}

// decodeOutputs reads a successful run response into its outputs map.
func decodeOutputs(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("expected status 200, got %d: %s", resp.StatusCode, body)
	}
	var out struct {
		Outputs map[string]any `json:"outputs"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("could not decode response: %v", err)
	}
	return out.Outputs
}

// decodeError asserts the response status and reads the error message out of
// the body.
func decodeError(t *testing.T, resp *http.Response, wantStatus int) string {
	t.Helper()
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("expected status %d, got %d: %s", wantStatus, resp.StatusCode, body)
	}
	var out struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("could not decode error response: %v", err)
	}
	return out.Error
}

// splitObjectPath splits a path-style object URL into bucket and key.
func splitObjectPath(t *testing.T, u *url.URL) (string, string) {
	t.Helper()
	parts := strings.SplitN(strings.TrimPrefix(u.Path, "/"), "/", 2)
	if len(parts) != 2 {
		t.Fatalf("unexpected URL path: %s", u.Path)
	}
	return parts[0], parts[1]
}
