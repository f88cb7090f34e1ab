package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/s0up4200/frontgo/config"
	"github.com/s0up4200/frontgo/frontgo"
)

type capturedRequest struct {
	method string
	path   string
	query  string
	body   string
	auth   string
}

type fakeAPI struct {
	t        *testing.T
	mu       sync.Mutex
	requests []capturedRequest
	respond  func(w http.ResponseWriter, r *http.Request)
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b, err := io.ReadAll(r.Body)
	assert.NoError(f.t, err)

	f.mu.Lock()
	f.requests = append(f.requests, capturedRequest{
		method: r.Method,
		path:   r.URL.EscapedPath(),
		query:  r.URL.RawQuery,
		body:   string(b),
		auth:   r.Header.Get("Authorization"),
	})
	f.mu.Unlock()

	if f.respond != nil {
		f.respond(w, r)
		return
	}
	_, _ = io.WriteString(w, `{"status_code":200,"message":"OK","is_data":true,"data":{"ok":true}}`)
}

func (f *fakeAPI) last() capturedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(f.t, f.requests)
	return f.requests[len(f.requests)-1]
}

// runCLI executes a fresh command tree against a fake API configured through
// the environment, returning stdout.
func runCLI(t *testing.T, api *fakeAPI, stdin string, args ...string) (string, error) {
	t.Helper()

	server := httptest.NewServer(api)
	t.Cleanup(server.Close)

	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("FRONTGO_API_KEY", "cli-key")
	t.Setenv("FRONTGO_BASE_URL", server.URL+"/api/v1/")

	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestCommandRouting(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantMethod string
		wantPath   string
		wantQuery  string
		wantBody   string
	}{
		{
			name:       "order status",
			args:       []string{"orders", "status", "ODR1"},
			wantMethod: http.MethodGet,
			wantPath:   "/api/v1/connect/orders/status/ODR1",
		},
		{
			name:       "order cancel sends empty object by default",
			args:       []string{"orders", "cancel", "ODR1"},
			wantMethod: http.MethodPost,
			wantPath:   "/api/v1/connect/orders/cancel/ODR1",
			wantBody:   `{}`,
		},
		{
			name:       "order list with query",
			args:       []string{"orders", "list-status", "--query", "type=regular"},
			wantMethod: http.MethodGet,
			wantPath:   "/api/v1/connect/orders/status",
			wantQuery:  "type=regular",
		},
		{
			name:       "reservation capture with inline body",
			args:       []string{"reservations", "capture", "RES1", "--data", `{"grandTotal": 150.50}`},
			wantMethod: http.MethodPost,
			wantPath:   "/api/v1/connect/reservations/capture/RES1",
			wantBody:   `{"grandTotal":150.50}`,
		},
		{
			name:       "reservation history with open end",
			args:       []string{"reservations", "history", "--start", "1700000000"},
			wantMethod: http.MethodGet,
			wantPath:   "/api/v1/connect/reservations/history/1700000000/",
		},
		{
			name:       "subscription list by status",
			args:       []string{"subscriptions", "list", "ongoing", "-q", "page=2"},
			wantMethod: http.MethodGet,
			wantPath:   "/api/v1/connect/subscriptions/list/ongoing",
			wantQuery:  "page=2",
		},
		{
			name:       "customer update uses PUT",
			args:       []string{"customers", "update-private", "CUS1", "-d", `{"name":"Ola"}`},
			wantMethod: http.MethodPut,
			wantPath:   "/api/v1/connect/customers/update/private/CUS1",
			wantBody:   `{"name":"Ola"}`,
		},
		{
			name:       "refund approval",
			args:       []string{"refunds", "request-approval", "ODR1", "-d", `{"type":"regular"}`},
			wantMethod: http.MethodPost,
			wantPath:   "/api/v1/orders/refund/request/approval/ODR1",
			wantBody:   `{"type":"regular"}`,
		},
		{
			name:       "terminal cancel defaults to payment",
			args:       []string{"terminals", "cancel", "ODR1"},
			wantMethod: http.MethodPost,
			wantPath:   "/api/v1/connect/terminal/orders/cancel/ODR1",
			wantBody:   `{"type":"payment"}`,
		},
		{
			name:       "terminal cancel-refund defaults to refund",
			args:       []string{"terminals", "cancel-refund", "ODR1"},
			wantMethod: http.MethodPost,
			wantPath:   "/api/v1/connect/terminal/orders/cancel/ODR1",
			wantBody:   `{"type":"refund"}`,
		},
		{
			name:       "terminal resend",
			args:       []string{"terminals", "resend", "ODR1"},
			wantMethod: http.MethodPost,
			wantPath:   "/api/v1/connect/terminal/orders/resend/ODR1",
			wantBody:   `{}`,
		},
		{
			name:       "credit list",
			args:       []string{"credit", "list"},
			wantMethod: http.MethodGet,
			wantPath:   "/api/v1/connect/credit/check/list",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{t: t}
			out, err := runCLI(t, api, "", tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, `"ok": true`)

			req := api.last()
			assert.Equal(t, "Bearer cli-key", req.auth)
			assert.Equal(t, tt.wantMethod, req.method)
			assert.Equal(t, tt.wantPath, req.path)
			assert.Equal(t, tt.wantQuery, req.query)
			if tt.wantBody == "" {
				assert.Empty(t, req.body)
			} else {
				assert.Equal(t, tt.wantBody, req.body)
			}
		})
	}
}

func TestLookupPreservesArgumentOrder(t *testing.T) {
	api := &fakeAPI{t: t}
	api.respond = func(w http.ResponseWriter, r *http.Request) {
		id := filepath.Base(r.URL.Path)
		// the first id answers last
		if id == "A" {
			time.Sleep(50 * time.Millisecond)
		}
		_, _ = io.WriteString(w, `{"is_data":true,"data":{"orderUuid":"`+id+`"}}`)
	}

	out, err := runCLI(t, api, "", "orders", "status", "A", "B", "C")
	require.NoError(t, err)

	a := strings.Index(out, `"orderUuid": "A"`)
	b := strings.Index(out, `"orderUuid": "B"`)
	c := strings.Index(out, `"orderUuid": "C"`)
	require.True(t, a >= 0 && b >= 0 && c >= 0, out)
	assert.Less(t, a, b)
	assert.Less(t, b, c)
	assert.Len(t, api.requests, 3)
}

func TestLookupStopsOnError(t *testing.T) {
	api := &fakeAPI{t: t}
	api.respond = func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/missing") {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"message":"Order not found"}`)
			return
		}
		_, _ = io.WriteString(w, `{"data":{}}`)
	}

	_, err := runCLI(t, api, "", "orders", "details", "ODR1", "missing")
	require.Error(t, err)

	var apiErr *frontgo.Error
	require.True(t, errors.As(err, &apiErr))
	assert.True(t, apiErr.IsNotFound())
	assert.Contains(t, err.Error(), "missing:")
}

func TestBodySources(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "order.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"products":[]}`), 0o600))

		api := &fakeAPI{t: t}
		_, err := runCLI(t, api, "", "orders", "create-payment-link", "--data", "@"+path)
		require.NoError(t, err)
		assert.Equal(t, `{"products":[]}`, api.last().body)
	})

	t.Run("stdin", func(t *testing.T) {
		api := &fakeAPI{t: t}
		_, err := runCLI(t, api, `{"personalId":"01010112345"}`, "credit", "check-private", "--data", "-")
		require.NoError(t, err)
		assert.Equal(t, "/api/v1/connect/credit/check/private", api.last().path)
		assert.Equal(t, `{"personalId":"01010112345"}`, api.last().body)
	})

	t.Run("invalid json", func(t *testing.T) {
		api := &fakeAPI{t: t}
		_, err := runCLI(t, api, "", "orders", "send-invoice", "--data", "{nope")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not valid JSON")
		assert.Empty(t, api.requests)
	})

	t.Run("required", func(t *testing.T) {
		api := &fakeAPI{t: t}
		_, err := runCLI(t, api, "", "orders", "refund", "ODR1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"data"`)
		assert.Empty(t, api.requests)
	})
}

func TestTerminalResendTakesOneOrder(t *testing.T) {
	api := &fakeAPI{t: t}
	_, err := runCLI(t, api, "", "terminals", "resend", "ODR1", "ODR2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
	assert.Empty(t, api.requests)
}

func TestListWhere(t *testing.T) {
	api := &fakeAPI{t: t}
	api.respond = func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"is_data":true,"data":{"total":3,"list":[`+
			`{"uuid":"S1","status":"ACTIVE","amount":100},`+
			`{"uuid":"S2","status":"CANCELLED","amount":300},`+
			`{"uuid":"S3","status":"ACTIVE","amount":500}]}}`)
	}

	out, err := runCLI(t, api, "", "subscriptions", "list", "--where", `status == "ACTIVE" and amount > 200`)
	require.NoError(t, err)

	var got struct {
		Total int              `json:"total"`
		List  []map[string]any `json:"list"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 3, got.Total)
	require.Len(t, got.List, 1)
	assert.Equal(t, "S3", got.List[0]["uuid"])
}

func TestListWhereInvalid(t *testing.T) {
	api := &fakeAPI{t: t}
	_, err := runCLI(t, api, "", "credit", "list", "--where", `status ==`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --where expression")
	assert.Empty(t, api.requests)
}

func TestYAMLOutput(t *testing.T) {
	api := &fakeAPI{t: t}
	api.respond = func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"data":{"orderUuid":"ODR1","status":"PAID"}}`)
	}

	out, err := runCLI(t, api, "", "--output", "yaml", "orders", "status", "ODR1")
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, map[string]string{"orderUuid": "ODR1", "status": "PAID"}, got)
}

func TestYAMLOutputKeepsOrderAndPrecision(t *testing.T) {
	api := &fakeAPI{t: t}
	api.respond = func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"data":{"status":"PAID","orderId":12345678901234567890,`+
			`"grandTotal":150.50,"flag":"true","items":[{"id":9007199254740993,"tags":[]}],"note":null,"paid":true}}`)
	}

	out, err := runCLI(t, api, "", "-o", "yaml", "orders", "status", "ODR1")
	require.NoError(t, err)
	assert.Equal(t, `status: PAID
orderId: 12345678901234567890
grandTotal: 150.50
flag: "true"
items:
  - id: 9007199254740993
    tags: []
note: null
paid: true
`, out)
}

func TestInvalidOutputFlag(t *testing.T) {
	api := &fakeAPI{t: t}
	_, err := runCLI(t, api, "", "--output", "table", "credit", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestTestCommand(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		api := &fakeAPI{t: t}
		out, err := runCLI(t, api, "", "test")
		require.NoError(t, err)
		assert.Contains(t, out, "Connection successful")
		assert.Equal(t, "/api/v1/connect/orders/status", api.last().path)
	})

	t.Run("unauthorized", func(t *testing.T) {
		api := &fakeAPI{t: t}
		api.respond = func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"message":"Unauthenticated."}`)
		}
		_, err := runCLI(t, api, "", "test")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "authentication failed")
		assert.ErrorIs(t, err, frontgo.ErrClient)
	})
}

func TestVersionCommandNeedsNoConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("FRONTGO_API_KEY", "")

	SetVersion("1.2.3", "2026-01-01")
	t.Cleanup(func() { SetVersion("dev", "unknown") })

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "frontgo 1.2.3 (built 2026-01-01")
}

func TestUpdateRejectsDevBuild(t *testing.T) {
	root := newRootCmd()
	root.SetOut(io.Discard)
	root.SetArgs([]string{"update", "--check"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "development build")
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, errors.New("boom"))
	assert.Equal(t, "Error: boom\n", buf.String())

	buf.Reset()
	api := &fakeAPI{t: t}
	api.respond = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"message":"Forbidden"}`)
	}
	_, err := runCLI(t, api, "", "orders", "status", "ODR1")
	require.Error(t, err)

	printError(&buf, err)
	assert.Contains(t, buf.String(), "Error: FrontGo client error (HTTP 403)")
	assert.Contains(t, buf.String(), `"message": "Forbidden"`)
	assert.Contains(t, buf.String(), "Check frontgo.api_key")
}

func TestParseQuery(t *testing.T) {
	params, err := parseQuery([]string{"page=2", "status=PAID", "status=SENT", "empty="})
	require.NoError(t, err)
	assert.Equal(t, "2", params.Get("page"))
	assert.Equal(t, []string{"PAID", "SENT"}, params["status"])
	assert.Equal(t, "", params.Get("empty"))

	_, err = parseQuery([]string{"novalue"})
	assert.Error(t, err)

	params, err = parseQuery(nil)
	require.NoError(t, err)
	assert.Nil(t, params)
}

func TestParseTime(t *testing.T) {
	zero, err := parseTime("")
	require.NoError(t, err)
	assert.True(t, zero.IsZero())

	unix, err := parseTime("1700000000")
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000), unix.Unix())

	rfc, err := parseTime("2024-05-01T10:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), rfc.UTC())

	_, err = parseTime("yesterday")
	assert.Error(t, err)
}

func TestSetupLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := setupLogger(&buf, config.LoggingConfig{Level: "warn", Format: "json"})
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"message":"shown"`)

	buf.Reset()
	logger = setupLogger(&buf, config.LoggingConfig{Level: "debug", Format: "console", Color: true})
	logger.Debug().Msg("plain")
	assert.Contains(t, buf.String(), "plain")
	assert.NotContains(t, buf.String(), "\x1b[", "colour must be disabled when not writing to a terminal")
}
