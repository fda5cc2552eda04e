package app_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hris-registry/internal/app"
	"go-hris-registry/internal/config"
	"go-hris-registry/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func setupApp(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	apperror.Init()

	cfg := &config.Config{
		Positions: []config.PositionSeed{
			{ID: "1", Title: "Junior Developer", MinSalary: 30000, MaxSalary: 50000},
			{ID: "2", Title: "Senior Developer", MinSalary: 60000, MaxSalary: 90000},
		},
	}

	r := gin.New()
	cleanup, err := app.BuildApp(r, cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(cleanup)
	return r
}

func call(t *testing.T, r *gin.Engine, method, path, body string) (int, envelope) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w.Code, env
}

func errorCode(env envelope) string {
	if env.Error == nil {
		return ""
	}
	return env.Error.Code
}

func TestRegistryScenario(t *testing.T) {
	r := setupApp(t)

	code, _ := call(t, r, http.MethodPost, "/api/v1/employees", `{"id":"A","name":"A","position_id":"1","salary":40000}`)
	require.Equal(t, http.StatusCreated, code)

	code, _ = call(t, r, http.MethodPost, "/api/v1/employees", `{"id":"B","name":"B","position_id":"2","salary":70000}`)
	require.Equal(t, http.StatusCreated, code)

	code, env := call(t, r, http.MethodGet, "/api/v1/employees/summary", "")
	require.Equal(t, http.StatusOK, code)
	var summary struct {
		TotalSalary float64 `json:"total_salary"`
		Headcount   int     `json:"headcount"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.Equal(t, 110000.0, summary.TotalSalary)
	assert.Equal(t, 2, summary.Headcount)

	code, _ = call(t, r, http.MethodPut, "/api/v1/employees/A/salary", `{"salary":45000}`)
	assert.Equal(t, http.StatusOK, code)

	code, env = call(t, r, http.MethodPut, "/api/v1/employees/A/salary", `{"salary":60000}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "INVALID_SALARY", errorCode(env))

	code, env = call(t, r, http.MethodGet, "/api/v1/employees/A", "")
	require.Equal(t, http.StatusOK, code)
	var a struct {
		Salary float64 `json:"salary"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &a))
	assert.Equal(t, 45000.0, a.Salary)

	code, env = call(t, r, http.MethodPut, "/api/v1/employees/A/position", `{"position_id":"2"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "INVALID_SALARY", errorCode(env))

	code, _ = call(t, r, http.MethodDelete, "/api/v1/employees/A", "")
	assert.Equal(t, http.StatusOK, code)

	code, env = call(t, r, http.MethodDelete, "/api/v1/employees/A", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "NOT_FOUND", errorCode(env))

	code, env = call(t, r, http.MethodPost, "/api/v1/employees", `{"id":"B","name":"B again","position_id":"2","salary":70000}`)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "CONFLICT", errorCode(env))
}

func TestPositionsEndpoints(t *testing.T) {
	r := setupApp(t)

	code, env := call(t, r, http.MethodGet, "/api/v1/positions", "")
	require.Equal(t, http.StatusOK, code)
	var positions []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &positions))
	assert.Len(t, positions, 2)

	code, _ = call(t, r, http.MethodPost, "/api/v1/positions", `{"id":"3","title":"Lead","min_salary":80000,"max_salary":120000}`)
	assert.Equal(t, http.StatusCreated, code)

	code, env = call(t, r, http.MethodPost, "/api/v1/positions", `{"id":"3","title":"Lead","min_salary":80000,"max_salary":120000}`)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "CONFLICT", errorCode(env))

	code, _ = call(t, r, http.MethodPost, "/api/v1/employees", `{"id":"L","name":"Lead","position_id":"3","salary":100000}`)
	assert.Equal(t, http.StatusCreated, code)
}

func TestHealthAndRequestID(t *testing.T) {
	r := setupApp(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "REQ-42")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "REQ-42", w.Header().Get("X-Request-ID"))
}

func TestBuildApp_InvalidSeed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Positions: []config.PositionSeed{{ID: "1", Title: "Broken", MinSalary: 10, MaxSalary: 5}},
	}

	_, err := app.BuildApp(gin.New(), cfg, zap.NewNop())

	assert.Error(t, err)
}
