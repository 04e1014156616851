package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/platelog/internal/db"
	"github.com/platelog/internal/service"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)

func setupTestAPI(t *testing.T) (*API, *service.NutritionStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := db.Open(filepath.Join(t.TempDir(), "handler.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(gdb) })

	store := service.NewNutritionStore(gdb)
	api := NewAPI(store)
	api.SetClock(func() time.Time { return fixedNow })
	return api, store
}

func performJSON(t *testing.T, handler gin.HandlerFunc, method, target string, payload any, params gin.Params) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}

	req := httptest.NewRequest(method, target, &body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = params

	handler(c)
	c.Writer.WriteHeaderNow()
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func idParam(id uint) gin.Params {
	return gin.Params{gin.Param{Key: "id", Value: strconv.FormatUint(uint64(id), 10)}}
}
