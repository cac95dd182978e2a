package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shreya020904/Planner-ui/internal/clock"
	cacheAdapter "github.com/Shreya020904/Planner-ui/internal/infrastructure/cache/adapter"
	"github.com/Shreya020904/Planner-ui/internal/pkg/shell/application/usecase"
)

type recordingNotifier struct {
	device  string
	payload []byte
}

func (r *recordingNotifier) NotifyDevice(deviceID string, payload []byte) int {
	r.device, r.payload = deviceID, payload
	return 1
}

func setup() (*gin.Engine, *recordingNotifier) {
	gin.SetMode(gin.TestMode)
	store := usecase.NewStore(usecase.NewPreferences(cacheAdapter.NewMemoryCache(clock.Fake(time.Unix(0, 0)))))
	n := &recordingNotifier{}
	store.Subscribe(PushToDevice(n, nil))

	ctl := NewShellController(store)
	r := gin.New()
	r.GET("/shell", ctl.Get())
	r.POST("/shell/theme/toggle", ctl.ToggleTheme())
	return r, n
}

func TestShellController_RequiresDevice(t *testing.T) {
	r, _ := setup()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/shell", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestShellController_TogglePushesFrame(t *testing.T) {
	r, n := setup()

	req := httptest.NewRequest(http.MethodPost, "/shell/theme/toggle", nil)
	req.Header.Set("X-Device-ID", "dev-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "dark", body["theme"])
	assert.Equal(t, true, body["sidebar_open"])

	assert.Equal(t, "dev-1", n.device)
	assert.JSONEq(t, `{"type":"shell","theme":"dark","sidebar_open":true}`, string(n.payload))
}
