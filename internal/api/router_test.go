package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/powerfrill/showcase-backend-go/internal/catalog"
	"github.com/powerfrill/showcase-backend-go/internal/choreography"
	"github.com/powerfrill/showcase-backend-go/internal/middleware"
	"github.com/powerfrill/showcase-backend-go/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newRouter(t *testing.T, limiter *middleware.RateLimiter) *gin.Engine {
	t.Helper()
	idx := catalog.NewIndex(catalog.Builtin())
	ch, err := service.NewChoreographyService(idx, choreography.DefaultConfig())
	require.NoError(t, err)
	return SetupRouter(Dependencies{
		Logger:       zap.NewNop(),
		Limiter:      limiter,
		Catalog:      service.NewCatalogService(idx),
		Choreography: ch,
	})
}

func get(t *testing.T, r http.Handler, url string) (int, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w.Code, env
}

func TestHealth(t *testing.T) {
	r := newRouter(t, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestCatalogRoutes(t *testing.T) {
	r := newRouter(t, nil)

	tests := []struct {
		url    string
		status int
		count  int // expected array length, -1 for objects
	}{
		{"/api/v1/solutions", http.StatusOK, 3},
		{"/api/v1/solutions/solar", http.StatusOK, -1},
		{"/api/v1/solutions/solar/categories", http.StatusOK, 4},
		{"/api/v1/solutions/wind", http.StatusNotFound, -1},
		{"/api/v1/solutions/wind/categories", http.StatusNotFound, -1},
		{"/api/v1/categories", http.StatusOK, 8},
		{"/api/v1/categories/tracking-systems", http.StatusOK, -1},
		{"/api/v1/categories/tracking-systems/products", http.StatusOK, 3},
		{"/api/v1/categories/residential-storage/products", http.StatusOK, 0},
		{"/api/v1/categories/nope/products", http.StatusNotFound, -1},
		{"/api/v1/products", http.StatusOK, 15},
		{"/api/v1/products/dobby-r2", http.StatusOK, -1},
		{"/api/v1/products/nonexistent-id", http.StatusNotFound, -1},
		{"/api/v1/sequences", http.StatusOK, 4},
		{"/api/v1/sequences/hero", http.StatusOK, -1},
		{"/api/v1/sequences/footer", http.StatusNotFound, -1},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			status, env := get(t, r, tt.url)
			assert.Equal(t, tt.status, status)
			if tt.status != http.StatusOK {
				assert.Equal(t, tt.status, env.Code)
				return
			}
			assert.Equal(t, 0, env.Code)
			if tt.count >= 0 {
				var items []json.RawMessage
				require.NoError(t, json.Unmarshal(env.Data, &items))
				assert.Len(t, items, tt.count)
			}
		})
	}
}

func TestProductDetailPayload(t *testing.T) {
	r := newRouter(t, nil)
	status, env := get(t, r, "/api/v1/products/bi-facial")
	require.Equal(t, http.StatusOK, status)

	var detail struct {
		Product struct {
			ID     string `json:"id"`
			ProTip string `json:"proTip"`
		} `json:"product"`
		Breadcrumbs []struct {
			Label   string `json:"label"`
			Current bool   `json:"current"`
		} `json:"breadcrumbs"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	assert.Equal(t, "bi-facial", detail.Product.ID)
	assert.NotEmpty(t, detail.Product.ProTip)
	require.Len(t, detail.Breadcrumbs, 4)
	assert.True(t, detail.Breadcrumbs[3].Current)
}

func TestFrameRoute(t *testing.T) {
	r := newRouter(t, nil)

	status, env := get(t, r, "/api/v1/choreography/frame?sequence=hero&progress=0.5")
	require.Equal(t, http.StatusOK, status)

	var frame choreography.Frame
	require.NoError(t, json.Unmarshal(env.Data, &frame))
	assert.Equal(t, 2, frame.ActiveIndex)
	assert.Equal(t, "innovation", frame.ActiveID)
	require.Len(t, frame.Sections, 5)
	assert.Equal(t, choreography.Rest, frame.Sections[2].Params)
	assert.InDelta(t, 8, frame.Indicator.Position, 1e-9)

	status, env = get(t, r, "/api/v1/choreography/frame?sequence=hero&scrollTop=400&scrollHeight=1000&clientHeight=200")
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &frame))
	assert.Equal(t, 0.5, frame.Progress)

	status, env = get(t, r, "/api/v1/choreography/frame?sequence=hero&progress=0.25&scrollTop=400&scrollHeight=1000")
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &frame))
	assert.Equal(t, 0.25, frame.Progress)

	status, _ = get(t, r, "/api/v1/choreography/frame?progress=abc")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = get(t, r, "/api/v1/choreography/frame?sequence=footer")
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = get(t, r, "/api/v1/choreography/frame?preset=wobble")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestScrollTargetAndPresetRoutes(t *testing.T) {
	r := newRouter(t, nil)

	status, env := get(t, r, "/api/v1/choreography/scroll-target?sequence=hero&index=1&start=100&end=4100")
	require.Equal(t, http.StatusOK, status)
	var target service.ScrollTarget
	require.NoError(t, json.Unmarshal(env.Data, &target))
	assert.Equal(t, "application", target.SectionID)
	assert.Equal(t, 1100.0, target.Offset)

	status, env = get(t, r, "/api/v1/choreography/scroll-target?sequence=hero&index=2&start=NaN&end=100")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, http.StatusBadRequest, env.Code)

	status, env = get(t, r, "/api/v1/choreography/scroll-target?sequence=hero&index=0&start=-1e308&end=1e308")
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &target))
	assert.Equal(t, -1e308, target.Offset)

	status, env = get(t, r, "/api/v1/choreography/presets")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"depth-blur"`)
}

func TestRateLimitedAPI(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := newRouter(t, middleware.NewRateLimiter(ctx, 2, time.Minute))
	for i := 0; i < 2; i++ {
		status, _ := get(t, r, "/api/v1/solutions")
		assert.Equal(t, http.StatusOK, status)
	}
	status, _ := get(t, r, "/api/v1/solutions")
	assert.Equal(t, http.StatusTooManyRequests, status)

	// Health checks are not limited
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
