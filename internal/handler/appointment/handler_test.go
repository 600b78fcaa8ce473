package appointment

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func doRequest(engine *gin.Engine, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	engine.ServeHTTP(w, req)
	return w
}

func TestRegisterDoctorRoutes_ApproveIsPatch(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewHandler(nil).RegisterDoctorRoutes(engine.Group("/appointments"))

	target := "/appointments/approve/" + uuid.NewString()

	// Routed: the handler runs and rejects the missing identity.
	w := doRequest(engine, http.MethodPatch, target)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(engine, http.MethodPut, target)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRegisterDoctorRoutes_InboxPaths(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewHandler(nil).RegisterDoctorRoutes(engine.Group("/appointments"))

	for _, path := range []string{
		"/appointments/doctor/pending",
		"/appointments/doctor/approved",
	} {
		w := doRequest(engine, http.MethodGet, path)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}
