package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/ravindraogg/DUHACKS/internal/config"
	"github.com/ravindraogg/DUHACKS/internal/database"
	"github.com/ravindraogg/DUHACKS/internal/insight"
	"github.com/ravindraogg/DUHACKS/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupServer builds the full router over a throwaway SQLite database.
func setupServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	return setupServerWithAI(t, "")
}

// setupServerWithAI additionally points the insights client at the given
// OpenAI-compatible base URL (empty keeps the unreachable default).
func setupServerWithAI(t *testing.T, aiBaseURL string) (*gin.Engine, *gorm.DB) {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Mode: gin.TestMode},
		JWT: config.JWTConfig{
			Secret:      "test-secret",
			Issuer:      "cost-sage-test",
			ExpireHours: 24,
		},
		CORS: config.CORSConfig{Origin: "http://localhost:5173"},
		AI: config.AIConfig{
			BaseURL: aiBaseURL,
			APIKey:  "test-key",
			Model:   "test-model",
		},
	}

	db, err := database.Init(config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err, "init test database")
	require.NoError(t, database.AutoMigrate(db), "migrate test database")

	r := router.SetupRouter(cfg, db, insight.NewClient(cfg.AI))
	return r, db
}

// doJSON performs a request against the router and returns the recorder.
// token may be empty for unauthenticated calls; body may be nil.
func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decode unmarshals a response body into a generic envelope map.
func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "decode response: %s", w.Body.String())
	return out
}

// registerUser registers an account and returns the issued token.
func registerUser(t *testing.T, r *gin.Engine, name, email, password string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/register", "", map[string]interface{}{
		"name":        name,
		"email":       email,
		"password":    password,
		"companyName": "Acme Corp",
		"industry":    "Testing",
	})
	require.Equal(t, http.StatusCreated, w.Code, "register %s: %s", email, w.Body.String())
	body := decode(t, w)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// loginUser logs in and returns the fresh token.
func loginUser(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, "login %s: %s", email, w.Body.String())
	body := decode(t, w)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}
