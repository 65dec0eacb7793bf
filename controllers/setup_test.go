package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/ameerhamza-malik/ItemManagement/config"
	"github.com/ameerhamza-malik/ItemManagement/controllers"
	"github.com/ameerhamza-malik/ItemManagement/middleware"
	"github.com/ameerhamza-malik/ItemManagement/models"
	"github.com/ameerhamza-malik/ItemManagement/routes"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
}

// newTestEnv spins up the real router over a throwaway SQLite database.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Item{}))

	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := &config.Config{
		ServerPort: "8080",
		DBPath:     dbPath,
		SecretKey:  "test-secret-key",
		LogLevel:   "info",
		AppEnv:     "test",
	}

	h := controllers.NewHandler(db, cfg, log)

	router := gin.New()
	routes.SetupRouter(router, h)

	return &testEnv{router: router, db: db}
}

// session holds what a logged-in client carries between requests.
type session struct {
	cookies   []*http.Cookie
	csrfToken string
}

// do performs a JSON request against the test router, attaching the
// session's cookies and anti-forgery header when given one.
func (e *testEnv) do(t *testing.T, method, path string, body interface{}, s *session) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if s != nil {
		for _, ck := range s.cookies {
			req.AddCookie(ck)
		}
		if s.csrfToken != "" {
			req.Header.Set(middleware.CSRFHeaderName, s.csrfToken)
		}
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) register(t *testing.T, username, email, password string) {
	t.Helper()
	w := e.do(t, http.MethodPost, "/register", map[string]string{
		"username":         username,
		"email":            email,
		"password":         password,
		"confirm_password": password,
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func (e *testEnv) login(t *testing.T, username, password string) *session {
	t.Helper()
	w := e.do(t, http.MethodPost, "/login", map[string]string{
		"username": username,
		"password": password,
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		CSRFToken string `json:"csrf_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.CSRFToken)

	return &session{cookies: w.Result().Cookies(), csrfToken: resp.CSRFToken}
}

func (e *testEnv) itemCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, e.db.Model(&models.Item{}).Count(&count).Error)
	return count
}

func (e *testEnv) userCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, e.db.Model(&models.User{}).Count(&count).Error)
	return count
}

// createItem posts a new item through the API and returns its id.
func (e *testEnv) createItem(t *testing.T, s *session, title, description string) uint {
	t.Helper()
	w := e.do(t, http.MethodPost, "/items", map[string]string{
		"title":       title,
		"description": description,
	}, s)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Item models.Item `json:"item"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotZero(t, resp.Item.ID)
	return resp.Item.ID
}

type listResponse struct {
	Items      []models.Item `json:"items"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
	Q          string        `json:"q"`
}

func (e *testEnv) listItems(t *testing.T, path string) listResponse {
	t.Helper()
	w := e.do(t, http.MethodGet, path, nil, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp listResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}
