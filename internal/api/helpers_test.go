package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/monlivredecuisine/backend/config"
	"github.com/monlivredecuisine/backend/internal/api"
	"github.com/monlivredecuisine/backend/internal/router"
	"github.com/monlivredecuisine/backend/internal/service"
	"github.com/monlivredecuisine/backend/internal/testhelpers"
)

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
	auth   *service.AuthService
}

// newTestServer wires the full router against an in-memory database with no
// Redis, so rate limiters pass everything through.
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDatabase(t)
	cfg := &config.Config{
		FrontendURL: "http://localhost:5173",
		JWTSecret:   "test-secret",
		TokenTTL:    time.Hour,
	}

	auth := service.NewAuthService(db, cfg.JWTSecret, cfg.TokenTTL)
	recipes := service.NewRecipeService(db)
	fridge := service.NewFridgeService(db)
	admin := service.NewAdminService(db)

	r := router.SetupRouter(
		cfg, db, nil,
		api.NewAuthHandler(auth),
		api.NewRecipeHandler(recipes, auth),
		api.NewFridgeHandler(fridge),
		api.NewAdminHandler(admin),
		auth,
	)
	return &testServer{router: r, db: db, auth: auth}
}

func (s *testServer) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// register creates an account through the API and returns a login token.
func (s *testServer) register(t *testing.T, nom, email, password string) string {
	t.Helper()

	w := s.request(t, http.MethodPost, "/auth/register", "", gin.H{
		"nom": nom, "email": email, "password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.request(t, http.MethodPost, "/auth/login", "", gin.H{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

func sampleRecipeBody(titre string) gin.H {
	return gin.H{
		"titre":         titre,
		"categorie":     "Plat",
		"temps_prep":    15,
		"temps_cuisson": 30,
		"tags":          []string{"rapide"},
		"ingredients": []gin.H{
			{"nom": "Tomate", "quantite": 2, "unite": "pièces"},
			{"nom": "Oeuf", "quantite": 3},
		},
		"steps": []gin.H{
			{"description": "Battre les oeufs", "ordre": 1},
			{"description": "Cuire", "ordre": 2},
		},
	}
}

