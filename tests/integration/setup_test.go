package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"budgetbook/internal/handlers"
	"budgetbook/internal/logger"
	"budgetbook/internal/middleware"
	"budgetbook/internal/models"
	"budgetbook/internal/services"
	"budgetbook/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:integrationdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.Budget{},
		&models.BudgetItem{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	userService := services.NewUserService(db)
	budgetService := services.NewBudgetService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)

	// Router, mirroring cmd/api
	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/auth/authenticated", authHandler.Authenticated)

	protected.GET("/budgets", budgetHandler.GetBudgets)
	protected.GET("/budget/:id", budgetHandler.GetBudget)
	protected.POST("/budget/create", budgetHandler.CreateBudget)
	protected.POST("/budget/edit", budgetHandler.EditBudget)
	protected.POST("/budget/delete", budgetHandler.DeleteBudget)
	protected.GET("/budget/item/categories", budgetHandler.GetItemCategories)
	protected.POST("/budget/item/create", budgetHandler.CreateBudgetItem)
	protected.POST("/budget/item/edit", budgetHandler.EditBudgetItem)
	protected.POST("/budget/item/delete", budgetHandler.DeleteBudgetItem)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// registerUser registers a new user and logs in, returning the JWT.
func (app *testApp) registerUser(t *testing.T, username, password string) string {
	t.Helper()

	body := fmt.Sprintf(`{"username":%q,"password":%q}`, username, password)
	rec := app.request("POST", "/api/auth/register", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("POST", "/api/auth/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	token, ok := result["token"].(string)
	if !ok || token == "" {
		t.Fatalf("login returned no token: %s", rec.Body.String())
	}
	return token
}
