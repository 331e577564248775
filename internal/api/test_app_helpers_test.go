package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/stridehq/stride/internal/db"
	"github.com/stridehq/stride/internal/models"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "stride-api-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler := NewHandler(database, "test-secret-key", time.UTC, false)
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func createTestUser(t *testing.T, database *gorm.DB, email string, password string) models.User {
	t.Helper()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	user := models.User{
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(passwordHash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func loginAndExtractAuthCookie(t *testing.T, app *fiber.App, email string, password string) string {
	t.Helper()

	response := postJSON(t, app, "/api/auth/login", "", map[string]any{
		"email":    email,
		"password": password,
	})
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected login status 200, got %d", response.StatusCode)
	}

	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return cookie.Name + "=" + cookie.Value
		}
	}

	t.Fatal("auth cookie is missing in login response")
	return ""
}

func registerAndLogin(t *testing.T, app *fiber.App, database *gorm.DB, email string) string {
	t.Helper()

	createTestUser(t, database, email, "StrongPass1")
	return loginAndExtractAuthCookie(t, app, email, "StrongPass1")
}

func jsonRequest(t *testing.T, method string, target string, authCookie string, payload any) *http.Request {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, target, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if authCookie != "" {
		request.Header.Set("Cookie", authCookie)
	}
	return request
}

func doRequest(t *testing.T, app *fiber.App, request *http.Request) *http.Response {
	t.Helper()

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", request.Method, request.URL.Path, err)
	}
	return response
}

func postJSON(t *testing.T, app *fiber.App, target string, authCookie string, payload any) *http.Response {
	t.Helper()
	return doRequest(t, app, jsonRequest(t, http.MethodPost, target, authCookie, payload))
}

func decodeJSONBody(t *testing.T, response *http.Response, destination any) {
	t.Helper()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(body, destination); err != nil {
		t.Fatalf("decode response body %q: %v", string(body), err)
	}
}

func createHabitForTest(t *testing.T, app *fiber.App, authCookie string, title string, frequency string, targetCount int) habitView {
	t.Helper()

	response := postJSON(t, app, "/api/habits", authCookie, map[string]any{
		"title":        title,
		"frequency":    frequency,
		"target_count": targetCount,
	})
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected habit creation status 201, got %d", response.StatusCode)
	}

	created := habitView{}
	decodeJSONBody(t, response, &created)
	if created.ID == 0 {
		t.Fatal("expected a non-zero habit id")
	}
	return created
}

func logEntryForTest(t *testing.T, app *fiber.App, authCookie string, habitID uint, day string, value float64) habitView {
	t.Helper()

	target := fmt.Sprintf("/api/habits/%d/entries/%s", habitID, day)
	response := doRequest(t, app, jsonRequest(t, http.MethodPut, target, authCookie, map[string]any{"value": value}))
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected entry write status 200 for %s, got %d", day, response.StatusCode)
	}

	saved := habitView{}
	decodeJSONBody(t, response, &saved)
	return saved
}
