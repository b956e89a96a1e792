package controllers

import (
	"net/http"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/meinhoongagan/home-services-backend/db"
	"github.com/meinhoongagan/home-services-backend/models"
)

func TestLoginWithBcryptPassword(t *testing.T) {
	app := setupTest(t)
	app.Post("/login", Login)

	hashed, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := models.User{
		Username: "alice",
		Password: string(hashed),
		Name:     "Alice",
		Role:     models.RoleCustomer,
		Status:   models.MembershipNone,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	resp := postJSON(t, app, "/login", map[string]string{
		"username": "alice",
		"password": "s3cret",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body := decodeJSON(t, resp)
	token, _ := body["token"].(string)
	refresh, _ := body["refreshToken"].(string)
	if token == "" || refresh == "" {
		t.Fatal("expected both tokens in response")
	}
	returned, ok := body["user"].(map[string]any)
	if !ok {
		t.Fatal("expected user object in response")
	}
	if pw, present := returned["password"]; present && pw != "" {
		t.Fatalf("expected password to be omitted, got %v", pw)
	}

	var refreshed models.User
	if err := db.DB.First(&refreshed, user.ID).Error; err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	if refreshed.LastLoginTime == nil {
		t.Fatal("expected last login time to be recorded")
	}
}

func TestLoginLegacyPlaintextPassword(t *testing.T) {
	app := setupTest(t)
	app.Post("/login", Login)

	user := models.User{
		Username: "legacy",
		Password: "plain-old-password",
		Name:     "Legacy",
		Role:     models.RoleCustomer,
		Status:   models.MembershipNone,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	resp := postJSON(t, app, "/login", map[string]string{
		"username": "legacy",
		"password": "plain-old-password",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for plaintext account, got %d", resp.StatusCode)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app := setupTest(t)
	app.Post("/login", Login)

	user := models.User{
		Username: "alice",
		Password: "right",
		Role:     models.RoleCustomer,
		Status:   models.MembershipNone,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	for _, creds := range []map[string]string{
		{"username": "alice", "password": "wrong"},
		{"username": "nobody", "password": "right"},
	} {
		resp := postJSON(t, app, "/login", creds)
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("expected 401 for %v, got %d", creds, resp.StatusCode)
		}
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	app := setupTest(t)
	app.Post("/register", Register)

	resp := postJSON(t, app, "/register", map[string]string{
		"username": "mallory",
		"password": "pw",
		"role":     "admin",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown role, got %d", resp.StatusCode)
	}

	var count int64
	db.DB.Model(&models.User{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no user created, got %d", count)
	}
}

func TestRegisterProviderCreatesCapabilities(t *testing.T) {
	app := setupTest(t)
	app.Post("/register", Register)

	svc := models.Service{Name: "Cleaning", Price: 50, PriceUnit: "hour"}
	if err := db.DB.Create(&svc).Error; err != nil {
		t.Fatalf("failed to seed service: %v", err)
	}

	resp := postJSON(t, app, "/register", map[string]any{
		"username":   "bob",
		"password":   "pw",
		"role":       "service_provider",
		"serviceIds": []uint{svc.ID},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var user models.User
	if err := db.DB.Where("username = ?", "bob").First(&user).Error; err != nil {
		t.Fatalf("failed to find registered user: %v", err)
	}
	if user.Role != models.RoleServiceProvider {
		t.Fatalf("expected service_provider role, got %s", user.Role)
	}
	if user.Password == "pw" {
		t.Fatal("expected stored password to be hashed")
	}

	var provider models.ServiceProvider
	if err := db.DB.Where("user_id = ?", user.ID).First(&provider).Error; err != nil {
		t.Fatalf("failed to find provider record: %v", err)
	}
	if provider.Status != models.ProviderPending {
		t.Fatalf("expected pending provider, got %s", provider.Status)
	}
	if provider.Rating == nil || *provider.Rating != 0.0 {
		t.Fatalf("expected initial rating 0.0, got %v", provider.Rating)
	}

	var links int64
	db.DB.Model(&models.ProviderService{}).Where("provider_id = ?", provider.ID).Count(&links)
	if links != 1 {
		t.Fatalf("expected one capability link, got %d", links)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	app := setupTest(t)
	app.Post("/register", Register)

	first := postJSON(t, app, "/register", map[string]string{
		"username": "alice",
		"password": "pw",
	})
	if first.StatusCode != http.StatusOK {
		t.Fatalf("expected first registration to succeed, got %d", first.StatusCode)
	}

	second := postJSON(t, app, "/register", map[string]string{
		"username": "alice",
		"password": "pw2",
	})
	if second.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate username, got %d", second.StatusCode)
	}
}

func TestVerifyCodeFlow(t *testing.T) {
	app := setupTest(t)
	app.Post("/verify_code", VerifyCode)

	code := codeStore.Generate("user@example.com")

	resp := postJSON(t, app, "/verify_code", map[string]string{
		"email": "user@example.com",
		"code":  code,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for valid code, got %d", resp.StatusCode)
	}

	// Codes are single-use.
	replay := postJSON(t, app, "/verify_code", map[string]string{
		"email": "user@example.com",
		"code":  code,
	})
	if replay.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for replayed code, got %d", replay.StatusCode)
	}
}
