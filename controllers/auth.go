package controllers

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/meinhoongagan/home-services-backend/db"
	"github.com/meinhoongagan/home-services-backend/models"
	"github.com/meinhoongagan/home-services-backend/services"
	"github.com/meinhoongagan/home-services-backend/utils"
)

// codeStore is constructed once for the process; see services.CodeStore.
var codeStore = services.NewCodeStore()

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") ||
		strings.HasPrefix(s, "$2b$") ||
		strings.HasPrefix(s, "$2y$")
}

// Login authenticates by username and password. Legacy accounts may still
// carry a plaintext password; those are compared directly until the next
// password change rehashes them.
func Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.Username == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "username and password required",
		})
	}

	var user models.User
	if db.DB.Where("username = ?", input.Username).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid credentials",
		})
	}

	ok := false
	if isBcryptHash(user.Password) {
		ok = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) == nil
	} else {
		ok = user.Password == input.Password
	}
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid credentials",
		})
	}

	now := time.Now()
	user.LastLoginTime = &now
	db.DB.Save(&user)

	token, refreshToken, err := issueTokens(&user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	// Don't return password to client
	user.Password = ""

	return c.JSON(fiber.Map{
		"user":         user,
		"token":        token,
		"refreshToken": refreshToken,
	})
}

func issueTokens(user *models.User) (string, string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "solid_secret_key"
	}

	claims := jwt.MapClaims{
		"id":       user.ID,
		"username": user.Username,
		"role":     string(user.Role),
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", "", err
	}

	refreshClaims := jwt.MapClaims{
		"id":       user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(7 * 24 * time.Hour).Unix(),
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString([]byte(secret))
	if err != nil {
		return "", "", err
	}
	return token, refreshToken, nil
}

// Register creates a user and, for the service_provider role, the provider
// record plus any declared capabilities.
func Register(c *fiber.Ctx) error {
	type RegisterInput struct {
		Username     string `json:"username"`
		Password     string `json:"password"`
		Name         string `json:"name"`
		Email        string `json:"email"`
		Role         string `json:"role"`
		Introduction string `json:"introduction"`
		ServiceIDs   []uint `json:"serviceIds"`
	}

	input := new(RegisterInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.Username == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}
	if input.Role != "" && !models.IsValidRole(input.Role) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid role. Must be customer or service_provider",
		})
	}

	var existing models.User
	if db.DB.Where("username = ?", input.Username).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Username already taken",
		})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to hash password",
		})
	}

	role := models.RoleCustomer
	if input.Role == string(models.RoleServiceProvider) {
		role = models.RoleServiceProvider
	}
	name := input.Name
	if name == "" {
		name = input.Username
	}

	user := models.User{
		Username: input.Username,
		Password: string(hashed),
		Name:     name,
		Email:    input.Email,
		Role:     role,
		Status:   models.MembershipNone,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		log.Printf("Error creating user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create user: " + err.Error(),
		})
	}

	if role == models.RoleServiceProvider {
		zero := 0.0
		provider := models.ServiceProvider{
			UserID:       user.ID,
			Status:       models.ProviderPending,
			Rating:       &zero,
			Introduction: input.Introduction,
			JoinDate:     time.Now(),
		}
		if err := db.DB.Create(&provider).Error; err != nil {
			log.Printf("Error creating provider: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to create provider: " + err.Error(),
			})
		}
		svc := services.NewProviderService(db.DB)
		for _, serviceID := range input.ServiceIDs {
			if _, err := svc.AddCapability(provider.ID, serviceID); err != nil {
				log.Printf("Error linking service %d: %v", serviceID, err)
			}
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "registered",
	})
}

// Me returns the authenticated user's profile.
func Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}
	user.Password = ""
	return c.JSON(user)
}

// SendVerificationCode generates a code for the email and delivers it over
// SMTP. The code stays valid for ten minutes.
func SendVerificationCode(c *fiber.Ctx) error {
	var body map[string]string
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	email := strings.TrimSpace(body["email"])
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email is required",
		})
	}

	code := codeStore.Generate(email)
	if err := utils.SendEmail(email, "Your verification code",
		"<p>Your verification code is <strong>"+code+"</strong>. It expires in 10 minutes.</p>"); err != nil {
		log.Printf("Failed to send verification code to %s: %v", email, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Verification code sent",
	})
}

// VerifyCode validates a previously sent code. Valid codes are single-use.
func VerifyCode(c *fiber.Ctx) error {
	var body map[string]string
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	email, code := body["email"], body["code"]
	if email == "" || code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and code are required",
		})
	}

	if !codeStore.Validate(email, code) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid or expired code",
		})
	}
	return c.JSON(fiber.Map{"success": true})
}
