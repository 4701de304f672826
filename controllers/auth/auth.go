package authController

import (
	"codelearn/config"
	"codelearn/database"
	"codelearn/middleware"
	"codelearn/models"
	"codelearn/utils"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*struct {
		FirstName string `json:"first_name" validate:"required,min=2"`
		LastName  string `json:"last_name"`
		Email     string `json:"email" validate:"required,email"`
		Password  string `json:"password" validate:"required,min=8"`
		Role      string `json:"role" validate:"omitempty,oneof=STUDENT INSTRUCTOR"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	role := reqData.Role
	if role == "" {
		role = "STUDENT"
	}

	newUser := models.User{
		FirstName: reqData.FirstName,
		LastName:  reqData.LastName,
		Email:     reqData.Email,
		Role:      role,
		Password:  string(hashedPassword),
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	if err := SeedPermissions(db, newUser.Role, newUser.ID); err != nil {
		log.Printf("Error seeding permissions: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to assign permissions!", nil)
	}

	utils.SendWelcomeEmail(newUser.Email, newUser.FullName())

	token, err := middleware.GenerateJWT(newUser.ID, newUser.FullName(), newUser.Role, newUser.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", fiber.Map{
		"user":       newUser,
		"token":      token,
		"expires_in": int64((24 * time.Hour).Seconds()),
	})
}

// SeedPermissions seeds default permissions for a given role and user ID
func SeedPermissions(db *gorm.DB, role string, userID uint) error {
	permissions := defaultPermissions(role)

	var permissionRecords []models.Permission
	for _, p := range permissions {
		permissionRecords = append(permissionRecords, models.Permission{
			UserID:     userID,
			Role:       role,
			Permission: p,
		})
	}

	return db.Create(&permissionRecords).Error
}

func defaultPermissions(role string) []string {
	switch role {
	case "ADMIN":
		return []string{"view-courses", "manage-courses", "manage-certificates", "view-reports"}
	case "INSTRUCTOR":
		return []string{"view-courses", "manage-courses"}
	default:
		return []string{"view-courses"}
	}
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	// Temporary block after repeated failures
	if user.BlockedUntil != nil && user.BlockedUntil.After(time.Now()) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Account temporarily blocked. Try again later.", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		user.FailedLoginAttempts++
		if user.FailedLoginAttempts >= 5 {
			blockedUntil := time.Now().Add(15 * time.Minute)
			user.BlockedUntil = &blockedUntil
			user.FailedLoginAttempts = 0
		}
		db.Save(&user)
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	user.FailedLoginAttempts = 0
	user.BlockedUntil = nil
	user.LastLogin = time.Now()
	db.Save(&user)

	token, err := middleware.GenerateJWT(user.ID, user.FullName(), user.Role, user.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"user":       user,
		"token":      token,
		"expires_in": int64((24 * time.Hour).Seconds()),
	})
}

// Logout is stateless; the client discards its token
func Logout(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out successfully!", nil)
}

// Me returns the authenticated user's profile
func Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully!", user)
}

// RefreshToken issues a fresh token for the authenticated user
func RefreshToken(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.FullName(), user.Role, user.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Token refreshed!", fiber.Map{
		"token":      token,
		"expires_in": int64((24 * time.Hour).Seconds()),
	})
}
