package main

import (
	"log"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"corp-portal-be/internal/entity"
	"corp-portal-be/internal/mapper"
	"corp-portal-be/internal/model"
	"corp-portal-be/pkg/database"
)

// Seeds the initial admin account. Idempotent: an existing admin with the
// same employee code is left untouched.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	employeeCode := envOr("SEED_ADMIN_EMPLOYEE_ID", "ADM-001")
	password := envOr("SEED_ADMIN_PASSWORD", "changeme")
	adminEmail := os.Getenv("SEED_ADMIN_EMAIL")

	db, err := database.NewGormDB(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	var count int64
	if err := db.Model(&model.User{}).Where("employee_code = ?", employeeCode).Count(&count).Error; err != nil {
		log.Fatal("Error: Failed to check existing admin:", err)
	}
	if count > 0 {
		color.Yellow("Admin %s already exists, nothing to do", employeeCode)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Error: Failed to hash password:", err)
	}

	admin := &entity.User{
		Id:           uuid.New(),
		EmployeeCode: employeeCode,
		Name:         "Portal Administrator",
		Position:     "Administrator",
		Department:   "IT",
		PasswordHash: string(hash),
		Role:         entity.UserRoleAdmin,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if adminEmail != "" {
		admin.Email = &adminEmail
	}

	userMapper := mapper.NewUserMapper()
	if err := db.Create(userMapper.ToModel(admin)).Error; err != nil {
		color.Red("Failed to seed admin: %v", err)
		os.Exit(1)
	}

	color.Green("Seeded admin account %s", employeeCode)
	if password == "changeme" {
		color.Yellow("Warning: using the default password, change it after first login")
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
