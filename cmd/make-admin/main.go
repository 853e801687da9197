package main

import (
	"log"
	"os"

	"funkopop-api/internal/model"
	"funkopop-api/pkg/database"

	"github.com/joho/godotenv"
)

// Signup always assigns role=user and active=false, so the first admin account
// has to be promoted out of band. Usage: make-admin <email>
func main() {
	if len(os.Args) != 2 {
		log.Fatal("usage: make-admin <email>")
	}
	email := os.Args[1]

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	db := database.ConnectDB()

	var user model.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		log.Fatalf("User %s not found in database: %v", email, err)
	}

	updates := map[string]interface{}{
		"role":   model.RoleAdmin,
		"active": true,
	}
	if err := db.Model(&user).Updates(updates).Error; err != nil {
		log.Fatalf("Failed to promote user: %v", err)
	}

	log.Printf("Success! %s now has the admin role", email)
}
