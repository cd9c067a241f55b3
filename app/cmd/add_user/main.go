package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charlykso/smart-s-sub003/app/config"
	"github.com/charlykso/smart-s-sub003/app/database"
	"github.com/charlykso/smart-s-sub003/app/models"
	"github.com/charlykso/smart-s-sub003/app/routes/auth"
)

// Bootstraps the first admin account so the API can be used at all.
func main() {
	email := flag.String("email", "", "admin email address")
	password := flag.String("password", "", "admin password (min 8 chars)")
	firstName := flag.String("first-name", "System", "first name")
	lastName := flag.String("last-name", "Admin", "last name")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Println("Usage: add_user -email admin@example.com -password secret123")
		os.Exit(1)
	}

	config.InitDB()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		os.Exit(1)
	}
	defer db.Close()

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		fmt.Printf("Error hashing password: %v\n", err)
		os.Exit(1)
	}

	user := &models.User{
		Email:     *email,
		Password:  hashed,
		FirstName: *firstName,
		LastName:  *lastName,
		IsActive:  true,
	}
	if err := models.Validate(user); err != nil {
		fmt.Printf("Invalid user: %v\n", err)
		os.Exit(1)
	}

	if err := database.CreateUser(db, user); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		os.Exit(1)
	}
	if err := database.AssignUserRole(db, user.ID, models.RoleAdmin); err != nil {
		fmt.Printf("Error assigning admin role: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Admin created: %s %s (%s)\n", user.FirstName, user.LastName, user.Email)
}
