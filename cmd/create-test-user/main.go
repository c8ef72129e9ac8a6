package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/224saisrikanth/Judment-analysis/auth"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: No .env file found, using environment variables: %v", err)
	}

	username := flag.String("username", "admin", "username to create or reset")
	password := flag.String("password", "admin123", "password to set")
	displayName := flag.String("display-name", "", "display name (defaults to username)")
	flag.Parse()

	creds := auth.NewCredentialStore(os.Getenv("CREDENTIALS_FILE"))

	if err := creds.SetPassword(*username, *password, *displayName); err != nil {
		log.Fatalf("Failed to set credentials: %v", err)
	}

	log.Printf("Credentials set for user %q", *username)
}
