package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"codeberg.org/tubespark/server/internal/auth"
)

// prints a bearer token for local testing against the API
func main() {
	userID := flag.String("user", "", "user id to embed (random uuid when empty)")
	email := flag.String("email", "test@tubespark.app", "email claim")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: .env file not found")
	}

	authenticator, err := auth.NewAuthenticator(os.Getenv("JWT_SECRET"))
	if err != nil {
		log.Fatalf("failed to create authenticator: %v", err)
	}

	if *userID == "" {
		*userID = uuid.NewString()
	}

	token, err := authenticator.GenerateJWT(*userID, *email)
	if err != nil {
		log.Fatalf("failed to generate JWT: %v", err)
	}

	fmt.Printf("user id: %s\n\n", *userID)
	fmt.Printf("export TEST_TOKEN=\"%s\"\n", token)
}
