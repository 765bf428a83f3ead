// ABOUTME: Generates signed BFF session tokens for testing
// ABOUTME: Produces valid or expired tokens against a given secret

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <token-type> [secret]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Token types: valid, expired\n")
		os.Exit(1)
	}

	tokenType := os.Args[1]
	secret := "dev-secret-do-not-use-in-production"
	if len(os.Args) > 2 {
		secret = os.Args[2]
	} else if s := os.Getenv("JWT_SECRET"); s != "" {
		secret = s
	}

	claims := jwt.MapClaims{
		"particip":      1611830,
		"nom":           "Martin",
		"prenom":        "Jeremy",
		"upstreamToken": "upstream-token-for-testing",
		"iat":           time.Now().Unix(),
	}

	switch tokenType {
	case "valid":
		claims["exp"] = time.Now().Add(time.Hour).Unix()
	case "expired":
		claims["exp"] = time.Now().Add(-time.Hour).Unix()
		claims["iat"] = time.Now().Add(-2 * time.Hour).Unix()
	default:
		fmt.Fprintf(os.Stderr, "Unknown token type: %s\n", tokenType)
		os.Exit(1)
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to sign: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(signed)
}
