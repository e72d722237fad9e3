package main

import (
	"flag"
	"fmt"
	"log"

	"havenly.backend/pkg/crypto"
)

func validateHexLen(hexLen int) error {
	if hexLen <= 0 || hexLen%2 != 0 {
		return fmt.Errorf("invalid hex-len: %d (must be positive and even)", hexLen)
	}
	return nil
}

func buildSecret(hexLen int) (string, error) {
	return crypto.GenerateRandomToken(hexLen / 2)
}

func main() {
	hexLen := flag.Int("hex-len", 64, "random hex length (must be even)")
	flag.Parse()

	if err := validateHexLen(*hexLen); err != nil {
		log.Fatal(err)
	}

	secret, err := buildSecret(*hexLen)
	if err != nil {
		log.Fatalf("failed to generate secret: %v", err)
	}

	fmt.Println("Generated JWT secret")
	fmt.Printf("JWT_SECRET=%s\n", secret)
}
