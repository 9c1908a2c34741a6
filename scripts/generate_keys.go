//go:build ignore

// generate_keys prints fresh secrets for the camp service .env file.
//
//	go run scripts/generate_keys.go [-bytes 32]
package main

import (
	"crypto/rand"
	"encoding/base64"
	"flag"
	"fmt"
	"os"
)

func randomKey(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func main() {
	size := flag.Int("bytes", 32, "length of each JWT secret in bytes")
	flag.Parse()

	if *size < 32 {
		fmt.Fprintln(os.Stderr, "HS256 secrets shorter than 32 bytes are rejected")
		os.Exit(2)
	}

	entries := []struct {
		env   string
		bytes int
	}{
		{"JWT_SECRET_KEY", *size},
		{"JWT_REFRESH_SECRET_KEY", *size},
		{"ADMIN_PASSWORD", 12},
	}

	fmt.Println("# camp service secrets, keep out of version control")
	for _, e := range entries {
		key, err := randomKey(e.bytes)
		if err != nil {
			fmt.Fprintf(os.Stderr, "generate %s: %v\n", e.env, err)
			os.Exit(1)
		}
		fmt.Printf("%s=%s\n", e.env, key)
	}
}
