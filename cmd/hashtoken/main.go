// hashtoken prints the bcrypt hash of a preview access token, for use as
// preview.token_hash in lootscale.yaml.
//
// Usage:
//
//	go run ./cmd/hashtoken my-secret-token
//	echo my-secret-token | go run ./cmd/hashtoken
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost factor")
	flag.Parse()

	token := flag.Arg(0)
	if token == "" {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			log.Fatalf("Failed to read token from stdin: %v", err)
		}
		token = strings.TrimSpace(line)
	}
	if token == "" {
		log.Fatal("Token must not be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(token), *cost)
	if err != nil {
		log.Fatalf("Failed to hash token: %v", err)
	}
	fmt.Println(string(hash))
}
