// Command token prints a signed bearer token for local testing.
//
//	go run ./cmd/token -role admin -subject 6f1c...
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	role := flag.String("role", string(kernel.RoleCustomer), "customer, admin, deliveryPerson or appOwner")
	subject := flag.String("subject", "", "subject ID; a random one is generated when empty")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	_ = godotenv.Load(".env")

	parsedRole, ok := kernel.ParseRole(*role)
	if !ok {
		log.Fatalf("unknown role %q", *role)
	}

	subjectID := kernel.NewUUID()
	if *subject != "" {
		id, err := kernel.UUIDFromString(*subject)
		if err != nil {
			log.Fatal(err)
		}
		subjectID = id
	}

	auth, err := httpin.NewTokenAuthenticator(os.Getenv("JWT_SECRET"))
	if err != nil {
		log.Fatal(err)
	}

	token, err := auth.Issue(subjectID, parsedRole, *ttl)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("subject: %s\nrole:    %s\ntoken:   %s\n", subjectID, parsedRole, token)
}
