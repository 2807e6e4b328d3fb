// Command seeder creates a development member with a card and prints an
// access token for it.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"cardpay/internal/auth"
	"cardpay/internal/config"
	"cardpay/internal/models"
	"cardpay/internal/repositories"
)

func main() {
	memberNumber := flag.Int64("member", 1001, "member number to seed")
	name := flag.String("name", "Dev Member", "member name")
	cardNumber := flag.String("card", "4111-1111-1111-1111", "card number to seed")
	tokenTTL := flag.Duration("ttl", 24*time.Hour, "access token lifetime")
	flag.Parse()

	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer func() {
		if sqlDB, err := repositories.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	memberRepo := repositories.NewMemberRepository(repositories.DB)
	cardRepo := repositories.NewCardRepository(repositories.DB, nil)

	if _, err := memberRepo.FindByNumber(*memberNumber); err == repositories.ErrMemberNotFound {
		member := &models.Member{MemberNumber: *memberNumber, Name: *name}
		if err := memberRepo.Create(member); err != nil {
			log.Fatalf("failed to create member: %v", err)
		}
		log.Printf("created member %d", *memberNumber)
	} else if err != nil {
		log.Fatalf("failed to look up member: %v", err)
	} else {
		log.Printf("member %d already exists", *memberNumber)
	}

	exists, err := cardRepo.ExistsByNumber(*cardNumber)
	if err != nil {
		log.Fatalf("failed to check card: %v", err)
	}
	if !exists {
		card := &models.Card{CardNumber: *cardNumber, MemberNumber: *memberNumber}
		if err := cardRepo.Create(card); err != nil {
			log.Fatalf("failed to create card: %v", err)
		}
		log.Printf("created card %s", *cardNumber)
	} else {
		log.Printf("card %s already exists", *cardNumber)
	}

	token, err := auth.GenerateMemberToken(*memberNumber, config.GetEnv("JWT_SECRET", "cardpay"), *tokenTTL)
	if err != nil {
		log.Fatalf("failed to generate token: %v", err)
	}
	fmt.Println(token)
}
