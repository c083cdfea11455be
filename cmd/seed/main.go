package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"clubfund/internal/config"
	"clubfund/internal/db"
	"clubfund/internal/model"
	"clubfund/internal/repository"
)

// Demo records use fixed UUIDs so reruns are idempotent: whatever
// already exists is left alone instead of duplicated.
var demoUsers = []struct {
	ID       uuid.UUID
	Email    string
	Password string
	Name     string
}{
	{uuid.MustParse("6f1d2f34-0000-4000-8000-000000000001"), "chess@ucdavis.edu", "pw123456", "Chess Club"},
	{uuid.MustParse("6f1d2f34-0000-4000-8000-000000000002"), "robotics@ucdavis.edu", "pw123456", "Robotics Club"},
}

var demoFundraisers = []model.Fundraiser{
	{
		ID:             uuid.MustParse("9a7e5c10-0000-4000-8000-000000000001"),
		ClubName:       "Chess Club",
		FundraiserName: "Bake Sale",
		Location:       "Quad",
		DateTime:       time.Date(2026, 12, 1, 10, 0, 0, 0, time.UTC),
		ProceedsInfo:   "Proceeds fund tournament travel",
		CreatedBy:      demoUsers[0].ID,
		CreatedByEmail: demoUsers[0].Email,
	},
	{
		ID:             uuid.MustParse("9a7e5c10-0000-4000-8000-000000000002"),
		ClubName:       "Robotics Club",
		FundraiserName: "Boba Night",
		Location:       "Memorial Union",
		DateTime:       time.Date(2026, 11, 15, 18, 0, 0, 0, time.UTC),
		InstagramLink:  "https://instagram.com/ucdrobotics",
		CreatedBy:      demoUsers[1].ID,
		CreatedByEmail: demoUsers[1].Email,
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Fundraiser{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	fundraiserRepo := repository.NewFundraiserRepository(gormDB)

	created := 0
	for _, du := range demoUsers {
		if _, err := userRepo.FindByEmail(ctx, du.Email); err == nil {
			continue
		} else if err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to check user %s: %v", du.Email, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(du.Password), 10)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		user := &model.User{
			ID:           du.ID,
			Email:        du.Email,
			PasswordHash: string(hash),
			Name:         du.Name,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create user %s: %v", du.Email, err)
		}
		created++
	}
	log.Printf("Users seeded: %d new", created)

	created = 0
	for i := range demoFundraisers {
		fund := demoFundraisers[i]
		if _, err := fundraiserRepo.FindByID(ctx, fund.ID); err == nil {
			continue
		} else if err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to check fundraiser %s: %v", fund.ID, err)
		}

		if err := fundraiserRepo.Create(ctx, &fund); err != nil {
			log.Fatalf("Failed to create fundraiser %s: %v", fund.ID, err)
		}
		created++
	}
	log.Printf("Fundraisers seeded: %d new", created)

	log.Println("Seed completed successfully!")
}
