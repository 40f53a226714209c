package main

import (
	"context"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"artisanhub/internal/config"
	"artisanhub/internal/db"
	"artisanhub/internal/model"
	"artisanhub/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Seeds a demo owner, a demo artisan, one job and one bid so a fresh
// database has something to browse. Running it twice is a no-op.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Job{}, &model.Bid{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	jobRepo := repository.NewJobRepository(gormDB)
	bidRepo := repository.NewBidRepository(gormDB)

	owner, created, err := ensureUser(ctx, userRepo, model.User{
		Username: "demo-owner",
		Email:    "owner@example.com",
		FullName: "Demo Owner",
		Phone:    "08030000001",
		Role:     model.RoleOwner,
		LGA:      "Ikeja",
		Bio:      "Posts household repair jobs.",
	}, "password123")
	if err != nil {
		log.Fatalf("Failed to seed owner: %v", err)
	}
	if !created {
		log.Println("Seed data already present, nothing to do")
		return
	}

	artisan, _, err := ensureUser(ctx, userRepo, model.User{
		Username:   "demo-artisan",
		Email:      "artisan@example.com",
		FullName:   "Demo Artisan",
		Phone:      "08030000002",
		Role:       model.RoleArtisan,
		LGA:        "Ikeja",
		Bio:        "Plumber with ten years of experience.",
		Skills:     datatypes.NewJSONSlice([]string{"plumbing", "tiling"}),
		IsVerified: true,
	}, "password123")
	if err != nil {
		log.Fatalf("Failed to seed artisan: %v", err)
	}

	job := model.Job{
		OwnerID:     owner.ID,
		Title:       "Fix leaking kitchen sink",
		Description: "The kitchen sink has been leaking for a week and needs a proper fix.",
		Category:    "Plumbing",
		LGA:         "Ikeja",
		Budget:      decimal.NewFromInt(5000),
	}
	if err := jobRepo.Create(ctx, &job); err != nil {
		log.Fatalf("Failed to seed job: %v", err)
	}

	bid := model.Bid{
		JobID:     job.ID,
		ArtisanID: artisan.ID,
		Amount:    decimal.NewFromInt(4500),
		Proposal:  "I can fix it tomorrow morning with my own materials.",
	}
	if err := bidRepo.Create(ctx, &bid); err != nil {
		log.Fatalf("Failed to seed bid: %v", err)
	}

	log.Println("Seed completed successfully!")
	log.Printf("  - owner:   %s (%s)", owner.Username, owner.ID)
	log.Printf("  - artisan: %s (%s)", artisan.Username, artisan.ID)
	log.Printf("  - job:     %q with 1 bid", job.Title)
}

// ensureUser creates the user unless the username already exists.
func ensureUser(ctx context.Context, repo repository.UserRepository, user model.User, password string) (*model.User, bool, error) {
	existing, err := repo.FindByUsername(ctx, user.Username)
	if err == nil {
		return existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, err
	}
	user.PasswordHash = string(hashed)

	if err := repo.Create(ctx, &user); err != nil {
		return nil, false, err
	}
	return &user, true, nil
}
