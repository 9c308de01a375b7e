package main

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"taskhub/internal/config"
	"taskhub/internal/db"
	"taskhub/internal/model"
	"taskhub/internal/repository"
)

// seedUser is a demo user with its tasks, inserted for local development.
type seedUser struct {
	Name     string
	Email    string
	Password string
	Tasks    []model.Task
}

var seedUsers = []seedUser{
	{
		Name:     "Alice Johnson",
		Email:    "alice@example.com",
		Password: "alice-password",
		Tasks: []model.Task{
			{Title: "Write weekly report", Description: "Summary for the team sync"},
			{Title: "Review open PRs"},
		},
	},
	{
		Name:     "Bruno Costa",
		Email:    "bruno@example.com",
		Password: "bruno-password",
		Tasks: []model.Task{
			{Title: "Plan sprint backlog", Description: "Groom the top ten items"},
		},
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Task{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)
	ctx := context.Background()

	created, skipped := 0, 0
	for _, su := range seedUsers {
		if existing, err := userRepo.FindByEmail(ctx, su.Email); err == nil && existing != nil {
			log.Printf("Skipping %s: already registered", su.Email)
			skipped++
			continue
		} else if err != nil && err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to check %s: %v", su.Email, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password for %s: %v", su.Email, err)
		}

		user := &model.User{Name: su.Name, Email: su.Email, PasswordHash: string(hash)}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create %s: %v", su.Email, err)
		}

		for i := range su.Tasks {
			task := su.Tasks[i]
			task.UserID = user.ID
			if err := taskRepo.Create(ctx, &task); err != nil {
				log.Fatalf("Failed to create task for %s: %v", su.Email, err)
			}
		}
		created++
	}

	log.Printf("Seed completed: %d users created, %d skipped", created, skipped)
}
