package main

import (
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pressroom/internal/config"
	"pressroom/internal/db"
	"pressroom/internal/model"
)

// Seeds the permission catalog, system roles, an admin account and a
// handful of demo content rows. Safe to run repeatedly: everything is
// keyed on a unique column and existing rows are left alone.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}
	if err := db.Seed(gormDB); err != nil {
		log.Fatalf("seed permissions and roles: %v", err)
	}

	admin, err := seedAdmin(gormDB)
	if err != nil {
		log.Fatalf("seed admin user: %v", err)
	}
	if err := seedContent(gormDB, admin); err != nil {
		log.Fatalf("seed demo content: %v", err)
	}

	log.Println("Seed complete")
}

// seedAdmin creates the initial admin account. Credentials come from
// ADMIN_EMAIL / ADMIN_PASSWORD, with development defaults.
func seedAdmin(gormDB *gorm.DB) (*model.User, error) {
	email := envOr("ADMIN_EMAIL", "admin@example.com")
	password := envOr("ADMIN_PASSWORD", "admin123")

	var existing model.User
	if err := gormDB.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Printf("Admin user %s already exists, skipping", email)
		return &existing, nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	admin := model.User{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: string(hashed),
		Role:         "admin",
		Status:       model.UserStatusActive,
	}
	if err := gormDB.Create(&admin).Error; err != nil {
		return nil, err
	}
	log.Printf("Created admin user %s", email)
	return &admin, nil
}

func seedContent(gormDB *gorm.DB, author *model.User) error {
	news := model.Category{Name: "News", Description: "Company announcements"}
	news.Slug = model.Slugify(news.Name)
	if err := gormDB.Where(model.Category{Slug: news.Slug}).FirstOrCreate(&news).Error; err != nil {
		return err
	}

	now := time.Now()
	welcome := model.Article{
		Title:       "Welcome",
		Slug:        "welcome",
		Excerpt:     "Our new site is live.",
		Content:     "Welcome to the new site. More content is on the way.",
		Status:      model.ArticleStatusPublished,
		CategoryID:  &news.ID,
		AuthorID:    author.ID,
		PublishedAt: &now,
	}
	if err := gormDB.Where(model.Article{Slug: welcome.Slug}).FirstOrCreate(&welcome).Error; err != nil {
		return err
	}

	slide := model.Slide{
		Title:    "Welcome",
		Subtitle: "Take a look around",
		Image:    "/uploads/hero.jpg",
		Position: 1,
		Active:   true,
	}
	if err := gormDB.Where(model.Slide{Title: slide.Title}).FirstOrCreate(&slide).Error; err != nil {
		return err
	}

	log.Println("Demo content in place")
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
