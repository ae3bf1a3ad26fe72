package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitDB() *gorm.DB {
	godotenv.Load()

	host := os.Getenv("DB_HOST")
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASS")
	name := os.Getenv("DB_NAME")
	port := os.Getenv("DB_PORT")

	if host == "" || user == "" || pass == "" || name == "" || port == "" {
		log.Fatalf("DATABASE ENV MISSING — check .env file")
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		host, user, pass, name, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}

	fmt.Println("✅ Database connected and migrated successfully")
	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&User{}, &Event{}, &ChatMessage{})
}

// SeedDemoData loads the demo parish team and a first program schedule the
// first time the service starts against an empty database.
func SeedDemoData(db *gorm.DB) {
	var count int64
	db.Model(&User{}).Count(&count)
	if count > 0 {
		return
	}

	users := []User{
		{Email: "demo@example.com", Password: "demo123", FullName: "Fr. John Smith", Phone: "+91 98200 12345", Parish: "St. Mary's Church", Role: "priest", Bio: "Parish priest overseeing Pre-Bap programs"},
		{Email: "coordinator@example.com", Password: "demo123", FullName: "Maria Rodriguez", Phone: "+91 98200 23456", Parish: "St. Mary's Church", Role: "coordinator", Bio: "Pre-Bap program coordinator"},
		{Email: "leader@example.com", Password: "demo123", FullName: "Thomas Wilson", Phone: "+91 98200 34567", Parish: "St. Mary's Church", Role: "team-leader", Bio: "Team leader for Pre-Bap sessions"},
	}
	if err := db.Create(&users).Error; err != nil {
		log.Printf("⚠️ demo user seed failed: %v", err)
		return
	}

	events := []Event{
		{OrganizerID: users[1].ID, Title: "Session 1: Introduction", Date: "2025-01-15", StartTime: "18:00", EndTime: "20:00", Location: "Parish Hall", Description: "Welcome and introduction to Baptism", EventType: "session"},
		{OrganizerID: users[1].ID, Title: "Session 2: Roles & Responsibilities", Date: "2025-01-22", StartTime: "18:00", EndTime: "20:00", Location: "Parish Hall", Description: "Understanding parental and godparent roles", EventType: "session"},
		{OrganizerID: users[0].ID, Title: "Baptism Ceremony", Date: "2025-01-25", StartTime: "10:00", EndTime: "12:00", Location: "Main Church", Description: "Baptism ceremony for new members", EventType: "baptism"},
	}
	if err := db.Create(&events).Error; err != nil {
		log.Printf("⚠️ demo event seed failed: %v", err)
	}

	log.Println("🌱 Demo data seeded")
}
