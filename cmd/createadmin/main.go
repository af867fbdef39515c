// Command createadmin bootstraps the first superadmin account. Run once
// against a fresh database; it refuses to create a second superadmin.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/adamswinfred36-debug/Backend-MLST/models"
	"github.com/adamswinfred36-debug/Backend-MLST/store"
)

func main() {
	_ = godotenv.Load()

	username := flag.String("username", "admin", "superadmin username")
	email := flag.String("email", "admin@mercadolivre.com", "superadmin email")
	password := flag.String("password", "admin123", "initial password (change after first login)")
	flag.Parse()

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		log.Fatal("❌ MONGODB_URI not configured")
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "mercadinho"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s, err := store.Connect(ctx, uri, dbName)
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	defer s.Close(ctx)
	log.Println("✅ Connected to MongoDB")

	count, err := s.Admins.CountDocuments(ctx, bson.M{"role": models.RoleSuperAdmin})
	if err != nil {
		log.Fatalf("❌ Failed to check existing admins: %v", err)
	}
	if count > 0 {
		log.Println("⚠️  A superadmin already exists, nothing to do")
		return
	}

	now := time.Now()
	admin := models.Admin{
		Username:  *username,
		Email:     *email,
		Role:      models.RoleSuperAdmin,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := admin.SetPassword(*password); err != nil {
		log.Fatalf("❌ Failed to hash password: %v", err)
	}

	if _, err := s.Admins.InsertOne(ctx, admin); err != nil {
		log.Fatalf("❌ Failed to create admin: %v", err)
	}

	log.Println("✅ Superadmin created successfully!")
	log.Printf("📧 Email: %s", *email)
	log.Println("⚠️  IMPORTANT: change the password after the first login!")
}
