package main

import (
	"context"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/Hawkpraveen/Survey-BE/internal/config"
	"github.com/Hawkpraveen/Survey-BE/internal/log"
	"github.com/Hawkpraveen/Survey-BE/internal/model"
	"github.com/Hawkpraveen/Survey-BE/internal/repository"
	"github.com/Hawkpraveen/Survey-BE/internal/service"
)

// Seeds an admin account and a demo survey for local development.
func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDB)
	users := repository.NewUserRepo(db)
	surveys := repository.NewSurveyRepo(db)

	email := getEnv("SEED_ADMIN_EMAIL", "admin@example.com")
	password := getEnv("SEED_ADMIN_PASSWORD", "admin123")

	admin, err := users.GetByEmail(ctx, email)
	if err != nil {
		log.Fatalf("Failed to look up admin: %v", err)
	}
	if admin == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		admin = &model.User{
			Name:     "Admin",
			Email:    email,
			Password: string(hash),
			IsAdmin:  true,
		}
		id, err := users.Create(ctx, admin)
		if err != nil {
			log.Fatalf("Failed to create admin: %v", err)
		}
		admin.ID = id
		log.Infof("Created admin user %s", email)
	} else {
		log.Infof("Admin user %s already exists", email)
	}

	surveySvc := service.NewSurveyService(surveys, repository.NewAnswerRepo(db))
	survey, err := surveySvc.Create(ctx, admin.ID, "Product Feedback", "Tell us what you think about the product.", []model.Question{
		{
			Question:  "How satisfied are you with the product overall?",
			Type:      model.QuestionRating,
			MaxRating: 5,
		},
		{
			Question: "Which features do you use regularly?",
			Type:     model.QuestionCheckbox,
			Options:  []string{"Dashboard", "Reports", "Notifications", "Exports"},
		},
		{
			Question: "How did you hear about us?",
			Type:     model.QuestionDropdown,
			Options:  []string{"Search", "Social media", "A friend", "Other"},
		},
		{
			Question: "What would you improve first?",
			Type:     model.QuestionLongText,
		},
	})
	if err != nil {
		log.Fatalf("Failed to create demo survey: %v", err)
	}

	log.Infof("Created demo survey %s", survey.ID.Hex())
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
