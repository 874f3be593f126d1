package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"

	"reviewboard/internal/database"
	"reviewboard/internal/domain"
	"reviewboard/internal/repository"
)

var firstNames = []string{
	"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael",
	"Linda", "William", "Elizabeth", "David", "Barbara", "Richard", "Susan",
	"Joseph", "Jessica", "Thomas", "Sarah", "Charles", "Karen",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
}

var restaurants = []string{
	"The Golden Fork", "Bella Napoli", "Sakura Garden", "El Toro Loco",
	"The Rusty Skillet", "Maison Claire", "Spice Route", "Harbor & Vine",
	"The Copper Kettle", "Tandoori Nights", "Blue Bayou Kitchen",
	"Ocean Pearl", "The Velvet Radish", "Casa Mariachi", "Smoke & Barrel",
}

var cuisines = []string{"american", "italian", "japanese", "mexican", "french", "indian", "thai"}

var comments = []string{
	"Absolutely loved it, the staff went above and beyond.",
	"Solid food but the wait was longer than expected.",
	"Would not come back. The place was noisy and the portions tiny.",
	"A hidden gem. The seasonal menu is worth the trip alone.",
	"Decent value for the price, nothing spectacular.",
	"The best meal I have had this year, hands down.",
	"Service was friendly but the kitchen seemed overwhelmed.",
}

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "reviewboard.db"
	}

	db, err := database.Connect(database.Config{DSN: dsn})
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (reviews first to satisfy foreign keys)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM reviewed_objects")
	db.Exec("DELETE FROM reviewers")

	ctx := context.Background()
	reviewerRepo := repository.NewReviewerRepository(db, domain.DeleteRestrict)
	objectRepo := repository.NewReviewedObjectRepository(db, domain.DeleteRestrict)
	reviewRepo := repository.NewReviewRepository(db)

	log.Println("Creating reviewers...")
	reviewers := make([]*domain.Reviewer, 0, len(firstNames))
	for i, first := range firstNames {
		last := lastNames[i%len(lastNames)]
		full := fmt.Sprintf("%s %s", first, last)
		r, err := reviewerRepo.Create(ctx, domain.ReviewerCreate{
			Username: fmt.Sprintf("%s_%s%d", first, last, i),
			Email:    fmt.Sprintf("%s.%s%d@example.com", first, last, i),
			FullName: &full,
		})
		if err != nil {
			log.Fatal("seed reviewer:", err)
		}
		reviewers = append(reviewers, r)
	}

	log.Println("Creating restaurants...")
	objects := make([]*domain.ReviewedObject, 0, len(restaurants))
	for i, name := range restaurants {
		desc := fmt.Sprintf("%s, a %s restaurant.", name, cuisines[i%len(cuisines)])
		o, err := objectRepo.Create(ctx, domain.ReviewedObjectCreate{
			ObjectType:        "restaurant",
			ObjectKey:         fmt.Sprintf("rest-%03d", i+1),
			ObjectName:        name,
			ObjectDescription: &desc,
			Metadata: domain.Metadata{
				"cuisine":     cuisines[i%len(cuisines)],
				"price_range": rand.Intn(4) + 1,
				"city":        "Springfield",
				"takeout":     rand.Intn(2) == 0,
			},
		})
		if err != nil {
			log.Fatal("seed object:", err)
		}
		objects = append(objects, o)
	}

	log.Println("Creating reviews...")
	created := 0
	for _, r := range reviewers {
		for _, o := range objects {
			// Around 40% coverage keeps the dataset sparse and realistic.
			if rand.Intn(10) >= 4 {
				continue
			}
			in := domain.ReviewCreate{
				ReviewerID:       r.ID,
				ReviewedObjectID: o.ID,
			}
			// Weighted toward positive ratings, as real datasets are.
			switch rand.Intn(5) {
			case 0:
				star := weightedStar()
				in.StarRating = &star
			case 1:
				thumbs := domain.ThumbsUp
				if rand.Intn(3) == 0 {
					thumbs = domain.ThumbsDown
				}
				in.ThumbsRating = &thumbs
			case 2:
				text := comments[rand.Intn(len(comments))]
				in.TextReview = &text
			default:
				star := weightedStar()
				text := comments[rand.Intn(len(comments))]
				in.StarRating = &star
				in.TextReview = &text
			}

			if _, err := reviewRepo.Create(ctx, in); err != nil {
				log.Fatal("seed review:", err)
			}
			created++
		}
	}

	log.Printf("Seeded %d reviewers, %d objects, %d reviews", len(reviewers), len(objects), created)
}

func weightedStar() int {
	// Skew toward 3-5 stars.
	stars := []int{0, 1, 2, 3, 3, 4, 4, 4, 5, 5, 5}
	return stars[rand.Intn(len(stars))]
}
