package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"shanyraq/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumListings int
	ShouldClean bool
	DryRun      bool
	SkipBcrypt  bool
}

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users and %d listings...",
		opts.NumUsers, opts.NumListings)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	factory := NewFactory(db, FactoryOptions{
		DryRun:     opts.DryRun,
		SkipBcrypt: opts.SkipBcrypt,
	})

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create users: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("created %d test users", len(users))

	if len(users) == 0 {
		return nil
	}

	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	listings := make([]*models.Listing, 0, opts.NumListings)
	for i := 0; i < opts.NumListings; i++ {
		owner := users[r.Intn(len(users))]
		listing, err := factory.CreateListing(owner)
		if err != nil {
			return fmt.Errorf("failed to create listings: %w", err)
		}
		listings = append(listings, listing)
	}
	log.Printf("created %d listings", len(listings))

	// Sprinkle comments and favorites across the listings
	comments := 0
	favorites := 0
	for _, listing := range listings {
		for i := 0; i < gofakeit.Number(0, 5); i++ {
			author := users[r.Intn(len(users))]
			if _, err := factory.CreateComment(author, listing); err != nil {
				return fmt.Errorf("failed to create comments: %w", err)
			}
			comments++
		}
		for i := 0; i < gofakeit.Number(0, 3); i++ {
			user := users[r.Intn(len(users))]
			// The unique index rejects duplicate pairs; skip those quietly.
			if err := factory.CreateFavorite(user, listing); err != nil {
				continue
			}
			favorites++
		}
	}
	log.Printf("created %d comments and %d favorites", comments, favorites)

	log.Println("Database seeding completed successfully")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE comments, favorites, listings, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}
