// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"shanyraq/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// FactoryOptions control how the factory persists data.
type FactoryOptions struct {
	// DryRun logs what would be created without writing to the database.
	DryRun bool
	// SkipBcrypt stores a plain password for faster bulk seeding.
	SkipBcrypt bool
	// MaxDays spreads created_at timestamps over the past N days.
	MaxDays int
}

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seeder and tests.
type Factory struct {
	db   *gorm.DB
	opts FactoryOptions
	// synthetic ID counter when running in DryRun mode
	nextID uint
}

var listingTypes = []string{"sell", "rent"}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts FactoryOptions) *Factory {
	// seed gofakeit for richer content
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db, opts: opts, nextID: 1000}
}

func (f *Factory) spreadCreatedAt() time.Time {
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	// #nosec G404: acceptable for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	daysBack := r.Intn(maxDays)
	hoursBack := r.Intn(24)
	minsBack := r.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	phone := gofakeit.Phone()
	name := gofakeit.Name()
	city := gofakeit.City()
	user := &models.User{
		Username: gofakeit.Email(),
		Phone:    &phone,
		Name:     &name,
		City:     &city,
	}

	// Password handling: allow skipping bcrypt in dev fast mode
	if f.opts.SkipBcrypt {
		user.PasswordHash = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.PasswordHash = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if f.opts.DryRun {
		f.nextID++
		user.ID = f.nextID
		log.Printf("[dry-run] CreateUser: %s", user.Username)
		return user, nil
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateListing constructs and persists a sample `models.Listing` owned by
// the given user.
func (f *Factory) CreateListing(owner *models.User, overrides ...func(*models.Listing)) (*models.Listing, error) {
	area := gofakeit.Float64Range(18, 250)
	rooms := gofakeit.Number(1, 6)
	description := gofakeit.Paragraph(1, 3, 8, "\n")
	listing := &models.Listing{
		Type:        listingTypes[gofakeit.Number(0, len(listingTypes)-1)],
		Price:       gofakeit.Number(30_000, 90_000_000),
		Address:     fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.Street()),
		Area:        &area,
		RoomsCount:  &rooms,
		Description: &description,
		UserID:      owner.ID,
		CreatedAt:   f.spreadCreatedAt(),
	}

	for _, override := range overrides {
		override(listing)
	}

	if f.opts.DryRun {
		f.nextID++
		listing.ID = f.nextID
		log.Printf("[dry-run] CreateListing: type=%s user=%d address=%q",
			listing.Type, listing.UserID, listing.Address)
		return listing, nil
	}

	if err := f.db.Create(listing).Error; err != nil {
		return nil, err
	}
	return listing, nil
}

// CreateListingsBatch persists multiple listings in a single DB call.
func (f *Factory) CreateListingsBatch(listings []*models.Listing) error {
	if f.opts.DryRun {
		for _, l := range listings {
			f.nextID++
			l.ID = f.nextID
		}
		log.Printf("[dry-run] CreateListingsBatch: %d listings (no DB write)", len(listings))
		return nil
	}
	return f.db.Create(&listings).Error
}

// CreateComment constructs and persists a sample `models.Comment` on the
// provided listing authored by the provided user.
func (f *Factory) CreateComment(author *models.User, listing *models.Listing, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		Content:   gofakeit.Sentence(8),
		AuthorID:  author.ID,
		ListingID: listing.ID,
	}

	for _, override := range overrides {
		override(comment)
	}

	if f.opts.DryRun {
		f.nextID++
		comment.ID = f.nextID
		log.Printf("[dry-run] CreateComment: listing=%d author=%d", comment.ListingID, comment.AuthorID)
		return comment, nil
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateFavorite persists a bookmark from `user` on `listing`.
func (f *Factory) CreateFavorite(user *models.User, listing *models.Listing) error {
	if f.opts.DryRun {
		log.Printf("[dry-run] CreateFavorite: user=%d listing=%d", user.ID, listing.ID)
		return nil
	}
	favorite := &models.Favorite{
		UserID:    user.ID,
		ListingID: listing.ID,
	}
	return f.db.Create(favorite).Error
}
