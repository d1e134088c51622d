// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"

	"teasr/internal/models"

	"gorm.io/gorm"
)

// Options controls how much data the seeder generates.
type Options struct {
	Users           int
	PostsPerUser    int
	ViralRatio      float64 // fraction of posts flagged viral
	PaymentsPerUser int
	MessagesPerPair int
}

// DefaultOptions returns a small but realistic dataset: enough creators to
// exercise leaderboard truncation, a handful of viral posts, and a payment
// mesh dense enough to make messaging mostly available.
func DefaultOptions() Options {
	return Options{
		Users:           60,
		PostsPerUser:    5,
		ViralRatio:      0.1,
		PaymentsPerUser: 3,
		MessagesPerPair: 4,
	}
}

// Seeder populates the database with generated data.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db)}
}

// ClearAll truncates all seeded tables.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	for _, table := range []string{"direct_messages", "payments", "posts", "users"} {
		if err := s.db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

// Run seeds users, posts, payments and conversations per opts.
func (s *Seeder) Run(opts Options) error {
	users, err := s.seedUsers(opts.Users)
	if err != nil {
		return err
	}
	log.Printf("Seeded %d users", len(users))

	posts, err := s.seedPosts(users, opts)
	if err != nil {
		return err
	}
	log.Printf("Seeded %d posts", len(posts))

	payments, err := s.seedPayments(users, posts, opts)
	if err != nil {
		return err
	}
	log.Printf("Seeded %d payments", len(payments))

	messages, err := s.seedConversations(payments, opts)
	if err != nil {
		return err
	}
	log.Printf("Seeded %d messages", messages)

	return nil
}

func (s *Seeder) seedUsers(n int) ([]*models.User, error) {
	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return nil, fmt.Errorf("failed to create user %d: %w", i, err)
		}
		users = append(users, user)
	}
	return users, nil
}

func (s *Seeder) seedPosts(users []*models.User, opts Options) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, len(users)*opts.PostsPerUser)
	for _, user := range users {
		for i := 0; i < opts.PostsPerUser; i++ {
			post, err := s.factory.CreatePost(user, opts.ViralRatio)
			if err != nil {
				return nil, fmt.Errorf("failed to create post for user %d: %w", user.ID, err)
			}
			posts = append(posts, post)
		}
	}
	return posts, nil
}

func (s *Seeder) seedPayments(users []*models.User, posts []*models.Post, opts Options) ([]*models.Payment, error) {
	payments := make([]*models.Payment, 0, len(users)*opts.PaymentsPerUser)
	for _, payer := range users {
		for i := 0; i < opts.PaymentsPerUser; i++ {
			payment, err := s.factory.CreatePayment(payer, posts)
			if err != nil {
				return nil, fmt.Errorf("failed to create payment for user %d: %w", payer.ID, err)
			}
			if payment != nil {
				payments = append(payments, payment)
			}
		}
	}
	return payments, nil
}

// seedConversations puts a short message exchange behind each unique payment
// pair, so the messaging gate has eligible conversations to serve.
func (s *Seeder) seedConversations(payments []*models.Payment, opts Options) (int, error) {
	seen := make(map[[2]uint]bool)
	total := 0
	for _, p := range payments {
		a, b := p.PayerID, p.PayeeID
		if b < a {
			a, b = b, a
		}
		key := [2]uint{a, b}
		if seen[key] {
			continue
		}
		seen[key] = true

		n, err := s.factory.CreateConversation(p.PayerID, p.PayeeID, opts.MessagesPerPair)
		if err != nil {
			return total, fmt.Errorf("failed to create conversation %d<->%d: %w", p.PayerID, p.PayeeID, err)
		}
		total += n
	}
	return total, nil
}
