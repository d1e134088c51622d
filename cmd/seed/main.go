// Command main runs the database seeder for TEASR.
package main

import (
	"flag"
	"log"

	"teasr/internal/config"
	"teasr/internal/database"
	"teasr/internal/seed"
)

func main() {
	// Parse command line flags
	opts := seed.DefaultOptions()
	flag.IntVar(&opts.Users, "users", opts.Users, "Number of users to create")
	flag.IntVar(&opts.PostsPerUser, "posts-per-user", opts.PostsPerUser, "Number of posts per user")
	flag.Float64Var(&opts.ViralRatio, "viral-ratio", opts.ViralRatio, "Fraction of posts flagged viral")
	flag.IntVar(&opts.PaymentsPerUser, "payments-per-user", opts.PaymentsPerUser, "Number of payments per user")
	flag.IntVar(&opts.MessagesPerPair, "messages-per-pair", opts.MessagesPerPair, "Messages per payment-linked pair")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Println("===============")
	log.Printf("Target: %d users, %d posts each, clean=%v\n", opts.Users, opts.PostsPerUser, *shouldClean)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if _, err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run seeder
	s := seed.NewSeeder(database.DB)

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	if err := s.Run(opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done! Your database is now populated with test data.")
}
