package service

import (
	"context"
	"strings"

	"teasr/internal/models"
	"teasr/internal/repository"
)

// UserService provides identity and profile business logic. Wallet signature
// verification happens upstream; by the time a wallet address reaches this
// service it is trusted.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Authenticate resolves a wallet address to a user, creating the account on
// first sight.
func (s *UserService) Authenticate(ctx context.Context, walletAddress, username string) (*models.User, error) {
	walletAddress = strings.TrimSpace(walletAddress)
	if walletAddress == "" {
		return nil, models.NewValidationError("Wallet address is required")
	}
	username = strings.TrimSpace(username)
	if username == "" {
		// Derive a stable display key from the wallet for first-time users.
		username = defaultUsername(walletAddress)
	}

	user := &models.User{Username: username, WalletAddress: walletAddress}
	if err := s.userRepo.Upsert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// LookupByWallet resolves a wallet address to an existing user, or nil when
// unknown.
func (s *UserService) LookupByWallet(ctx context.Context, walletAddress string) (*models.User, error) {
	return s.userRepo.GetByWalletAddress(ctx, walletAddress)
}

// GetByID returns the user with the given ID.
func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func defaultUsername(walletAddress string) string {
	suffix := walletAddress
	if len(suffix) > 8 {
		suffix = suffix[len(suffix)-8:]
	}
	return "creator_" + strings.ToLower(suffix)
}
