package service

import (
	"context"

	"teasr/internal/models"
)

type postRepoStub struct {
	getByIDFn func(context.Context, uint) (*models.Post, error)
	listFn    func(context.Context) ([]models.Post, error)
	createFn  func(context.Context, *models.Post) error
}

func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) List(ctx context.Context) ([]models.Post, error) {
	return s.listFn(ctx)
}
func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}

type paymentRepoStub struct {
	createFn       func(context.Context, *models.Payment) error
	patronsFn      func(context.Context, uint) ([]*models.User, error)
	creatorsPaidFn func(context.Context, uint) ([]*models.User, error)
	postRevenueFn  func(context.Context, uint) (string, error)
}

func (s *paymentRepoStub) Create(ctx context.Context, payment *models.Payment) error {
	return s.createFn(ctx, payment)
}
func (s *paymentRepoStub) Patrons(ctx context.Context, userID uint) ([]*models.User, error) {
	return s.patronsFn(ctx, userID)
}
func (s *paymentRepoStub) CreatorsPaid(ctx context.Context, userID uint) ([]*models.User, error) {
	return s.creatorsPaidFn(ctx, userID)
}
func (s *paymentRepoStub) PostRevenue(ctx context.Context, postID uint) (string, error) {
	return s.postRevenueFn(ctx, postID)
}

type messageRepoStub struct {
	createFn      func(context.Context, *models.DirectMessage) error
	listBetweenFn func(context.Context, uint, uint) ([]*models.DirectMessage, error)
	markReadFn    func(context.Context, uint, uint) (int64, error)
}

func (s *messageRepoStub) Create(ctx context.Context, msg *models.DirectMessage) error {
	return s.createFn(ctx, msg)
}
func (s *messageRepoStub) ListBetween(ctx context.Context, a, b uint) ([]*models.DirectMessage, error) {
	return s.listBetweenFn(ctx, a, b)
}
func (s *messageRepoStub) MarkRead(ctx context.Context, recipientID, senderID uint) (int64, error) {
	return s.markReadFn(ctx, recipientID, senderID)
}

type userRepoStub struct {
	getByIDFn     func(context.Context, uint) (*models.User, error)
	getByWalletFn func(context.Context, string) (*models.User, error)
	upsertFn      func(context.Context, *models.User) error
	listFn        func(context.Context, int, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByWalletAddress(ctx context.Context, walletAddress string) (*models.User, error) {
	return s.getByWalletFn(ctx, walletAddress)
}
func (s *userRepoStub) Upsert(ctx context.Context, user *models.User) error {
	return s.upsertFn(ctx, user)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:     func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByWalletFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		upsertFn:      func(context.Context, *models.User) error { return nil },
		listFn:        func(context.Context, int, int) ([]models.User, error) { return nil, nil },
	}
}

// relationshipsFor builds a RelationshipService over a fixed fact feed keyed
// by user ID, consistent in both directions.
func relationshipsFor(patrons, creatorsPaid map[uint][]*models.User) *RelationshipService {
	return NewRelationshipService(&paymentRepoStub{
		patronsFn: func(_ context.Context, userID uint) ([]*models.User, error) {
			return patrons[userID], nil
		},
		creatorsPaidFn: func(_ context.Context, userID uint) ([]*models.User, error) {
			return creatorsPaid[userID], nil
		},
	})
}
