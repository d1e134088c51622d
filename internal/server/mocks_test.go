package server

import (
	"context"
	"time"

	"teasr/internal/featureflags"
	"teasr/internal/models"
	"teasr/internal/repository"
	"teasr/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockPostRepository is a mock of the PostRepository interface
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context) ([]models.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

// MockPaymentRepository is a mock of the PaymentRepository interface
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) Patrons(ctx context.Context, userID uint) ([]*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockPaymentRepository) CreatorsPaid(ctx context.Context, userID uint) ([]*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockPaymentRepository) PostRevenue(ctx context.Context, postID uint) (string, error) {
	args := m.Called(ctx, postID)
	return args.String(0), args.Error(1)
}

// MockMessageRepository is a mock of the MessageRepository interface
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(ctx context.Context, msg *models.DirectMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockMessageRepository) ListBetween(ctx context.Context, a, b uint) ([]*models.DirectMessage, error) {
	args := m.Called(ctx, a, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.DirectMessage), args.Error(1)
}

func (m *MockMessageRepository) MarkRead(ctx context.Context, recipientID, senderID uint) (int64, error) {
	args := m.Called(ctx, recipientID, senderID)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByWalletAddress(ctx context.Context, walletAddress string) (*models.User, error) {
	args := m.Called(ctx, walletAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Upsert(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

// newTestServer wires a Server over the given mocked repositories, matching
// the service graph NewServerWithDeps builds.
func newTestServer(userRepo repository.UserRepository, postRepo repository.PostRepository, paymentRepo repository.PaymentRepository, messageRepo repository.MessageRepository) *Server {
	s := &Server{
		userRepo:     userRepo,
		postRepo:     postRepo,
		paymentRepo:  paymentRepo,
		messageRepo:  messageRepo,
		featureFlags: featureflags.NewManager("viral_ticker=on"),
	}
	s.userService = service.NewUserService(userRepo)
	s.leaderboardService = service.NewLeaderboardService(postRepo)
	s.viralService = service.NewViralService(postRepo)
	s.relationshipService = service.NewRelationshipService(paymentRepo)
	s.messagingService = service.NewMessagingService(messageRepo, userRepo, s.relationshipService)
	s.revenueService = service.NewRevenueService(paymentRepo, 10*time.Second)
	return s
}
