package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"teasr/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seeder and tests.
type Factory struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// BuildUser constructs a user without persisting it.
func (f *Factory) BuildUser() *models.User {
	return &models.User{
		Username:         strings.ToLower(gofakeit.Username()) + fmt.Sprintf("%03d", f.rng.Intn(1000)),
		WalletAddress:    "0x" + strings.ReplaceAll(uuid.NewString(), "-", ""),
		ProfileImagePath: fmt.Sprintf("https://picsum.photos/seed/%s/200/200", gofakeit.UUID()),
	}
}

// CreateUser persists a generated user.
func (f *Factory) CreateUser() (*models.User, error) {
	user := f.BuildUser()
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// BuildPost constructs a post for the given creator without persisting it.
// viralRatio is the probability the post gets the viral flag.
func (f *Factory) BuildPost(creator *models.User, viralRatio float64) *models.Post {
	daysBack := f.rng.Intn(90)
	minsBack := f.rng.Intn(24 * 60)
	return &models.Post{
		Title:                gofakeit.Sentence(4),
		UserID:               creator.ID,
		Price:                fmt.Sprintf("%d.%02d", f.rng.Intn(20), f.rng.Intn(100)),
		ViewCount:            f.rng.Intn(50000),
		UpvoteCount:          f.rng.Intn(2000),
		IsViral:              f.rng.Float64() < viralRatio,
		BlurredThumbnailPath: fmt.Sprintf("https://picsum.photos/seed/%s/400/600?blur=10", gofakeit.UUID()),
		CreatedAt:            time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(minsBack)*time.Minute),
	}
}

// CreatePost persists a generated post.
func (f *Factory) CreatePost(creator *models.User, viralRatio float64) (*models.Post, error) {
	post := f.BuildPost(creator, viralRatio)
	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreatePayment persists a payment from payer to the creator of a randomly
// picked post. Returns nil when no payable post exists (all posts belong to
// the payer).
func (f *Factory) CreatePayment(payer *models.User, posts []*models.Post) (*models.Payment, error) {
	candidates := make([]*models.Post, 0, len(posts))
	for _, p := range posts {
		if p.UserID != payer.ID {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	post := candidates[f.rng.Intn(len(candidates))]
	payment := &models.Payment{
		PayerID: payer.ID,
		PayeeID: post.UserID,
		PostID:  post.ID,
		Amount:  post.Price,
	}
	if err := f.db.Create(payment).Error; err != nil {
		return nil, err
	}
	return payment, nil
}

// CreateConversation persists an alternating exchange of n messages between
// the two users, timestamps strictly increasing.
func (f *Factory) CreateConversation(a, b uint, n int) (int, error) {
	start := time.Now().Add(-time.Duration(f.rng.Intn(72)) * time.Hour)
	for i := 0; i < n; i++ {
		sender, recipient := a, b
		if i%2 == 1 {
			sender, recipient = b, a
		}
		msg := &models.DirectMessage{
			SenderID:    sender,
			RecipientID: recipient,
			Content:     gofakeit.Sentence(f.rng.Intn(10) + 2),
			CreatedAt:   start.Add(time.Duration(i) * time.Minute),
		}
		// Older messages are mostly read already.
		if i < n-1 && f.rng.Float64() < 0.8 {
			readAt := msg.CreatedAt.Add(time.Duration(f.rng.Intn(30)+1) * time.Minute)
			msg.ReadAt = &readAt
		}
		if err := f.db.Create(msg).Error; err != nil {
			return i, err
		}
	}
	return n, nil
}
