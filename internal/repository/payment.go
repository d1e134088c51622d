package repository

import (
	"context"
	"fmt"

	"teasr/internal/models"

	"gorm.io/gorm"
)

// PaymentRepository defines persistence operations for payments.
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	// Patrons returns the distinct users who have ever paid userID.
	Patrons(ctx context.Context, userID uint) ([]*models.User, error)
	// CreatorsPaid returns the distinct users userID has ever paid.
	CreatorsPaid(ctx context.Context, userID uint) ([]*models.User, error)
	// PostRevenue returns the total amount earned by a post as a decimal string.
	PostRevenue(ctx context.Context, postID uint) (string, error)
}

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository returns a new PaymentRepository implementation.
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	if err := r.db.WithContext(ctx).Create(payment).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *paymentRepository) Patrons(ctx context.Context, userID uint) ([]*models.User, error) {
	var users []*models.User
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Joins("JOIN payments ON payments.payer_id = users.id").
		Where("payments.payee_id = ?", userID).
		Distinct("users.*").
		Order("users.id ASC").
		Find(&users).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *paymentRepository) CreatorsPaid(ctx context.Context, userID uint) ([]*models.User, error) {
	var users []*models.User
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Joins("JOIN payments ON payments.payee_id = users.id").
		Where("payments.payer_id = ?", userID).
		Distinct("users.*").
		Order("users.id ASC").
		Find(&users).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *paymentRepository) PostRevenue(ctx context.Context, postID uint) (string, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Where("post_id = ?", postID).
		Select("COALESCE(SUM(CAST(amount AS numeric)), 0)").
		Scan(&total).Error
	if err != nil {
		return "", models.NewInternalError(err)
	}
	return fmt.Sprintf("%.2f", total), nil
}
