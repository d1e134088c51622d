package service

import (
	"context"

	"teasr/internal/cache"
	"teasr/internal/models"
	"teasr/internal/repository"
)

// RelationshipService derives the set of counterparties a user may message
// from the payment-fact feed. Eligibility is existence-based: one historical
// payment in either direction grants it permanently.
type RelationshipService struct {
	paymentRepo repository.PaymentRepository
}

// NewRelationshipService returns a new RelationshipService.
func NewRelationshipService(paymentRepo repository.PaymentRepository) *RelationshipService {
	return &RelationshipService{paymentRepo: paymentRepo}
}

// Resolve unions patrons and creators paid, deduplicated by user ID keeping
// the first occurrence. An empty result is a normal state for a user with no
// transactions, not an error.
func Resolve(patrons, creatorsPaid []*models.User) []*models.User {
	seen := make(map[uint]bool, len(patrons)+len(creatorsPaid))
	resolved := make([]*models.User, 0, len(patrons)+len(creatorsPaid))
	for _, u := range patrons {
		if u == nil || seen[u.ID] {
			continue
		}
		seen[u.ID] = true
		resolved = append(resolved, u)
	}
	for _, u := range creatorsPaid {
		if u == nil || seen[u.ID] {
			continue
		}
		seen[u.ID] = true
		resolved = append(resolved, u)
	}
	return resolved
}

// Relationships returns both sides of the payment-fact feed for a user, as
// served by the relationships endpoint.
func (s *RelationshipService) Relationships(ctx context.Context, userID uint) (*models.PaymentRelationships, error) {
	var rels models.PaymentRelationships

	key := cache.RelationshipsKey(userID)
	err := cache.Aside(ctx, key, &rels, cache.RelationshipsTTL, func() error {
		patrons, err := s.paymentRepo.Patrons(ctx, userID)
		if err != nil {
			return err
		}
		creatorsPaid, err := s.paymentRepo.CreatorsPaid(ctx, userID)
		if err != nil {
			return err
		}
		rels = models.PaymentRelationships{Patrons: patrons, CreatorsPaid: creatorsPaid}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if rels.Patrons == nil {
		rels.Patrons = []*models.User{}
	}
	if rels.CreatorsPaid == nil {
		rels.CreatorsPaid = []*models.User{}
	}
	return &rels, nil
}

// Counterparties returns the deduplicated messaging-eligible set for a user.
func (s *RelationshipService) Counterparties(ctx context.Context, userID uint) ([]*models.User, error) {
	rels, err := s.Relationships(ctx, userID)
	if err != nil {
		return nil, err
	}
	return Resolve(rels.Patrons, rels.CreatorsPaid), nil
}

// CanMessage reports whether counterpartyID is in the user's resolved set.
func (s *RelationshipService) CanMessage(ctx context.Context, userID, counterpartyID uint) (bool, error) {
	counterparties, err := s.Counterparties(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, u := range counterparties {
		if u.ID == counterpartyID {
			return true, nil
		}
	}
	return false, nil
}
