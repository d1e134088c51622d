package service

import (
	"context"
	"time"

	"teasr/internal/models"
	"teasr/internal/repository"
)

// TickerItemDuration is the display budget per distinct viral post; the full
// cycle duration scales linearly with the viral set size.
const TickerItemDuration = 8 * time.Second

// tickerRepetitions gives the renderer enough runway for a seamless
// wrap-around loop.
const tickerRepetitions = 3

// ViralService selects the viral subset of the post feed and shapes it for
// the continuous ticker display.
type ViralService struct {
	postRepo repository.PostRepository
}

// NewViralService returns a new ViralService.
func NewViralService(postRepo repository.PostRepository) *ViralService {
	return &ViralService{postRepo: postRepo}
}

// SelectViral returns the posts flagged viral, preserving input order.
func SelectViral(posts []models.Post) []models.Post {
	selected := make([]models.Post, 0)
	for _, post := range posts {
		if post.IsViral {
			selected = append(selected, post)
		}
	}
	return selected
}

// TickerSequence returns the viral set repeated three times, in order. An
// empty viral set yields an empty sequence; the caller suppresses the ticker
// entirely rather than rendering an empty loop.
func TickerSequence(posts []models.Post) []models.Post {
	selected := SelectViral(posts)
	if len(selected) == 0 {
		return []models.Post{}
	}
	sequence := make([]models.Post, 0, len(selected)*tickerRepetitions)
	for i := 0; i < tickerRepetitions; i++ {
		sequence = append(sequence, selected...)
	}
	return sequence
}

// ViralPosts loads the current post dataset and returns its viral subset.
func (s *ViralService) ViralPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return SelectViral(posts), nil
}

// TickerPosts loads the current post dataset and returns the wrap-around
// ticker sequence, along with the cycle duration for the renderer.
func (s *ViralService) TickerPosts(ctx context.Context) ([]models.Post, time.Duration, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	sequence := TickerSequence(posts)
	cycle := time.Duration(len(sequence)/tickerRepetitions) * TickerItemDuration
	return sequence, cycle, nil
}
