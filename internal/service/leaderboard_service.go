// Package service implements the business logic layer of the application.
package service

import (
	"context"
	"sort"
	"strconv"

	"teasr/internal/middleware"
	"teasr/internal/models"
	"teasr/internal/repository"
)

const (
	// CreatorLeaderboardSize caps the ranked creator view.
	CreatorLeaderboardSize = 50
	// PostLeaderboardSize caps the ranked post views.
	PostLeaderboardSize = 20
)

// PostField names a numeric post field the post leaderboard can rank by.
type PostField string

const (
	PostFieldViews   PostField = "views"
	PostFieldUpvotes PostField = "upvotes"
)

// LeaderboardService folds the post dataset into ranked creator and post
// views. All derivation is pure and recomputed from scratch on every call;
// nothing here is persisted.
type LeaderboardService struct {
	postRepo repository.PostRepository
}

// NewLeaderboardService returns a new LeaderboardService.
func NewLeaderboardService(postRepo repository.PostRepository) *LeaderboardService {
	return &LeaderboardService{postRepo: postRepo}
}

// AggregateCreators groups posts by creator and accumulates totals, ranked
// descending by total views. Ties keep the order in which each creator first
// appears in the input. The result is truncated to CreatorLeaderboardSize.
func AggregateCreators(posts []models.Post) []models.CreatorAggregate {
	byCreator := make(map[uint]*models.CreatorAggregate, len(posts))
	order := make([]uint, 0, len(posts))

	for _, post := range posts {
		agg, ok := byCreator[post.UserID]
		if !ok {
			agg = &models.CreatorAggregate{User: post.User}
			byCreator[post.UserID] = agg
			order = append(order, post.UserID)
		}
		agg.TotalViews += post.ViewCount
		agg.TotalUpvotes += post.UpvoteCount
		agg.TotalPosts++
		agg.TotalRevenue += parsePrice(post.Price)
	}

	ranked := make([]models.CreatorAggregate, 0, len(order))
	for _, id := range order {
		ranked = append(ranked, *byCreator[id])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalViews > ranked[j].TotalViews
	})

	if len(ranked) > CreatorLeaderboardSize {
		ranked = ranked[:CreatorLeaderboardSize]
	}
	return ranked
}

// TopByField returns a copy of posts ranked descending by the named field,
// ties keeping original order, truncated to n.
func TopByField(posts []models.Post, field PostField, n int) []models.Post {
	ranked := make([]models.Post, len(posts))
	copy(ranked, posts)

	value := func(p models.Post) int {
		if field == PostFieldUpvotes {
			return p.UpvoteCount
		}
		return p.ViewCount
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return value(ranked[i]) > value(ranked[j])
	})

	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// parsePrice reads a decimal-as-text price. Parse failures count as zero,
// never as an error; a malformed price must not poison an aggregation pass.
func parsePrice(price string) float64 {
	v, err := strconv.ParseFloat(price, 64)
	if err != nil {
		middleware.Logger.Warn("Unparseable post price treated as zero", "price", price)
		return 0
	}
	return v
}

// TopCreators loads the current post dataset and returns the ranked creator
// leaderboard.
func (s *LeaderboardService) TopCreators(ctx context.Context) ([]models.CreatorAggregate, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	middleware.LeaderboardRebuilds.Inc()
	return AggregateCreators(posts), nil
}

// TopPosts loads the current post dataset and returns the top posts ranked by
// the given field. The limit is clamped to PostLeaderboardSize; a non-positive
// limit means the full cap.
func (s *LeaderboardService) TopPosts(ctx context.Context, field PostField, limit int) ([]models.Post, error) {
	if field != PostFieldViews && field != PostFieldUpvotes {
		return nil, models.NewValidationError("Unknown ranking field; use 'views' or 'upvotes'")
	}
	if limit <= 0 || limit > PostLeaderboardSize {
		limit = PostLeaderboardSize
	}
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return TopByField(posts, field, limit), nil
}
