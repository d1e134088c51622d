package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	PostsListKey           = "posts:all"
	RelationshipsKeyPrefix = "relationships:%d"
	ConversationKeyPrefix  = "conversation:%d:%d"
)

const (
	PostsListTTL     = 1 * time.Minute
	RelationshipsTTL = 5 * time.Minute
	ConversationTTL  = 2 * time.Minute
)

func RelationshipsKey(userID uint) string {
	return fmt.Sprintf(RelationshipsKeyPrefix, userID)
}

// ConversationKey is keyed by the unordered user pair, so both participants
// share one cache entry.
func ConversationKey(a, b uint) string {
	if b < a {
		a, b = b, a
	}
	return fmt.Sprintf(ConversationKeyPrefix, a, b)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidatePostsList(ctx context.Context) {
	Invalidate(ctx, PostsListKey)
}

func InvalidateRelationships(ctx context.Context, userID uint) {
	Invalidate(ctx, RelationshipsKey(userID))
}

func InvalidateConversation(ctx context.Context, a, b uint) {
	Invalidate(ctx, ConversationKey(a, b))
}
