package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"dropfit/internal/domain/entity"
	"dropfit/internal/domain/repository"
	"dropfit/pkg/errors"
)

const communityCollection = "community_posts"

type firestoreCommunityRepository struct {
	client *firestore.Client
}

func NewFirestoreCommunityRepository(client *firestore.Client) repository.CommunityRepository {
	return &firestoreCommunityRepository{
		client: client,
	}
}

func (r *firestoreCommunityRepository) Create(ctx context.Context, post *entity.CommunityPost) error {
	if post.ID == "" {
		doc := r.client.Collection(communityCollection).NewDoc()
		post.ID = doc.ID
	}

	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}

	_, err := r.client.Collection(communityCollection).Doc(post.ID).Set(ctx, post)
	if err != nil {
		return errors.Internal("Failed to create community post", err)
	}

	return nil
}

func (r *firestoreCommunityRepository) List(ctx context.Context, limit int) ([]*entity.CommunityPost, error) {
	query := r.client.Collection(communityCollection).Query.OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	var posts []*entity.CommunityPost

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate community posts", err)
		}
		var post entity.CommunityPost
		if err := doc.DataTo(&post); err != nil {
			return nil, errors.Internal("Failed to parse community post data", err)
		}
		posts = append(posts, &post)
	}

	return posts, nil
}
