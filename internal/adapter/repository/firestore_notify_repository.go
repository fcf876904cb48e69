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

const notifyCollection = "notify_list"

type firestoreNotifyRepository struct {
	client *firestore.Client
}

func NewFirestoreNotifyRepository(client *firestore.Client) repository.NotifyRepository {
	return &firestoreNotifyRepository{
		client: client,
	}
}

func (r *firestoreNotifyRepository) Add(ctx context.Context, entry *entity.NotifyEntry) error {
	if entry.ID == "" {
		doc := r.client.Collection(notifyCollection).NewDoc()
		entry.ID = doc.ID
	}

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	_, err := r.client.Collection(notifyCollection).Doc(entry.ID).Set(ctx, entry)
	if err != nil {
		return errors.Internal("Failed to add to notify list", err)
	}

	return nil
}

func (r *firestoreNotifyRepository) List(ctx context.Context) ([]*entity.NotifyEntry, error) {
	iter := r.client.Collection(notifyCollection).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	var entries []*entity.NotifyEntry

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate notify list", err)
		}
		var entry entity.NotifyEntry
		if err := doc.DataTo(&entry); err != nil {
			return nil, errors.Internal("Failed to parse notify entry", err)
		}
		entries = append(entries, &entry)
	}

	return entries, nil
}

func (r *firestoreNotifyRepository) ListEmails(ctx context.Context) ([]string, error) {
	entries, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	emails := make([]string, 0, len(entries))
	for _, entry := range entries {
		emails = append(emails, entry.Email)
	}

	return emails, nil
}
