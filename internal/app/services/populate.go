package services

import (
	"context"

	"github.com/yigit/academy/internal/app/models"
	"github.com/yigit/academy/internal/app/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// refSet collects referenced ids once each, keeping first-seen order.
type refSet struct {
	ids  []primitive.ObjectID
	seen map[primitive.ObjectID]struct{}
}

func newRefSet() *refSet {
	return &refSet{seen: make(map[primitive.ObjectID]struct{})}
}

func (s *refSet) add(ids ...primitive.ObjectID) {
	for _, id := range ids {
		if _, ok := s.seen[id]; ok {
			continue
		}
		s.seen[id] = struct{}{}
		s.ids = append(s.ids, id)
	}
}

// fetchByID batch-loads ids from repo, keyed by id. Missing ids are absent from the map.
func fetchByID[T models.Document](ctx context.Context, repo repositories.Repository[T], refs *refSet) (map[primitive.ObjectID]*T, error) {
	docs, err := repo.FindByIDs(ctx, refs.ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]*T, len(docs))
	for _, d := range docs {
		byID[(*d).DocumentID()] = d
	}
	return byID, nil
}
