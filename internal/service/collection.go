package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/storytrails-server/internal/logger"
	"github.com/dtroode/storytrails-server/internal/model"
	"github.com/dtroode/storytrails-server/internal/ownership"
)

type Collection struct {
	collectionStore model.CollectionStore
	bookStore       model.BookStore
	userStore       model.UserStore
	storage         model.Storage
	validator       Validator
	logger          *logger.Logger
}

// NewCollection creates a collection service. storage may be nil when covers are disabled.
func NewCollection(
	collectionStore model.CollectionStore,
	bookStore model.BookStore,
	userStore model.UserStore,
	storage model.Storage,
	validator Validator,
	logger *logger.Logger,
) *Collection {
	return &Collection{
		collectionStore: collectionStore,
		bookStore:       bookStore,
		userStore:       userStore,
		storage:         storage,
		validator:       validator,
		logger:          logger,
	}
}

func (s *Collection) CreateCollection(ctx context.Context, params model.CreateCollectionParams) (model.Collection, error) {
	if err := ensureUser(ctx, s.userStore, params.UserID); err != nil {
		return model.Collection{}, err
	}

	now := time.Now().UTC()
	collection := model.Collection{
		ID:        uuid.New(),
		UserID:    params.UserID,
		Name:      params.Name,
		Objective: params.Objective,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.validator.Validate(collection); err != nil {
		return model.Collection{}, err
	}

	collection, err := s.collectionStore.Create(ctx, collection)
	if err != nil {
		return model.Collection{}, fmt.Errorf("failed to save collection: %w", err)
	}

	s.logger.Debug("Collection service: collection created",
		"user_id", params.UserID,
		"collection_id", collection.ID)

	return collection, nil
}

func (s *Collection) GetCollection(ctx context.Context, userID, collectionID uuid.UUID) (model.Collection, error) {
	collection, err := s.collectionStore.GetByID(ctx, collectionID)
	if err != nil {
		return model.Collection{}, fmt.Errorf("failed to get collection by id: %w", err)
	}

	if !ownership.Authorize(userID, collection.UserID) {
		return model.Collection{}, model.ErrNotOwner
	}

	return collection, nil
}

func (s *Collection) GetCollections(ctx context.Context, userID uuid.UUID) ([]model.Collection, error) {
	collections, err := s.collectionStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get collections by user id: %w", err)
	}

	return ownership.Filter(userID, collections), nil
}

func (s *Collection) UpdateCollection(ctx context.Context, params model.UpdateCollectionParams) (model.Collection, error) {
	collection, err := s.GetCollection(ctx, params.UserID, params.ID)
	if err != nil {
		return model.Collection{}, err
	}

	if params.Name != nil {
		collection.Name = *params.Name
	}
	if params.Objective != nil {
		collection.Objective = *params.Objective
	}
	collection.UpdatedAt = time.Now().UTC()

	if err := s.validator.Validate(collection); err != nil {
		return model.Collection{}, err
	}

	collection, err = s.collectionStore.Update(ctx, collection)
	if err != nil {
		return model.Collection{}, fmt.Errorf("failed to update collection: %w", err)
	}

	return collection, nil
}

// DeleteCollection removes a collection with all of its books and their covers.
func (s *Collection) DeleteCollection(ctx context.Context, userID, collectionID uuid.UUID) error {
	if _, err := s.GetCollection(ctx, userID, collectionID); err != nil {
		return err
	}

	var books []model.Book
	if s.storage != nil {
		var err error
		books, err = s.bookStore.ListByUserAndCollection(ctx, userID, collectionID)
		if err != nil {
			return fmt.Errorf("failed to list collection books: %w", err)
		}
	}

	if err := s.collectionStore.Delete(ctx, collectionID); err != nil {
		return fmt.Errorf("failed to delete collection: %w", err)
	}

	for _, b := range books {
		removeCover(ctx, s.storage, s.logger, b)
	}

	s.logger.Info("Collection service: collection deleted",
		"user_id", userID,
		"collection_id", collectionID)

	return nil
}

// ensureUser checks that the token subject still exists.
func ensureUser(ctx context.Context, users model.UserStore, userID uuid.UUID) error {
	_, err := users.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("user %s: %w", userID, model.ErrUnauthenticated)
	}
	if err != nil {
		return fmt.Errorf("failed to get user by id: %w", err)
	}
	return nil
}

// removeCover deletes the cover object of b. Failures are logged, not returned.
func removeCover(ctx context.Context, storage model.Storage, logger *logger.Logger, b model.Book) {
	if storage == nil || !b.HasCover() {
		return
	}
	if err := storage.Delete(ctx, b.CoverKey); err != nil {
		logger.Error("failed to delete book cover",
			"book_id", b.ID,
			"key", b.CoverKey,
			"error", err.Error())
	}
}
