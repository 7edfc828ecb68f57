package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/storytrails-server/internal/logger"
	"github.com/dtroode/storytrails-server/internal/model"
	"github.com/dtroode/storytrails-server/internal/ownership"
)

const coverKeyPrefix = "covers/"

type Book struct {
	bookStore       model.BookStore
	collectionStore model.CollectionStore
	userStore       model.UserStore
	storage         model.Storage
	validator       Validator
	logger          *logger.Logger
}

// NewBook creates a book service. storage may be nil when covers are disabled.
func NewBook(
	bookStore model.BookStore,
	collectionStore model.CollectionStore,
	userStore model.UserStore,
	storage model.Storage,
	validator Validator,
	logger *logger.Logger,
) *Book {
	return &Book{
		bookStore:       bookStore,
		collectionStore: collectionStore,
		userStore:       userStore,
		storage:         storage,
		validator:       validator,
		logger:          logger,
	}
}

func (s *Book) CreateBook(ctx context.Context, params model.CreateBookParams) (model.Book, error) {
	if err := ensureUser(ctx, s.userStore, params.UserID); err != nil {
		return model.Book{}, err
	}

	now := time.Now().UTC()
	book := model.Book{
		ID:           uuid.New(),
		UserID:       params.UserID,
		CollectionID: params.CollectionID,
		Name:         params.Name,
		PagesAmount:  params.PagesAmount,
		Concluded:    params.Concluded,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.validator.Validate(book); err != nil {
		return model.Book{}, err
	}
	if err := s.checkCollection(ctx, params.UserID, params.CollectionID); err != nil {
		return model.Book{}, err
	}

	book, err := s.bookStore.Create(ctx, book)
	if err != nil {
		return model.Book{}, fmt.Errorf("failed to save book: %w", err)
	}

	s.logger.Debug("Book service: book created",
		"user_id", params.UserID,
		"book_id", book.ID)

	return book, nil
}

func (s *Book) GetBook(ctx context.Context, userID, bookID uuid.UUID) (model.Book, error) {
	book, err := s.bookStore.GetByID(ctx, bookID)
	if err != nil {
		return model.Book{}, fmt.Errorf("failed to get book by id: %w", err)
	}

	if !ownership.Authorize(userID, book.UserID) {
		return model.Book{}, model.ErrNotOwner
	}

	return book, nil
}

func (s *Book) GetBooks(ctx context.Context, userID uuid.UUID) ([]model.Book, error) {
	books, err := s.bookStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get books by user id: %w", err)
	}

	return ownership.Filter(userID, books), nil
}

func (s *Book) GetCollectionBooks(ctx context.Context, userID, collectionID uuid.UUID) ([]model.Book, error) {
	books, err := s.bookStore.ListByUserAndCollection(ctx, userID, collectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get books by collection id: %w", err)
	}

	return ownership.Filter(userID, books), nil
}

func (s *Book) UpdateBook(ctx context.Context, params model.UpdateBookParams) (model.Book, error) {
	book, err := s.GetBook(ctx, params.UserID, params.ID)
	if err != nil {
		return model.Book{}, err
	}

	if params.CollectionID != nil {
		book.CollectionID = *params.CollectionID
	}
	if params.Name != nil {
		book.Name = *params.Name
	}
	if params.PagesAmount != nil {
		book.PagesAmount = *params.PagesAmount
	}
	if params.Concluded != nil {
		book.Concluded = *params.Concluded
	}
	book.UpdatedAt = time.Now().UTC()

	if err := s.validator.Validate(book); err != nil {
		return model.Book{}, err
	}
	if params.CollectionID != nil {
		if err := s.checkCollection(ctx, params.UserID, book.CollectionID); err != nil {
			return model.Book{}, err
		}
	}

	book, err = s.bookStore.Update(ctx, book)
	if err != nil {
		return model.Book{}, fmt.Errorf("failed to update book: %w", err)
	}

	return book, nil
}

func (s *Book) DeleteBook(ctx context.Context, userID, bookID uuid.UUID) error {
	book, err := s.GetBook(ctx, userID, bookID)
	if err != nil {
		return err
	}

	if err := s.bookStore.Delete(ctx, bookID); err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	removeCover(ctx, s.storage, s.logger, book)

	s.logger.Info("Book service: book deleted",
		"user_id", userID,
		"book_id", bookID)

	return nil
}

// UploadCover stores an image as the cover of a book, replacing any previous one.
func (s *Book) UploadCover(ctx context.Context, params model.UploadCoverParams) error {
	if s.storage == nil {
		return model.ErrStorageDisabled
	}

	book, err := s.GetBook(ctx, params.UserID, params.BookID)
	if err != nil {
		return err
	}

	if !strings.HasPrefix(params.ContentType, "image/") {
		return model.NewValidationError("Content-Type", "must be an image type")
	}
	if params.Size == 0 {
		return model.NewValidationError("body", "is required")
	}

	key := coverKeyPrefix + book.ID.String()
	if err := s.storage.Upload(ctx, key, params.Body, params.Size, params.ContentType); err != nil {
		return fmt.Errorf("failed to upload cover: %w", err)
	}

	if err := s.bookStore.SetCover(ctx, book.ID, key, params.ContentType); err != nil {
		return fmt.Errorf("failed to save cover reference: %w", err)
	}

	s.logger.Debug("Book service: cover uploaded",
		"book_id", book.ID,
		"content_type", params.ContentType)

	return nil
}

// GetCover opens the cover image of a book. The caller closes Cover.Body.
func (s *Book) GetCover(ctx context.Context, userID, bookID uuid.UUID) (model.Cover, error) {
	if s.storage == nil {
		return model.Cover{}, model.ErrStorageDisabled
	}

	book, err := s.GetBook(ctx, userID, bookID)
	if err != nil {
		return model.Cover{}, err
	}
	if !book.HasCover() {
		return model.Cover{}, fmt.Errorf("book %s has no cover: %w", bookID, model.ErrNotFound)
	}

	body, err := s.storage.Download(ctx, book.CoverKey)
	if err != nil {
		return model.Cover{}, fmt.Errorf("failed to download cover: %w", err)
	}

	return model.Cover{ContentType: book.CoverContentType, Size: -1, Body: body}, nil
}

// checkCollection rejects collections that do not exist or belong to someone else.
func (s *Book) checkCollection(ctx context.Context, userID, collectionID uuid.UUID) error {
	collection, err := s.collectionStore.GetByID(ctx, collectionID)
	if errors.Is(err, model.ErrNotFound) {
		return model.NewValidationError("collection", "does not exist")
	}
	if err != nil {
		return fmt.Errorf("failed to get collection by id: %w", err)
	}

	if !ownership.Authorize(userID, collection.UserID) {
		return model.NewValidationError("collection", "does not exist")
	}

	return nil
}
