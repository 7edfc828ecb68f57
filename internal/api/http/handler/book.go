package handler

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/dtroode/storytrails-server/internal/logger"
	"github.com/dtroode/storytrails-server/internal/model"
)

// BookService defines business operations for books.
type BookService interface {
	CreateBook(ctx context.Context, params model.CreateBookParams) (model.Book, error)
	GetBook(ctx context.Context, userID, bookID uuid.UUID) (model.Book, error)
	GetBooks(ctx context.Context, userID uuid.UUID) ([]model.Book, error)
	GetCollectionBooks(ctx context.Context, userID, collectionID uuid.UUID) ([]model.Book, error)
	UpdateBook(ctx context.Context, params model.UpdateBookParams) (model.Book, error)
	DeleteBook(ctx context.Context, userID, bookID uuid.UUID) error
	UploadCover(ctx context.Context, params model.UploadCoverParams) error
	GetCover(ctx context.Context, userID, bookID uuid.UUID) (model.Cover, error)
}

type bookRequest struct {
	Collection  *string `json:"collection"`
	BookName    *string `json:"bookName"`
	PagesAmount *int    `json:"pagesAmount"`
	Concluded   *bool   `json:"concluded"`
}

type bookResponse struct {
	ID          uuid.UUID `json:"id"`
	User        uuid.UUID `json:"user"`
	Collection  uuid.UUID `json:"collection"`
	BookName    string    `json:"bookName"`
	PagesAmount int       `json:"pagesAmount"`
	Concluded   bool      `json:"concluded"`
	HasCover    bool      `json:"hasCover"`
}

func newBookResponse(b model.Book) bookResponse {
	return bookResponse{
		ID:          b.ID,
		User:        b.UserID,
		Collection:  b.CollectionID,
		BookName:    b.Name,
		PagesAmount: b.PagesAmount,
		Concluded:   b.Concluded,
		HasCover:    b.HasCover(),
	}
}

// Book handles HTTP endpoints for books.
type Book struct {
	bookService    BookService
	contextManager model.ContextManager
	errors         *ErrorMapper
	maxCoverBytes  int64
	logger         *logger.Logger
}

// NewBook creates a new Book handler.
func NewBook(bookService BookService, contextManager model.ContextManager, errors *ErrorMapper, maxCoverBytes int64, logger *logger.Logger) *Book {
	return &Book{
		bookService:    bookService,
		contextManager: contextManager,
		errors:         errors,
		maxCoverBytes:  maxCoverBytes,
		logger:         logger,
	}
}

// Create handles POST /books.
func (h *Book) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := authenticatedUser(ctx, h.contextManager)
	if err != nil {
		h.errors.Write(w, r, CreateNewBook, err)
		return
	}

	var req bookRequest
	if err := decodeJSON(r, &req); err != nil {
		h.errors.Write(w, r, CreateNewBook, err)
		return
	}

	collectionID, err := parseOptionalUUID("collection", req.Collection)
	if err != nil {
		h.errors.Write(w, r, CreateNewBook, err)
		return
	}

	params := model.CreateBookParams{UserID: userID}
	if collectionID != nil {
		params.CollectionID = *collectionID
	}
	if req.BookName != nil {
		params.Name = *req.BookName
	}
	if req.PagesAmount != nil {
		params.PagesAmount = *req.PagesAmount
	}
	if req.Concluded != nil {
		params.Concluded = *req.Concluded
	}

	book, err := h.bookService.CreateBook(ctx, params)
	if err != nil {
		h.errors.Write(w, r, CreateNewBook, err)
		return
	}

	writeJSON(w, http.StatusCreated, newBookResponse(book))
}

// List handles GET /books.
func (h *Book) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := authenticatedUser(ctx, h.contextManager)
	if err != nil {
		h.errors.Write(w, r, FindAllBooks, err)
		return
	}

	books, err := h.bookService.GetBooks(ctx, userID)
	if err != nil {
		h.errors.Write(w, r, FindAllBooks, err)
		return
	}

	h.writeBooks(w, books)
}

// ListByCollection handles GET /books/collection/{id}.
func (h *Book) ListByCollection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := authenticatedUser(ctx, h.contextManager)
	if err != nil {
		h.errors.Write(w, r, FindAllBooksIntoCollection, err)
		return
	}

	collectionID, err := pathID(r)
	if err != nil {
		h.errors.Write(w, r, FindAllBooksIntoCollection, err)
		return
	}

	books, err := h.bookService.GetCollectionBooks(ctx, userID, collectionID)
	if err != nil {
		h.errors.Write(w, r, FindAllBooksIntoCollection, err)
		return
	}

	h.writeBooks(w, books)
}

func (h *Book) writeBooks(w http.ResponseWriter, books []model.Book) {
	if len(books) == 0 {
		noContent(w)
		return
	}

	resp := make([]bookResponse, 0, len(books))
	for _, b := range books {
		resp = append(resp, newBookResponse(b))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /books/{id}.
func (h *Book) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := authenticatedUser(ctx, h.contextManager)
	if err != nil {
		h.errors.Write(w, r, FindBookByID, err)
		return
	}

	bookID, err := pathID(r)
	if err != nil {
		h.errors.Write(w, r, FindBookByID, err)
		return
	}

	book, err := h.bookService.GetBook(ctx, userID, bookID)
	if err != nil {
		h.errors.Write(w, r, FindBookByID, err)
		return
	}

	writeJSON(w, http.StatusOK, newBookResponse(book))
}

// Update handles PATCH /books/{id}.
func (h *Book) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := authenticatedUser(ctx, h.contextManager)
	if err != nil {
		h.errors.Write(w, r, UpdateBook, err)
		return
	}

	bookID, err := pathID(r)
	if err != nil {
		h.errors.Write(w, r, UpdateBook, err)
		return
	}

	var req bookRequest
	var collectionID *uuid.UUID
	bodyErr := decodeJSON(r, &req)
	if bodyErr == nil {
		collectionID, bodyErr = parseOptionalUUID("collection", req.Collection)
	}
	if bodyErr != nil {
		// Missing records and foreign owners are reported before a bad body.
		if _, err := h.bookService.GetBook(ctx, userID, bookID); err != nil {
			h.errors.Write(w, r, UpdateBook, err)
			return
		}
		h.errors.Write(w, r, UpdateBook, bodyErr)
		return
	}

	book, err := h.bookService.UpdateBook(ctx, model.UpdateBookParams{
		UserID:       userID,
		ID:           bookID,
		CollectionID: collectionID,
		Name:         req.BookName,
		PagesAmount:  req.PagesAmount,
		Concluded:    req.Concluded,
	})
	if err != nil {
		h.errors.Write(w, r, UpdateBook, err)
		return
	}

	writeJSON(w, http.StatusOK, newBookResponse(book))
}

// Delete handles DELETE /books/{id}.
func (h *Book) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := authenticatedUser(ctx, h.contextManager)
	if err != nil {
		h.errors.Write(w, r, DeleteBook, err)
		return
	}

	bookID, err := pathID(r)
	if err != nil {
		h.errors.Write(w, r, DeleteBook, err)
		return
	}

	if err := h.bookService.DeleteBook(ctx, userID, bookID); err != nil {
		h.errors.Write(w, r, DeleteBook, err)
		return
	}

	noContent(w)
}

// UploadCover handles PUT /books/{id}/cover with a raw image body.
func (h *Book) UploadCover(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := authenticatedUser(ctx, h.contextManager)
	if err != nil {
		h.errors.Write(w, r, UploadBookCover, err)
		return
	}

	bookID, err := pathID(r)
	if err != nil {
		h.errors.Write(w, r, UploadBookCover, err)
		return
	}

	if r.ContentLength > h.maxCoverBytes {
		h.errors.Write(w, r, UploadBookCover, &http.MaxBytesError{Limit: h.maxCoverBytes})
		return
	}

	body := http.MaxBytesReader(w, r.Body, h.maxCoverBytes)
	defer body.Close()

	err = h.bookService.UploadCover(ctx, model.UploadCoverParams{
		UserID:      userID,
		BookID:      bookID,
		ContentType: r.Header.Get("Content-Type"),
		Size:        r.ContentLength,
		Body:        body,
	})
	if err != nil {
		h.errors.Write(w, r, UploadBookCover, err)
		return
	}

	noContent(w)
}

// GetCover handles GET /books/{id}/cover.
func (h *Book) GetCover(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := authenticatedUser(ctx, h.contextManager)
	if err != nil {
		h.errors.Write(w, r, GetBookCover, err)
		return
	}

	bookID, err := pathID(r)
	if err != nil {
		h.errors.Write(w, r, GetBookCover, err)
		return
	}

	cover, err := h.bookService.GetCover(ctx, userID, bookID)
	if err != nil {
		h.errors.Write(w, r, GetBookCover, err)
		return
	}
	defer cover.Body.Close()

	w.Header().Set("Content-Type", cover.ContentType)
	if cover.Size >= 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(cover.Size, 10))
	}
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, cover.Body); err != nil {
		h.logger.Error("Book handler: failed to stream cover",
			"book_id", bookID,
			"error", err.Error())
	}
}
