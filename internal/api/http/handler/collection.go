package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/dtroode/storytrails-server/internal/logger"
	"github.com/dtroode/storytrails-server/internal/model"
)

// CollectionService defines business operations for collections.
type CollectionService interface {
	CreateCollection(ctx context.Context, params model.CreateCollectionParams) (model.Collection, error)
	GetCollection(ctx context.Context, userID, collectionID uuid.UUID) (model.Collection, error)
	GetCollections(ctx context.Context, userID uuid.UUID) ([]model.Collection, error)
	UpdateCollection(ctx context.Context, params model.UpdateCollectionParams) (model.Collection, error)
	DeleteCollection(ctx context.Context, userID, collectionID uuid.UUID) error
}

type collectionRequest struct {
	CollectionName      *string `json:"collectionName"`
	CollectionObjective *string `json:"collectionObjective"`
}

type collectionResponse struct {
	ID                  uuid.UUID `json:"id"`
	User                uuid.UUID `json:"user"`
	CollectionName      string    `json:"collectionName"`
	CollectionObjective string    `json:"collectionObjective"`
}

func newCollectionResponse(c model.Collection) collectionResponse {
	return collectionResponse{
		ID:                  c.ID,
		User:                c.UserID,
		CollectionName:      c.Name,
		CollectionObjective: c.Objective,
	}
}

// Collection handles HTTP endpoints for collections.
type Collection struct {
	collectionService CollectionService
	contextManager    model.ContextManager
	errors            *ErrorMapper
	logger            *logger.Logger
}

// NewCollection creates a new Collection handler.
func NewCollection(collectionService CollectionService, contextManager model.ContextManager, errors *ErrorMapper, logger *logger.Logger) *Collection {
	return &Collection{
		collectionService: collectionService,
		contextManager:    contextManager,
		errors:            errors,
		logger:            logger,
	}
}

// Create handles POST /collections.
func (h *Collection) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := authenticatedUser(ctx, h.contextManager)
	if err != nil {
		h.errors.Write(w, r, CreateNewCollection, err)
		return
	}

	var req collectionRequest
	if err := decodeJSON(r, &req); err != nil {
		h.errors.Write(w, r, CreateNewCollection, err)
		return
	}

	params := model.CreateCollectionParams{UserID: userID}
	if req.CollectionName != nil {
		params.Name = *req.CollectionName
	}
	if req.CollectionObjective != nil {
		params.Objective = *req.CollectionObjective
	}

	collection, err := h.collectionService.CreateCollection(ctx, params)
	if err != nil {
		h.errors.Write(w, r, CreateNewCollection, err)
		return
	}

	writeJSON(w, http.StatusCreated, newCollectionResponse(collection))
}

// List handles GET /collections.
func (h *Collection) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := authenticatedUser(ctx, h.contextManager)
	if err != nil {
		h.errors.Write(w, r, FindAllCollections, err)
		return
	}

	collections, err := h.collectionService.GetCollections(ctx, userID)
	if err != nil {
		h.errors.Write(w, r, FindAllCollections, err)
		return
	}

	if len(collections) == 0 {
		noContent(w)
		return
	}

	resp := make([]collectionResponse, 0, len(collections))
	for _, c := range collections {
		resp = append(resp, newCollectionResponse(c))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /collections/{id}.
func (h *Collection) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := authenticatedUser(ctx, h.contextManager)
	if err != nil {
		h.errors.Write(w, r, FindCollectionByID, err)
		return
	}

	collectionID, err := pathID(r)
	if err != nil {
		h.errors.Write(w, r, FindCollectionByID, err)
		return
	}

	collection, err := h.collectionService.GetCollection(ctx, userID, collectionID)
	if err != nil {
		h.errors.Write(w, r, FindCollectionByID, err)
		return
	}

	writeJSON(w, http.StatusOK, newCollectionResponse(collection))
}

// Update handles PATCH /collections/{id}.
func (h *Collection) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := authenticatedUser(ctx, h.contextManager)
	if err != nil {
		h.errors.Write(w, r, UpdateCollection, err)
		return
	}

	collectionID, err := pathID(r)
	if err != nil {
		h.errors.Write(w, r, UpdateCollection, err)
		return
	}

	var req collectionRequest
	if bodyErr := decodeJSON(r, &req); bodyErr != nil {
		// Missing records and foreign owners are reported before a bad body.
		if _, err := h.collectionService.GetCollection(ctx, userID, collectionID); err != nil {
			h.errors.Write(w, r, UpdateCollection, err)
			return
		}
		h.errors.Write(w, r, UpdateCollection, bodyErr)
		return
	}

	collection, err := h.collectionService.UpdateCollection(ctx, model.UpdateCollectionParams{
		UserID:    userID,
		ID:        collectionID,
		Name:      req.CollectionName,
		Objective: req.CollectionObjective,
	})
	if err != nil {
		h.errors.Write(w, r, UpdateCollection, err)
		return
	}

	writeJSON(w, http.StatusOK, newCollectionResponse(collection))
}

// Delete handles DELETE /collections/{id}. Books in the collection go with it.
func (h *Collection) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := authenticatedUser(ctx, h.contextManager)
	if err != nil {
		h.errors.Write(w, r, DeleteCollection, err)
		return
	}

	collectionID, err := pathID(r)
	if err != nil {
		h.errors.Write(w, r, DeleteCollection, err)
		return
	}

	if err := h.collectionService.DeleteCollection(ctx, userID, collectionID); err != nil {
		h.errors.Write(w, r, DeleteCollection, err)
		return
	}

	writeDetails(w, http.StatusAccepted, "collection deleted")
}
