package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/storytrails-server/internal/model"
)

// UserStore mocks model.UserStore.
type UserStore struct {
	mock.Mock
}

func NewUserStore(t testingT) *UserStore {
	m := &UserStore{}
	register(&m.Mock, t)
	return m
}

func (m *UserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	ret := m.Called(ctx, email)
	return ret.Get(0).(model.User), ret.Error(1)
}

func (m *UserStore) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	ret := m.Called(ctx, id)
	return ret.Get(0).(model.User), ret.Error(1)
}

func (m *UserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	ret := m.Called(ctx, user)
	return ret.Get(0).(model.User), ret.Error(1)
}

// CollectionStore mocks model.CollectionStore.
type CollectionStore struct {
	mock.Mock
}

func NewCollectionStore(t testingT) *CollectionStore {
	m := &CollectionStore{}
	register(&m.Mock, t)
	return m
}

func (m *CollectionStore) Create(ctx context.Context, c model.Collection) (model.Collection, error) {
	ret := m.Called(ctx, c)
	return ret.Get(0).(model.Collection), ret.Error(1)
}

func (m *CollectionStore) GetByID(ctx context.Context, id uuid.UUID) (model.Collection, error) {
	ret := m.Called(ctx, id)
	return ret.Get(0).(model.Collection), ret.Error(1)
}

func (m *CollectionStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Collection, error) {
	ret := m.Called(ctx, userID)
	out, _ := ret.Get(0).([]model.Collection)
	return out, ret.Error(1)
}

func (m *CollectionStore) Update(ctx context.Context, c model.Collection) (model.Collection, error) {
	ret := m.Called(ctx, c)
	return ret.Get(0).(model.Collection), ret.Error(1)
}

func (m *CollectionStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// BookStore mocks model.BookStore.
type BookStore struct {
	mock.Mock
}

func NewBookStore(t testingT) *BookStore {
	m := &BookStore{}
	register(&m.Mock, t)
	return m
}

func (m *BookStore) Create(ctx context.Context, b model.Book) (model.Book, error) {
	ret := m.Called(ctx, b)
	return ret.Get(0).(model.Book), ret.Error(1)
}

func (m *BookStore) GetByID(ctx context.Context, id uuid.UUID) (model.Book, error) {
	ret := m.Called(ctx, id)
	return ret.Get(0).(model.Book), ret.Error(1)
}

func (m *BookStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Book, error) {
	ret := m.Called(ctx, userID)
	out, _ := ret.Get(0).([]model.Book)
	return out, ret.Error(1)
}

func (m *BookStore) ListByUserAndCollection(ctx context.Context, userID, collectionID uuid.UUID) ([]model.Book, error) {
	ret := m.Called(ctx, userID, collectionID)
	out, _ := ret.Get(0).([]model.Book)
	return out, ret.Error(1)
}

func (m *BookStore) Update(ctx context.Context, b model.Book) (model.Book, error) {
	ret := m.Called(ctx, b)
	return ret.Get(0).(model.Book), ret.Error(1)
}

func (m *BookStore) SetCover(ctx context.Context, id uuid.UUID, key, contentType string) error {
	return m.Called(ctx, id, key, contentType).Error(0)
}

func (m *BookStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
