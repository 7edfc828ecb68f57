package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/storytrails-server/internal/model"
)

// BookService mocks the book handler dependency.
type BookService struct {
	mock.Mock
}

func NewBookService(t testingT) *BookService {
	m := &BookService{}
	register(&m.Mock, t)
	return m
}

func (m *BookService) CreateBook(ctx context.Context, params model.CreateBookParams) (model.Book, error) {
	ret := m.Called(ctx, params)
	return ret.Get(0).(model.Book), ret.Error(1)
}

func (m *BookService) GetBook(ctx context.Context, userID, bookID uuid.UUID) (model.Book, error) {
	ret := m.Called(ctx, userID, bookID)
	return ret.Get(0).(model.Book), ret.Error(1)
}

func (m *BookService) GetBooks(ctx context.Context, userID uuid.UUID) ([]model.Book, error) {
	ret := m.Called(ctx, userID)
	out, _ := ret.Get(0).([]model.Book)
	return out, ret.Error(1)
}

func (m *BookService) GetCollectionBooks(ctx context.Context, userID, collectionID uuid.UUID) ([]model.Book, error) {
	ret := m.Called(ctx, userID, collectionID)
	out, _ := ret.Get(0).([]model.Book)
	return out, ret.Error(1)
}

func (m *BookService) UpdateBook(ctx context.Context, params model.UpdateBookParams) (model.Book, error) {
	ret := m.Called(ctx, params)
	return ret.Get(0).(model.Book), ret.Error(1)
}

func (m *BookService) DeleteBook(ctx context.Context, userID, bookID uuid.UUID) error {
	return m.Called(ctx, userID, bookID).Error(0)
}

func (m *BookService) UploadCover(ctx context.Context, params model.UploadCoverParams) error {
	return m.Called(ctx, params).Error(0)
}

func (m *BookService) GetCover(ctx context.Context, userID, bookID uuid.UUID) (model.Cover, error) {
	ret := m.Called(ctx, userID, bookID)
	return ret.Get(0).(model.Cover), ret.Error(1)
}

// CollectionService mocks the collection handler dependency.
type CollectionService struct {
	mock.Mock
}

func NewCollectionService(t testingT) *CollectionService {
	m := &CollectionService{}
	register(&m.Mock, t)
	return m
}

func (m *CollectionService) CreateCollection(ctx context.Context, params model.CreateCollectionParams) (model.Collection, error) {
	ret := m.Called(ctx, params)
	return ret.Get(0).(model.Collection), ret.Error(1)
}

func (m *CollectionService) GetCollection(ctx context.Context, userID, collectionID uuid.UUID) (model.Collection, error) {
	ret := m.Called(ctx, userID, collectionID)
	return ret.Get(0).(model.Collection), ret.Error(1)
}

func (m *CollectionService) GetCollections(ctx context.Context, userID uuid.UUID) ([]model.Collection, error) {
	ret := m.Called(ctx, userID)
	out, _ := ret.Get(0).([]model.Collection)
	return out, ret.Error(1)
}

func (m *CollectionService) UpdateCollection(ctx context.Context, params model.UpdateCollectionParams) (model.Collection, error) {
	ret := m.Called(ctx, params)
	return ret.Get(0).(model.Collection), ret.Error(1)
}

func (m *CollectionService) DeleteCollection(ctx context.Context, userID, collectionID uuid.UUID) error {
	return m.Called(ctx, userID, collectionID).Error(0)
}

// UserService mocks the account handler dependency.
type UserService struct {
	mock.Mock
}

func NewUserService(t testingT) *UserService {
	m := &UserService{}
	register(&m.Mock, t)
	return m
}

func (m *UserService) Register(ctx context.Context, params model.RegisterUserParams) (model.User, error) {
	ret := m.Called(ctx, params)
	return ret.Get(0).(model.User), ret.Error(1)
}

func (m *UserService) Login(ctx context.Context, params model.LoginParams) (string, error) {
	ret := m.Called(ctx, params)
	return ret.String(0), ret.Error(1)
}

// HealthChecker mocks the database readiness probe.
type HealthChecker struct {
	mock.Mock
}

func NewHealthChecker(t testingT) *HealthChecker {
	m := &HealthChecker{}
	register(&m.Mock, t)
	return m
}

func (m *HealthChecker) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *HealthChecker) SchemaVersion(ctx context.Context) (int64, error) {
	ret := m.Called(ctx)
	return ret.Get(0).(int64), ret.Error(1)
}
