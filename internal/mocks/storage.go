package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// Storage mocks model.Storage.
type Storage struct {
	mock.Mock
}

func NewStorage(t testingT) *Storage {
	m := &Storage{}
	register(&m.Mock, t)
	return m
}

func (m *Storage) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	return m.Called(ctx, key, reader, size, contentType).Error(0)
}

func (m *Storage) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	ret := m.Called(ctx, key)
	rc, _ := ret.Get(0).(io.ReadCloser)
	return rc, ret.Error(1)
}

func (m *Storage) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *Storage) Exists(ctx context.Context, key string) (bool, error) {
	ret := m.Called(ctx, key)
	return ret.Bool(0), ret.Error(1)
}
