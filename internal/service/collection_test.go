package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/storytrails-server/internal/mocks"
	"github.com/dtroode/storytrails-server/internal/model"
	"github.com/dtroode/storytrails-server/internal/testutil"
	"github.com/dtroode/storytrails-server/internal/validation"
)

type collectionDeps struct {
	collections *mocks.CollectionStore
	books       *mocks.BookStore
	users       *mocks.UserStore
	storage     *mocks.Storage
}

func newCollectionService(t *testing.T, withStorage bool) (*Collection, collectionDeps) {
	d := collectionDeps{
		collections: mocks.NewCollectionStore(t),
		books:       mocks.NewBookStore(t),
		users:       mocks.NewUserStore(t),
	}
	var storage model.Storage
	if withStorage {
		d.storage = mocks.NewStorage(t)
		storage = d.storage
	}
	svc := NewCollection(d.collections, d.books, d.users, storage, validation.New(), testutil.MakeNoopLogger())
	return svc, d
}

func TestCollection_CreateCollection(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("stamps owner", func(t *testing.T) {
		svc, d := newCollectionService(t, false)
		d.users.On("GetByID", mock.Anything, userID).Return(model.User{ID: userID}, nil).Once()
		d.collections.On("Create", mock.Anything, mock.MatchedBy(func(c model.Collection) bool {
			return c.UserID == userID && c.Name == "Sci-Fi" && c.Objective == "reread" && c.ID != uuid.Nil
		})).Return(model.Collection{ID: uuid.New(), UserID: userID, Name: "Sci-Fi", Objective: "reread"}, nil).Once()

		got, err := svc.CreateCollection(ctx, model.CreateCollectionParams{UserID: userID, Name: "Sci-Fi", Objective: "reread"})
		require.NoError(t, err)
		assert.Equal(t, userID, got.UserID)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, d := newCollectionService(t, false)
		d.users.On("GetByID", mock.Anything, userID).Return(model.User{}, model.ErrNotFound).Once()

		_, err := svc.CreateCollection(ctx, model.CreateCollectionParams{UserID: userID, Name: "Sci-Fi"})
		require.ErrorIs(t, err, model.ErrUnauthenticated)
	})

	t.Run("missing name", func(t *testing.T) {
		svc, d := newCollectionService(t, false)
		d.users.On("GetByID", mock.Anything, userID).Return(model.User{ID: userID}, nil).Once()

		_, err := svc.CreateCollection(ctx, model.CreateCollectionParams{UserID: userID})
		require.ErrorIs(t, err, model.ErrInvalid)
	})
}

func TestCollection_GetCollection(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	c := model.Collection{ID: uuid.New(), UserID: owner, Name: "Sci-Fi"}

	tests := []struct {
		name    string
		actor   uuid.UUID
		ret     model.Collection
		retErr  error
		wantErr error
	}{
		{name: "owner", actor: owner, ret: c},
		{name: "foreign", actor: uuid.New(), ret: c, wantErr: model.ErrNotOwner},
		{name: "missing", actor: owner, retErr: model.ErrNotFound, wantErr: model.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newCollectionService(t, false)
			d.collections.On("GetByID", mock.Anything, c.ID).Return(tt.ret, tt.retErr).Once()

			got, err := svc.GetCollection(ctx, tt.actor, c.ID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got.Name)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c, got)
		})
	}
}

func TestCollection_GetCollections(t *testing.T) {
	owner := uuid.New()
	svc, d := newCollectionService(t, false)
	d.collections.On("ListByUser", mock.Anything, owner).Return([]model.Collection{
		{ID: uuid.New(), UserID: owner},
		{ID: uuid.New(), UserID: uuid.New()},
	}, nil).Once()

	got, err := svc.GetCollections(context.Background(), owner)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestCollection_UpdateCollection(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	c := model.Collection{ID: uuid.New(), UserID: owner, Name: "Sci-Fi", Objective: "reread"}
	newName := "Classics"
	empty := ""

	t.Run("partial update", func(t *testing.T) {
		svc, d := newCollectionService(t, false)
		d.collections.On("GetByID", mock.Anything, c.ID).Return(c, nil).Once()
		d.collections.On("Update", mock.Anything, mock.MatchedBy(func(u model.Collection) bool {
			return u.Name == "Classics" && u.Objective == "reread" && u.UserID == owner
		})).Return(model.Collection{ID: c.ID, UserID: owner, Name: "Classics", Objective: "reread"}, nil).Once()

		got, err := svc.UpdateCollection(ctx, model.UpdateCollectionParams{UserID: owner, ID: c.ID, Name: &newName})
		require.NoError(t, err)
		assert.Equal(t, "Classics", got.Name)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		svc, d := newCollectionService(t, false)
		d.collections.On("GetByID", mock.Anything, c.ID).Return(c, nil).Once()

		_, err := svc.UpdateCollection(ctx, model.UpdateCollectionParams{UserID: owner, ID: c.ID, Name: &empty})
		require.ErrorIs(t, err, model.ErrInvalid)
	})

	t.Run("foreign", func(t *testing.T) {
		svc, d := newCollectionService(t, false)
		d.collections.On("GetByID", mock.Anything, c.ID).Return(c, nil).Once()

		_, err := svc.UpdateCollection(ctx, model.UpdateCollectionParams{UserID: uuid.New(), ID: c.ID, Name: &newName})
		require.ErrorIs(t, err, model.ErrNotOwner)
	})
}

func TestCollection_DeleteCollection(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	c := model.Collection{ID: uuid.New(), UserID: owner}

	t.Run("removes covers", func(t *testing.T) {
		svc, d := newCollectionService(t, true)
		withCover := model.Book{ID: uuid.New(), UserID: owner, CoverKey: "covers/a"}
		d.collections.On("GetByID", mock.Anything, c.ID).Return(c, nil).Once()
		d.books.On("ListByUserAndCollection", mock.Anything, owner, c.ID).Return([]model.Book{withCover, {ID: uuid.New(), UserID: owner}}, nil).Once()
		d.collections.On("Delete", mock.Anything, c.ID).Return(nil).Once()
		d.storage.On("Delete", mock.Anything, "covers/a").Return(assert.AnError).Once()

		require.NoError(t, svc.DeleteCollection(ctx, owner, c.ID))
	})

	t.Run("without storage", func(t *testing.T) {
		svc, d := newCollectionService(t, false)
		d.collections.On("GetByID", mock.Anything, c.ID).Return(c, nil).Once()
		d.collections.On("Delete", mock.Anything, c.ID).Return(nil).Once()

		require.NoError(t, svc.DeleteCollection(ctx, owner, c.ID))
	})

	t.Run("foreign", func(t *testing.T) {
		svc, d := newCollectionService(t, true)
		d.collections.On("GetByID", mock.Anything, c.ID).Return(c, nil).Once()

		require.ErrorIs(t, svc.DeleteCollection(ctx, uuid.New(), c.ID), model.ErrNotOwner)
	})

	t.Run("already deleted", func(t *testing.T) {
		svc, d := newCollectionService(t, false)
		d.collections.On("GetByID", mock.Anything, c.ID).Return(model.Collection{}, model.ErrNotFound).Once()

		require.ErrorIs(t, svc.DeleteCollection(ctx, owner, c.ID), model.ErrNotFound)
	})
}
