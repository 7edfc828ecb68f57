package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRepositories(t *testing.T) {
	db := &Connection{}

	assert.Equal(t, db, NewUserRepository(db).db)
	assert.Equal(t, db, NewCollectionRepository(db).db)
	assert.Equal(t, db, NewBookRepository(db).db)
}
