package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/moviebot/internal/model"
)

func TestGenreRepository_ListAll(t *testing.T) {
	db := newTestDB(t)
	repo := NewGenreRepository(db)

	genres, err := repo.ListAll()
	require.NoError(t, err)
	assert.Empty(t, genres)

	seedGenre(t, db, &model.Genre{ID: 1, Name: "Western"})
	seedGenre(t, db, &model.Genre{ID: 2, Name: "Action"})
	seedGenre(t, db, &model.Genre{ID: 3, Name: "Drama"})

	genres, err = repo.ListAll()
	require.NoError(t, err)
	require.Len(t, genres, 3)

	// 按名称升序
	assert.Equal(t, "Action", genres[0].Name)
	assert.Equal(t, "Drama", genres[1].Name)
	assert.Equal(t, "Western", genres[2].Name)
}

func TestGenreRepository_NameByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewGenreRepository(db)

	seedGenre(t, db, &model.Genre{ID: 5, Name: "Sci-Fi"})

	name, err := repo.NameByID(5)
	require.NoError(t, err)
	require.NotNil(t, name)
	assert.Equal(t, "Sci-Fi", *name)

	name, err = repo.NameByID(999)
	require.NoError(t, err)
	assert.Nil(t, name)
}
