package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/moviebot/internal/model"
	"github.com/user/moviebot/internal/repository"
)

func seedInception(t *testing.T, repos *repository.Repositories) {
	t.Helper()
	require.NoError(t, repos.DB.Create(&model.Movie{
		ID: 1, Title: "Inception", ReleaseDate: "2010-07-16",
		VoteAverage: 8.8, Overview: "A thief who steals corporate secrets.",
	}).Error)
	require.NoError(t, repos.DB.Create(&model.Genre{ID: 5, Name: "Sci-Fi"}).Error)
	require.NoError(t, repos.DB.Create(&model.MovieGenre{MovieID: 1, GenreID: 5}).Error)
}

func TestCatalogService_MovieLookup(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewCatalogService(repos)
	seedInception(t, repos)

	movie, err := svc.MovieByID(1)
	require.NoError(t, err)
	require.NotNil(t, movie)
	assert.Equal(t, "Inception", movie.Title)
	assert.Equal(t, "2010-07-16", movie.ReleaseDate)
	assert.InDelta(t, 8.8, movie.VoteAverage, 0.001)
	assert.Equal(t, "Sci-Fi", movie.Genres)

	// 单行片库的随机抽取每次都命中同一部
	random, err := svc.RandomMovie()
	require.NoError(t, err)
	require.NotNil(t, random)
	assert.Equal(t, 1, random.ID)

	name, err := svc.GenreNameByID(5)
	require.NoError(t, err)
	require.NotNil(t, name)
	assert.Equal(t, "Sci-Fi", *name)
}

func TestCatalogService_FavoritesFlow(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewCatalogService(repos)
	seedInception(t, repos)

	added, err := svc.AddFavorite(42, 1)
	require.NoError(t, err)
	assert.True(t, added)

	favorites, err := svc.FavoritesOf(42)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, 1, favorites[0].ID)
	assert.Equal(t, "Sci-Fi", favorites[0].Genres)

	favorited, err := svc.IsFavorite(42, 1)
	require.NoError(t, err)
	assert.True(t, favorited)

	removed, err := svc.RemoveFavorite(42, 1)
	require.NoError(t, err)
	assert.True(t, removed)

	favorites, err = svc.FavoritesOf(42)
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestCatalogService_EmptyResults(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewCatalogService(repos)
	seedInception(t, repos)
	require.NoError(t, repos.DB.Create(&model.Genre{ID: 9, Name: "Documentary"}).Error)

	// 有流派但没有电影：空切片，不是 not-found
	movies, err := svc.MoviesByGenre(9)
	require.NoError(t, err)
	assert.Empty(t, movies)

	results, err := svc.SearchByTitle("zzz no such movie")
	require.NoError(t, err)
	assert.Empty(t, results)
}
