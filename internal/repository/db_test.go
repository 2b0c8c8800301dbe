package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_Idempotent(t *testing.T) {
	db := newTestDB(t)

	// 重复跑不报错也不破坏已有数据
	require.NoError(t, Migrate(db))
	require.NoError(t, NewTranslationRepository(db).Upsert("en_ru_Inception", "Начало"))
	require.NoError(t, Migrate(db))

	entry, err := NewTranslationRepository(db).Find("en_ru_Inception")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "Начало", entry.Text)
}

func TestMigrate_FavoriteReferencesMovies(t *testing.T) {
	db := newTestDB(t)

	// 收藏表必须带指向 movies 的外键
	var ddl string
	err := db.Raw(
		"SELECT sql FROM sqlite_master WHERE type = 'table' AND name = 'user_favorites'",
	).Scan(&ddl).Error
	require.NoError(t, err)
	assert.Contains(t, strings.ToUpper(ddl), "REFERENCES")
	assert.Contains(t, ddl, "movies")
}
