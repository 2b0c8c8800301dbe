package repository

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/user/moviebot/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 打开一个测试私有的内存 SQLite 库并建好全部表。
// movies / genres / movies_genres 生产环境由外部导入流程建表，测试里自己建。
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.Movie{}, &model.Genre{}, &model.MovieGenre{},
	))
	require.NoError(t, Migrate(db))

	return db
}

func seedMovie(t *testing.T, db *gorm.DB, m *model.Movie) {
	t.Helper()
	require.NoError(t, db.Create(m).Error)
}

func seedGenre(t *testing.T, db *gorm.DB, g *model.Genre) {
	t.Helper()
	require.NoError(t, db.Create(g).Error)
}

func linkGenre(t *testing.T, db *gorm.DB, movieID, genreID int) {
	t.Helper()
	require.NoError(t, db.Create(&model.MovieGenre{MovieID: movieID, GenreID: genreID}).Error)
}
