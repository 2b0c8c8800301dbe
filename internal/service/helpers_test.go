package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/user/moviebot/internal/config"
	"github.com/user/moviebot/internal/model"
	"github.com/user/moviebot/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestRepos 基于测试私有的内存 SQLite 库构建仓库集合
func newTestRepos(t *testing.T) *repository.Repositories {
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
	require.NoError(t, repository.Migrate(db))

	return repository.NewRepositories(db)
}

func newTestConfig() *config.Config {
	return &config.Config{
		Env:              "test",
		TranslateAPIURL:  "http://translate.local/translate",
		TranslateTimeout: 15 * time.Second,
		SourceLang:       "auto",
		TargetLang:       "ru",
	}
}
