package repository

import (
	"fmt"

	"github.com/user/moviebot/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB 初始化数据库连接
func InitDB(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("无法连接数据库: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取底层连接池失败: %w", err)
	}

	// 测试连接
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库 ping 失败: %w", err)
	}

	// 设置连接池
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	return db, nil
}

// Migrate 创建收藏表与翻译缓存表（幂等，已存在则跳过）。
// movies / genres / movies_genres 由外部导入流程维护，这里不碰。
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Favorite{}, &model.Translation{}); err != nil {
		return fmt.Errorf("建表失败: %w", err)
	}
	return nil
}

// Repositories 仓库集合
type Repositories struct {
	DB          *gorm.DB
	Movie       *MovieRepository
	Genre       *GenreRepository
	Favorite    *FavoriteRepository
	Translation *TranslationRepository
}

// NewRepositories 创建仓库集合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		DB:          db,
		Movie:       NewMovieRepository(db),
		Genre:       NewGenreRepository(db),
		Favorite:    NewFavoriteRepository(db),
		Translation: NewTranslationRepository(db),
	}
}
