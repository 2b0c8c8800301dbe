package repository

import (
	"github.com/user/moviebot/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Add 添加收藏。依赖主键冲突跳过重复插入（而非先查后插，避免并发重复添加），
// 返回是否真正新增：已存在时返回 false，不报错。
func (r *FavoriteRepository) Add(userID int64, movieID int) (bool, error) {
	favorite := &model.Favorite{
		UserID:  userID,
		MovieID: movieID,
	}
	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(favorite)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Remove 取消收藏，返回是否真的删除了一条记录
func (r *FavoriteRepository) Remove(userID int64, movieID int) (bool, error) {
	result := r.db.Where("user_id = ? AND movie_id = ?", userID, movieID).
		Delete(&model.Favorite{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// IsFavorited 检查是否已收藏
func (r *FavoriteRepository) IsFavorited(userID int64, movieID int) (bool, error) {
	var count int64
	err := r.db.Model(&model.Favorite{}).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Count(&count).Error
	return count > 0, err
}

// ListByUser 获取用户收藏的电影，按标题升序，无收藏时返回空切片
func (r *FavoriteRepository) ListByUser(userID int64) ([]*model.Movie, error) {
	// 预先初始化，空结果序列化成 [] 而不是 null
	movies := []*model.Movie{}
	err := r.db.Model(&model.Movie{}).
		Joins("JOIN user_favorites uf ON uf.movie_id = movies.id").
		Where("uf.user_id = ?", userID).
		Order("movies.title").
		Find(&movies).Error
	if err != nil {
		return nil, err
	}
	if err := attachGenres(r.db, movies); err != nil {
		return nil, err
	}
	return movies, nil
}
