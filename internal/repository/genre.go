package repository

import (
	"github.com/user/moviebot/internal/model"
	"gorm.io/gorm"
)

type GenreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) *GenreRepository {
	return &GenreRepository{db: db}
}

// ListAll 返回全部流派，按名称升序
func (r *GenreRepository) ListAll() ([]*model.Genre, error) {
	// 预先初始化，空结果序列化成 [] 而不是 null
	genres := []*model.Genre{}
	err := r.db.Order("genre").Find(&genres).Error
	return genres, err
}

// NameByID 根据 ID 查找流派名称，未找到返回 nil
func (r *GenreRepository) NameByID(id int) (*string, error) {
	var genres []*model.Genre
	err := r.db.Where("genre_id = ?", id).Limit(1).Find(&genres).Error
	if err != nil {
		return nil, err
	}
	if len(genres) == 0 {
		return nil, nil
	}
	return &genres[0].Name, nil
}
