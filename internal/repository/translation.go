package repository

import (
	"github.com/user/moviebot/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TranslationRepository struct {
	db *gorm.DB
}

func NewTranslationRepository(db *gorm.DB) *TranslationRepository {
	return &TranslationRepository{db: db}
}

// Find 查找缓存条目，未命中返回 nil
func (r *TranslationRepository) Find(key string) (*model.Translation, error) {
	var entries []*model.Translation
	err := r.db.Where("original_text = ?", key).Limit(1).Find(&entries).Error
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return entries[0], nil
}

// Upsert 写入缓存条目，键已存在时覆盖旧值
func (r *TranslationRepository) Upsert(key, text string) error {
	entry := &model.Translation{
		Key:  key,
		Text: text,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "original_text"}},
		DoUpdates: clause.AssignmentColumns([]string{"translated_text"}),
	}).Create(entry).Error
}
