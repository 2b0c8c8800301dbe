package repository

import (
	"strings"

	"github.com/user/moviebot/internal/model"
	"gorm.io/gorm"
)

// 查询结果条数上限
const (
	searchLimit  = 10
	byGenreLimit = 5
)

type MovieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// Random 随机返回一部电影，片库为空时返回 nil
func (r *MovieRepository) Random() (*model.Movie, error) {
	var movies []*model.Movie
	err := r.db.Order("RANDOM()").Limit(1).Find(&movies).Error
	if err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		return nil, nil
	}
	if err := attachGenres(r.db, movies); err != nil {
		return nil, err
	}
	return movies[0], nil
}

// SearchByTitle 按标题子串搜索（不区分大小写），最多返回 10 条。
// 空查询匹配所有标题。
func (r *MovieRepository) SearchByTitle(query string) ([]*model.Movie, error) {
	// 预先初始化，空结果序列化成 [] 而不是 null
	movies := []*model.Movie{}
	pattern := "%" + strings.ToLower(query) + "%"
	err := r.db.Where("LOWER(title) LIKE ?", pattern).
		Limit(searchLimit).
		Find(&movies).Error
	if err != nil {
		return nil, err
	}
	if err := attachGenres(r.db, movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// FindByID 根据 ID 查找电影，未找到返回 nil
func (r *MovieRepository) FindByID(id int) (*model.Movie, error) {
	var movies []*model.Movie
	err := r.db.Where("id = ?", id).Limit(1).Find(&movies).Error
	if err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		return nil, nil
	}
	if err := attachGenres(r.db, movies); err != nil {
		return nil, err
	}
	return movies[0], nil
}

// ByGenre 随机返回指定流派下最多 5 部电影，流派不存在或无电影时返回空切片
func (r *MovieRepository) ByGenre(genreID int) ([]*model.Movie, error) {
	movies := []*model.Movie{}
	err := r.db.Model(&model.Movie{}).
		Joins("JOIN movies_genres mg ON mg.movie_id = movies.id").
		Where("mg.genre_id = ?", genreID).
		Order("RANDOM()").
		Limit(byGenreLimit).
		Find(&movies).Error
	if err != nil {
		return nil, err
	}
	if err := attachGenres(r.db, movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// attachGenres 为一批电影填充逗号拼接的流派字符串。
// 用一条 IN 查询在 Go 侧拼接，避免 Postgres 与 SQLite 的聚合函数差异。
func attachGenres(db *gorm.DB, movies []*model.Movie) error {
	if len(movies) == 0 {
		return nil
	}

	ids := make([]int, 0, len(movies))
	for _, m := range movies {
		ids = append(ids, m.ID)
	}

	var rows []struct {
		MovieID int
		Name    string
	}
	err := db.Table("movies_genres AS mg").
		Select("mg.movie_id AS movie_id, g.genre AS name").
		Joins("JOIN genres g ON g.genre_id = mg.genre_id").
		Where("mg.movie_id IN ?", ids).
		Order("g.genre").
		Scan(&rows).Error
	if err != nil {
		return err
	}

	names := make(map[int][]string, len(movies))
	for _, row := range rows {
		names[row.MovieID] = append(names[row.MovieID], row.Name)
	}
	for _, m := range movies {
		m.Genres = strings.Join(names[m.ID], ", ")
	}
	return nil
}
