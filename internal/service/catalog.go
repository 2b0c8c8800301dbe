package service

import (
	"github.com/user/moviebot/internal/model"
	"github.com/user/moviebot/internal/repository"
)

// CatalogService 片库查询服务：所有读操作直达存储层，不做任何内存缓存，
// 每次调用反映当前持久化状态。未找到用 nil / 空切片表示，不是错误。
type CatalogService struct {
	movieRepo    *repository.MovieRepository
	genreRepo    *repository.GenreRepository
	favoriteRepo *repository.FavoriteRepository
}

func NewCatalogService(repos *repository.Repositories) *CatalogService {
	return &CatalogService{
		movieRepo:    repos.Movie,
		genreRepo:    repos.Genre,
		favoriteRepo: repos.Favorite,
	}
}

// RandomMovie 从全库均匀随机返回一部电影，片库为空时返回 nil
func (s *CatalogService) RandomMovie() (*model.Movie, error) {
	return s.movieRepo.Random()
}

// SearchByTitle 标题子串搜索，最多 10 条
func (s *CatalogService) SearchByTitle(query string) ([]*model.Movie, error) {
	return s.movieRepo.SearchByTitle(query)
}

// ListGenres 全部流派，按名称升序
func (s *CatalogService) ListGenres() ([]*model.Genre, error) {
	return s.genreRepo.ListAll()
}

// FavoritesOf 用户的收藏电影，按标题升序
func (s *CatalogService) FavoritesOf(userID int64) ([]*model.Movie, error) {
	return s.favoriteRepo.ListByUser(userID)
}

// MoviesByGenre 指定流派下随机最多 5 部电影
func (s *CatalogService) MoviesByGenre(genreID int) ([]*model.Movie, error) {
	return s.movieRepo.ByGenre(genreID)
}

// MovieByID 根据 ID 查找电影，未找到返回 nil
func (s *CatalogService) MovieByID(id int) (*model.Movie, error) {
	return s.movieRepo.FindByID(id)
}

// GenreNameByID 根据 ID 查找流派名称，未找到返回 nil
func (s *CatalogService) GenreNameByID(id int) (*string, error) {
	return s.genreRepo.NameByID(id)
}

// AddFavorite 添加收藏，返回是否新增（重复添加返回 false，不报错）
func (s *CatalogService) AddFavorite(userID int64, movieID int) (bool, error) {
	return s.favoriteRepo.Add(userID, movieID)
}

// RemoveFavorite 取消收藏，返回是否真的删除了记录
func (s *CatalogService) RemoveFavorite(userID int64, movieID int) (bool, error) {
	return s.favoriteRepo.Remove(userID, movieID)
}

// IsFavorite 检查用户是否收藏了某部电影
func (s *CatalogService) IsFavorite(userID int64, movieID int) (bool, error) {
	return s.favoriteRepo.IsFavorited(userID, movieID)
}
