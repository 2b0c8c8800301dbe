package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/user/moviebot/internal/utils"
)

// RandomMovie 随机返回一部电影
func (h *Handler) RandomMovie(c *gin.Context) {
	movie, err := h.Catalog.RandomMovie()
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "查询失败")
		return
	}
	if movie == nil {
		utils.NotFound(c, "片库里还没有电影")
		return
	}
	utils.Success(c, movie)
}

// SearchMovies 按标题搜索电影
func (h *Handler) SearchMovies(c *gin.Context) {
	query := c.Query("q")
	movies, err := h.Catalog.SearchByTitle(query)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "查询失败")
		return
	}
	utils.Success(c, movies)
}

// MovieByID 根据 ID 返回电影详情
func (h *Handler) MovieByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "电影 ID 无效")
		return
	}
	movie, err := h.Catalog.MovieByID(id)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "查询失败")
		return
	}
	if movie == nil {
		utils.NotFound(c, "未找到该电影")
		return
	}
	utils.Success(c, movie)
}

// ListGenres 返回全部流派
func (h *Handler) ListGenres(c *gin.Context) {
	genres, err := h.Catalog.ListGenres()
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "查询失败")
		return
	}
	utils.Success(c, genres)
}

// GenreByID 根据 ID 返回流派名称
func (h *Handler) GenreByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "流派 ID 无效")
		return
	}
	name, err := h.Catalog.GenreNameByID(id)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "查询失败")
		return
	}
	if name == nil {
		utils.NotFound(c, "未找到该流派")
		return
	}
	utils.Success(c, gin.H{"genre_id": id, "genre": *name})
}

// MoviesByGenre 返回指定流派下随机挑选的电影
func (h *Handler) MoviesByGenre(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "流派 ID 无效")
		return
	}
	movies, err := h.Catalog.MoviesByGenre(id)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "查询失败")
		return
	}
	utils.Success(c, movies)
}

// ListFavorites 返回用户收藏的电影
func (h *Handler) ListFavorites(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "用户 ID 无效")
		return
	}
	movies, err := h.Catalog.FavoritesOf(userID)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "查询失败")
		return
	}
	utils.Success(c, movies)
}

// addFavoriteRequest 添加收藏请求体
type addFavoriteRequest struct {
	MovieID int `json:"movie_id" binding:"required,gt=0"`
}

// AddFavorite 添加收藏
func (h *Handler) AddFavorite(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "用户 ID 无效")
		return
	}
	var req addFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, bindError(err))
		return
	}
	added, err := h.Catalog.AddFavorite(userID, req.MovieID)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "操作失败")
		return
	}
	if added {
		utils.SuccessWithMessage(c, "已添加到收藏", gin.H{"added": true})
		return
	}
	utils.SuccessWithMessage(c, "这部电影已经在收藏里了", gin.H{"added": false})
}

// RemoveFavorite 取消收藏
func (h *Handler) RemoveFavorite(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "用户 ID 无效")
		return
	}
	movieID, err := strconv.Atoi(c.Param("movieID"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "电影 ID 无效")
		return
	}
	removed, err := h.Catalog.RemoveFavorite(userID, movieID)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "操作失败")
		return
	}
	if removed {
		utils.SuccessWithMessage(c, "已从收藏中删除", gin.H{"removed": true})
		return
	}
	utils.SuccessWithMessage(c, "收藏里没有这部电影", gin.H{"removed": false})
}

// CheckFavorite 检查电影是否在用户收藏里
func (h *Handler) CheckFavorite(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "用户 ID 无效")
		return
	}
	movieID, err := strconv.Atoi(c.Param("movieID"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "电影 ID 无效")
		return
	}
	favorited, err := h.Catalog.IsFavorite(userID, movieID)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "查询失败")
		return
	}
	utils.Success(c, gin.H{"favorited": favorited})
}

// translateRequest 翻译请求体，语言对缺省时取配置里的默认值
type translateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

// Translate 翻译文本（经过持久化缓存）
func (h *Handler) Translate(c *gin.Context) {
	var req translateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, bindError(err))
		return
	}
	if req.SourceLang == "" {
		req.SourceLang = h.Config.SourceLang
	}
	if req.TargetLang == "" {
		req.TargetLang = h.Config.TargetLang
	}
	translated, err := h.Translator.Translate(req.Text, req.SourceLang, req.TargetLang)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "翻译缓存读写失败")
		return
	}
	utils.Success(c, gin.H{"translated_text": translated})
}
