package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/moviebot/internal/handler"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// ==================== 电影 ====================
		api.GET("/movies/random", h.RandomMovie)
		api.GET("/movies/search", h.SearchMovies)
		api.GET("/movies/:id", h.MovieByID)

		// ==================== 流派 ====================
		api.GET("/genres", h.ListGenres)
		api.GET("/genres/:id", h.GenreByID)
		api.GET("/genres/:id/movies", h.MoviesByGenre)

		// ==================== 收藏 ====================
		api.GET("/users/:id/favorites", h.ListFavorites)
		api.POST("/users/:id/favorites", h.AddFavorite)
		api.GET("/users/:id/favorites/:movieID", h.CheckFavorite)
		api.DELETE("/users/:id/favorites/:movieID", h.RemoveFavorite)

		// ==================== 翻译 ====================
		api.POST("/translate", h.Translate)
	}
}
