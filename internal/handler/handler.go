package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/user/moviebot/internal/config"
	"github.com/user/moviebot/internal/repository"
	"github.com/user/moviebot/internal/service"
)

// Handler HTTP 处理器
type Handler struct {
	Catalog    *service.CatalogService
	Translator *service.TranslatorService
	Config     *config.Config
}

// NewHandler 创建处理器
func NewHandler(repos *repository.Repositories, cfg *config.Config) *Handler {
	return &Handler{
		Catalog:    service.NewCatalogService(repos),
		Translator: service.NewTranslatorService(repos.Translation, cfg),
		Config:     cfg,
	}
}

// bindError 把校验错误转成对调用方友好的消息
func bindError(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("字段 %s 校验失败 (%s)", fe.Field(), fe.Tag()))
		}
		return strings.Join(msgs, "; ")
	}
	return "请求体格式错误"
}
