package service

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"

	"github.com/user/moviebot/internal/config"
	"github.com/user/moviebot/internal/repository"
)

// TranslatorService 翻译服务：远程翻译接口前的持久化读穿缓存。
// 远程调用失败时把原文写入缓存（永久负缓存），同样的失败查询不会反复打到远端。
type TranslatorService struct {
	repo   *repository.TranslationRepository
	apiURL string
	client *http.Client
}

func NewTranslatorService(repo *repository.TranslationRepository, cfg *config.Config) *TranslatorService {
	return &TranslatorService{
		repo:   repo,
		apiURL: cfg.TranslateAPIURL,
		client: &http.Client{
			Timeout: cfg.TranslateTimeout,
		},
	}
}

// translateRequest 翻译 API 请求结构
type translateRequest struct {
	Query  string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
}

// translateResponse 翻译 API 响应结构
type translateResponse struct {
	// 指针用于区分字段缺失与空串
	TranslatedText *string `json:"translatedText"`
}

// Translate 翻译文本。缓存命中直接返回；未命中时调用远程接口并写回缓存。
// 键为 (源语言, 目标语言, 原文) 的精确拼接，大小写或空白不同即视为不同条目。
// 远程失败不算错误（返回原文），error 只代表存储层故障。
func (s *TranslatorService) Translate(text, sourceLang, targetLang string) (string, error) {
	if text == "" {
		return "", nil
	}
	key := sourceLang + "_" + targetLang + "_" + text

	cached, err := s.repo.Find(key)
	if err != nil {
		return "", err
	}
	if cached != nil {
		return cached.Text, nil
	}

	// 缓存查询已经结束，远程请求期间不占用数据库连接
	result := s.fetchRemote(text, sourceLang, targetLang, key)

	if err := s.repo.Upsert(key, result); err != nil {
		return "", err
	}
	return result, nil
}

// fetchRemote 调用远程翻译接口，任何失败都回退为原文
func (s *TranslatorService) fetchRemote(text, sourceLang, targetLang, key string) string {
	reqBody := translateRequest{
		Query:  text,
		Source: sourceLang,
		Target: targetLang,
		Format: "text",
	}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		log.Printf("[翻译] 序列化请求失败 ('%s'): %v", key, err)
		return text
	}

	resp, err := s.client.Post(s.apiURL, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		log.Printf("[翻译] 请求翻译 API 失败 ('%s'): %v", key, err)
		return text
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[翻译] 翻译 API 返回异常状态 ('%s'): %d", key, resp.StatusCode)
		return text
	}

	var result translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Printf("[翻译] 解析翻译 API 响应失败 ('%s'): %v", key, err)
		return text
	}
	if result.TranslatedText == nil {
		log.Printf("[翻译] 翻译 API 响应缺少 translatedText 字段 ('%s')", key)
		return text
	}
	return *result.TranslatedText
}
