package extract

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"transportner/extraction"
	"transportner/internal/api/middleware"
	"transportner/internal/source"
)

// Форматы входного текста
const (
	FormatText = "text"
	FormatHTML = "html"
)

// Extractor то, что обработчику нужно от экстрактора
type Extractor interface {
	Extract(text string) (*extraction.Document, error)
	ExtractBatch(ctx context.Context, texts []string) ([]extraction.BatchResult, error)
	OntologyStats() map[string]int
}

// Store хранилище результатов
type Store interface {
	SaveDocument(ctx context.Context, doc *extraction.Document, source string) error
	MentionsByDocument(ctx context.Context, docID string) ([]extraction.Mention, error)
}

// Config ограничения обработчика
type Config struct {
	MaxBatchSize   int
	RequestTimeout time.Duration
}

// ExtractRequest запрос на извлечение из одного текста
type ExtractRequest struct {
	Text   string `json:"text"`
	Format string `json:"format"`
	Source string `json:"source"`
}

// BatchRequest запрос на пакетное извлечение
type BatchRequest struct {
	Texts  []string `json:"texts"`
	Format string   `json:"format"`
	Source string   `json:"source"`
}

// BatchResponse ответ на пакетное извлечение
type BatchResponse struct {
	Results  []extraction.BatchResult `json:"results"`
	Mentions int                      `json:"mentions"`
}

// OntologyResponse статистика словаря терминов
type OntologyResponse struct {
	Terms map[string]int `json:"terms"`
	Total int            `json:"total"`
}

// Handler HTTP обработчик извлечения упоминаний транспорта
type Handler struct {
	extractor Extractor
	store     Store
	config    Config
	logger    *slog.Logger
}

// NewHandler создает обработчик. store может быть nil: результаты не сохраняются.
func NewHandler(extractor Extractor, store Store, config Config) *Handler {
	if config.MaxBatchSize <= 0 {
		config.MaxBatchSize = 100
	}
	if config.RequestTimeout <= 0 {
		config.RequestTimeout = 30 * time.Second
	}
	return &Handler{
		extractor: extractor,
		store:     store,
		config:    config,
		logger:    slog.Default().With("component", "extract_handler"),
	}
}

// HandleHealth проверка доступности
// @Summary Проверка состояния сервиса
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Сервис доступен"
// @Router /health [get]
func (h *Handler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"storage": h.store != nil,
	})
}

// HandleExtract извлекает упоминания из одного текста
// @Summary Извлечь упоминания транспорта
// @Description Находит в тексте упоминания транспортных средств и сохраняет результат, если подключено хранилище
// @Tags extract
// @Accept json
// @Produce json
// @Param request body ExtractRequest true "Текст и его формат"
// @Success 200 {object} extraction.Document "Документ с упоминаниями"
// @Failure 400 {object} middleware.ErrorResponse "Неверный запрос"
// @Failure 413 {object} middleware.ErrorResponse "Слишком длинный текст"
// @Failure 500 {object} middleware.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/v1/extract [post]
func (h *Handler) HandleExtract(c *gin.Context) {
	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, fmt.Errorf("%w: %v", ErrInvalidRequest, err))
		return
	}

	text, err := prepareText(req.Text, req.Format)
	if err != nil {
		h.fail(c, err)
		return
	}
	if strings.TrimSpace(text) == "" {
		h.fail(c, ErrEmptyText)
		return
	}

	doc, err := h.extractor.Extract(text)
	if err != nil {
		h.fail(c, err)
		return
	}

	if h.store != nil {
		if err := h.store.SaveDocument(c.Request.Context(), doc, req.Source); err != nil {
			h.fail(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, doc)
}

// HandleExtractBatch извлекает упоминания из нескольких текстов
// @Summary Пакетное извлечение упоминаний
// @Description Обрабатывает тексты параллельно; ошибка одного текста возвращается в его результате
// @Tags extract
// @Accept json
// @Produce json
// @Param request body BatchRequest true "Тексты и их формат"
// @Success 200 {object} BatchResponse "Результаты по каждому тексту"
// @Failure 400 {object} middleware.ErrorResponse "Неверный запрос"
// @Failure 413 {object} middleware.ErrorResponse "Слишком большой пакет"
// @Failure 504 {object} middleware.ErrorResponse "Превышено время обработки"
// @Router /api/v1/extract/batch [post]
func (h *Handler) HandleExtractBatch(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, fmt.Errorf("%w: %v", ErrInvalidRequest, err))
		return
	}
	if len(req.Texts) > h.config.MaxBatchSize {
		h.fail(c, fmt.Errorf("%w: %d texts, limit %d", ErrBatchTooLarge, len(req.Texts), h.config.MaxBatchSize))
		return
	}

	texts := make([]string, len(req.Texts))
	for i, t := range req.Texts {
		text, err := prepareText(t, req.Format)
		if err != nil {
			h.fail(c, err)
			return
		}
		texts[i] = text
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.config.RequestTimeout)
	defer cancel()

	results, err := h.extractor.ExtractBatch(ctx, texts)
	if err != nil {
		h.fail(c, err)
		return
	}

	resp := BatchResponse{Results: results}
	for _, r := range results {
		if r.Document == nil {
			continue
		}
		resp.Mentions += len(r.Document.Mentions)
		if h.store != nil {
			if err := h.store.SaveDocument(ctx, r.Document, req.Source); err != nil {
				h.fail(c, err)
				return
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}

// HandleOntology количество терминов словаря по категориям и видам транспорта
// @Summary Статистика словаря терминов
// @Tags ontology
// @Produce json
// @Success 200 {object} OntologyResponse "Количество терминов"
// @Router /api/v1/ontology [get]
func (h *Handler) HandleOntology(c *gin.Context) {
	stats := h.extractor.OntologyStats()
	total := 0
	for _, n := range stats {
		total += n
	}
	c.JSON(http.StatusOK, OntologyResponse{Terms: stats, Total: total})
}

// HandleDocumentMentions сохраненные упоминания документа
// @Summary Получить упоминания документа
// @Tags documents
// @Produce json
// @Param id path string true "Идентификатор документа"
// @Success 200 {object} map[string]interface{} "Упоминания документа"
// @Failure 404 {object} middleware.ErrorResponse "Документ не найден"
// @Failure 503 {object} middleware.ErrorResponse "Хранилище не подключено"
// @Router /api/v1/documents/{id}/mentions [get]
func (h *Handler) HandleDocumentMentions(c *gin.Context) {
	if h.store == nil {
		h.fail(c, ErrStorageDisabled)
		return
	}

	mentions, err := h.store.MentionsByDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"document_id": c.Param("id"), "mentions": mentions})
}

func (h *Handler) fail(c *gin.Context, err error) {
	code := statusCode(err)
	if code == http.StatusInternalServerError {
		h.logger.Error("Request failed",
			"error", err.Error(),
			"request_id", middleware.GetRequestIDFromGin(c),
			"path", c.Request.URL.Path)
		c.Error(err)
		middleware.SendJSONError(c, code, "internal server error")
		return
	}
	c.Error(err)
	middleware.SendJSONError(c, code, err.Error())
}

// prepareText приводит текст запроса к плоскому виду
func prepareText(text, format string) (string, error) {
	switch strings.ToLower(format) {
	case "", FormatText:
		return text, nil
	case FormatHTML:
		return source.HTMLText(strings.NewReader(text))
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, format)
}

var _ Extractor = (*extraction.Extractor)(nil)
