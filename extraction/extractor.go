// Package extraction прогоняет распознаватель транспортных средств по всему
// документу и собирает найденные упоминания.
package extraction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"transportner/gazetteer"
	"transportner/morph"
	"transportner/nounphrase"
	"transportner/tokens"
	"transportner/transport"
)

const (
	// DefaultMaxTextLength ограничение длины документа в байтах
	DefaultMaxTextLength = 100000
	// DefaultWorkers число параллельно обрабатываемых документов в пакете
	DefaultWorkers = 4
)

var (
	// ErrTextTooLong документ длиннее допустимого
	ErrTextTooLong = errors.New("text is too long")
	// ErrNoTexts пустой пакет
	ErrNoTexts = errors.New("no texts to extract")
)

// Options параметры извлечения
type Options struct {
	MaxItems             int
	MaxTextLength        int
	Workers              int
	PreferHighConfidence bool
}

// Extractor связывает морфологию, словарь сущностей, онтологию и построитель
// последовательностей. Все части неизменяемы, поэтому один Extractor
// обслуживает любое число горутин.
type Extractor struct {
	analyzer *morph.Analyzer
	gaz      *gazetteer.Gazetteer
	builder  *transport.Builder
	opts     Options
	logger   *slog.Logger
}

// New создает экстрактор со встроенными словарями. Дополнительные записи
// словаря сущностей (например, из GAZETTEER_PATH) добавляются к встроенным.
func New(opts Options, extra ...gazetteer.Entry) (*Extractor, error) {
	if opts.MaxItems <= 0 {
		opts.MaxItems = transport.DefaultMaxItems
	}
	if opts.MaxTextLength <= 0 {
		opts.MaxTextLength = DefaultMaxTextLength
	}
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}

	analyzer := morph.NewAnalyzer()
	gaz := gazetteer.Default(analyzer.Stemmer())
	if err := gaz.Add(extra...); err != nil {
		return nil, fmt.Errorf("failed to load gazetteer entries: %w", err)
	}

	rec := transport.NewRecognizer(transport.NewOntology(analyzer.Stemmer()), gaz, nounphrase.NewParser())
	builder := transport.NewBuilder(rec)
	builder.MaxItems = opts.MaxItems
	builder.PreferHighConfidence = opts.PreferHighConfidence

	return &Extractor{
		analyzer: analyzer,
		gaz:      gaz,
		builder:  builder,
		opts:     opts,
		logger:   slog.Default().With("component", "transport_extractor"),
	}, nil
}

// Options действующие параметры
func (e *Extractor) Options() Options {
	return e.opts
}

// OntologyStats количество терминов словаря по категории и виду транспорта
func (e *Extractor) OntologyStats() map[string]int {
	return e.builder.Recognizer().Ontology().Stats()
}

// Extract находит упоминания транспортных средств в тексте
func (e *Extractor) Extract(text string) (*Document, error) {
	if len(text) > e.opts.MaxTextLength {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrTextTooLong, len(text), e.opts.MaxTextLength)
	}

	start := time.Now()
	s := e.gaz.Embed(tokens.Tokenize(text, e.analyzer))
	doc := &Document{
		ID:       uuid.New().String(),
		Text:     s.Text,
		Tokens:   s.Len(),
		Mentions: []Mention{},
	}

	for i := 0; i < s.Len(); {
		items := e.builder.Build(s, i)
		if !isVehicle(items) {
			i++
			continue
		}
		doc.Mentions = append(doc.Mentions, newMention(s, items))
		i = items[len(items)-1].End + 1
	}

	e.logger.Debug("Document processed",
		"document_id", doc.ID,
		"tokens", doc.Tokens,
		"mentions", len(doc.Mentions),
		"duration_ms", time.Since(start).Milliseconds())
	return doc, nil
}

// isVehicle последовательность описывает транспортное средство:
// в ней есть вид транспорта или марка
func isVehicle(items []*transport.Match) bool {
	for _, m := range items {
		if m.Category == transport.CategoryNoun || m.Category == transport.CategoryBrand {
			return true
		}
	}
	return false
}

// BatchResult результат обработки одного документа пакета
type BatchResult struct {
	Index    int       `json:"index"`
	Document *Document `json:"document,omitempty"`
	Error    string    `json:"error,omitempty"`
}

// ExtractBatch обрабатывает документы параллельно, не более Options.Workers
// одновременно. Результаты возвращаются в порядке входных текстов. Ошибка
// отдельного документа записывается в его результат; отмена контекста
// прекращает раздачу документов и возвращает ctx.Err().
func (e *Extractor) ExtractBatch(ctx context.Context, texts []string) ([]BatchResult, error) {
	if len(texts) == 0 {
		return nil, ErrNoTexts
	}

	start := time.Now()
	e.logger.Info("Starting batch extraction", "documents", len(texts), "workers", e.opts.Workers)

	results := make([]BatchResult, len(texts))
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, e.opts.Workers)

dispatch:
	for i, text := range texts {
		select {
		case <-ctx.Done():
			break dispatch
		case semaphore <- struct{}{}:
		}

		wg.Add(1)
		go func(index int, text string) {
			defer func() {
				if rec := recover(); rec != nil {
					e.logger.Error("Panic in extraction goroutine", "index", index, "recovered", rec)
					results[index] = BatchResult{Index: index, Error: fmt.Sprintf("panic: %v", rec)}
				}
				wg.Done()
				<-semaphore
			}()

			doc, err := e.Extract(text)
			if err != nil {
				e.logger.Warn("Failed to extract document", "index", index, "error", err.Error())
				results[index] = BatchResult{Index: index, Error: err.Error()}
				return
			}
			results[index] = BatchResult{Index: index, Document: doc}
		}(i, text)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		e.logger.Info("Batch extraction stopped by context", "documents", len(texts), "error", err.Error())
		return nil, err
	}

	mentions := 0
	for _, r := range results {
		if r.Document != nil {
			mentions += len(r.Document.Mentions)
		}
	}
	e.logger.Info("Batch extraction completed",
		"documents", len(texts),
		"mentions", mentions,
		"duration_ms", time.Since(start).Milliseconds())
	return results, nil
}
