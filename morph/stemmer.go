package morph

import (
	"strings"
	"sync"

	"github.com/kljensen/snowball"
)

// Stemmer returns Snowball stems for Russian words with caching
type Stemmer struct {
	language string
	cache    map[string]string
	mu       sync.RWMutex
	useCache bool
}

// NewStemmer creates a new Russian language stemmer
func NewStemmer() *Stemmer {
	return &Stemmer{
		language: "russian",
		cache:    make(map[string]string),
		useCache: true,
	}
}

// NewStemmerWithoutCache creates a stemmer without caching
func NewStemmerWithoutCache() *Stemmer {
	return &Stemmer{
		language: "russian",
		useCache: false,
	}
}

// Stem returns the stemmed version of a word using Snowball algorithm
// Example: "автомобиля" -> "автомобил", "самолетом" -> "самолет"
func (s *Stemmer) Stem(word string) string {
	normalized := strings.ToLower(strings.TrimSpace(word))
	if normalized == "" {
		return ""
	}
	normalized = strings.ReplaceAll(normalized, "ё", "е")

	if !s.useCache {
		return s.stem(normalized)
	}

	s.mu.RLock()
	if cached, found := s.cache[normalized]; found {
		s.mu.RUnlock()
		return cached
	}
	s.mu.RUnlock()

	stemmed := s.stem(normalized)

	s.mu.Lock()
	s.cache[normalized] = stemmed
	s.mu.Unlock()

	return stemmed
}

func (s *Stemmer) stem(normalized string) string {
	stemmed, err := snowball.Stem(normalized, s.language, true)
	if err != nil || stemmed == "" {
		// If stemming fails, return the normalized word
		return normalized
	}
	return stemmed
}

// CacheSize returns the number of cached items
func (s *Stemmer) CacheSize() int {
	if !s.useCache {
		return 0
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cache)
}

// ClearCache clears the internal cache
func (s *Stemmer) ClearCache() {
	if !s.useCache {
		return
	}

	s.mu.Lock()
	s.cache = make(map[string]string)
	s.mu.Unlock()
}
