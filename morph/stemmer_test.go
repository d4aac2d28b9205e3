package morph

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStemmer_Stem(t *testing.T) {
	s := NewStemmer()

	tests := []struct {
		name     string
		word     string
		expected string
	}{
		{"родительный падеж", "автомобиля", "автомобил"},
		{"творительный падеж", "самолетом", "самолет"},
		{"ё заменяется на е", "самолёт", "самолет"},
		{"регистр и пробелы", "  АВТОМОБИЛЬ ", "автомобил"},
		{"пустая строка", "", ""},
		{"только пробелы", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, s.Stem(tt.word))
		})
	}
}

func TestStemmer_Cache(t *testing.T) {
	s := NewStemmer()
	assert.Equal(t, 0, s.CacheSize())

	first := s.Stem("теплохода")
	assert.Equal(t, 1, s.CacheSize())
	assert.Equal(t, first, s.Stem("теплохода"))
	assert.Equal(t, 1, s.CacheSize())

	s.ClearCache()
	assert.Equal(t, 0, s.CacheSize())
}

func TestStemmer_WithoutCache(t *testing.T) {
	cached := NewStemmer()
	plain := NewStemmerWithoutCache()

	for _, w := range []string{"грузовика", "судами", "ракетой"} {
		assert.Equal(t, cached.Stem(w), plain.Stem(w), w)
	}
	assert.Equal(t, 0, plain.CacheSize())
	plain.ClearCache()
}

func TestStemmer_Concurrent(t *testing.T) {
	s := NewStemmer()
	words := []string{"автомобиль", "автомобиля", "автомобилем", "самолет", "самолета", "судно", "судна"}
	want := make(map[string]string, len(words))
	for _, w := range words {
		want[w] = NewStemmerWithoutCache().Stem(w)
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				w := words[i%len(words)]
				assert.Equal(t, want[w], s.Stem(w))
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, len(words), s.CacheSize())
}
