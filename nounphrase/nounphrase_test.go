package nounphrase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transportner/morph"
	"transportner/tokens"
)

func TestParse(t *testing.T) {
	analyzer := morph.NewAnalyzer()
	parser := NewParser()

	tests := []struct {
		name       string
		text       string
		wantOK     bool
		wantHead   int
		wantAdj    int
		normalized string
	}{
		{"одно прилагательное", "грузовой автомобиль", true, 1, 1, "грузовой автомобиль"},
		{"два прилагательных", "новый пассажирский самолет", true, 2, 2, "новый пассажирский самолет"},
		{"прилагательные через запятую", "старый, ржавый автомобиль", true, 3, 2, "старый ржавый автомобиль"},
		{"без прилагательных", "автомобиль", true, 0, 0, "автомобиль"},
		{"предлог не главное слово", "красный в", false, 0, 0, ""},
		{"перевод строки", "грузовой\nавтомобиль", false, 0, 0, ""},
		{"число", "123", false, 0, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tokens.Tokenize(tt.text, analyzer)
			ph, ok := parser.Parse(s, 0)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, 0, ph.Begin)
			assert.Equal(t, tt.wantHead, ph.Head)
			assert.Equal(t, ph.Head, ph.End)
			assert.Len(t, ph.Adjectives, tt.wantAdj)
			assert.Equal(t, tt.normalized, ph.Normalized)
		})
	}
}

func TestParseZeroMaxAdjectivesUsesDefault(t *testing.T) {
	s := tokens.Tokenize("большой белый теплоход", morph.NewAnalyzer())
	ph, ok := (&Parser{}).Parse(s, 0)
	require.True(t, ok)
	assert.Equal(t, 2, ph.Head)
}
