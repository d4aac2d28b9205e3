// Package nounphrase выделяет именные группы вида "прилагательные + существительное".
package nounphrase

import (
	"strings"

	"transportner/morph"
	"transportner/tokens"
)

// Максимальное число прилагательных перед главным словом
const defaultMaxAdjectives = 4

// Phrase именная группа; индексы токенов включительно
type Phrase struct {
	Begin      int
	End        int
	Head       int
	Adjectives []int
	// Normalized текст группы в нижнем регистре через одиночные пробелы
	Normalized string
}

// Parser разбирает именные группы
type Parser struct {
	MaxAdjectives int
}

// NewParser создает парсер с настройками по умолчанию
func NewParser() *Parser {
	return &Parser{MaxAdjectives: defaultMaxAdjectives}
}

// Parse выделяет именную группу, начинающуюся в позиции i.
// Прилагательные могут разделяться запятой или союзом "и"; главное слово
// должно находиться на той же строке.
func (p *Parser) Parse(s *tokens.Stream, i int) (Phrase, bool) {
	maxAdj := p.MaxAdjectives
	if maxAdj <= 0 {
		maxAdj = defaultMaxAdjectives
	}

	ph := Phrase{Begin: i, Head: -1}
	j := i
	for j < s.Len() && len(ph.Adjectives) < maxAdj {
		if j > i && s.IsNewlineBefore(j) {
			return Phrase{}, false
		}
		if !isAdjective(s.At(j)) {
			break
		}
		ph.Adjectives = append(ph.Adjectives, j)
		j++
		// "красный, белый автомобиль", "старый и ржавый автомобиль"
		if (s.IsComma(j) || s.IsAnd(j)) && isAdjective(s.At(j+1)) && !s.IsNewlineBefore(j+1) {
			j++
		}
	}

	if j > i && s.IsNewlineBefore(j) {
		return Phrase{}, false
	}
	if !isHead(s.At(j)) {
		return Phrase{}, false
	}
	ph.Head = j
	ph.End = j
	ph.Normalized = normalize(s, ph)
	return ph, true
}

func isAdjective(t *tokens.Token) bool {
	if t == nil || (!t.IsWord() && !t.IsReferent()) {
		return false
	}
	return t.Morph.Is(morph.ClassAdjective)
}

func isHead(t *tokens.Token) bool {
	if !t.IsWord() {
		return false
	}
	const closed = morph.ClassPreposition | morph.ClassConjunction | morph.ClassPronoun | morph.ClassAdverb | morph.ClassAdjective
	if t.Morph.Class&closed != 0 {
		return false
	}
	return t.Morph.Is(morph.ClassNoun)
}

func normalize(s *tokens.Stream, ph Phrase) string {
	parts := make([]string, 0, len(ph.Adjectives)+1)
	for _, k := range ph.Adjectives {
		parts = append(parts, strings.ToLower(s.At(k).Text))
	}
	parts = append(parts, strings.ToLower(s.At(ph.Head).Text))
	return strings.Join(parts, " ")
}
