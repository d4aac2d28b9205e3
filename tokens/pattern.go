package tokens

import (
	"unicode/utf8"

	"transportner/morph"
)

// Минимальная длина слова словаря, при которой допускается сравнение по основе
const minStemWordLength = 4

// PatternWord элемент словарной фразы
type PatternWord struct {
	Text string // в форме morph.Fold
	Stem string
	Kind Kind
	// Adjacent слово в словарной фразе написано слитно с предыдущим
	Adjacent bool
}

// Pattern словарная фраза, разобранная тем же токенизатором, что и текст
type Pattern struct {
	Source string
	Words  []PatternWord
}

// NewPattern разбирает фразу словаря на слова; stemmer может быть nil
func NewPattern(phrase string, stemmer *morph.Stemmer) Pattern {
	ts := Tokenize(phrase, nil)
	p := Pattern{Source: phrase, Words: make([]PatternWord, 0, ts.Len())}
	for i, t := range ts.Tokens {
		w := PatternWord{
			Text:     morph.Fold(t.Text),
			Kind:     t.Kind,
			Adjacent: i > 0 && t.WhitespacesBefore == 0,
		}
		if stemmer != nil && t.Kind == KindWord && t.Chars.IsCyrillic && utf8.RuneCountInString(t.Text) >= minStemWordLength {
			w.Stem = stemmer.Stem(t.Text)
		}
		p.Words = append(p.Words, w)
	}
	return p
}

// Key ключи индекса для первого слова: текст и основа
func (p Pattern) Key() []string {
	if len(p.Words) == 0 {
		return nil
	}
	keys := []string{p.Words[0].Text}
	if st := p.Words[0].Stem; st != "" {
		keys = append(keys, "~"+st)
	}
	return keys
}

// MatchAt сопоставляет фразу с потоком начиная с позиции i и возвращает индекс
// последнего покрытого токена
func (p Pattern) MatchAt(s *Stream, i int) (int, bool) {
	if len(p.Words) == 0 {
		return -1, false
	}
	j := i
	for k, w := range p.Words {
		t := s.At(j)
		if t == nil || t.Kind == KindReferent {
			return -1, false
		}
		if k > 0 {
			if t.NewlinesBefore > 0 {
				return -1, false
			}
			if w.Adjacent && t.WhitespacesBefore > 0 {
				return -1, false
			}
		}
		if !w.matches(t) {
			return -1, false
		}
		j++
	}
	return j - 1, true
}

func (w PatternWord) matches(t *Token) bool {
	if t.Kind != w.Kind {
		return false
	}
	if morph.Fold(t.Text) == w.Text {
		return true
	}
	return w.Stem != "" && t.Morph.Stem != "" && t.Morph.Stem == w.Stem
}

// IndexKeys ключи, под которыми следует искать фразы для токена
func IndexKeys(t *Token) []string {
	if t == nil || t.Kind == KindReferent {
		return nil
	}
	keys := []string{morph.Fold(t.Text)}
	if t.Morph.Stem != "" {
		keys = append(keys, "~"+t.Morph.Stem)
	}
	return keys
}
