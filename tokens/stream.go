package tokens

import (
	"strings"

	"transportner/morph"
	"transportner/referents"
)

// Stream непрерывный массив токенов документа.
// Совпадения ссылаются на токены индексами, поэтому поток неизменяем после построения.
type Stream struct {
	Text   string
	Tokens []Token
}

// Len количество токенов
func (s *Stream) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Tokens)
}

// Valid проверяет, что индекс указывает на токен
func (s *Stream) Valid(i int) bool {
	return s != nil && i >= 0 && i < len(s.Tokens)
}

// At возвращает токен или nil, если индекс вне потока
func (s *Stream) At(i int) *Token {
	if !s.Valid(i) {
		return nil
	}
	return &s.Tokens[i]
}

// IsChar проверяет, что токен - один из указанных знаков
func (s *Stream) IsChar(i int, chars ...rune) bool {
	r := s.At(i).Rune()
	if r == 0 {
		return false
	}
	for _, c := range chars {
		if r == c {
			return true
		}
	}
	return false
}

// IsHyphen дефис или тире
func (s *Stream) IsHyphen(i int) bool {
	return s.IsChar(i, '-', '‐', '‑', '–', '—', '−')
}

// IsComma запятая
func (s *Stream) IsComma(i int) bool {
	return s.IsChar(i, ',')
}

// IsColon двоеточие
func (s *Stream) IsColon(i int) bool {
	return s.IsChar(i, ':')
}

// IsAnd сочинительный союз "и" (русский, украинский, английский)
func (s *Stream) IsAnd(i int) bool {
	t := s.At(i)
	if !t.IsWord() {
		return false
	}
	switch morph.Fold(t.Text) {
	case "И", "ТА", "І", "Й", "AND":
		return true
	}
	return false
}

// IsValue проверяет текст слова без учета регистра
func (s *Stream) IsValue(i int, values ...string) bool {
	t := s.At(i)
	if t == nil || t.Kind == KindReferent {
		return false
	}
	folded := morph.Fold(t.Text)
	for _, v := range values {
		if folded == v {
			return true
		}
	}
	return false
}

// IsNewlineBefore перевод строки перед токеном (или начало текста)
func (s *Stream) IsNewlineBefore(i int) bool {
	t := s.At(i)
	if t == nil {
		return false
	}
	return i == 0 || t.NewlinesBefore > 0
}

// IsWhitespaceBefore пробельные символы перед токеном
func (s *Stream) IsWhitespaceBefore(i int) bool {
	t := s.At(i)
	return t != nil && (i == 0 || t.WhitespacesBefore > 0)
}

// IsWhitespaceAfter пробельные символы после токена (или конец текста)
func (s *Stream) IsWhitespaceAfter(i int) bool {
	t := s.At(i)
	return t != nil && (i == len(s.Tokens)-1 || t.WhitespacesAfter > 0)
}

// Span возвращает исходный текст диапазона токенов (включительно)
func (s *Stream) Span(begin, end int) string {
	if !s.Valid(begin) || !s.Valid(end) || end < begin {
		return ""
	}
	from, to := s.Tokens[begin].Begin, s.Tokens[end].End
	if from < 0 || to > len(s.Text) || from > to {
		return ""
	}
	return s.Text[from:to]
}

// Embed возвращает новый поток, где токены [begin, end] заменены одним токеном-сущностью
func (s *Stream) Embed(begin, end int, ref *referents.Referent) *Stream {
	if !s.Valid(begin) || !s.Valid(end) || end < begin || ref == nil {
		return s
	}
	first, last := s.Tokens[begin], s.Tokens[end]
	inner := make([]Token, end-begin+1)
	copy(inner, s.Tokens[begin:end+1])

	rt := Token{
		Begin:             first.Begin,
		End:               last.End,
		Text:              s.Text[first.Begin:last.End],
		Kind:              KindReferent,
		WhitespacesBefore: first.WhitespacesBefore,
		NewlinesBefore:    first.NewlinesBefore,
		WhitespacesAfter:  last.WhitespacesAfter,
		NewlinesAfter:     last.NewlinesAfter,
		Chars:             CharInfoOf(s.Text[first.Begin:last.End]),
		Morph:             first.Morph,
		Referent:          ref,
		Inner:             inner,
	}

	out := make([]Token, 0, len(s.Tokens)-(end-begin))
	out = append(out, s.Tokens[:begin]...)
	out = append(out, rt)
	out = append(out, s.Tokens[end+1:]...)
	return &Stream{Text: s.Text, Tokens: out}
}

// WithPlain возвращает копию потока, где однотокенная сущность в позиции i
// заменена исходным текстовым токеном. Индексы остальных токенов не меняются.
func (s *Stream) WithPlain(i int) (*Stream, bool) {
	t := s.At(i)
	if !t.IsReferent() || len(t.Inner) != 1 {
		return s, false
	}
	out := make([]Token, len(s.Tokens))
	copy(out, s.Tokens)
	plain := t.Inner[0]
	plain.WhitespacesBefore = t.WhitespacesBefore
	plain.NewlinesBefore = t.NewlinesBefore
	plain.WhitespacesAfter = t.WhitespacesAfter
	plain.NewlinesAfter = t.NewlinesAfter
	out[i] = plain
	return &Stream{Text: s.Text, Tokens: out}, true
}

// String отладочное представление
func (s *Stream) String() string {
	var b strings.Builder
	for i := range s.Tokens {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(s.Tokens[i].Text)
	}
	return b.String()
}
