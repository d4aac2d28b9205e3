package transport

import (
	"unicode"
	"unicode/utf8"

	"transportner/tokens"
)

// DefaultMaxItems максимальное число элементов в одной последовательности
const DefaultMaxItems = 10

// Builder наращивает последовательность элементов, начиная с существительного
// или марки. Безопасен для конкурентного использования.
type Builder struct {
	rec                  *Recognizer
	MaxItems             int
	PreferHighConfidence bool
}

// NewBuilder создает построитель последовательностей
func NewBuilder(rec *Recognizer) *Builder {
	return &Builder{rec: rec, MaxItems: DefaultMaxItems}
}

// Recognizer распознаватель построителя
func (b *Builder) Recognizer() *Recognizer {
	return b.rec
}

// CheckNumberKeyword см. Recognizer.CheckNumberKeyword
func (b *Builder) CheckNumberKeyword(s *tokens.Stream, i int) (int, bool) {
	return b.rec.CheckNumberKeyword(s, i)
}

// Build строит последовательность элементов, начинающуюся в позиции i.
// Элементы упорядочены и не пересекаются; nil, если последовательности нет.
func (b *Builder) Build(s *tokens.Stream, i int) []*Match {
	maxItems := b.MaxItems
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}

	seed := b.rec.TryMatch(s, i, nil, false, b.PreferHighConfidence)
	if seed == nil || seed.is(CategoryOrg, CategoryNumber, CategoryClass, CategoryDate) {
		return nil
	}
	items := []*Match{seed}
	cur := seed.End + 1
	if seed.Category == CategoryNoun {
		cur = skipFiller(s, cur)
	}

	for len(items) < maxItems && s.Valid(cur) {
		prev := items[len(items)-1]
		m, last := b.next(s, cur, prev)
		if m == nil {
			// "(автомобиль ВАЗ), г/н ...": скобка открыта внутри последовательности
			// или непосредственно перед ней
			if s.IsCloseBracket(cur) && opensWithin(s, items[0].Begin-1, cur) {
				prev.End = cur
				cur++
				continue
			}
			break
		}
		if m.Begin <= prev.End || m.End < m.Begin {
			break
		}
		if m.Category != CategoryNumber && (s.At(m.Begin).NewlinesBefore > 0 || s.At(cur).NewlinesBefore > 0) {
			break
		}
		items = append(items, m)
		cur = m.End + 1
		if last {
			break
		}
	}

	items = MergeModels(s, items)
	if isWeakBrandModel(s, items) {
		return nil
	}
	return items
}

// next распознает следующий элемент, применяя обходы разделителей.
// last означает, что после элемента последовательность завершается.
func (b *Builder) next(s *tokens.Stream, cur int, prev *Match) (m *Match, last bool) {
	try := func(i int, afterConjunction bool) *Match {
		return b.rec.TryMatch(s, i, prev, afterConjunction, b.PreferHighConfidence)
	}

	if m := try(cur, false); m != nil {
		return m, false
	}

	// после закрывающей скобки
	if s.IsCloseBracket(cur) && s.CanEndSequence(cur, false) {
		if m := try(cur+1, false); m != nil {
			return m, false
		}
	}

	// после марки или модели пропускаем один знак: "ВАЗ-2110, г/н ..."
	if prev.is(CategoryBrand, CategoryModel) && isSkippable(s, cur) {
		if m := try(cur+1, false); m != nil && !m.is(CategoryNoun, CategoryBrand) {
			return m, false
		}
	}

	// встроенная сущность как обычное слово: "теплоход Москва"
	if plain, ok := s.WithPlain(cur); ok {
		if m := b.rec.TryMatch(plain, cur, prev, false, b.PreferHighConfidence); m != nil {
			return m, false
		}
	}

	if s.IsBracketStart(cur, false) {
		closeIdx := s.MatchBracket(cur)
		if m := try(cur+1, false); m != nil && m.is(CategoryNumber, CategoryGeo) && m.End < closeIdx {
			m.Begin = cur
			if m.End+1 == closeIdx {
				m.End = closeIdx
			}
			return m, false
		}
		if m := try(closeIdx+1, false); m != nil && m.is(CategoryNumber) {
			return m, false
		}
	}

	if s.IsHyphen(cur) && prev.is(CategoryBrand, CategoryModel) {
		if m := try(cur+1, false); m != nil {
			return m, false
		}
	}

	if s.IsComma(cur) && prev.is(CategoryName, CategoryBrand, CategoryModel, CategoryClass, CategoryDate, CategoryGeo) {
		if m := try(cur+1, false); m != nil && m.is(CategoryNumber) {
			return m, false
		}
	}

	// "суда «Мария» и «Анна»"
	if prev.is(CategoryName) && (s.IsComma(cur) || s.IsAnd(cur)) {
		if m := try(cur+1, true); m != nil && m.is(CategoryName) {
			m.IsAfterConjunction = true
			return m, true
		}
	}
	return nil, false
}

// isSkippable знак, который можно пропустить после марки или модели
func isSkippable(s *tokens.Stream, i int) bool {
	return s.IsComma(i) || s.IsColon(i) || s.IsChar(i, ';', '/')
}

// opensWithin парная открывающая скобка находится в позициях [from, closeIdx)
func opensWithin(s *tokens.Stream, from, closeIdx int) bool {
	for j := closeIdx - 1; j >= from && j >= 0; j-- {
		if s.MatchBracket(j) == closeIdx {
			return true
		}
	}
	return false
}

// MergeModels объединяет соседние модели: через дефис, если между ними дефис,
// иначе через пробел. Повторное применение ничего не меняет.
func MergeModels(s *tokens.Stream, items []*Match) []*Match {
	out := make([]*Match, 0, len(items))
	for _, it := range items {
		if n := len(out); n > 0 && out[n-1].Category == CategoryModel && it.Category == CategoryModel {
			a := out[n-1]
			sep := " "
			for k := a.End + 1; k < it.Begin; k++ {
				if s.IsHyphen(k) {
					sep = "-"
					break
				}
			}
			merged := *a
			merged.Value = a.Value + sep + it.Value
			if a.AltValue != "" || it.AltValue != "" {
				merged.AltValue = altOrValue(a) + sep + altOrValue(it)
			}
			merged.End = it.End
			merged.IsDoubt = a.IsDoubt && it.IsDoubt
			out[n-1] = &merged
			continue
		}
		out = append(out, it)
	}
	return out
}

func altOrValue(m *Match) string {
	if m.AltValue != "" {
		return m.AltValue
	}
	return m.Value
}

// isWeakBrandModel [марка, модель] с моделью из одной буквы - слишком слабый признак
func isWeakBrandModel(s *tokens.Stream, items []*Match) bool {
	if len(items) != 2 || items[0].Category != CategoryBrand || items[1].Category != CategoryModel {
		return false
	}
	m := items[1]
	if m.Begin != m.End {
		return false
	}
	text := s.At(m.Begin).Text
	if utf8.RuneCountInString(text) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(text)
	return !unicode.IsDigit(r)
}
