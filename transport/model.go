package transport

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"transportner/morph"
	"transportner/referents"
	"transportner/tokens"
)

// maxModelFragment длина слова, которое может продолжать модель через пробел ("CAMRY XLE")
const maxModelFragment = 3

// Кириллические буквы, совпадающие по начертанию с латинскими
var cyrToLat = map[rune]rune{
	'А': 'A', 'В': 'B', 'Е': 'E', 'К': 'K', 'М': 'M', 'Н': 'H', 'О': 'O', 'Р': 'P', 'С': 'C', 'Т': 'T', 'У': 'Y', 'Х': 'X',
	'І': 'I',
}

var latToCyr = func() map[rune]rune {
	m := make(map[rune]rune, len(cyrToLat))
	for c, l := range cyrToLat {
		m[l] = c
	}
	return m
}()

// attachModel выделяет модель, начиная с позиции i. Модель накапливается
// параллельно в кириллическом и латинском написании; написание, для которого
// встретился символ без двойника, отбрасывается.
func (r *Recognizer) attachModel(q *query, i int, allowFirstWord bool) *Match {
	s, prev := q.s, q.prev
	var cyr, lat strings.Builder
	cyrOK, latOK := true, true
	begin, end := -1, -1
	doubt := false
	digitsOpen := false

	j := i
	leadingHyphen := false
	if s.IsHyphen(j) {
		// "ВАЗ-2110": дефис допустим только сразу после марки
		n := s.At(j + 1)
		if !prev.is(CategoryBrand) || n == nil || n.NewlinesBefore > 0 || n.WhitespacesBefore > 1 {
			return nil
		}
		leadingHyphen = true
		j++
	}

scan:
	for ; s.Valid(j); j++ {
		t := s.At(j)
		if t.IsReferent() {
			break
		}
		if begin >= 0 {
			if t.NewlinesBefore > 0 || t.WhitespacesBefore > 1 || r.startsIndependentItem(s, j) {
				break
			}
		}

		switch {
		case t.IsNumber():
			// вторая группа цифр через пробел - уже не модель
			if digitsOpen {
				break scan
			}
			writeGap(s, j, begin, &cyr, &lat)
			cyr.WriteString(t.Text)
			lat.WriteString(t.Text)
			digitsOpen = true

		case t.IsWord():
			hyphenLed := (begin < 0 && leadingHyphen) || (begin >= 0 && s.IsHyphen(j-1))
			if t.Chars.IsAllLower && s.IsWhitespaceBefore(j) && s.IsWhitespaceAfter(j) && !hyphenLed {
				break scan
			}
			if begin < 0 {
				ok, weak := r.canStartModel(q, j, allowFirstWord, hyphenLed)
				if !ok {
					return nil
				}
				doubt = weak
				if prev.is(CategoryBrand) && t.Chars.IsLatin && !t.Chars.IsCyrillic && t.Chars.IsAllUpper {
					// "BMW X5": латинская модель после марки
					cyrOK = false
				}
			} else if !hyphenLed && t.WhitespacesBefore > 0 && !isModelFragment(t) {
				break scan
			}
			c, l, cOK, lOK := splitLookalike(morph.Fold(t.Text))
			cyrOK = cyrOK && cOK
			latOK = latOK && lOK
			writeGap(s, j, begin, &cyr, &lat)
			cyr.WriteString(c)
			lat.WriteString(l)
			digitsOpen = false

		case s.IsHyphen(j) && begin >= 0:
			n := s.At(j + 1)
			if n == nil || n.WhitespacesBefore > 0 || !(n.IsNumber() || n.IsWord()) {
				break scan
			}
			cyr.WriteByte('-')
			lat.WriteByte('-')
			digitsOpen = false
			continue

		default:
			break scan
		}
		if begin < 0 {
			begin = j
		}
		end = j
	}
	if begin < 0 {
		return nil
	}

	cyrText := strings.TrimRight(cyr.String(), "-")
	latText := strings.TrimRight(lat.String(), "-")
	var value, alt string
	switch {
	case latOK && latText != "":
		value = latText
		if cyrOK && cyrText != value {
			alt = cyrText
		}
	case cyrOK && cyrText != "":
		value = cyrText
	default:
		value = collapseSpaces(morph.Fold(s.Span(begin, end)))
	}
	if value == "" {
		return nil
	}

	if res, ok := r.resolve(referents.KindPerson, s, begin); ok && res.End <= end {
		return nil
	}

	m := &Match{Begin: begin, End: end, Category: CategoryModel, Value: value, AltValue: alt, IsDoubt: doubt}
	if prev != nil {
		m.Kind = prev.Kind
	}
	return m
}

// writeGap переносит в модель пробел перед фрагментом: "CAMRY XLE", "737 MAX"
func writeGap(s *tokens.Stream, j, begin int, cyr, lat *strings.Builder) {
	if begin < 0 || s.At(j).WhitespacesBefore == 0 || s.IsHyphen(j-1) {
		return
	}
	cyr.WriteByte(' ')
	lat.WriteByte(' ')
}

// canStartModel может ли слово начинать модель; weak - модель без марки сомнительна
func (r *Recognizer) canStartModel(q *query, j int, allowFirstWord, hyphenLed bool) (ok, weak bool) {
	s, prev := q.s, q.prev
	t := s.At(j)
	if _, _, found := r.ontology.Lookup(s, j); found {
		return false, false
	}
	if t.Morph.Class&closedClasses != 0 {
		return false, false
	}
	if t.Chars.IsAllLower || hyphenLed {
		return prev.is(CategoryBrand), false
	}
	if !allowFirstWord {
		return false, false
	}
	if prev.is(CategoryNoun) && (prev.Kind == KindShip || prev.Kind == KindSpace) {
		return false, false
	}
	if t.Morph.IsGenitiveOnly() && !prev.is(CategoryBrand) {
		return false, false
	}
	return true, !prev.is(CategoryBrand)
}

// startsIndependentItem с позиции начинается самостоятельный элемент
func (r *Recognizer) startsIndependentItem(s *tokens.Stream, j int) bool {
	if s.IsChar(j, '№') {
		return true
	}
	_, _, ok := r.ontology.Lookup(s, j)
	return ok
}

// isModelFragment короткое заглавное слово или код, продолжающий модель через пробел
func isModelFragment(t *tokens.Token) bool {
	return t.IsWord() && t.Chars.IsAllUpper && utf8.RuneCountInString(t.Text) <= maxModelFragment
}

// splitLookalike строит кириллическое и латинское написания слова из
// букв-двойников. cyrOK/latOK ложны, если у какой-то буквы двойника нет.
func splitLookalike(upper string) (cyr, lat string, cyrOK, latOK bool) {
	var c, l strings.Builder
	cyrOK, latOK = true, true
	for _, r := range upper {
		switch {
		case unicode.IsDigit(r) || r == '-':
			c.WriteRune(r)
			l.WriteRune(r)
		case unicode.Is(unicode.Cyrillic, r):
			c.WriteRune(r)
			if m, ok := cyrToLat[r]; ok {
				l.WriteRune(m)
			} else {
				latOK = false
			}
		case unicode.Is(unicode.Latin, r):
			l.WriteRune(r)
			if m, ok := latToCyr[r]; ok {
				c.WriteRune(m)
			} else {
				cyrOK = false
			}
		default:
			cyrOK, latOK = false, false
		}
	}
	return c.String(), l.String(), cyrOK, latOK
}
