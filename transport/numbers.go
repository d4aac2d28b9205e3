package transport

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"transportner/morph"
	"transportner/tokens"
)

const (
	// minNumberLength минимальная длина кода для общего номера
	minNumberLength = 4
	// maxNumberFragment максимальная длина буквенного фрагмента номера
	maxNumberFragment = 3
	// regionSplitMin, regionSplitMax длина хвоста, отделяемого как код региона
	regionSplitMin = 2
	regionSplitMax = 3
	// maxWeakPlateSignals допустимое число слабых признаков номерного знака
	maxWeakPlateSignals = 1
	// maxRegionDigits максимальная длина кода региона номерного знака
	maxRegionDigits = 3
)

// Буквы российского номерного знака и их латинские двойники
var plateLetters = map[rune]rune{
	'А': 'А', 'В': 'В', 'Е': 'Е', 'К': 'К', 'М': 'М', 'Н': 'Н', 'О': 'О', 'Р': 'Р', 'С': 'С', 'Т': 'Т', 'У': 'У', 'Х': 'Х',
	'A': 'А', 'B': 'В', 'E': 'Е', 'K': 'К', 'M': 'М', 'H': 'Н', 'O': 'О', 'P': 'Р', 'C': 'С', 'T': 'Т', 'Y': 'У', 'X': 'Х',
}

// scanGenericNumber общий буквенно-цифровой код: группы цифр и короткие
// заглавные фрагменты через не более чем один пробел или дефис
func scanGenericNumber(s *tokens.Stream, i int, ignoreRegionSplit bool) *Match {
	return unwrapBrackets(s, i, func(j int) *Match {
		return scanGenericNumberAt(s, j, ignoreRegionSplit)
	})
}

func scanGenericNumberAt(s *tokens.Stream, i int, ignoreRegionSplit bool) *Match {
	var raw strings.Builder
	hasDigits := false
	end := -1
	for j := i; s.Valid(j); {
		t := s.At(j)
		switch {
		case t.IsNumber():
			hasDigits = true
		case isNumberFragment(t):
		default:
			j = s.Len()
			continue
		}
		raw.WriteString(morph.Fold(t.Text))
		end = j

		next := j + 1
		sep := ""
		if s.IsHyphen(next) && s.At(next).WhitespacesBefore == 0 && s.At(next+1) != nil && s.At(next+1).WhitespacesBefore == 0 {
			sep = "-"
			next++
		}
		nt := s.At(next)
		if nt == nil || nt.NewlinesBefore > 0 || nt.WhitespacesBefore > 1 || !(nt.IsNumber() || isNumberFragment(nt)) {
			break
		}
		if sep == "" && nt.WhitespacesBefore == 1 {
			sep = " "
		}
		raw.WriteString(sep)
		j = next
	}
	if end < 0 || !hasDigits {
		return nil
	}

	code := raw.String()
	value := stripSeparators(code)
	if utf8.RuneCountInString(value) < minNumberLength {
		return nil
	}
	m := &Match{Begin: i, End: end, Category: CategoryNumber, Value: value}
	if !ignoreRegionSplit {
		if head, region, ok := splitRegion(code); ok {
			m.Value = head
			m.AltValue = region
		}
	}
	return m
}

// splitRegion отделяет код региона: одиночный разделитель за 2-3 символа до конца
func splitRegion(code string) (string, string, bool) {
	runes := []rune(code)
	for n := regionSplitMin; n <= regionSplitMax; n++ {
		p := len(runes) - n - 1
		if p <= 0 || !isSeparator(runes[p]) {
			continue
		}
		region := string(runes[p+1:])
		head := stripSeparators(string(runes[:p]))
		if !isDigits(region) || head == "" {
			return "", "", false
		}
		return head, region, true
	}
	return "", "", false
}

// scanPlateNumber российский номерной знак: буква, три цифры, две буквы и
// необязательный код региона из 1-3 цифр
func scanPlateNumber(s *tokens.Stream, i int) *Match {
	return unwrapBrackets(s, i, func(j int) *Match {
		return scanPlateNumberAt(s, j)
	})
}

func scanPlateNumberAt(s *tokens.Stream, i int) *Match {
	first, digits, series := s.At(i), s.At(i+1), s.At(i+2)
	if !first.IsWord() || !digits.IsNumber() || !series.IsWord() {
		return nil
	}
	if !isPlateGap(digits) || !isPlateGap(series) {
		return nil
	}
	letter, ok := plateText(first.Text, 1)
	if !ok || len(digits.Text) != 3 {
		return nil
	}
	letters, ok := plateText(series.Text, 2)
	if !ok {
		return nil
	}

	m := &Match{Begin: i, End: i + 2, Category: CategoryNumber, Kind: KindAuto, Value: letter + digits.Text + letters}
	if region := s.At(i + 3); region.IsNumber() && isPlateGap(region) && len(region.Text) <= maxRegionDigits {
		m.AltValue = region.Text
		if len(m.AltValue) < 2 {
			m.AltValue = "0" + m.AltValue
		}
		m.End = i + 3
	}

	weak := 0
	if !first.Chars.IsAllUpper {
		weak++
	}
	if !series.Chars.IsAllUpper {
		weak++
	}
	if after := s.At(m.End + 1); after != nil && after.WhitespacesBefore == 0 && (after.IsWord() || after.IsNumber()) {
		weak++
	}
	m.IsDoubt = weak > maxWeakPlateSignals

	if s.IsValue(m.End+1, "RUS") && s.At(m.End+1).NewlinesBefore == 0 {
		m.End++
		m.IsDoubt = false
	}
	return m
}

// unwrapBrackets применяет сканер внутри скобок и расширяет совпадение на скобки,
// если скобка закрывается сразу после совпадения
func unwrapBrackets(s *tokens.Stream, i int, scan func(int) *Match) *Match {
	if !s.IsBracketStart(i, false) {
		return scan(i)
	}
	closeIdx := s.MatchBracket(i)
	m := scan(i + 1)
	if m == nil || m.End+1 != closeIdx {
		return nil
	}
	m.Begin = i
	m.End = closeIdx
	return m
}

// isNumberFragment короткое заглавное буквенное слово внутри кода
func isNumberFragment(t *tokens.Token) bool {
	return t.IsWord() && t.Chars.IsAllUpper && utf8.RuneCountInString(t.Text) <= maxNumberFragment
}

// isPlateGap между частями номерного знака не больше одного пробела
func isPlateGap(t *tokens.Token) bool {
	return t.NewlinesBefore == 0 && t.WhitespacesBefore <= 1
}

// plateText приводит буквы номерного знака к кириллице
func plateText(text string, n int) (string, bool) {
	if utf8.RuneCountInString(text) != n {
		return "", false
	}
	var b strings.Builder
	for _, r := range strings.ToUpper(text) {
		c, ok := plateLetters[r]
		if !ok {
			return "", false
		}
		b.WriteRune(c)
	}
	return b.String(), true
}

func isSeparator(r rune) bool {
	return r == ' ' || r == '-'
}

func stripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		if isSeparator(r) {
			return -1
		}
		return r
	}, s)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
