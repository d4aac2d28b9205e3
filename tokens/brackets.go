package tokens

// Максимальное число токенов между открывающей и закрывающей скобкой
const maxBracketSpan = 40

var openToClose = map[rune][]rune{
	'(':  {')'},
	'[':  {']'},
	'{':  {'}'},
	'«':  {'»'},
	'“':  {'”', '“'},
	'„':  {'“', '”'},
	'"':  {'"', '“', '”'},
	'\'': {'\'', '’'},
	'‘':  {'’'},
}

var quoteRunes = map[rune]bool{
	'«': true, '»': true, '“': true, '”': true, '„': true, '"': true, '\'': true, '‘': true, '’': true,
}

var closeRunes = map[rune]bool{
	')': true, ']': true, '}': true, '»': true, '”': true, '“': true, '"': true, '\'': true, '’': true,
}

// IsBracket скобка или кавычка (открывающая либо закрывающая)
func (s *Stream) IsBracket(i int, quotesOnly bool) bool {
	r := s.At(i).Rune()
	if r == 0 {
		return false
	}
	if quotesOnly {
		return quoteRunes[r]
	}
	_, open := openToClose[r]
	return open || closeRunes[r]
}

// IsQuote кавычка
func (s *Stream) IsQuote(i int) bool {
	return quoteRunes[s.At(i).Rune()]
}

// IsCloseBracket закрывающая скобка или кавычка
func (s *Stream) IsCloseBracket(i int) bool {
	return closeRunes[s.At(i).Rune()]
}

// CanStartSequence может ли токен открывать скобочную последовательность:
// после него нет пробела, перед ним пробел, начало строки или другая скобка
func (s *Stream) CanStartSequence(i int, quotesOnly bool) bool {
	t := s.At(i)
	r := t.Rune()
	if _, ok := openToClose[r]; !ok {
		return false
	}
	if quotesOnly && !quoteRunes[r] {
		return false
	}
	next := s.At(i + 1)
	if next == nil || next.NewlinesBefore > 0 {
		return false
	}
	if quoteRunes[r] && !isSymmetricQuote(r) {
		return true
	}
	if r == '(' || r == '[' || r == '{' {
		return true
	}
	// симметричные кавычки: открывающая прижата к следующему слову
	if next.WhitespacesBefore > 0 {
		return false
	}
	return i == 0 || t.WhitespacesBefore > 0 || s.IsBracket(i-1, false)
}

// CanEndSequence может ли токен закрывать скобочную последовательность
func (s *Stream) CanEndSequence(i int, quotesOnly bool) bool {
	t := s.At(i)
	r := t.Rune()
	if !closeRunes[r] {
		return false
	}
	if quotesOnly && !quoteRunes[r] {
		return false
	}
	if !isSymmetricQuote(r) {
		return true
	}
	if i > 0 && t.WhitespacesBefore > 0 {
		return false
	}
	return s.IsWhitespaceAfter(i) || s.At(i+1).IsPunct()
}

// IsBracketStart открывающая скобка с найденной парой
func (s *Stream) IsBracketStart(i int, quotesOnly bool) bool {
	if !s.CanStartSequence(i, quotesOnly) {
		return false
	}
	return s.MatchBracket(i) > i
}

// MatchBracket возвращает индекс закрывающей скобки, парной к открывающей в позиции i,
// или -1. Поиск ограничен и не переходит через перевод строки.
func (s *Stream) MatchBracket(i int) int {
	open := s.At(i).Rune()
	closers, ok := openToClose[open]
	if !ok {
		return -1
	}
	depth := 0
	for j := i + 1; j < s.Len() && j-i <= maxBracketSpan; j++ {
		t := s.At(j)
		if t.NewlinesBefore > 0 {
			return -1
		}
		r := t.Rune()
		if r == 0 {
			continue
		}
		if containsRune(closers, r) && s.CanEndSequence(j, false) {
			if depth == 0 {
				return j
			}
			depth--
			continue
		}
		if r == open && !isSymmetricQuote(open) && s.CanStartSequence(j, false) {
			depth++
		}
	}
	return -1
}

func isSymmetricQuote(r rune) bool {
	return r == '"' || r == '\''
}

func containsRune(rs []rune, r rune) bool {
	for _, c := range rs {
		if c == r {
			return true
		}
	}
	return false
}
