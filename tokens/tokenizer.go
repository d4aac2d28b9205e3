package tokens

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"transportner/morph"
)

// Tokenize разбивает текст на токены: последовательности букв, последовательности цифр
// и одиночные знаки. Текст предварительно приводится к форме NFC.
// Апостроф внутри слова (украинское "п'ять") остается частью слова.
func Tokenize(text string, analyzer *morph.Analyzer) *Stream {
	text = norm.NFC.String(text)
	s := &Stream{Text: text}

	spaces, newlines := 0, 0
	pos := 0
	for pos < len(text) {
		r, size := utf8.DecodeRuneInString(text[pos:])
		switch {
		case r == '\n':
			spaces++
			newlines++
			pos += size
			continue
		case unicode.IsSpace(r):
			spaces++
			pos += size
			continue
		}

		start := pos
		kind := KindPunct
		switch {
		case unicode.IsLetter(r):
			kind = KindWord
			pos = scanWord(text, pos)
		case unicode.IsDigit(r):
			kind = KindNumber
			pos = scanWhile(text, pos, unicode.IsDigit)
		default:
			pos += size
		}

		tok := Token{
			Begin:             start,
			End:               pos,
			Text:              text[start:pos],
			Kind:              kind,
			WhitespacesBefore: spaces,
			NewlinesBefore:    newlines,
		}
		tok.Chars = CharInfoOf(tok.Text)
		if kind == KindWord && analyzer != nil {
			tok.Morph = analyzer.Analyze(tok.Text)
		}
		if n := len(s.Tokens); n > 0 {
			s.Tokens[n-1].WhitespacesAfter = spaces
			s.Tokens[n-1].NewlinesAfter = newlines
		}
		s.Tokens = append(s.Tokens, tok)
		spaces, newlines = 0, 0
	}
	if n := len(s.Tokens); n > 0 {
		s.Tokens[n-1].WhitespacesAfter = spaces
		s.Tokens[n-1].NewlinesAfter = newlines
	}
	return s
}

func scanWhile(text string, pos int, pred func(rune) bool) int {
	for pos < len(text) {
		r, size := utf8.DecodeRuneInString(text[pos:])
		if !pred(r) {
			break
		}
		pos += size
	}
	return pos
}

// scanWord читает буквы; апостроф допускается между двумя буквами
func scanWord(text string, pos int) int {
	for pos < len(text) {
		r, size := utf8.DecodeRuneInString(text[pos:])
		if unicode.IsLetter(r) || unicode.Is(unicode.Mn, r) {
			pos += size
			continue
		}
		if r == '\'' || r == '’' || r == 'ʼ' {
			next, _ := utf8.DecodeRuneInString(text[pos+size:])
			if pos+size < len(text) && unicode.IsLetter(next) {
				pos += size
				continue
			}
		}
		break
	}
	return pos
}
