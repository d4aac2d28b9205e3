// Package tokens содержит поток токенов, который потребляет анализатор транспортных
// средств: непрерывный массив токенов с байтовыми диапазонами в исходном тексте,
// признаками символов, морфологией и встроенными сущностями.
package tokens

import (
	"unicode"

	"transportner/morph"
	"transportner/referents"
)

// Kind тип токена
type Kind int

const (
	KindWord Kind = iota
	KindNumber
	KindPunct
	// KindReferent токен, заменяющий фрагмент текста уже распознанной сущностью
	KindReferent
)

// Token единица потока. Анализатор токены не изменяет.
type Token struct {
	// Begin, End байтовый диапазон [Begin, End) в нормализованном тексте
	Begin int
	End   int
	Text  string
	Kind  Kind

	WhitespacesBefore int
	WhitespacesAfter  int
	NewlinesBefore    int
	NewlinesAfter     int

	Chars CharInfo
	Morph morph.Info

	// Referent заполнен только для KindReferent
	Referent *referents.Referent
	// Inner исходные токены, покрытые сущностью
	Inner []Token
}

// IsWord истина для буквенного токена
func (t *Token) IsWord() bool {
	return t != nil && t.Kind == KindWord
}

// IsNumber истина для числового токена
func (t *Token) IsNumber() bool {
	return t != nil && t.Kind == KindNumber
}

// IsPunct истина для знака препинания
func (t *Token) IsPunct() bool {
	return t != nil && t.Kind == KindPunct
}

// IsReferent истина для токена-сущности
func (t *Token) IsReferent() bool {
	return t != nil && t.Kind == KindReferent && t.Referent != nil
}

// ReferentOf возвращает сущность токена, если она указанного типа
func (t *Token) ReferentOf(kind referents.Kind) *referents.Referent {
	if !t.IsReferent() || t.Referent.Kind != kind {
		return nil
	}
	return t.Referent
}

// Rune возвращает единственный символ знака препинания или 0
func (t *Token) Rune() rune {
	if t == nil || t.Kind != KindPunct {
		return 0
	}
	for _, r := range t.Text {
		return r
	}
	return 0
}

// CharInfo признаки символов токена
type CharInfo struct {
	IsLetter       bool
	IsDigit        bool
	IsAllUpper     bool
	IsAllLower     bool
	IsCapitalUpper bool
	IsCyrillic     bool
	IsLatin        bool
}

// IsMixedScript кириллица и латиница в одном слове
func (c CharInfo) IsMixedScript() bool {
	return c.IsCyrillic && c.IsLatin
}

// CharInfoOf вычисляет признаки символов для текста токена
func CharInfoOf(text string) CharInfo {
	var ci CharInfo
	if text == "" {
		return ci
	}
	letters, upper, lower, digits := 0, 0, 0, 0
	first := true
	firstUpper := false
	for _, r := range text {
		switch {
		case unicode.IsLetter(r):
			letters++
			if unicode.IsUpper(r) {
				upper++
				if first {
					firstUpper = true
				}
			} else if unicode.IsLower(r) {
				lower++
			}
			if unicode.Is(unicode.Cyrillic, r) {
				ci.IsCyrillic = true
			} else if unicode.Is(unicode.Latin, r) {
				ci.IsLatin = true
			}
		case unicode.IsDigit(r):
			digits++
		}
		first = false
	}
	ci.IsLetter = letters > 0 && digits == 0
	ci.IsDigit = digits > 0 && letters == 0
	if letters > 0 {
		ci.IsAllUpper = upper == letters
		ci.IsAllLower = lower == letters
		ci.IsCapitalUpper = firstUpper && upper == 1 && letters > 1
	}
	return ci
}
