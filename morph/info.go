package morph

import "strings"

// Class часть речи (битовая маска, слово может быть омонимичным)
type Class uint16

const (
	ClassUndefined Class = 0
	ClassNoun      Class = 1 << iota
	ClassAdjective
	ClassVerb
	ClassAdverb
	ClassPronoun
	ClassPreposition
	ClassConjunction
	ClassNumeral
	ClassProper
)

// Case падеж (битовая маска)
type Case uint8

const (
	CaseUndefined  Case = 0
	CaseNominative Case = 1 << iota
	CaseGenitive
	CaseDative
	CaseAccusative
	CaseInstrumental
	CasePrepositional
)

// Number грамматическое число
type Number uint8

const (
	NumberUndefined Number = iota
	NumberSingular
	NumberPlural
)

// Gender грамматический род (битовая маска)
type Gender uint8

const (
	GenderUndefined Gender = 0
	GenderMasculine Gender = 1 << iota
	GenderFeminine
	GenderNeuter
)

// Info морфологическая информация о слове
type Info struct {
	Class  Class
	Case   Case
	Number Number
	Gender Gender
	// Stem основа слова (Snowball), пустая для не-кириллических слов
	Stem string
}

// Is проверяет наличие части речи
func (i Info) Is(c Class) bool {
	return i.Class&c != 0
}

// IsGenitiveOnly истина, если словоформа однозначно в родительном падеже
func (i Info) IsGenitiveOnly() bool {
	return i.Case == CaseGenitive
}

// Fold приводит слово к форме для сравнения со словарем: верхний регистр, Ё -> Е
func Fold(s string) string {
	s = strings.ToUpper(s)
	return strings.ReplaceAll(s, "Ё", "Е")
}
