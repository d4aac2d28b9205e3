package morph

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Analyzer эвристический морфологический анализатор для русского и украинского языков.
// Служебные слова определяются по закрытым спискам, прилагательные и падежи
// существительных по окончаниям. После создания безопасен для конкурентного использования.
type Analyzer struct {
	stemmer      *Stemmer
	prepositions map[string]bool
	conjunctions map[string]bool
	pronouns     map[string]bool
	adverbs      map[string]bool
}

// adjectiveEnding окончание прилагательного и соответствующие падежи
type adjectiveEnding struct {
	suffix string
	cases  Case
	number Number
	gender Gender
}

// Порядок важен: сначала более длинные окончания
var adjectiveEndings = []adjectiveEnding{
	{"ого", CaseGenitive | CaseAccusative, NumberSingular, GenderMasculine | GenderNeuter},
	{"его", CaseGenitive | CaseAccusative, NumberSingular, GenderMasculine | GenderNeuter},
	{"ому", CaseDative, NumberSingular, GenderMasculine | GenderNeuter},
	{"ему", CaseDative, NumberSingular, GenderMasculine | GenderNeuter},
	{"ыми", CaseInstrumental, NumberPlural, GenderUndefined},
	{"ими", CaseInstrumental, NumberPlural, GenderUndefined},
	{"ый", CaseNominative | CaseAccusative, NumberSingular, GenderMasculine},
	{"ий", CaseNominative | CaseAccusative, NumberSingular, GenderMasculine},
	{"ой", CaseNominative | CaseGenitive | CaseDative | CaseInstrumental | CasePrepositional, NumberSingular, GenderMasculine | GenderFeminine},
	{"ая", CaseNominative, NumberSingular, GenderFeminine},
	{"яя", CaseNominative, NumberSingular, GenderFeminine},
	{"ое", CaseNominative | CaseAccusative, NumberSingular, GenderNeuter},
	{"ее", CaseNominative | CaseAccusative, NumberSingular, GenderNeuter},
	{"ые", CaseNominative | CaseAccusative, NumberPlural, GenderUndefined},
	{"ие", CaseNominative | CaseAccusative, NumberPlural, GenderUndefined},
	{"ую", CaseAccusative, NumberSingular, GenderFeminine},
	{"юю", CaseAccusative, NumberSingular, GenderFeminine},
	{"ым", CaseInstrumental | CaseDative, NumberUndefined, GenderUndefined},
	{"ых", CaseGenitive | CasePrepositional, NumberPlural, GenderUndefined},
	{"их", CaseGenitive | CasePrepositional, NumberPlural, GenderUndefined},
	// украинские формы
	{"ої", CaseGenitive, NumberSingular, GenderFeminine},
	{"ім", CaseInstrumental, NumberSingular, GenderMasculine | GenderNeuter},
}

// Короткие слова с окончаниями прилагательных, которые прилагательными не являются
var adjectiveExceptions = map[string]bool{
	"такси": true, "шоссе": true, "кафе": true, "линия": true, "армия": true,
	"россия": true, "серия": true, "компания": true, "станция": true, "авиация": true,
	"украина": true, "машина": true, "тонна": true, "страна": true, "цена": true,
	"жена": true, "война": true, "волна": true, "весна": true, "сосна": true,
	"марина": true, "ирина": true, "полина": true, "кабина": true, "стена": true,
	"дрезина": true, "субмарина": true, "лимузин": true,
}

// NewAnalyzer создает анализатор со встроенными словарями
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		stemmer:      NewStemmer(),
		prepositions: toSet(prepositionList),
		conjunctions: toSet(conjunctionList),
		pronouns:     toSet(pronounList),
		adverbs:      toSet(adverbList),
	}
}

// Stemmer возвращает стеммер анализатора
func (a *Analyzer) Stemmer() *Stemmer {
	return a.stemmer
}

// Analyze возвращает морфологическую информацию для слова
func (a *Analyzer) Analyze(word string) Info {
	lower := strings.ToLower(strings.TrimSpace(word))
	if lower == "" {
		return Info{}
	}

	info := Info{}
	if isCyrillicWord(lower) {
		info.Stem = a.stemmer.Stem(lower)
	}

	switch {
	case a.prepositions[lower]:
		info.Class = ClassPreposition
		return info
	case a.conjunctions[lower]:
		info.Class = ClassConjunction
		return info
	case a.pronouns[lower]:
		info.Class = ClassPronoun
		return info
	case a.adverbs[lower]:
		info.Class = ClassAdverb
		return info
	}

	if !isCyrillicWord(lower) {
		// латиница: считаем существительным (чаще всего имя собственное или бренд)
		info.Class = ClassNoun
		info.Case = CaseNominative
		return info
	}

	if adj, ok := matchAdjective(lower); ok {
		info.Class = ClassAdjective
		info.Case = adj.cases
		info.Number = adj.number
		info.Gender = adj.gender
		return info
	}

	info.Class = ClassNoun
	info.Case, info.Number = nounCase(lower)
	if first, _ := utf8.DecodeRuneInString(word); unicode.IsUpper(first) {
		info.Class |= ClassProper
	}
	return info
}

// IsAdjective сокращение для проверки прилагательного
func (a *Analyzer) IsAdjective(word string) bool {
	return a.Analyze(word).Is(ClassAdjective)
}

func matchAdjective(lower string) (adjectiveEnding, bool) {
	if utf8.RuneCountInString(lower) < 5 || adjectiveExceptions[lower] {
		return adjectiveEnding{}, false
	}
	for _, e := range adjectiveEndings {
		if strings.HasSuffix(lower, e.suffix) {
			return e, true
		}
	}
	return adjectiveEnding{}, false
}

// nounCase грубая оценка падежа существительного по окончанию
func nounCase(lower string) (Case, Number) {
	switch {
	case strings.HasSuffix(lower, "ов"), strings.HasSuffix(lower, "ев"), strings.HasSuffix(lower, "ей"):
		return CaseGenitive, NumberPlural
	case strings.HasSuffix(lower, "ами"), strings.HasSuffix(lower, "ями"):
		return CaseInstrumental, NumberPlural
	case strings.HasSuffix(lower, "ом"), strings.HasSuffix(lower, "ем"):
		return CaseInstrumental, NumberSingular
	case strings.HasSuffix(lower, "а"), strings.HasSuffix(lower, "я"):
		return CaseNominative | CaseGenitive, NumberSingular
	case strings.HasSuffix(lower, "ы"), strings.HasSuffix(lower, "и"):
		return CaseNominative | CaseGenitive | CaseAccusative, NumberUndefined
	case strings.HasSuffix(lower, "у"), strings.HasSuffix(lower, "ю"):
		return CaseDative | CaseAccusative, NumberSingular
	case strings.HasSuffix(lower, "е"):
		return CaseNominative | CasePrepositional | CaseDative, NumberSingular
	}
	return CaseNominative | CaseAccusative, NumberSingular
}

func isCyrillicWord(s string) bool {
	hasCyr := false
	for _, r := range s {
		if unicode.Is(unicode.Cyrillic, r) {
			hasCyr = true
			continue
		}
		if unicode.IsLetter(r) {
			return false
		}
	}
	return hasCyr
}

func toSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

var prepositionList = []string{
	"в", "во", "на", "из", "изо", "с", "со", "к", "ко", "по", "о", "об", "обо", "от", "ото",
	"до", "для", "за", "под", "подо", "над", "при", "у", "через", "между", "без", "около",
	"вокруг", "после", "перед", "среди", "вдоль", "против",
	// украинские
	"з", "із", "зі", "від", "біля", "після", "через", "між", "для", "при", "під", "над",
}

var conjunctionList = []string{
	"и", "или", "а", "но", "либо", "да", "что", "чтобы", "как", "также", "тоже",
	"та", "і", "й", "або", "чи", "але", "що",
}

var pronounList = []string{
	"он", "она", "оно", "они", "его", "ее", "её", "их", "им", "ему", "ей", "это", "этот",
	"эта", "эти", "тот", "те", "который", "которая", "которое", "которые", "свой", "своя",
	"свое", "мой", "наш", "ваш", "який", "яка", "яке", "які", "цей", "ця", "це", "ці",
}

var adverbList = []string{
	"также", "очень", "здесь", "там", "тут", "где", "когда", "уже", "еще", "ещё", "теперь",
	"сейчас", "вчера", "сегодня", "завтра", "вже", "тепер",
}
