package transport

import (
	"fmt"
	"strings"

	"transportner/morph"
	"transportner/tokens"
)

// Term словарный термин
type Term struct {
	Canonical string
	Variants  []string
	Lang      string
	Category  Category
	Kind      VehicleKind
	// Ambiguous низкая уверенность: термин совпадает с общеупотребительным словом
	Ambiguous bool

	forms []string
}

type termEntry struct {
	term    *Term
	pattern tokens.Pattern
}

// keyword служебные слова, которые сами элементом не являются
type keyword int

const (
	keywordOwner keyword = iota
	keywordFlag
	keywordRoute
	keywordClass
	keywordDateSuffix
)

// Ontology неизменяемый словарь транспортной лексики.
// Создается один раз и используется из любого числа горутин без блокировок.
type Ontology struct {
	terms    []*Term
	index    map[string][]termEntry
	keywords map[keyword][]tokens.Pattern
}

// NewOntology строит словарь из встроенных таблиц
func NewOntology(stemmer *morph.Stemmer) *Ontology {
	o := &Ontology{
		index:    make(map[string][]termEntry),
		keywords: make(map[keyword][]tokens.Pattern),
	}
	for _, n := range nounTable {
		o.add(stemmer, n.term(CategoryNoun))
	}
	for _, n := range numberKeywordTable {
		o.add(stemmer, n.term(CategoryNumber))
	}
	for _, bt := range brandTables {
		for _, t := range parseBrandTable(bt.table, bt.kind) {
			o.add(stemmer, t)
		}
	}
	for kw, phrases := range keywordTable {
		for _, p := range phrases {
			o.keywords[kw] = append(o.keywords[kw], tokens.NewPattern(p, stemmer))
		}
	}
	return o
}

func (o *Ontology) add(stemmer *morph.Stemmer, t *Term) {
	o.terms = append(o.terms, t)
	if t.forms == nil {
		t.forms = append([]string{t.Canonical}, t.Variants...)
	}
	for _, f := range t.forms {
		p := tokens.NewPattern(f, stemmer)
		if len(p.Words) == 0 {
			continue
		}
		for _, key := range p.Key() {
			o.index[key] = append(o.index[key], termEntry{term: t, pattern: p})
		}
	}
}

// parseBrandTable разбирает таблицу вида "КАНОН,ВАРИАНТ;...;КАНОН,ВАРИАНТ,true".
// Первый элемент группы - каноническое написание, завершающее "true" помечает
// группу как неоднозначную.
func parseBrandTable(table string, kind VehicleKind) []*Term {
	var terms []*Term
	for _, group := range strings.Split(table, ";") {
		parts := strings.Split(group, ",")
		t := &Term{Category: CategoryBrand, Kind: kind}
		for _, p := range parts {
			p = strings.TrimSpace(p)
			switch {
			case p == "":
				continue
			case p == "true":
				t.Ambiguous = true
			case t.Canonical == "":
				t.Canonical = p
			default:
				t.Variants = append(t.Variants, p)
			}
		}
		if t.Canonical != "" {
			terms = append(terms, t)
		}
	}
	return terms
}

// Len количество терминов
func (o *Ontology) Len() int {
	return len(o.terms)
}

// Terms возвращает все термины словаря
func (o *Ontology) Terms() []*Term {
	out := make([]*Term, len(o.terms))
	copy(out, o.terms)
	return out
}

// Stats количество терминов по категории и виду транспорта
func (o *Ontology) Stats() map[string]int {
	stats := make(map[string]int)
	for _, t := range o.terms {
		stats[fmt.Sprintf("%s/%s", t.Category, t.Kind)]++
	}
	return stats
}

// Lookup ищет самый длинный термин, начинающийся в позиции i.
// Возвращает термин и индекс последнего покрытого токена.
func (o *Ontology) Lookup(s *tokens.Stream, i int) (*Term, int, bool) {
	var best *Term
	bestEnd := -1
	for _, key := range tokens.IndexKeys(s.At(i)) {
		for _, e := range o.index[key] {
			end, ok := e.pattern.MatchAt(s, i)
			if ok && end > bestEnd {
				best, bestEnd = e.term, end
			}
		}
	}
	return best, bestEnd, best != nil
}

// lookupCategory поиск термина заданной категории
func (o *Ontology) lookupCategory(s *tokens.Stream, i int, cats ...Category) (*Term, int, bool) {
	t, end, ok := o.Lookup(s, i)
	if !ok {
		return nil, -1, false
	}
	for _, c := range cats {
		if t.Category == c {
			return t, end, true
		}
	}
	return nil, -1, false
}

// matchKeyword ищет самое длинное служебное слово заданного типа
func (o *Ontology) matchKeyword(kw keyword, s *tokens.Stream, i int) (int, bool) {
	best := -1
	for _, p := range o.keywords[kw] {
		if end, ok := p.MatchAt(s, i); ok && end > best {
			best = end
		}
	}
	return best, best >= 0
}
