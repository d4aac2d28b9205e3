// Package transport выделяет упоминания транспортных средств (автомобилей, судов,
// воздушных и космических аппаратов) в потоке токенов: вид транспорта, марку,
// модель, регистрационный номер, собственное имя, владельца, маршрут, класс и дату.
//
// Распознавание построено на правилах: Recognizer пробует упорядоченный набор
// правил в одной позиции, Builder наращивает из найденных элементов
// последовательность. Отсутствие совпадения - не ошибка: функции возвращают nil.
package transport

import (
	"transportner/nounphrase"
	"transportner/referents"
	"transportner/tokens"
)

// Resolver разрешает уже распознанные соседними анализаторами сущности
type Resolver interface {
	Resolve(kind referents.Kind, s *tokens.Stream, i int) (referents.Resolved, bool)
}

// PhraseParser выделяет именные группы
type PhraseParser interface {
	Parse(s *tokens.Stream, i int) (nounphrase.Phrase, bool)
}

// query параметры одной попытки распознавания
type query struct {
	s                    *tokens.Stream
	i                    int
	prev                 *Match
	afterConjunction     bool
	preferHighConfidence bool
}

// rule правило распознавания. claimed означает, что правило опознало позицию
// как свою: при m == nil распознавание на этом завершается неудачей.
type rule struct {
	name  string
	apply func(q *query) (m *Match, claimed bool)
}

// Recognizer распознает один элемент в заданной позиции. Не хранит состояния
// между вызовами и безопасен для конкурентного использования.
type Recognizer struct {
	ontology *Ontology
	resolver Resolver
	phrases  PhraseParser
	rules    []rule
}

// NewRecognizer создает распознаватель. resolver и phrases могут быть nil:
// тогда используются только встроенные в поток сущности и именные группы не ищутся.
func NewRecognizer(ontology *Ontology, resolver Resolver, phrases PhraseParser) *Recognizer {
	if resolver == nil {
		resolver = embeddedResolver{}
	}
	r := &Recognizer{ontology: ontology, resolver: resolver, phrases: phrases}
	r.rules = []rule{
		{"ownership", r.matchOwnership},
		{"organization", r.matchOrganization},
		{"flag", r.matchFlag},
		{"route", r.matchRoute},
		{"date", r.matchDate},
		{"number", r.matchNumber},
		{"term", r.matchTerm},
		{"adjective-phrase", r.matchAdjectivePhrase},
		{"class", r.matchClass},
		{"brand-digits", r.matchBrandDigits},
		{"model", r.matchModel},
		{"proper-brand", r.matchProperBrand},
		{"name", r.matchNameRun},
	}
	return r
}

// Ontology словарь распознавателя
func (r *Recognizer) Ontology() *Ontology {
	return r.ontology
}

// TryMatch пробует правила по порядку и возвращает первое совпадение
func (r *Recognizer) TryMatch(s *tokens.Stream, i int, prev *Match, afterConjunction, preferHighConfidence bool) *Match {
	if !s.Valid(i) {
		return nil
	}
	q := &query{s: s, i: i, prev: prev, afterConjunction: afterConjunction, preferHighConfidence: preferHighConfidence}
	for _, rl := range r.rules {
		m, claimed := rl.apply(q)
		if m != nil {
			if m.Kind == KindUndefined && prev != nil && m.is(CategoryModel, CategoryNumber, CategoryName) {
				m.Kind = prev.Kind
			}
			return m
		}
		if claimed {
			return nil
		}
	}
	return nil
}

// CheckNumberKeyword проверяет, начинается ли в позиции i слово-указатель номера
// ("г/н", "бортовой номер", "№"), и возвращает позицию после него
func (r *Recognizer) CheckNumberKeyword(s *tokens.Stream, i int) (int, bool) {
	next := -1
	switch {
	case s.IsChar(i, '№'):
		next = i + 1
	default:
		_, end, ok := r.ontology.lookupCategory(s, i, CategoryNumber)
		if !ok {
			return -1, false
		}
		next = end + 1
	}
	for s.IsColon(next) || s.IsHyphen(next) || s.IsChar(next, '№', '.') {
		next++
	}
	return next, true
}

// resolve сущность заданного типа: встроенная в поток или найденная resolver
func (r *Recognizer) resolve(kind referents.Kind, s *tokens.Stream, i int) (referents.Resolved, bool) {
	t := s.At(i)
	if t == nil {
		return referents.Resolved{}, false
	}
	if ref := t.ReferentOf(kind); ref != nil {
		return referents.Resolved{Referent: ref, Begin: i, End: i}, true
	}
	if t.IsReferent() && kind != referents.KindPerson {
		return referents.Resolved{}, false
	}
	return r.resolver.Resolve(kind, s, i)
}

// embeddedResolver разрешает только встроенные в поток сущности
type embeddedResolver struct{}

func (embeddedResolver) Resolve(kind referents.Kind, s *tokens.Stream, i int) (referents.Resolved, bool) {
	if ref := s.At(i).ReferentOf(kind); ref != nil {
		return referents.Resolved{Referent: ref, Begin: i, End: i}, true
	}
	return referents.Resolved{}, false
}
