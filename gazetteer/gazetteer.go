// Package gazetteer разрешает упоминания персон, организаций, географических
// объектов и дат по словарю. Используется как внешний поставщик сущностей
// для анализатора транспортных средств.
package gazetteer

import (
	"encoding/json"
	"fmt"
	"os"

	"transportner/morph"
	"transportner/referents"
	"transportner/tokens"
)

// Entry запись словаря
type Entry struct {
	Kind    string   `json:"kind"`
	Names   []string `json:"names"`
	IsState bool     `json:"is_state,omitempty"`
	IsCity  bool     `json:"is_city,omitempty"`
}

type item struct {
	ref     *referents.Referent
	pattern tokens.Pattern
}

// Gazetteer словарь сущностей. Наполняется до начала анализа,
// после этого безопасен для конкурентного чтения.
type Gazetteer struct {
	stemmer    *morph.Stemmer
	index      map[string][]*item
	firstNames map[string]bool
	count      int
}

// New создает словарь из записей
func New(stemmer *morph.Stemmer, entries ...Entry) (*Gazetteer, error) {
	g := &Gazetteer{
		stemmer:    stemmer,
		index:      make(map[string][]*item),
		firstNames: make(map[string]bool, len(firstNameList)),
	}
	for _, n := range firstNameList {
		g.firstNames[morph.Fold(n)] = true
		if stemmer != nil {
			g.firstNames["~"+stemmer.Stem(n)] = true
		}
	}
	if err := g.Add(entries...); err != nil {
		return nil, err
	}
	return g, nil
}

// Default создает словарь со встроенными записями
func Default(stemmer *morph.Stemmer) *Gazetteer {
	g, err := New(stemmer, builtinEntries...)
	if err != nil {
		// встроенные записи проверены тестами
		panic(fmt.Sprintf("gazetteer: invalid builtin entries: %v", err))
	}
	return g
}

// LoadFile читает записи словаря из JSON-файла (массив Entry)
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read gazetteer file: %w", err)
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse gazetteer file %s: %w", path, err)
	}
	return entries, nil
}

// Add добавляет записи в словарь
func (g *Gazetteer) Add(entries ...Entry) error {
	for i, e := range entries {
		kind, ok := referents.ParseKind(e.Kind)
		if !ok || kind == referents.KindDate {
			return fmt.Errorf("entry %d: unsupported kind %q", i, e.Kind)
		}
		if len(e.Names) == 0 || e.Names[0] == "" {
			return fmt.Errorf("entry %d: at least one name is required", i)
		}
		ref := &referents.Referent{Kind: kind, Name: e.Names[0], IsState: e.IsState, IsCity: e.IsCity}
		for _, name := range e.Names {
			p := tokens.NewPattern(name, g.stemmer)
			if len(p.Words) == 0 {
				continue
			}
			it := &item{ref: ref, pattern: p}
			for _, key := range p.Key() {
				g.index[key] = append(g.index[key], it)
			}
		}
		g.count++
	}
	return nil
}

// Len количество записей
func (g *Gazetteer) Len() int {
	return g.count
}

// Resolve ищет сущность указанного типа, начинающуюся в позиции i.
// Токен-сущность разрешается сам в себя.
func (g *Gazetteer) Resolve(kind referents.Kind, s *tokens.Stream, i int) (referents.Resolved, bool) {
	t := s.At(i)
	if t == nil {
		return referents.Resolved{}, false
	}
	if t.IsReferent() {
		if t.Referent.Kind == kind {
			return referents.Resolved{Referent: t.Referent, Begin: i, End: i}, true
		}
		return referents.Resolved{}, false
	}

	switch kind {
	case referents.KindDate:
		return resolveDate(s, i)
	case referents.KindPerson:
		if res, ok := g.lookup(kind, s, i); ok {
			return res, true
		}
		return g.resolvePersonByFirstName(s, i)
	}
	return g.lookup(kind, s, i)
}

// lookup самое длинное словарное совпадение
func (g *Gazetteer) lookup(kind referents.Kind, s *tokens.Stream, i int) (referents.Resolved, bool) {
	best := referents.Resolved{End: -1}
	for _, key := range tokens.IndexKeys(s.At(i)) {
		for _, it := range g.index[key] {
			if it.ref.Kind != kind {
				continue
			}
			end, ok := it.pattern.MatchAt(s, i)
			if ok && end > best.End {
				best = referents.Resolved{Referent: it.ref, Begin: i, End: end}
			}
		}
	}
	return best, best.Referent != nil
}

// resolvePersonByFirstName персона по известному имени и следующей за ним фамилии
func (g *Gazetteer) resolvePersonByFirstName(s *tokens.Stream, i int) (referents.Resolved, bool) {
	t := s.At(i)
	if !t.IsWord() || !t.Chars.IsCapitalUpper || !g.isFirstName(t) {
		return referents.Resolved{}, false
	}
	end := i
	name := t.Text
	if next := s.At(i + 1); next.IsWord() && next.Chars.IsCapitalUpper &&
		next.NewlinesBefore == 0 && next.WhitespacesBefore == 1 {
		end = i + 1
		name += " " + next.Text
	}
	return referents.Resolved{
		Referent: &referents.Referent{Kind: referents.KindPerson, Name: name},
		Begin:    i,
		End:      end,
	}, true
}

// isFirstName известное имя в любой падежной форме ("Ивана", "Сергею")
func (g *Gazetteer) isFirstName(t *tokens.Token) bool {
	if g.firstNames[morph.Fold(t.Text)] {
		return true
	}
	return t.Morph.Stem != "" && g.firstNames["~"+t.Morph.Stem]
}

// Embed заменяет найденные организации, географические объекты и даты токенами-сущностями
func (g *Gazetteer) Embed(s *tokens.Stream) *tokens.Stream {
	out := s
	for i := 0; i < out.Len(); i++ {
		for _, kind := range []referents.Kind{referents.KindDate, referents.KindOrganization, referents.KindGeo} {
			res, ok := g.Resolve(kind, out, i)
			if !ok || out.At(i).IsReferent() {
				continue
			}
			out = out.Embed(res.Begin, res.End, res.Referent)
			break
		}
	}
	return out
}
