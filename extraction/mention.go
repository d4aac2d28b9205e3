package extraction

import (
	"github.com/google/uuid"

	"transportner/tokens"
	"transportner/transport"
)

// Document результат обработки одного текста. Смещения упоминаний - байтовые
// позиции в Text (текст после нормализации NFC).
type Document struct {
	ID       string    `json:"id"`
	Text     string    `json:"-"`
	Tokens   int       `json:"tokens"`
	Mentions []Mention `json:"mentions"`
}

// Mention одно упоминание транспортного средства
type Mention struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"`
	Begin int    `json:"begin"`
	End   int    `json:"end"`
	Text  string `json:"text"`
	Items []Item `json:"items"`
}

// Item элемент упоминания
type Item struct {
	Category           string   `json:"category"`
	Kind               string   `json:"kind,omitempty"`
	Value              string   `json:"value"`
	AltValue           string   `json:"alt_value,omitempty"`
	IsDoubt            bool     `json:"is_doubt,omitempty"`
	IsAfterConjunction bool     `json:"is_after_conjunction,omitempty"`
	Begin              int      `json:"begin"`
	End                int      `json:"end"`
	Text               string   `json:"text"`
	State              string   `json:"state,omitempty"`
	Route              []string `json:"route,omitempty"`
}

// Value первое значение элемента указанной категории
func (m Mention) Value(category transport.Category) (string, bool) {
	for _, it := range m.Items {
		if it.Category == category.String() {
			return it.Value, true
		}
	}
	return "", false
}

func newMention(s *tokens.Stream, items []*transport.Match) Mention {
	first, last := items[0], items[len(items)-1]
	begin, end := s.At(first.Begin).Begin, s.At(last.End).End

	m := Mention{
		ID:    uuid.New().String(),
		Kind:  transport.KindUndefined.String(),
		Begin: begin,
		End:   end,
		Text:  s.Text[begin:end],
		Items: make([]Item, 0, len(items)),
	}
	kindSet := false
	for _, it := range items {
		if !kindSet && it.Kind != transport.KindUndefined {
			m.Kind = it.Kind.String()
			kindSet = true
		}
		m.Items = append(m.Items, newItem(s, it))
	}
	return m
}

func newItem(s *tokens.Stream, m *transport.Match) Item {
	it := Item{
		Category:           m.Category.String(),
		Value:              m.Value,
		AltValue:           m.AltValue,
		IsDoubt:            m.IsDoubt,
		IsAfterConjunction: m.IsAfterConjunction,
		Begin:              s.At(m.Begin).Begin,
		End:                s.At(m.End).End,
		Text:               s.Span(m.Begin, m.End),
	}
	if m.Kind != transport.KindUndefined {
		it.Kind = m.Kind.String()
	}
	if m.State != nil {
		it.State = m.State.Name
	}
	for _, r := range m.RouteItems {
		it.Route = append(it.Route, r.Name)
	}
	return it
}
