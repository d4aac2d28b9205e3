package gazetteer

import (
	"fmt"
	"strconv"
	"time"

	"transportner/referents"
	"transportner/tokens"
)

const (
	minYear = 1800
	maxYear = 2100
)

// resolveDate распознает даты вида 12.05.2020 и годы вида "2010 г.", "2010 года"
func resolveDate(s *tokens.Stream, i int) (referents.Resolved, bool) {
	t := s.At(i)
	if !t.IsNumber() {
		return referents.Resolved{}, false
	}
	if res, ok := resolveFullDate(s, i); ok {
		return res, true
	}
	return resolveYear(s, i)
}

func resolveFullDate(s *tokens.Stream, i int) (referents.Resolved, bool) {
	// день . месяц . год без пробелов
	if !s.IsChar(i+1, '.', '/') || !s.At(i+2).IsNumber() || !s.IsChar(i+3, '.', '/') || !s.At(i+4).IsNumber() {
		return referents.Resolved{}, false
	}
	for k := i + 1; k <= i+4; k++ {
		if s.At(k).WhitespacesBefore > 0 {
			return referents.Resolved{}, false
		}
	}
	day, month, year := s.At(i).Text, s.At(i+2).Text, s.At(i+4).Text
	if len(day) > 2 || len(month) > 2 {
		return referents.Resolved{}, false
	}
	layout := "2.1.2006"
	if len(year) == 2 {
		layout = "2.1.06"
	} else if len(year) != 4 {
		return referents.Resolved{}, false
	}
	d, err := time.Parse(layout, fmt.Sprintf("%s.%s.%s", day, month, year))
	if err != nil {
		return referents.Resolved{}, false
	}
	return referents.Resolved{
		Referent: &referents.Referent{Kind: referents.KindDate, Name: s.Span(i, i+4), Date: d},
		Begin:    i,
		End:      i + 4,
	}, true
}

func resolveYear(s *tokens.Stream, i int) (referents.Resolved, bool) {
	t := s.At(i)
	if len(t.Text) != 4 {
		return referents.Resolved{}, false
	}
	year, err := strconv.Atoi(t.Text)
	if err != nil || year < minYear || year > maxYear {
		return referents.Resolved{}, false
	}
	end := i
	switch {
	case s.IsValue(i+1, "Г", "Р"):
		end = i + 1
		if s.IsChar(i+2, '.') && s.At(i+2).WhitespacesBefore == 0 {
			end = i + 2
		}
	case s.IsValue(i+1, "ГОДА", "ГОД", "ГОДУ", "РОКУ", "РІК"):
		end = i + 1
	default:
		return referents.Resolved{}, false
	}
	return referents.Resolved{
		Referent: &referents.Referent{
			Kind:     referents.KindDate,
			Name:     s.Span(i, end),
			Date:     time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
			YearOnly: true,
		},
		Begin: i,
		End:   end,
	}, true
}
