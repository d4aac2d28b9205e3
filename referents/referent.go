// Package referents описывает сущности, уже распознанные соседними анализаторами
// (персоны, организации, географические объекты, даты) и встроенные в поток токенов.
package referents

import (
	"fmt"
	"time"
)

// Kind тип сущности
type Kind int

const (
	KindPerson Kind = iota
	KindOrganization
	KindGeo
	KindDate
)

var kindNames = [...]string{
	KindPerson:       "Person",
	KindOrganization: "Organization",
	KindGeo:          "Geo",
	KindDate:         "Date",
}

// String возвращает имя типа сущности
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind разбирает имя типа сущности (регистр не важен для первой буквы)
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "Person", "person":
		return KindPerson, true
	case "Organization", "organization", "org":
		return KindOrganization, true
	case "Geo", "geo":
		return KindGeo, true
	case "Date", "date":
		return KindDate, true
	}
	return 0, false
}

// Referent распознанная сущность
type Referent struct {
	Kind Kind   `json:"kind"`
	Name string `json:"name"`
	// IsState государство (только для Geo)
	IsState bool `json:"is_state,omitempty"`
	// IsCity населенный пункт (только для Geo)
	IsCity bool `json:"is_city,omitempty"`
	// Date значение даты (только для Date); для года без дня и месяца - 1 января
	Date time.Time `json:"date,omitempty"`
	// YearOnly дата задана только годом
	YearOnly bool `json:"year_only,omitempty"`
}

// String возвращает человекочитаемое представление
func (r *Referent) String() string {
	if r == nil {
		return ""
	}
	if r.Kind == KindDate && !r.Date.IsZero() {
		if r.YearOnly {
			return fmt.Sprintf("%d", r.Date.Year())
		}
		return r.Date.Format("2006-01-02")
	}
	return r.Name
}

// Resolved результат разрешения сущности в потоке токенов: индексы включительно
type Resolved struct {
	Referent *Referent
	Begin    int
	End      int
}
