package transport

import (
	"fmt"

	"transportner/referents"
)

// Category тип элемента упоминания транспортного средства
type Category int

const (
	CategoryNoun Category = iota
	CategoryBrand
	CategoryModel
	CategoryNumber
	CategoryName
	CategoryOrg
	CategoryRoute
	CategoryClass
	CategoryDate
	CategoryGeo
)

var categoryNames = [...]string{
	CategoryNoun:   "Noun",
	CategoryBrand:  "Brand",
	CategoryModel:  "Model",
	CategoryNumber: "Number",
	CategoryName:   "Name",
	CategoryOrg:    "Org",
	CategoryRoute:  "Route",
	CategoryClass:  "Class",
	CategoryDate:   "Date",
	CategoryGeo:    "Geo",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// VehicleKind вид транспорта
type VehicleKind int

const (
	KindUndefined VehicleKind = iota
	KindAuto
	KindShip
	KindFly
	KindSpace
)

var kindNames = [...]string{
	KindUndefined: "Undefined",
	KindAuto:      "Auto",
	KindShip:      "Ship",
	KindFly:       "Fly",
	KindSpace:     "Space",
}

func (k VehicleKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("VehicleKind(%d)", int(k))
	}
	return kindNames[k]
}

// Match распознанный элемент. Begin и End - индексы токенов потока (включительно).
type Match struct {
	Begin    int
	End      int
	Category Category
	Kind     VehicleKind
	Value    string
	// AltValue альтернативное написание, транслитерация или код региона
	AltValue string
	IsDoubt  bool
	// IsAfterConjunction элемент присоединен после запятой или союза "и"
	IsAfterConjunction bool
	// Referent связанная сущность для Org, Geo и Date
	Referent *referents.Referent
	// RouteItems пункты маршрута по порядку (только Route)
	RouteItems []*referents.Referent
	// State государство, найденное среди определений именной группы
	State *referents.Referent

	routeKeyword bool
}

func (m *Match) String() string {
	if m == nil {
		return "<nil>"
	}
	s := fmt.Sprintf("%s(%s", m.Category, m.Value)
	if m.AltValue != "" {
		s += "/" + m.AltValue
	}
	if m.Kind != KindUndefined {
		s += ", " + m.Kind.String()
	}
	if m.IsDoubt {
		s += ", doubt"
	}
	return s + fmt.Sprintf(")[%d:%d]", m.Begin, m.End)
}

// isCompatibleKind виды совместимы, если совпадают или один из них не определен
func isCompatibleKind(a, b VehicleKind) bool {
	return a == b || a == KindUndefined || b == KindUndefined
}

func (m *Match) is(cats ...Category) bool {
	if m == nil {
		return false
	}
	for _, c := range cats {
		if m.Category == c {
			return true
		}
	}
	return false
}
