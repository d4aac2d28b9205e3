package transport

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transportner/gazetteer"
	"transportner/morph"
	"transportner/nounphrase"
	"transportner/tokens"
)

type testEnv struct {
	analyzer *morph.Analyzer
	gaz      *gazetteer.Gazetteer
	ontology *Ontology
	rec      *Recognizer
	builder  *Builder
}

var (
	envOnce sync.Once
	env     *testEnv
)

func getEnv(t testing.TB) *testEnv {
	t.Helper()
	envOnce.Do(func() {
		analyzer := morph.NewAnalyzer()
		gaz := gazetteer.Default(analyzer.Stemmer())
		ont := NewOntology(analyzer.Stemmer())
		rec := NewRecognizer(ont, gaz, nounphrase.NewParser())
		env = &testEnv{analyzer: analyzer, gaz: gaz, ontology: ont, rec: rec, builder: NewBuilder(rec)}
	})
	return env
}

func (e *testEnv) stream(text string) *tokens.Stream {
	return e.gaz.Embed(tokens.Tokenize(text, e.analyzer))
}

func TestTryMatch_Terms(t *testing.T) {
	e := getEnv(t)

	tests := []struct {
		name     string
		text     string
		category Category
		kind     VehicleKind
		value    string
		end      int
	}{
		{"существительное", "автомобиль", CategoryNoun, KindAuto, "автомобиль", 0},
		{"падежная форма", "автомобиля", CategoryNoun, KindAuto, "автомобиль", 0},
		{"ё", "самолёт", CategoryNoun, KindFly, "самолет", 0},
		{"сокращение", "т/с", CategoryNoun, KindAuto, "транспортное средство", 2},
		{"многословный термин", "космический корабль", CategoryNoun, KindSpace, "космический корабль", 1},
		{"украинское", "літак", CategoryNoun, KindFly, "літак", 0},
		{"марка", "ВАЗ", CategoryBrand, KindAuto, "ВАЗ", 0},
		{"латинская марка", "Toyota", CategoryBrand, KindAuto, "TOYOTA", 0},
		{"кириллический вариант марки", "Тойота", CategoryBrand, KindAuto, "TOYOTA", 0},
		{"марка в кавычках", "«Боинг»", CategoryBrand, KindFly, "BOEING", 2},
		{"составное через дефис", "катер-буксир", CategoryNoun, KindShip, "катер-буксир", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := e.rec.TryMatch(e.stream(tt.text), 0, nil, false, false)
			require.NotNil(t, m)
			assert.Equal(t, tt.category, m.Category)
			assert.Equal(t, tt.kind, m.Kind)
			assert.Equal(t, tt.value, m.Value)
			assert.Equal(t, 0, m.Begin)
			assert.Equal(t, tt.end, m.End)
			assert.False(t, m.IsDoubt)
		})
	}
}

func TestTryMatch_AmbiguityGating(t *testing.T) {
	e := getEnv(t)
	s := e.stream("Волга")

	t.Run("без контекста", func(t *testing.T) {
		assert.Nil(t, e.rec.TryMatch(s, 0, nil, false, false))
	})

	t.Run("после существительного того же вида", func(t *testing.T) {
		prev := &Match{Category: CategoryNoun, Kind: KindAuto, Value: "автомобиль"}
		m := e.rec.TryMatch(s, 0, prev, false, false)
		require.NotNil(t, m)
		assert.Equal(t, CategoryBrand, m.Category)
		assert.Equal(t, "ВОЛГА", m.Value)
		assert.True(t, m.IsDoubt)
	})

	t.Run("после существительного другого вида", func(t *testing.T) {
		prev := &Match{Category: CategoryNoun, Kind: KindFly, Value: "самолет"}
		assert.Nil(t, e.rec.TryMatch(s, 0, prev, false, false))
	})

	t.Run("повтор той же марки", func(t *testing.T) {
		prev := &Match{Category: CategoryBrand, Kind: KindAuto, Value: "ВОЛГА"}
		m := e.rec.TryMatch(s, 0, prev, false, false)
		require.NotNil(t, m)
		assert.True(t, m.IsDoubt)
	})

	t.Run("другая марка", func(t *testing.T) {
		prev := &Match{Category: CategoryBrand, Kind: KindAuto, Value: "ВАЗ"}
		m := e.rec.TryMatch(s, 0, prev, false, false)
		if m != nil {
			assert.NotEqual(t, CategoryBrand, m.Category)
		}
	})

	t.Run("предпочтение высокой уверенности", func(t *testing.T) {
		m := e.rec.TryMatch(s, 0, nil, false, true)
		require.NotNil(t, m)
		assert.True(t, m.IsDoubt)
	})
}

func TestTryMatch_LowercaseShortBrand(t *testing.T) {
	e := getEnv(t)
	assert.Nil(t, e.rec.TryMatch(e.stream("газ"), 0, nil, false, false))
	m := e.rec.TryMatch(e.stream("ГАЗ"), 0, nil, false, false)
	require.NotNil(t, m)
	assert.Equal(t, "ГАЗ", m.Value)
}

func TestTryMatch_CraftAbbreviation(t *testing.T) {
	e := getEnv(t)
	assert.Nil(t, e.rec.TryMatch(e.stream("СУД"), 0, nil, false, false))
	assert.Nil(t, e.rec.TryMatch(e.stream("суд"), 0, nil, false, false))

	m := e.rec.TryMatch(e.stream("СУД (танкер)"), 0, nil, false, false)
	require.NotNil(t, m)
	assert.Equal(t, CategoryNoun, m.Category)
	assert.Equal(t, KindShip, m.Kind)
	assert.Equal(t, "судно", m.Value)
}

func TestTryMatch_AdjectivePhrase(t *testing.T) {
	e := getEnv(t)

	m := e.rec.TryMatch(e.stream("грузовой автомобиль"), 0, nil, false, false)
	require.NotNil(t, m)
	assert.Equal(t, CategoryNoun, m.Category)
	assert.Equal(t, "автомобиль", m.Value)
	assert.Equal(t, "грузовой автомобиль", m.AltValue)
	assert.Equal(t, 1, m.End)
	assert.Nil(t, m.State)

	m = e.rec.TryMatch(e.stream("российское судно (танкер)"), 0, nil, false, false)
	require.NotNil(t, m)
	assert.Equal(t, KindShip, m.Kind)
	assert.Equal(t, "судно", m.Value)
	require.NotNil(t, m.State)
	assert.Equal(t, "Россия", m.State.Name)

	assert.Nil(t, e.rec.TryMatch(e.stream("российское судно"), 0, nil, false, false))
}

func TestTryMatch_Organization(t *testing.T) {
	e := getEnv(t)

	m := e.rec.TryMatch(e.stream("Аэрофлот"), 0, nil, false, false)
	require.NotNil(t, m)
	assert.Equal(t, CategoryOrg, m.Category)
	assert.Equal(t, "Аэрофлот", m.Value)
	require.NotNil(t, m.Referent)

	m = e.rec.TryMatch(e.stream("принадлежит Аэрофлот"), 0, nil, false, false)
	require.NotNil(t, m)
	assert.Equal(t, CategoryOrg, m.Category)
	assert.Equal(t, 0, m.Begin)
	assert.Equal(t, 1, m.End)
}

func TestTryMatch_Flag(t *testing.T) {
	e := getEnv(t)
	m := e.rec.TryMatch(e.stream("под флагом Панамы"), 0, nil, false, false)
	require.NotNil(t, m)
	assert.Equal(t, CategoryGeo, m.Category)
	assert.Equal(t, "Панама", m.Value)
	assert.Equal(t, 2, m.End)
}

func TestTryMatch_Route(t *testing.T) {
	e := getEnv(t)

	tests := []struct {
		name    string
		text    string
		items   int
		keyword bool
	}{
		{"ключевое слово и два пункта", "рейс Москва - Сочи", 2, true},
		{"ключевое слово и один пункт", "рейсом Москва", 1, true},
		{"два пункта без ключевого слова", "Москва - Сочи", 2, false},
		{"предлоги", "из Москвы в Сочи", 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := e.rec.TryMatch(e.stream(tt.text), 0, nil, false, false)
			require.NotNil(t, m)
			assert.Equal(t, CategoryRoute, m.Category)
			assert.Len(t, m.RouteItems, tt.items)
			assert.Equal(t, tt.keyword, m.routeKeyword)
		})
	}

	t.Run("один пункт без ключевого слова", func(t *testing.T) {
		m := e.rec.TryMatch(e.stream("Москва"), 0, nil, false, false)
		if m != nil {
			assert.NotEqual(t, CategoryRoute, m.Category)
		}
	})
}

func TestTryMatch_Date(t *testing.T) {
	e := getEnv(t)

	m := e.rec.TryMatch(e.stream("2010 г. выпуска"), 0, nil, false, false)
	require.NotNil(t, m)
	assert.Equal(t, CategoryDate, m.Category)
	assert.Equal(t, "2010", m.Value)
	assert.Equal(t, 1, m.End, "год с суффиксом: токен даты и слово 'выпуска'")

	m = e.rec.TryMatch(e.stream("от 12.05.2020"), 0, nil, false, false)
	require.NotNil(t, m)
	assert.Equal(t, "2020-05-12", m.Value)
}

func TestTryMatch_Class(t *testing.T) {
	e := getEnv(t)
	prev := &Match{Category: CategoryNoun, Kind: KindShip, Value: "судно"}

	m := e.rec.TryMatch(e.stream("класс (КМ Ice1)"), 0, prev, false, false)
	require.NotNil(t, m)
	assert.Equal(t, CategoryClass, m.Category)
	assert.Equal(t, "КМ Ice1", m.Value)

	assert.Nil(t, e.rec.TryMatch(e.stream("класс опасности"), 0, prev, false, false))
}

func TestTryMatch_NumberKeywordClaims(t *testing.T) {
	e := getEnv(t)

	m := e.rec.TryMatch(e.stream("бортовой номер RA-89123"), 0, nil, false, false)
	require.NotNil(t, m)
	assert.Equal(t, CategoryNumber, m.Category)
	assert.Equal(t, KindFly, m.Kind)
	assert.Equal(t, "RA89123", m.Value)

	assert.Nil(t, e.rec.TryMatch(e.stream("номер телефона"), 0, nil, false, false))
}

func TestTryMatch_QuotedName(t *testing.T) {
	e := getEnv(t)
	s := e.stream("теплоход «Михаил Светлов»")
	prev := e.rec.TryMatch(s, 0, nil, false, false)
	require.NotNil(t, prev)

	m := e.rec.TryMatch(s, 1, prev, false, false)
	require.NotNil(t, m)
	assert.Equal(t, CategoryName, m.Category)
	assert.Equal(t, "МИХАИЛ СВЕТЛОВ", m.Value)
	assert.Equal(t, 4, m.End)
}

func TestTryMatch_ProperBrandAfterAuto(t *testing.T) {
	e := getEnv(t)
	s := e.stream("автомобиль Хантер")
	prev := &Match{Category: CategoryNoun, Kind: KindAuto, Value: "автомобиль"}

	m := e.rec.TryMatch(s, 1, prev, false, false)
	require.NotNil(t, m)
	assert.Equal(t, CategoryBrand, m.Category)
	assert.Equal(t, "ХАНТЕР", m.Value)
	assert.True(t, m.IsDoubt)

	s = e.stream("автомобиль Иван Петров")
	m = e.rec.TryMatch(s, 1, prev, false, false)
	assert.Nil(t, m)
}

func TestTryMatch_NameRunPersonCollision(t *testing.T) {
	e := getEnv(t)
	ship := &Match{Category: CategoryNoun, Kind: KindShip, Value: "теплоход"}

	m := e.rec.TryMatch(e.stream("теплоход Садко"), 1, ship, false, false)
	require.NotNil(t, m)
	assert.Equal(t, CategoryName, m.Category)
	assert.Equal(t, "САДКО", m.Value)

	// известное имя с фамилией - персона, а не название судна
	assert.Nil(t, e.rec.TryMatch(e.stream("теплоход Михаил Светлов"), 1, ship, false, false))

	t.Run("персона в другой графике", func(t *testing.T) {
		gaz, err := gazetteer.New(e.analyzer.Stemmer(), gazetteer.Entry{
			Kind:  "person",
			Names: []string{"Yuri Gagarin", "Юрий Гагарин"},
		})
		require.NoError(t, err)
		rec := NewRecognizer(e.ontology, gaz, nounphrase.NewParser())

		s := gaz.Embed(tokens.Tokenize("теплоход Юрий Гагарин", e.analyzer))
		m := rec.TryMatch(s, 1, ship, false, false)
		require.NotNil(t, m)
		assert.Equal(t, CategoryName, m.Category)
		assert.Equal(t, "ЮРИЙ ГАГАРИН", m.Value)
		assert.Equal(t, 2, m.End)
		assert.Equal(t, KindShip, m.Kind)
	})
}

func TestTryMatch_Models(t *testing.T) {
	e := getEnv(t)

	tests := []struct {
		name  string
		text  string
		prev  *Match
		value string
		alt   string
	}{
		{
			name:  "латинская модель",
			text:  "BMW X5",
			prev:  &Match{Category: CategoryBrand, Kind: KindAuto, Value: "BMW"},
			value: "X5",
		},
		{
			name:  "модель из двух слов",
			text:  "Toyota Camry XLE",
			prev:  &Match{Category: CategoryBrand, Kind: KindAuto, Value: "TOYOTA"},
			value: "CAMRY XLE",
		},
		{
			name:  "цифры и код через пробел",
			text:  "Boeing 737 MAX",
			prev:  &Match{Category: CategoryBrand, Kind: KindFly, Value: "BOEING"},
			value: "737 MAX",
			alt:   "737 МАХ",
		},
		{
			name:  "цифры в кавычках",
			text:  "самолет «737»",
			prev:  &Match{Category: CategoryNoun, Kind: KindFly, Value: "самолет"},
			value: "737",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := e.rec.TryMatch(e.stream(tt.text), 1, tt.prev, false, false)
			require.NotNil(t, m)
			assert.Equal(t, CategoryModel, m.Category)
			assert.Equal(t, tt.value, m.Value)
			assert.Equal(t, tt.alt, m.AltValue)
			assert.Equal(t, tt.prev.Kind, m.Kind)
		})
	}
}

func TestTryMatch_QuotedModelSpan(t *testing.T) {
	e := getEnv(t)
	prev := &Match{Category: CategoryNoun, Kind: KindFly, Value: "самолет"}

	m := e.rec.TryMatch(e.stream("самолет «737»"), 1, prev, false, false)
	require.NotNil(t, m)
	assert.Equal(t, 1, m.Begin)
	assert.Equal(t, 3, m.End)
}

func TestTryMatch_ModelRejected(t *testing.T) {
	e := getEnv(t)

	tests := []struct {
		name string
		text string
		prev *Match
	}{
		{
			name: "персона после марки",
			text: "BMW Иван",
			prev: &Match{Category: CategoryBrand, Kind: KindAuto, Value: "BMW"},
		},
		{
			name: "марка в круглых скобках",
			text: "автомобиль (ВАЗ 2110)",
			prev: &Match{Category: CategoryNoun, Kind: KindAuto, Value: "автомобиль"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, e.rec.TryMatch(e.stream(tt.text), 1, tt.prev, false, false))
		})
	}
}

func TestCheckNumberKeyword(t *testing.T) {
	e := getEnv(t)

	tests := []struct {
		name string
		text string
		next int
		ok   bool
	}{
		{"г/н", "г/н А123ВС77", 3, true},
		{"знак номера", "№ 12345", 1, true},
		{"с двоеточием", "госномер: А123ВС77", 2, true},
		{"не указатель", "автомобиль", -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := e.builder.CheckNumberKeyword(e.stream(tt.text), 0)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.next, next)
		})
	}
}
