package transport

import (
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transportner/tokens"
)

func categories(items []*Match) []Category {
	out := make([]Category, len(items))
	for i, m := range items {
		out[i] = m.Category
	}
	return out
}

func TestBuild_FullSequence(t *testing.T) {
	e := getEnv(t)
	s := e.stream("автомобиль ВАЗ-2110, г/н А123ВС77")

	items := e.builder.Build(s, 0)
	require.Len(t, items, 4)
	assert.Equal(t, []Category{CategoryNoun, CategoryBrand, CategoryModel, CategoryNumber}, categories(items))

	assert.Equal(t, "автомобиль", items[0].Value)
	assert.Equal(t, "ВАЗ", items[1].Value)
	assert.Equal(t, "2110", items[2].Value)
	assert.Equal(t, "А123ВС", items[3].Value)
	assert.Equal(t, "77", items[3].AltValue)
	for _, m := range items {
		assert.Equal(t, KindAuto, m.Kind, m.String())
	}
	assert.Equal(t, s.Len()-1, items[3].End)
}

func TestBuild_Sequences(t *testing.T) {
	e := getEnv(t)

	tests := []struct {
		name   string
		text   string
		cats   []Category
		values []string
	}{
		{
			name:   "латинская модель",
			text:   "BMW X5",
			cats:   []Category{CategoryBrand, CategoryModel},
			values: []string{"BMW", "X5"},
		},
		{
			name:   "год выпуска",
			text:   "автомобиль 2010 г. выпуска",
			cats:   []Category{CategoryNoun, CategoryDate},
			values: []string{"автомобиль", "2010"},
		},
		{
			name:   "город как имя судна",
			text:   "теплоход Москва",
			cats:   []Category{CategoryNoun, CategoryName},
			values: []string{"теплоход", "МОСКВА"},
		},
		{
			name:   "имя в кавычках",
			text:   "теплоход «Михаил Светлов»",
			cats:   []Category{CategoryNoun, CategoryName},
			values: []string{"теплоход", "МИХАИЛ СВЕТЛОВ"},
		},
		{
			name:   "марка самолета через дефис",
			text:   "самолет Ту-154",
			cats:   []Category{CategoryNoun, CategoryBrand, CategoryModel},
			values: []string{"самолет", "ТУ", "154"},
		},
		{
			name:   "имена через союз",
			text:   "теплоходы «Мария» и «Анна»",
			cats:   []Category{CategoryNoun, CategoryName, CategoryName},
			values: []string{"теплоход", "МАРИЯ", "АННА"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := e.builder.Build(e.stream(tt.text), 0)
			require.Len(t, items, len(tt.cats))
			assert.Equal(t, tt.cats, categories(items))
			for i, v := range tt.values {
				assert.Equal(t, v, items[i].Value)
			}
		})
	}
}

func TestBuild_Fallbacks(t *testing.T) {
	e := getEnv(t)

	tests := []struct {
		name   string
		text   string
		start  int
		cats   []Category
		values []string
	}{
		{
			name:   "закрывающая скобка продлевает марку",
			text:   "(автомобиль ВАЗ), г/н А123ВС77",
			start:  1,
			cats:   []Category{CategoryNoun, CategoryBrand, CategoryNumber},
			values: []string{"автомобиль", "ВАЗ", "А123ВС"},
		},
		{
			name:   "номер в скобках после имени",
			text:   "теплоход «Мария» (№ 9321483)",
			cats:   []Category{CategoryNoun, CategoryName, CategoryNumber},
			values: []string{"теплоход", "МАРИЯ", "9321483"},
		},
		{
			name:   "дата в скобках пропускается, номер после скобки",
			text:   "теплоход «Мария» (2010 г.) № 9321483",
			cats:   []Category{CategoryNoun, CategoryName, CategoryNumber},
			values: []string{"теплоход", "МАРИЯ", "9321483"},
		},
		{
			name:   "номер через запятую после имени",
			text:   "теплоход «Мария», № 9321483",
			cats:   []Category{CategoryNoun, CategoryName, CategoryNumber},
			values: []string{"теплоход", "МАРИЯ", "9321483"},
		},
		{
			name:   "номер через запятую после даты",
			text:   "автомобиль 2010 г. выпуска, г/н А123ВС77",
			cats:   []Category{CategoryNoun, CategoryDate, CategoryNumber},
			values: []string{"автомобиль", "2010", "А123ВС"},
		},
		{
			name:   "номер через дефис после модели",
			text:   "автомобиль ВАЗ-2110 - А123ВС77",
			cats:   []Category{CategoryNoun, CategoryBrand, CategoryModel, CategoryNumber},
			values: []string{"автомобиль", "ВАЗ", "2110", "А123ВС"},
		},
		{
			name:   "после существительного запятая не пропускается",
			text:   "автомобиль, г/н А123ВС77",
			cats:   []Category{CategoryNoun},
			values: []string{"автомобиль"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := e.builder.Build(e.stream(tt.text), tt.start)
			require.Len(t, items, len(tt.cats))
			assert.Equal(t, tt.cats, categories(items))
			for i, v := range tt.values {
				assert.Equal(t, v, items[i].Value)
			}
		})
	}
}

func TestBuild_CloseBracketSpans(t *testing.T) {
	e := getEnv(t)

	s := e.stream("(автомобиль ВАЗ), г/н А123ВС77")
	items := e.builder.Build(s, 1)
	require.Len(t, items, 3)
	assert.Equal(t, 3, items[1].End, "марка включает закрывающую скобку")
	assert.Equal(t, "77", items[2].AltValue)
	assert.Equal(t, s.Len()-1, items[2].End)

	s = e.stream("теплоход «Мария» (№ 9321483)")
	items = e.builder.Build(s, 0)
	require.Len(t, items, 3)
	assert.Equal(t, 4, items[2].Begin)
	assert.Equal(t, s.Len()-1, items[2].End)
	assert.Equal(t, KindShip, items[2].Kind)
}

func TestBuild_NameAfterConjunctionEndsSequence(t *testing.T) {
	e := getEnv(t)
	items := e.builder.Build(e.stream("теплоходы «Мария» и «Анна»"), 0)
	require.Len(t, items, 3)
	assert.False(t, items[1].IsAfterConjunction)
	assert.True(t, items[2].IsAfterConjunction)
	assert.Equal(t, KindShip, items[2].Kind)
}

func TestBuild_Rejected(t *testing.T) {
	e := getEnv(t)

	tests := []struct {
		name string
		text string
	}{
		{"одна буква после марки", "Ford X"},
		{"номер без существительного", "г/н А123ВС77"},
		{"организация", "Аэрофлот"},
		{"обычный текст", "погода сегодня хорошая"},
		{"пустой поток", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, e.builder.Build(e.stream(tt.text), 0))
		})
	}
}

func TestBuild_NewlineStopsSequence(t *testing.T) {
	e := getEnv(t)
	items := e.builder.Build(e.stream("автомобиль\nФорд"), 0)
	require.Len(t, items, 1)
	assert.Equal(t, CategoryNoun, items[0].Category)
}

func TestBuild_MaxItems(t *testing.T) {
	e := getEnv(t)
	b := NewBuilder(e.rec)
	b.MaxItems = 1

	items := b.Build(e.stream("автомобиль ВАЗ-2110"), 0)
	require.Len(t, items, 1)
	assert.Equal(t, CategoryNoun, items[0].Category)
}

func TestMergeModels(t *testing.T) {
	s := tokens.Tokenize("X5-M 50", nil)
	items := []*Match{
		{Begin: 0, End: 1, Category: CategoryModel, Value: "X5"},
		{Begin: 3, End: 3, Category: CategoryModel, Value: "M", AltValue: "М"},
		{Begin: 4, End: 4, Category: CategoryModel, Value: "50", IsDoubt: true},
	}

	merged := MergeModels(s, items)
	require.Len(t, merged, 1)
	assert.Equal(t, "X5-M 50", merged[0].Value)
	assert.Equal(t, "X5-М 50", merged[0].AltValue)
	assert.Equal(t, 0, merged[0].Begin)
	assert.Equal(t, 4, merged[0].End)
	assert.False(t, merged[0].IsDoubt)

	// исходные элементы не меняются
	assert.Equal(t, "X5", items[0].Value)
	assert.Equal(t, 1, items[0].End)

	again := MergeModels(s, merged)
	require.Len(t, again, 1)
	assert.Equal(t, *merged[0], *again[0])
}

func TestMergeModels_KeepsOtherItems(t *testing.T) {
	s := tokens.Tokenize("BMW X5", nil)
	items := []*Match{
		{Begin: 0, End: 0, Category: CategoryBrand, Value: "BMW"},
		{Begin: 1, End: 2, Category: CategoryModel, Value: "X5"},
	}
	assert.Equal(t, items, MergeModels(s, items))
}

// Свойства последовательностей на случайных сочетаниях фрагментов
func TestBuild_RandomTextInvariants(t *testing.T) {
	e := getEnv(t)
	gofakeit.Seed(42)

	fragments := []string{
		"автомобиль", "грузовик", "теплоход", "самолет", "ракета", "судно", "т/с",
		"ВАЗ", "Форд", "BMW", "Ту", "Волга", "Ford", "Toyota",
		"2110", "X5", "-", ",", ":", "и", "в", "из", "(", ")", "«", "»",
		"г/н", "№", "А123ВС77", "бортовой номер", "RA-89123",
		"Москва", "Сочи", "Панамы", "под флагом", "рейс", "класс", "(КМ)",
		"2010 г.", "выпуска", "принадлежит", "Аэрофлот", "Михаил", "Светлов", "\n",
	}

	for n := 0; n < 300; n++ {
		words := make([]string, gofakeit.Number(1, 8))
		for k := range words {
			words[k] = fragments[gofakeit.Number(0, len(fragments)-1)]
		}
		text := strings.Join(words, " ")
		s := e.stream(text)

		for i := 0; i < s.Len(); i++ {
			items := e.builder.Build(s, i)
			if items == nil {
				continue
			}
			require.NotEmpty(t, items, text)
			assert.LessOrEqual(t, len(items), DefaultMaxItems, text)
			assert.False(t, items[0].is(CategoryOrg, CategoryNumber, CategoryClass, CategoryDate), text)

			for k, m := range items {
				assert.LessOrEqual(t, m.Begin, m.End, "%q: %s", text, m)
				assert.NotEmpty(t, m.Value, "%q: %s", text, m)
				if k > 0 {
					assert.Greater(t, m.Begin, items[k-1].End, "%q: %s", text, m)
				}
				if m.Category == CategoryRoute && len(m.RouteItems) == 1 {
					assert.True(t, m.routeKeyword, text)
				}
			}

			again := MergeModels(s, items)
			assert.Equal(t, len(items), len(again), text)
		}
	}
}
