package morph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzer_Analyze(t *testing.T) {
	a := NewAnalyzer()

	tests := []struct {
		name  string
		word  string
		class Class
		cases Case
	}{
		{"предлог", "в", ClassPreposition, CaseUndefined},
		{"украинский предлог", "від", ClassPreposition, CaseUndefined},
		{"союз", "и", ClassConjunction, CaseUndefined},
		{"местоимение", "который", ClassPronoun, CaseUndefined},
		{"наречие", "сегодня", ClassAdverb, CaseUndefined},
		{"прилагательное", "грузовой", ClassAdjective, CaseNominative | CaseGenitive | CaseDative | CaseInstrumental | CasePrepositional},
		{"прилагательное в родительном", "российского", ClassAdjective, CaseGenitive | CaseAccusative},
		{"средний род", "российское", ClassAdjective, CaseNominative | CaseAccusative},
		{"исключение", "машина", ClassNoun, CaseNominative | CaseGenitive},
		{"короткое слово не прилагательное", "вой", ClassNoun, CaseNominative | CaseAccusative},
		{"латиница", "Toyota", ClassNoun, CaseNominative},
		{"имя собственное", "Москва", ClassNoun | ClassProper, CaseNominative | CaseGenitive},
		{"родительный множественного", "самолетов", ClassNoun, CaseGenitive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := a.Analyze(tt.word)
			assert.Equal(t, tt.class, info.Class)
			assert.Equal(t, tt.cases, info.Case)
		})
	}
}

func TestAnalyzer_Stem(t *testing.T) {
	a := NewAnalyzer()

	assert.Equal(t, a.Stemmer().Stem("автомобиля"), a.Analyze("автомобиля").Stem)
	assert.Equal(t, a.Analyze("автомобиль").Stem, a.Analyze("автомобиля").Stem)
	assert.Empty(t, a.Analyze("Toyota").Stem)
	assert.Empty(t, a.Analyze("  ").Stem)
	assert.Equal(t, Info{}, a.Analyze(""))
}

func TestAnalyzer_IsAdjective(t *testing.T) {
	a := NewAnalyzer()
	assert.True(t, a.IsAdjective("пассажирский"))
	assert.True(t, a.IsAdjective("українського"))
	assert.False(t, a.IsAdjective("теплоход"))
	assert.False(t, a.IsAdjective("станция"))
}

func TestInfo_IsGenitiveOnly(t *testing.T) {
	a := NewAnalyzer()
	assert.True(t, a.Analyze("автомобилей").IsGenitiveOnly())
	assert.False(t, a.Analyze("автомобиль").IsGenitiveOnly())
	assert.False(t, a.Analyze("российского").IsGenitiveOnly())
}

func TestFold(t *testing.T) {
	assert.Equal(t, "САМОЛЕТ", Fold("самолёт"))
	assert.Equal(t, "ЕЛКА", Fold("Ёлка"))
	assert.Equal(t, "TOYOTA", Fold("Toyota"))
	assert.Equal(t, "ЛІТАК", Fold("літак"))
}
