package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBrandTable(t *testing.T) {
	terms := parseBrandTable("ВАЗ,VAZ; LADA,ЛАДА ;ВОЛГА,VOLGA,true;;", KindAuto)
	require.Len(t, terms, 3)

	assert.Equal(t, "ВАЗ", terms[0].Canonical)
	assert.Equal(t, []string{"VAZ"}, terms[0].Variants)
	assert.False(t, terms[0].Ambiguous)
	assert.Equal(t, CategoryBrand, terms[0].Category)
	assert.Equal(t, KindAuto, terms[0].Kind)

	assert.Equal(t, "LADA", terms[1].Canonical)
	assert.Equal(t, []string{"ЛАДА"}, terms[1].Variants)

	assert.Equal(t, "ВОЛГА", terms[2].Canonical)
	assert.True(t, terms[2].Ambiguous)
}

func TestOntology_Stats(t *testing.T) {
	o := getEnv(t).ontology

	stats := o.Stats()
	total := 0
	for _, n := range stats {
		total += n
	}
	assert.Equal(t, o.Len(), total)
	assert.Len(t, o.Terms(), o.Len())

	for _, key := range []string{"Noun/Auto", "Noun/Ship", "Noun/Fly", "Noun/Space", "Brand/Auto", "Brand/Fly", "Number/Auto"} {
		assert.Positive(t, stats[key], key)
	}
}

func TestOntology_TermsIsCopy(t *testing.T) {
	o := getEnv(t).ontology
	terms := o.Terms()
	terms[0] = nil
	assert.NotNil(t, o.Terms()[0])
}

func TestOntology_Lookup(t *testing.T) {
	e := getEnv(t)

	tests := []struct {
		name      string
		text      string
		canonical string
		end       int
		found     bool
	}{
		{name: "самое длинное совпадение", text: "самолет-амфибия", canonical: "самолет-амфибия", end: 2, found: true},
		{name: "короткое при разрыве", text: "самолет амфибия", canonical: "самолет", end: 0, found: true},
		{name: "многословный номер", text: "бортовой номер RA-89123", canonical: "бортовой номер", end: 1, found: true},
		{name: "падеж по основе", text: "автобусом", canonical: "автобус", end: 0, found: true},
		{name: "неизвестное слово", text: "погода", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term, end, ok := e.ontology.Lookup(e.stream(tt.text), 0)
			require.Equal(t, tt.found, ok)
			if !ok {
				assert.Nil(t, term)
				return
			}
			assert.Equal(t, tt.canonical, term.Canonical)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestOntology_AbbrevGroupIndexesOnlyAbbreviations(t *testing.T) {
	e := getEnv(t)

	term, _, ok := e.ontology.Lookup(e.stream("ВС"), 0)
	require.True(t, ok)
	assert.Equal(t, "воздушное судно", term.Canonical)
	assert.True(t, term.Ambiguous)
}
