package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transportner/tokens"
)

func TestScanPlateNumber(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		value  string
		alt    string
		doubt  bool
		begin  int
		end    int
		reject bool
	}{
		{name: "полный номер", text: "А123ВС77", value: "А123ВС", alt: "77", end: 3},
		{name: "трехзначный регион", text: "А123ВС777", value: "А123ВС", alt: "777", end: 3},
		{name: "однозначный регион дополняется нулем", text: "А123ВС7", value: "А123ВС", alt: "07", end: 3},
		{name: "без региона", text: "А123ВС", value: "А123ВС", end: 2},
		{name: "с пробелами", text: "А 123 ВС 77", value: "А123ВС", alt: "77", end: 3},
		{name: "латинские двойники", text: "A123BC77", value: "А123ВС", alt: "77", end: 3},
		{name: "строчные буквы снижают уверенность", text: "а123вс77", value: "А123ВС", alt: "77", doubt: true, end: 3},
		{name: "одна строчная группа", text: "а123ВС77", value: "А123ВС", alt: "77", end: 3},
		{name: "RUS восстанавливает уверенность", text: "а123вс77 RUS", value: "А123ВС", alt: "77", end: 4},
		{name: "в скобках", text: "(А123ВС77)", value: "А123ВС", alt: "77", begin: 0, end: 5},
		{name: "две цифры", text: "А12ВС77", reject: true},
		{name: "буква вне алфавита номеров", text: "Б123ВС77", reject: true},
		{name: "скобка не закрывается сразу", text: "(А123ВС77 км)", reject: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := scanPlateNumber(tokens.Tokenize(tt.text, nil), 0)
			if tt.reject {
				assert.Nil(t, m)
				return
			}
			require.NotNil(t, m)
			assert.Equal(t, CategoryNumber, m.Category)
			assert.Equal(t, KindAuto, m.Kind)
			assert.Equal(t, tt.value, m.Value)
			assert.Equal(t, tt.alt, m.AltValue)
			assert.Equal(t, tt.doubt, m.IsDoubt)
			assert.Equal(t, tt.begin, m.Begin)
			assert.Equal(t, tt.end, m.End)
		})
	}
}

func TestScanGenericNumber(t *testing.T) {
	tests := []struct {
		name              string
		text              string
		ignoreRegionSplit bool
		value             string
		alt               string
		end               int
		reject            bool
	}{
		{name: "отделение региона", text: "40 89123 62", value: "4089123", alt: "62", end: 2},
		{name: "без отделения региона", text: "40 89123 62", ignoreRegionSplit: true, value: "408912362", end: 2},
		{name: "трехзначный хвост", text: "1234-567", value: "1234", alt: "567", end: 2},
		{name: "слитный номер", text: "9321483", value: "9321483", end: 0},
		{name: "буквы и цифры", text: "AB 1234", value: "AB1234", end: 1},
		{name: "короткий код", text: "12", reject: true},
		{name: "без цифр", text: "АБВ ГД", reject: true},
		{name: "длинное слово не фрагмент", text: "1234 НОМЕР", value: "1234", end: 0},
		{name: "два пробела разрывают номер", text: "1234  5678", value: "1234", end: 0},
		{name: "в скобках", text: "(12345)", value: "12345", end: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := scanGenericNumber(tokens.Tokenize(tt.text, nil), 0, tt.ignoreRegionSplit)
			if tt.reject {
				assert.Nil(t, m)
				return
			}
			require.NotNil(t, m)
			assert.Equal(t, tt.value, m.Value)
			assert.Equal(t, tt.alt, m.AltValue)
			assert.Equal(t, 0, m.Begin)
			assert.Equal(t, tt.end, m.End)
		})
	}
}

func TestSplitRegion(t *testing.T) {
	head, region, ok := splitRegion("40 89123 62")
	require.True(t, ok)
	assert.Equal(t, "4089123", head)
	assert.Equal(t, "62", region)

	_, _, ok = splitRegion("408912362")
	assert.False(t, ok)

	_, _, ok = splitRegion("1234 AB")
	assert.False(t, ok)
}
