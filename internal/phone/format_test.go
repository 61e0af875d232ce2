package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/callshot/internal/model"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"contact name", "John", "John"},
		{"cyrillic name", "Вика салон", "Вика салон"},
		{"digits without plus", "89115635437", "89115635437"},
		{"plus only", "+", "+"},
		{"plus with letters", "+abc", "+"},
		{"bare prefix", "+7", "+7"},
		{"one digit", "+79", "+7-9"},
		{"two digits", "+791", "+7-91"},
		{"first group", "+7911", "+7-911"},
		{"partial second group", "+79115", "+7-911-5"},
		{"full number", "+79115635437", "+7-911-563-54-37"},
		{"extra digits dropped", "+791156354371", "+7-911-563-54-37"},
		{"spaces and brackets", "+7 (911) 563 54 37", "+7-911-563-54-37"},
		{"stray plus inside", "+7911+5635437", "+7-911-563-54-37"},
		{"other country without zero", "+1234567890", "+1234567890"},
		{"other country four char code", "+12345678", "+123456-78"},
		{"zero ends country code", "+3801234567", "+38012-345-67"},
		{"zero past fourth character", "+4412301234", "+4412301-234"},
		{"short remainder", "+4412", "+4412"},
		{"code only", "+44", "+44"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.input))
		})
	}
}

func TestFormat_IdempotentOnRussianNumbers(t *testing.T) {
	inputs := []string{"+79115635437", "+7911563", "+791", "+7-911-563-54-37"}
	for _, input := range inputs {
		once := Format(input)
		assert.Equal(t, once, Format(once), "input %q", input)
	}
}

func TestFormat_NoTrailingSeparator(t *testing.T) {
	number := "+79115635437"
	for i := 1; i <= len(number); i++ {
		out := Format(number[:i])
		assert.NotEqual(t, "-", out[len(out)-1:], "prefix %q produced %q", number[:i], out)
	}
}

func TestFormat_InternationalRegroupIsStable(t *testing.T) {
	for _, input := range []string{"+1234567890", "+3801234567", "+4412301234", "+12345678"} {
		once := Format(input)
		assert.Equal(t, once, Format(once), "input %q", input)
	}
}

func TestDigitCount(t *testing.T) {
	assert.Equal(t, 0, DigitCount(""))
	assert.Equal(t, 11, DigitCount("+7-911-563-54-37"))
	assert.Equal(t, 3, DigitCount("a1b2c3"))
}

func TestLooksLikeNumber(t *testing.T) {
	assert.True(t, LooksLikeNumber("+7911"))
	assert.True(t, LooksLikeNumber(" +1"))
	assert.True(t, LooksLikeNumber("8 (911) 563-54-37"))
	assert.False(t, LooksLikeNumber("112"))
	assert.False(t, LooksLikeNumber("Бухгалтерия"))
	assert.False(t, LooksLikeNumber(""))
}

func TestLiveEdit(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"+7", "+7"},
		{"+7911", "+7911"},
		{"+7911563543", "+7911563543"},
		{"+79115635437", "+7-911-563-54-37"},
		{"+7-911-563-54-37", "+7-911-563-54-37"},
		{"+7-911-563-54-371", "+7-911-563-54-37"},
		{"+1234567890123", "+1234567890123"},
		{"Иван", "Иван"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, LiveEdit(tt.input), "input %q", tt.input)
	}
}

func TestChannelFor(t *testing.T) {
	assert.Equal(t, model.ChannelPSTN, ChannelFor("+", model.ChannelVoIP))
	assert.Equal(t, model.ChannelVoIP, ChannelFor("Пашка", model.ChannelVoIP))
	assert.Equal(t, model.ChannelPSTN, ChannelFor("Люба", model.ChannelPSTN))
}

func TestDefaultChannel(t *testing.T) {
	assert.Equal(t, model.ChannelPSTN, DefaultChannel("+79115635437"))
	assert.Equal(t, model.ChannelVoIP, DefaultChannel("Иван"))
}
