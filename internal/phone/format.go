package phone

import (
	"strings"

	"github.com/ytget/callshot/internal/model"
)

// RussiaPrefix is the country code grouped as +7-XXX-XXX-XX-XX
const RussiaPrefix = "+7"

// LiveFormatMinDigits is the digit count (country code + 10) at which
// +7 input is reformatted while typing
const LiveFormatMinDigits = 11

// minNumberDigits is the digit count from which unprefixed input is treated as a number
const minNumberDigits = 5

// separator joins digit groups
const separator = "-"

var (
	russiaGroups        = []int{3, 3, 2, 2}
	defaultGroupSize    = 3
	defaultCountryWidth = 4 // "+" and up to three digits
)

// Format reformats input into a grouped national/international number.
// Input that does not start with "+" is returned unchanged.
func Format(input string) string {
	if !strings.HasPrefix(input, "+") {
		return input
	}

	cleaned := clean(input)
	if len(cleaned) <= 1 {
		return cleaned
	}

	if strings.HasPrefix(cleaned, RussiaPrefix) {
		return formatRussian(cleaned[len(RussiaPrefix):])
	}
	return formatInternational(cleaned)
}

// clean keeps a single leading "+" and every digit
func clean(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for i, r := range input {
		if r == '+' && i == 0 {
			b.WriteRune(r)
			continue
		}
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// formatRussian groups digits 3-3-2-2 after the +7 prefix, dropping anything past ten digits
func formatRussian(digits string) string {
	var b strings.Builder
	b.WriteString(RussiaPrefix)

	pos := 0
	for _, size := range russiaGroups {
		if pos >= len(digits) {
			break
		}
		end := min(pos+size, len(digits))
		b.WriteString(separator)
		b.WriteString(digits[pos:end])
		pos = end
	}
	return b.String()
}

// formatInternational splits off the country code and groups the rest by three.
// The code runs up to the first "0" anywhere in cleaned, or is the first four
// characters when there is none. Groups follow the code without a separator.
func formatInternational(cleaned string) string {
	codeEnd := min(defaultCountryWidth, len(cleaned))
	if i := strings.IndexByte(cleaned, '0'); i > 0 {
		codeEnd = i
	}

	code, rest := cleaned[:codeEnd], cleaned[codeEnd:]
	if len(rest) < 2 {
		return cleaned
	}

	groups := make([]string, 0, len(rest)/defaultGroupSize+1)
	for i := 0; i < len(rest); i += defaultGroupSize {
		groups = append(groups, rest[i:min(i+defaultGroupSize, len(rest))])
	}
	return code + strings.Join(groups, separator)
}

// DigitCount returns the number of ASCII digits in s
func DigitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// LooksLikeNumber reports whether a contact name is phone-number-shaped
func LooksLikeNumber(name string) bool {
	name = strings.TrimSpace(name)
	if strings.HasPrefix(name, "+") {
		return true
	}
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= '0' && r <= '9':
		case r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			return false
		}
	}
	return DigitCount(name) >= minNumberDigits
}

// LiveEdit returns the value to store for a keystroke in a number or name field.
// +7 input is reformatted once it holds LiveFormatMinDigits digits; anything
// shorter is kept raw so the caret does not jump.
func LiveEdit(value string) string {
	if strings.HasPrefix(value, RussiaPrefix) && DigitCount(value) >= LiveFormatMinDigits {
		return Format(value)
	}
	return value
}

// ChannelFor returns the channel of an entry after its name field changed to value
func ChannelFor(value string, current model.Channel) model.Channel {
	if strings.HasPrefix(value, "+") {
		return model.ChannelPSTN
	}
	return current
}

// DefaultChannel returns the channel a freshly created entry gets for name
func DefaultChannel(name string) model.Channel {
	if LooksLikeNumber(name) {
		return model.ChannelPSTN
	}
	return model.ChannelVoIP
}
