package model

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Battery bounds in percent
const (
	MinBattery = 0
	MaxBattery = 100

	// LowBatteryThreshold is the level at and below which the battery is drawn red
	LowBatteryThreshold = 20
)

// CallState is the state rendered on the single call screen
type CallState string

const (
	CallStateIncoming CallState = "incoming"
	CallStateBusy     CallState = "busy"
)

// CallStates returns all call states in display order
func CallStates() []CallState {
	return []CallState{CallStateIncoming, CallStateBusy}
}

// String returns the string representation of CallState
func (s CallState) String() string {
	return string(s)
}

// Caption returns the state line shown above the contact name
func (s CallState) Caption() string {
	if s == CallStateBusy {
		return "Пользователь занят"
	}
	return "входящий вызов"
}

// ListSettings configures the call list scene
type ListSettings struct {
	DarkTheme   bool
	ShowSearch  bool
	ShowWifi    bool
	HeaderTitle string
	Clock       string
	Battery     int
}

// DefaultListSettings returns the settings the list scene starts with
func DefaultListSettings() ListSettings {
	return ListSettings{
		DarkTheme:   true,
		ShowSearch:  true,
		ShowWifi:    false,
		HeaderTitle: "Недавние",
		Clock:       "14:38",
		Battery:     50,
	}
}

// SetBattery stores the battery level clamped to [0,100]
func (s *ListSettings) SetBattery(level int) {
	s.Battery = ClampBattery(level)
}

// Normalize clamps out-of-range values in place
func (s *ListSettings) Normalize() {
	s.Battery = ClampBattery(s.Battery)
}

// AvatarColor is a named avatar background color in #RRGGBB form
type AvatarColor struct {
	Name  string
	Value string
}

// AvatarColors returns the avatar palette offered on the call screen
func AvatarColors() []AvatarColor {
	return []AvatarColor{
		{Name: "Синий", Value: "#007AFF"},
		{Name: "Зеленый", Value: "#32D74B"},
		{Name: "Красный", Value: "#FF3B30"},
		{Name: "Оранжевый", Value: "#FF9500"},
		{Name: "Фиолетовый", Value: "#AF52DE"},
		{Name: "Розовый", Value: "#FF2D92"},
		{Name: "Серый", Value: "#8E8E93"},
	}
}

// CallSettings configures the single call scene
type CallSettings struct {
	ContactName   string
	ContactNumber string
	State         CallState
	Clock         string
	Battery       int
	ShowAvatar    bool
	AvatarColor   string
}

// DefaultCallSettings returns the settings the call scene starts with
func DefaultCallSettings() CallSettings {
	return CallSettings{
		ContactName:   "Владимир Николаевич",
		ContactNumber: "+7-911-563-54-37",
		State:         CallStateIncoming,
		Clock:         "14:38",
		Battery:       85,
		ShowAvatar:    false,
		AvatarColor:   "#007AFF",
	}
}

// SetBattery stores the battery level clamped to [0,100]
func (s *CallSettings) SetBattery(level int) {
	s.Battery = ClampBattery(level)
}

// Normalize clamps out-of-range values and fills an unknown state in place
func (s *CallSettings) Normalize() {
	s.Battery = ClampBattery(s.Battery)
	if s.State != CallStateIncoming && s.State != CallStateBusy {
		s.State = CallStateIncoming
	}
	if s.AvatarColor == "" {
		s.AvatarColor = AvatarColors()[0].Value
	}
}

// ClampBattery clamps a battery level to [MinBattery, MaxBattery]
func ClampBattery(level int) int {
	if level < MinBattery {
		return MinBattery
	}
	if level > MaxBattery {
		return MaxBattery
	}
	return level
}

// Initial returns the upper-cased first rune of name, or "" for a blank name
func Initial(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r))
}
