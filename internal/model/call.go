package model

// Direction is the direction of a call as shown in the call log
type Direction string

const (
	DirectionIncoming Direction = "incoming"
	DirectionOutgoing Direction = "outgoing"
	DirectionMissed   Direction = "missed"
)

// Directions returns all directions in display order
func Directions() []Direction {
	return []Direction{DirectionIncoming, DirectionOutgoing, DirectionMissed}
}

// String returns the string representation of Direction
func (d Direction) String() string {
	return string(d)
}

// IsValid reports whether d is one of the known directions
func (d Direction) IsValid() bool {
	switch d {
	case DirectionIncoming, DirectionOutgoing, DirectionMissed:
		return true
	}
	return false
}

// Channel tells whether a call went through the app (voip) or the phone network (pstn)
type Channel string

const (
	ChannelVoIP Channel = "voip"
	ChannelPSTN Channel = "pstn"
)

// Channels returns all channels in display order
func Channels() []Channel {
	return []Channel{ChannelVoIP, ChannelPSTN}
}

// String returns the string representation of Channel
func (c Channel) String() string {
	return string(c)
}

// IsValid reports whether c is one of the known channels
func (c Channel) IsValid() bool {
	return c == ChannelVoIP || c == ChannelPSTN
}

// Subtitle returns the line rendered under the contact name in the call log
func (c Channel) Subtitle() string {
	if c == ChannelPSTN {
		return "Россия"
	}
	return "Аудиовызов Telegram"
}

// CallEntry is a single row of the call log
type CallEntry struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Direction   Direction `json:"type"`
	Time        string    `json:"time"`
	RepeatCount int       `json:"count,omitempty"` // 0 means a single call, otherwise >= 2
	Channel     Channel   `json:"callType"`
}

// HasBadge reports whether the "(n)" repeat badge is rendered for the entry
func (e CallEntry) HasBadge() bool {
	return e.RepeatCount > 1
}

// Initial returns the upper-cased first letter of the name used in avatars
func (e CallEntry) Initial() string {
	return Initial(e.Name)
}

// NormalizeRepeatCount maps counts of one or less to "absent"
func NormalizeRepeatCount(count int) int {
	if count <= 1 {
		return 0
	}
	return count
}
