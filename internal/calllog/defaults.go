package calllog

import "github.com/ytget/callshot/internal/model"

// DefaultEntries returns the demo call log the list scene opens with
func DefaultEntries() []model.CallEntry {
	return []model.CallEntry{
		{ID: "1", Name: "Владимир Николаевич", Direction: model.DirectionIncoming, Time: "14:35", RepeatCount: 2, Channel: model.ChannelPSTN},
		{ID: "4", Name: "Вика салон на Лужниках", Direction: model.DirectionIncoming, Time: "Вчера", RepeatCount: 2, Channel: model.ChannelPSTN},
		{ID: "5", Name: "Пашка", Direction: model.DirectionIncoming, Time: "Вчера", Channel: model.ChannelVoIP},
		{ID: "6", Name: "Люба", Direction: model.DirectionIncoming, Time: "Вчера", RepeatCount: 2, Channel: model.ChannelPSTN},
		{ID: "7", Name: "Пашка", Direction: model.DirectionMissed, Time: "Вчера", Channel: model.ChannelVoIP},
		{ID: "8", Name: "Бухгалтерия", Direction: model.DirectionIncoming, Time: "Вчера", Channel: model.ChannelPSTN},
	}
}
