// Package proposal holds the state behind the Valentine proposal page: the
// escalating No-button labels, the growing Yes-button font size and the click
// counter that drives both.
package proposal

// InitialLabel is shown on the No button before it has been clicked.
const InitialLabel = "No"

var messages = [...]string{
	"Are you sure?",
	"Really sure??",
	"Are you positive?",
	"Pookie please...",
	"Just think about it!",
	"If you say no, I will be really sad...",
	"I will be very sad...",
	"I will be very very very sad...",
	"Ok fine, I will stop asking...",
	"Just kidding, say yes please! ❤️",
}

// MessageCount is the number of escalation messages in the catalog.
const MessageCount = len(messages)

// Messages returns a copy of the escalation catalog in display order.
func Messages() []string {
	out := make([]string, MessageCount)
	copy(out, messages[:])
	return out
}

// LabelFor returns the No-button label after clicks presses. The catalog is
// walked in order and wraps around indefinitely.
func LabelFor(clicks int) string {
	if clicks <= 0 {
		return InitialLabel
	}
	return messages[(clicks-1)%MessageCount]
}
