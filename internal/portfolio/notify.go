package portfolio

import (
	"log"
	"time"
)

const (
	notifySlideDelay = 100 * time.Millisecond
	notifySlide      = 300 * time.Millisecond
	notifyLifetime   = 5 * time.Second
)

type Level int

const (
	Info Level = iota
	Success
	Error
)

type Notification struct {
	Message string
	Level   Level
	age     time.Duration
}

// Offset is how far the notification is pushed off-screen to the right, as a
// fraction of its width: 1 hidden, 0 fully shown.
func (n Notification) Offset() float64 {
	switch {
	case n.age < notifySlideDelay:
		return 1
	case n.age < notifySlideDelay+notifySlide:
		return 1 - float64(n.age-notifySlideDelay)/float64(notifySlide)
	case n.age < notifyLifetime:
		return 0
	default:
		return float64(n.age-notifyLifetime) / float64(notifySlide)
	}
}

// Notifier holds the toast messages shown in the top right corner.
type Notifier struct {
	items []Notification
}

func (n *Notifier) Push(msg string, lvl Level) {
	n.items = append(n.items, Notification{Message: msg, Level: lvl})
}

func (n *Notifier) Advance(dt time.Duration) {
	live := n.items[:0]
	for _, it := range n.items {
		it.age += dt
		if it.age < notifyLifetime+notifySlide {
			live = append(live, it)
		}
	}
	n.items = live
}

func (n *Notifier) Active() []Notification { return n.items }

// LiveRegion carries the latest screen-reader announcement. Repeating the
// current message is a no-op.
type LiveRegion struct {
	text string
}

func (l *LiveRegion) Announce(msg string) bool {
	if msg == l.text {
		return false
	}
	l.text = msg
	log.Printf("live: %s", msg)
	return true
}

func (l *LiveRegion) Text() string { return l.text }
