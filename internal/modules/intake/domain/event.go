package domain

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Event is one inbound chat update reduced to a tagged variant. It is built
// by a single parse step at the transport boundary; everything downstream
// switches on Kind instead of probing optional transport fields.
type Event struct {
	Kind    EventKind
	ChatID  int64
	Caption string
	Sender  Sender

	Command  string         // normalized command name, for command events
	Text     string         // raw message text, for command and text events
	Document *DocumentRef   // set for document events
	Photo    []PhotoVariant // all resolution variants, for photo events
}

// DocumentRef points at a file hosted by the chat transport.
type DocumentRef struct {
	FileID   string
	FileName string
}

// PhotoVariant is one resolution of a photo attachment.
type PhotoVariant struct {
	FileID string
	Width  int
	Height int
}

// LargestPhoto returns the highest-resolution variant of a photo event.
func (e Event) LargestPhoto() (PhotoVariant, bool) {
	if len(e.Photo) == 0 {
		return PhotoVariant{}, false
	}
	largest := lo.MaxBy(e.Photo, func(a PhotoVariant, b PhotoVariant) bool {
		return a.Width*a.Height > b.Width*b.Height
	})
	return largest, true
}

// Sender is the display metadata of the user behind an event.
type Sender struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
}

// DisplayToken renders the sender for admin notifications: the handle when
// available, else the full name, else an opaque id label.
func (s Sender) DisplayToken() string {
	if s.Username != "" {
		return "@" + s.Username
	}
	if name := strings.TrimSpace(s.FirstName + " " + s.LastName); name != "" {
		return name
	}
	return fmt.Sprintf("user_%d", s.ID)
}
