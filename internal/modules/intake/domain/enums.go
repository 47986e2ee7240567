//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// EventKind represents the classified shape of an inbound chat event
// ENUM(command,text,document,photo,unrecognized)
type EventKind string

// IntakeOutcome represents the terminal state of a file intake attempt
// ENUM(stored,missing_caption,rejected_type)
type IntakeOutcome string
