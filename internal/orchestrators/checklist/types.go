package checklist

import (
	"context"
	"time"
)

// NoticeKind distinguishes the acknowledgments shown after a write
type NoticeKind string

const (
	NoticeSaved NoticeKind = "saved"
	NoticeReset NoticeKind = "reset"

	// NoticeDuration is how long an acknowledgment stays visible
	NoticeDuration = time.Second
)

// Notice is a transient acknowledgment for the presentation layer
type Notice struct {
	Kind    NoticeKind
	Message string
	At      time.Time
	Until   time.Time
}

// Notifier displays acknowledgments
type Notifier interface {
	Notify(ctx context.Context, notice Notice)
}

// Field names the control a FieldEdit targets
type Field string

const (
	FieldTrim        Field = "trim"
	FieldColor       Field = "color"
	FieldEnchantment Field = "enchantment"
)

// FieldEdit is a single user change to an item in the active view.
// Value carries the trim, color or enchantment label; Checked is only read
// for enchantments. An empty trim or color clears the choice.
type FieldEdit struct {
	Item    string
	Field   Field
	Value   string
	Checked bool
}
