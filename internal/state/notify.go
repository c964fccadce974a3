package state

// Variant selects how a notification is presented.
type Variant int

const (
	VariantDefault Variant = iota
	VariantError
)

// String returns the variant name.
func (v Variant) String() string {
	if v == VariantError {
		return "destructive"
	}
	return "default"
}

// Notification is a transient message for the user.
type Notification struct {
	Title       string
	Description string
	Variant     Variant
}

// Notifier displays notifications. Delivery is best effort and nothing is
// returned to the caller.
type Notifier interface {
	Notify(Notification)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(Notification)

// Notify calls f(n).
func (f NotifierFunc) Notify(n Notification) {
	f(n)
}

type discard struct{}

func (discard) Notify(Notification) {}
