// Package notify is the local-notification boundary. Delivery is
// fire-and-forget: there is no confirmation and callers must treat failures
// as non-fatal.
package notify

import "github.com/gen2brain/beeep"

// Notifier delivers a local notification to the user.
type Notifier interface {
	// Available reports whether the host can show notifications at all.
	Available() bool
	Send(title, body string) error
}

// Desktop sends notifications through the operating system's notification
// service (D-Bus, Notification Center or toast, depending on the platform).
type Desktop struct{}

func (Desktop) Available() bool { return true }

func (Desktop) Send(title, body string) error {
	return beeep.Notify(title, body, "")
}
