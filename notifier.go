package identity

import (
	"context"
	"fmt"
)

// printNotifier writes notifications to stdout. It stands in until a real
// mail client is injected.
type printNotifier struct{}

// NewPrintNotifier returns a Notifier that prints instead of delivering.
func NewPrintNotifier() Notifier {
	return printNotifier{}
}

func (printNotifier) Notify(_ context.Context, recipient, subject, body string) error {
	fmt.Println("====== SENDING EMAIL NOTIFICATION =======")
	fmt.Printf("to: %s\n", recipient)
	fmt.Printf("subject: %s\n", subject)
	fmt.Printf("body: %s\n", body)
	return nil
}
