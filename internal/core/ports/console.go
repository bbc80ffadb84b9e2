package ports

import "context"

// --- Console Port (Outbound) ---

// ConsolePort is the terminal surface the menu runs on. Reads are
// prompted; ReadFloat fails on input that does not parse as a number
// so handlers can re-prompt instead of crashing the session.
type ConsolePort interface {
	Println(text string)
	Printf(format string, args ...interface{})
	ReadString(prompt string) (string, error)
	ReadFloat(prompt string) (float64, error)
}

// --- Menu Handler Port (Inbound) ---

// MenuHandler defines the "plugin" interface for one menu option.
type MenuHandler interface {
	// Key returns the menu choice string (e.g. "3")
	Key() string
	// Label returns the text shown next to the key in the menu
	Label() string
	// Handle runs the option: prompts for input, calls the ledger,
	// and reports the outcome on the console.
	Handle(ctx context.Context) error
}
