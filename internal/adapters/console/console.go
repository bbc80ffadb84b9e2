package console

import (
	"BankLedger/internal/core/ports"
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// Console is the terminal adapter behind ports.ConsolePort. It reads
// prompted lines from 'in' and writes to 'out'; both are injected so
// tests can drive a session from strings.
type Console struct {
	log zerolog.Logger
	in  *bufio.Reader
	out io.Writer
}

var _ ports.ConsolePort = (*Console)(nil) // Ensure compliance

// New creates a console over the given reader and writer.
func New(in io.Reader, out io.Writer, baseLogger *zerolog.Logger) *Console {
	return &Console{
		log: baseLogger.With().Str("component", "console").Logger(),
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Println writes one line of output.
func (c *Console) Println(text string) {
	fmt.Fprintln(c.out, text)
}

// Printf writes formatted output.
func (c *Console) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

// ReadString prompts and returns the entered line without the trailing
// newline. Surrounding whitespace is kept: customer names differing by
// whitespace are distinct identities.
func (c *Console) ReadString(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		// EOF with nothing buffered means the session input is gone.
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadFloat prompts and parses the entered line as a number.
func (c *Console) ReadFloat(prompt string) (float64, error) {
	line, err := c.ReadString(prompt)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		c.log.Debug().Str("input", line).Msg("Rejected non-numeric input")
		return 0, fmt.Errorf("invalid number %q", line)
	}
	return v, nil
}
