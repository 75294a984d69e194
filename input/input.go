package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for dimension parsing.
var (
	// ErrNotNumber indicates the text is empty or contains a non-digit.
	ErrNotNumber = errors.New("input: not a non-negative decimal number")
	// ErrNotOdd indicates the number is even (zero included).
	ErrNotOdd = errors.New("input: number must be odd")
)

// Prompt texts used by the CLI, matching the classic console wording.
const (
	WidthPrompt  = "Please enter an odd number for the width >>> "
	HeightPrompt = "Please enter an odd number for the height >>> "
)

// ParseDimension converts text into a positive odd dimension.
// Surrounding whitespace is ignored; signs, spaces inside and non-ASCII digits are not.
func ParseDimension(text string) (int, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, fmt.Errorf("%q: %w", text, ErrNotNumber)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%q: %w", text, ErrNotNumber)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", text, ErrNotNumber) // overflow
	}
	if n%2 == 0 {
		return 0, fmt.Errorf("%d: %w", n, ErrNotOdd)
	}
	return n, nil
}

// ValidateDimensions checks a width/height pair supplied without prompting
// (for example from flags).
func ValidateDimensions(width, height int) error {
	if width <= 0 || width%2 == 0 {
		return fmt.Errorf("width %d: %w", width, ErrNotOdd)
	}
	if height <= 0 || height%2 == 0 {
		return fmt.Errorf("height %d: %w", height, ErrNotOdd)
	}
	return nil
}

// Prompter asks for dimensions on out and reads answers line by line from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	log logrus.FieldLogger
}

// NewPrompter wraps in/out. A nil log discards rejection messages.
func NewPrompter(in io.Reader, out io.Writer, log logrus.FieldLogger) *Prompter {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Prompter{in: bufio.NewReader(in), out: out, log: log}
}

// Dimension writes prompt and re-asks until a valid odd number is entered.
// Returns an error wrapping io.EOF if input ends first.
func (p *Prompter) Dimension(prompt string) (int, error) {
	for {
		if _, err := io.WriteString(p.out, prompt); err != nil {
			return 0, fmt.Errorf("input: write prompt: %w", err)
		}
		line, err := p.in.ReadString('\n')
		if line != "" {
			n, perr := ParseDimension(line)
			if perr == nil {
				return n, nil
			}
			p.log.WithFields(logrus.Fields{"text": strings.TrimSpace(line)}).WithError(perr).Debug("rejected dimension")
		}
		if err != nil {
			return 0, fmt.Errorf("input: read dimension: %w", err)
		}
	}
}

// Dimensions prompts for width then height.
func (p *Prompter) Dimensions() (width, height int, err error) {
	if width, err = p.Dimension(WidthPrompt); err != nil {
		return 0, 0, err
	}
	if height, err = p.Dimension(HeightPrompt); err != nil {
		return 0, 0, err
	}
	return width, height, nil
}
