// Package console implements the interactive dialogue on top of plain
// line-oriented readers and writers.
package console

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/guttosm/rocket-sim/internal/i18n"
	"github.com/guttosm/rocket-sim/internal/service"
)

// Prompter asks translated questions on out and reads one answer per line
// from in.
type Prompter struct {
	scanner    *bufio.Scanner
	out        io.Writer
	translator *i18n.Translator
	locale     string
}

// NewPrompter creates a Prompter. A nil translator uses the default one.
func NewPrompter(in io.Reader, out io.Writer, translator *i18n.Translator, locale string) *Prompter {
	if translator == nil {
		translator = i18n.GetTranslator()
	}
	return &Prompter{
		scanner:    bufio.NewScanner(in),
		out:        out,
		translator: translator,
		locale:     locale,
	}
}

// Say prints the translated message for key followed by a newline.
func (p *Prompter) Say(key string, args ...interface{}) {
	p.Println(p.translator.Translatef(key, p.locale, args...))
}

// Println prints line followed by a newline.
func (p *Prompter) Println(line string) {
	_, _ = fmt.Fprintln(p.out, line)
}

// Translate returns the message for key in the prompter's locale.
func (p *Prompter) Translate(key string) string {
	return p.translator.Translate(key, p.locale)
}

// AskString prints the prompt for key and returns the trimmed answer.
// It returns io.EOF when the input is exhausted.
func (p *Prompter) AskString(key string) (string, error) {
	_, _ = fmt.Fprint(p.out, p.Translate(key))
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("read answer: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// AskFloat prompts for a finite number. Anything else is reported as
// service.ErrMalformedInput.
func (p *Prompter) AskFloat(key string) (float64, error) {
	answer, err := p.AskString(key)
	if err != nil {
		return 0, err
	}
	return ParseFloat(answer)
}

// AskInt prompts for an integer. Anything else is reported as
// service.ErrMalformedInput.
func (p *Prompter) AskInt(key string) (int, error) {
	answer, err := p.AskString(key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(answer)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer: %w", answer, service.ErrMalformedInput)
	}
	return n, nil
}

// ParseFloat parses a finite decimal number.
func ParseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%q is not a number: %w", s, service.ErrMalformedInput)
	}
	return v, nil
}

// FormatNumber renders v in its shortest exact decimal form, keeping one
// decimal for integral values ("249.0").
func FormatNumber(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
