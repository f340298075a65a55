package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/cli/go-gh/v2/pkg/jsonpretty"
	"github.com/cli/go-gh/v2/pkg/term"
)

// Printer writes command results to standard output.
type Printer struct {
	Out      io.Writer
	Colorize bool
}

// NewPrinter returns a Printer for the current terminal. Colour is enabled
// only when stdout is a colour-capable terminal.
func NewPrinter() *Printer {
	t := term.FromEnv()
	return &Printer{Out: t.Out(), Colorize: t.IsColorEnabled()}
}

// JSON writes v as indented JSON.
func (p *Printer) JSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	if err := jsonpretty.Format(p.Out, bytes.NewReader(b), "  ", p.Colorize); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
