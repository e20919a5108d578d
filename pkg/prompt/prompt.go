// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package prompt asks the operator questions, either through an interactive
// terminal UI or by reading answers line by line from a stream.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"gitlab.com/tozd/go/errors"
)

// 💬 Prompter asks the operator for input
type Prompter interface {
	// Ask returns the raw answer to question
	Ask(ctx context.Context, question string) (string, error)
	// Confirm asks a yes/no question, returning def when the operator gives no answer
	Confirm(ctx context.Context, question string, def bool) (bool, error)
}

// 🏭 New returns a terminal prompter when in is an interactive terminal and a
// line prompter otherwise.
func New(in io.Reader, out io.Writer) Prompter {
	if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return NewTerminal()
	}
	return NewLine(in, out)
}

// 🖥️ Terminal prompts using pterm's interactive printers
type Terminal struct{}

// NewTerminal creates a Terminal prompter
func NewTerminal() *Terminal {
	return &Terminal{}
}

func (t *Terminal) Ask(ctx context.Context, question string) (string, error) {
	answer, err := pterm.DefaultInteractiveTextInput.Show(question)
	if err != nil {
		return "", errors.Errorf("reading answer: %w", err)
	}
	return answer, nil
}

func (t *Terminal) Confirm(ctx context.Context, question string, def bool) (bool, error) {
	answer, err := pterm.DefaultInteractiveConfirm.WithDefaultValue(def).Show(question)
	if err != nil {
		return false, errors.Errorf("reading confirmation: %w", err)
	}
	return answer, nil
}

// 📜 Line reads one answer per line from a stream
type Line struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewLine creates a Line prompter reading from in and echoing questions to out
func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// readLine returns the next line and false once the input is exhausted
func (l *Line) readLine() (string, bool, error) {
	if l.scanner.Scan() {
		return strings.TrimRight(l.scanner.Text(), "\r"), true, nil
	}
	if err := l.scanner.Err(); err != nil {
		return "", false, errors.Errorf("reading answer: %w", err)
	}
	return "", false, nil
}

func (l *Line) Ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.Errorf("asking %q: %w", question, err)
	}

	fmt.Fprintf(l.out, " %s:\n > ", question)
	answer, _, err := l.readLine()
	fmt.Fprintln(l.out)
	if err != nil {
		return "", err
	}
	return answer, nil
}

func (l *Line) Confirm(ctx context.Context, question string, def bool) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, errors.Errorf("asking %q: %w", question, err)
	}

	hint := "yes/no [no]"
	if def {
		hint = "yes/no [yes]"
	}

	for {
		fmt.Fprintf(l.out, " %s (%s):\n > ", question, hint)
		answer, ok, err := l.readLine()
		fmt.Fprintln(l.out)
		if err != nil {
			return false, err
		}
		if !ok {
			return def, nil
		}

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}
