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

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 40 // Base width for file path
	statusWidth = 15 // Width for status text
)

// 🎯 FileOperation represents a file operation for logging
type FileOperation struct {
	Path         string // File path relative to the application root
	Status       string // Operation status
	IsNew        bool   // Whether the file was created
	IsModified   bool   // Whether the file was rewritten
	IsSkipped    bool   // Whether the file was left alone
	IsFailed     bool   // Whether the operation failed
	Replacements int    // Number of replacements made
}

// 🎯 Console prints operator facing messages and mirrors them to zerolog
type Console struct {
	out  io.Writer
	zlog zerolog.Logger
	mu   sync.Mutex
}

// 🏭 New creates a console writing to out. Messages are mirrored to zlog at debug level.
func New(out io.Writer, zlog zerolog.Logger) *Console {
	return &Console{
		out:  out,
		zlog: zlog,
	}
}

// 🏭 FromContext creates a console writing to out that mirrors into the context logger
func FromContext(ctx context.Context, out io.Writer) *Console {
	return New(out, *zerolog.Ctx(ctx))
}

// 📝 formatFileOperation formats a file operation for display
func (c *Console) formatFileOperation(op FileOperation) string {
	var symbol rune
	var symbolColor color.Attribute
	switch {
	case op.IsFailed:
		symbol = '✗'
		symbolColor = color.FgRed
	case op.IsNew:
		symbol = '✓'
		symbolColor = color.FgGreen
	case op.IsModified:
		symbol = '⟳'
		symbolColor = color.FgBlue
	case op.IsSkipped:
		symbol = '-'
		symbolColor = color.FgYellow
	default:
		symbol = '•'
		symbolColor = color.FgCyan
	}

	return fmt.Sprintf("%s%s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, op.Path),
		fmt.Sprintf("%-*s", statusWidth, op.Status))
}

// 📝 LogFileOperation logs a file operation
func (c *Console) LogFileOperation(ctx context.Context, op FileOperation) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintln(c.out, c.formatFileOperation(op))

	zerolog.Ctx(ctx).Debug().
		Str("file", op.Path).
		Str("status", op.Status).
		Bool("is_new", op.IsNew).
		Bool("is_modified", op.IsModified).
		Bool("is_skipped", op.IsSkipped).
		Bool("is_failed", op.IsFailed).
		Int("replacements", op.Replacements).
		Msg("file operation")
}

func (c *Console) print(prefix string, attrs []color.Attribute, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(attrs) > 0 {
		fmt.Fprintf(c.out, "%s%s\n", prefix, color.New(attrs...).Sprint(msg))
	} else {
		fmt.Fprintf(c.out, "%s%s\n", prefix, msg)
	}
}

// 📝 Newline prints an empty line
func (c *Console) Newline() {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out)
}

// 📝 Header logs a header
func (c *Console) Header(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("doctool")
	fmt.Fprintf(c.out, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	c.zlog.Debug().Msg(msg)
}

// 📝 Line prints a plain line
func (c *Console) Line(msg string) {
	c.print("", nil, msg)
	c.zlog.Debug().Msg(msg)
}

// 📝 Comment prints a highlighted line, typically a command the operator can run
func (c *Console) Comment(msg string) {
	c.print("", []color.Attribute{color.FgYellow}, msg)
	c.zlog.Debug().Msg(msg)
}

// 📝 Info prints an informational line
func (c *Console) Info(msg string) {
	c.print("", []color.Attribute{color.FgGreen}, msg)
	c.zlog.Debug().Msg(msg)
}

// 📝 Success logs a success message
func (c *Console) Success(msg string) {
	c.print("✅ ", []color.Attribute{color.FgGreen}, msg)
	c.zlog.Debug().Msg(msg)
}

// 📝 Warning logs a warning message
func (c *Console) Warning(msg string) {
	c.print("⚠️  ", []color.Attribute{color.FgYellow}, msg)
	c.zlog.Debug().Str("severity", "warning").Msg(msg)
}

// 📝 Error logs an error message
func (c *Console) Error(msg string) {
	c.print("❌ ", []color.Attribute{color.FgRed}, msg)
	c.zlog.Debug().Str("severity", "error").Msg(msg)
}

// 📝 Linef prints a formatted plain line
func (c *Console) Linef(format string, args ...interface{}) {
	c.Line(fmt.Sprintf(format, args...))
}

// 📝 Infof logs a formatted info message
func (c *Console) Infof(format string, args ...interface{}) {
	c.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (c *Console) Warningf(format string, args ...interface{}) {
	c.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (c *Console) Errorf(format string, args ...interface{}) {
	c.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (c *Console) Successf(format string, args ...interface{}) {
	c.Success(fmt.Sprintf(format, args...))
}
