// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package console renders human-facing status lines for the configuration
// manager. Lines are styled with lipgloss and written to an arbitrary
// io.Writer; their wording is informational only.
package console

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	infoStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	warnStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	failureStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// Console writes styled status lines to w.
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

// New returns a Console writing to w.
func New(w io.Writer) *Console {
	return &Console{w: w}
}

// Info prints a neutral progress line.
func (c *Console) Info(msg string) {
	c.print(infoStyle.Render(msg))
}

// KeyValue prints a neutral line where value is highlighted after label.
func (c *Console) KeyValue(label, value string) {
	c.print(infoStyle.Render(label) + " " + valueStyle.Render(value))
}

// Success prints a completion line.
func (c *Console) Success(msg string) {
	c.print(successStyle.Render(msg))
}

// Warn prints a recoverable-condition line.
func (c *Console) Warn(msg string) {
	c.print(warnStyle.Render(msg))
}

// Failure prints an error line.
func (c *Console) Failure(msg string) {
	c.print(failureStyle.Render(msg))
}

func (c *Console) print(line string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = fmt.Fprintln(c.w, line)
}
