// Package textpath stores the text file path given on the command line.
//
// The path is published once, before the window is created, and read by the
// UI through the get_cli_text_path command for the rest of the process
// lifetime. An empty string means no file was supplied.
package textpath

import (
	"errors"
	"sync/atomic"
)

var (
	// ErrAlreadySet is returned by Set after the first successful call.
	ErrAlreadySet = errors.New("text path already published")
	// ErrNotSet is returned by Get before Set has been called.
	ErrNotSet = errors.New("text path not yet published")
)

// Cell is a write-once holder for the CLI text path.
// The zero value is an empty, unpublished cell.
type Cell struct {
	v atomic.Pointer[string]
}

// New returns a cell that has already been published with path.
func New(path string) *Cell {
	c := &Cell{}
	c.v.Store(&path)
	return c
}

// Set publishes path. Only the first call succeeds.
func (c *Cell) Set(path string) error {
	if !c.v.CompareAndSwap(nil, &path) {
		return ErrAlreadySet
	}
	return nil
}

// Get returns the published path.
func (c *Cell) Get() (string, error) {
	p := c.v.Load()
	if p == nil {
		return "", ErrNotSet
	}
	return *p, nil
}

// IsSet reports whether the cell has been published.
func (c *Cell) IsSet() bool {
	return c.v.Load() != nil
}
