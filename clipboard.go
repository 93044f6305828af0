package pictor

import "github.com/atotto/clipboard"

// Clipboard exchanges text with the outside world. Copy and paste move
// shapes through it as snapshot text.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// SystemClipboard is the operating system clipboard.
type SystemClipboard struct{}

func (SystemClipboard) ReadAll() (string, error) { return clipboard.ReadAll() }

func (SystemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// memoryClipboard keeps clipboard text in process. Used when the system
// clipboard is unsupported (headless runs, tests).
type memoryClipboard struct {
	text string
}

func (m *memoryClipboard) ReadAll() (string, error) { return m.text, nil }

func (m *memoryClipboard) WriteAll(text string) error {
	m.text = text
	return nil
}

// defaultClipboard picks the system clipboard when one is available.
func defaultClipboard() Clipboard {
	if clipboard.Unsupported {
		return &memoryClipboard{}
	}
	return SystemClipboard{}
}
