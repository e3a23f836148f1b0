package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/brogergvhs/tinydesk/internal/providers"
)

const (
	FileSuffix = "_info.json"
	TempSuffix = ".tmp"

	// PartialSuffix ends every half-written file the Writer leaves behind.
	PartialSuffix = FileSuffix + TempSuffix
)

var ErrWrite = errors.New("write failed")

type Writer struct {
	dir string
}

func NewWriter(dir string) *Writer {
	if dir == "" {
		dir = "."
	}
	return &Writer{dir: dir}
}

// FileName keeps letters, digits and whitespace of the artist name, joins
// whitespace runs with a single underscore and lowercases the result.
func FileName(artist string) string {
	clean := make([]rune, 0, len(artist))
	for _, r := range artist {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) {
			clean = append(clean, r)
		}
	}

	base := strings.Join(strings.Fields(string(clean)), "_")
	return strings.ToLower(base) + FileSuffix
}

// Encode renders c as indented JSON.
func Encode(c *providers.Concert) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(c); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Write stores c under the writer's directory, replacing any file with the
// same name. It returns the written path and its size.
func (w *Writer) Write(c *providers.Concert) (string, int64, error) {
	data, err := Encode(c)
	if err != nil {
		return "", 0, fmt.Errorf("%w: failed to serialize concert info: %w", ErrWrite, err)
	}

	path := filepath.Join(w.dir, FileName(c.Artist))
	tmp := path + TempSuffix

	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return "", 0, fmt.Errorf("%w: failed to write JSON file %s: %w", ErrWrite, path, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", 0, fmt.Errorf("%w: failed to write JSON file %s: %w", ErrWrite, path, err)
	}

	return path, int64(len(data)), nil
}
