package serializer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/niksmo/product-feed/pkg/feed"
)

var _ Serializer = JSONLines{}

// JSONLines renders one self-contained JSON object per record. Absent
// scalars become null, list fields are native arrays (empty, never
// null) and slashes in string values are left unescaped.
type JSONLines struct{}

func NewJSONLines() JSONLines { return JSONLines{} }

func (j JSONLines) Serialize(p feed.Product) (string, error) {
	const op = "JSONLines.Serialize"

	line, err := encodeLine(NewRecord(p))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return line, nil
}

func (j JSONLines) SerializeMany(ps []feed.Product) (string, error) {
	const op = "JSONLines.SerializeMany"

	lines := make([]string, 0, len(ps))
	for _, p := range ps {
		line, err := encodeLine(NewRecord(p))
		if err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

func (j JSONLines) SerializeToFile(ps []feed.Product, path string, compress bool) error {
	content, err := j.SerializeMany(ps)
	if err != nil {
		return err
	}
	return writeFeedFile(path, []byte(content), compress)
}

func encodeLine(r Record) (string, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}
