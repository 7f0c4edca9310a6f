package frontmatter

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrUnclosedBlock indicates a front-matter fence that is opened but
// never closed.
var ErrUnclosedBlock = errors.New("unclosed front matter block")

var fence = []byte("---")

// Meta is the publishing metadata carried by article documents.
type Meta struct {
	Layout      string  `yaml:"layout"`
	Title       string  `yaml:"title"`
	Framework   string  `yaml:"framework"`
	Rating      float64 `yaml:"rating"`
	Description string  `yaml:"description"`
}

// Split separates the front-matter block from the body. Input without a
// leading fence yields an empty head and the unchanged input as body.
func Split(data []byte) (head, body []byte, err error) {
	if !hasFence(data) {
		return nil, data, nil
	}
	rest := data[len(fence):]
	if rest[0] == '\r' {
		rest = rest[1:]
	}
	if len(rest) == 0 || rest[0] != '\n' {
		return nil, nil, ErrUnclosedBlock
	}
	rest = rest[1:] // skip the newline ending the opening fence

	offset := 0
	for {
		line := rest[offset:]
		end := bytes.IndexByte(line, '\n')
		if end < 0 {
			if isFenceLine(line) {
				return rest[:offset], nil, nil
			}
			return nil, nil, ErrUnclosedBlock
		}
		if isFenceLine(line[:end]) {
			return rest[:offset], rest[offset+end+1:], nil
		}
		offset += end + 1
	}
}

func hasFence(data []byte) bool {
	if !bytes.HasPrefix(data, fence) {
		return false
	}
	rest := data[len(fence):]
	return len(rest) > 0 && (rest[0] == '\n' || rest[0] == '\r')
}

func isFenceLine(line []byte) bool {
	return bytes.Equal(bytes.TrimRight(line, " \r"), fence)
}

// Parse splits the document and unmarshals the front-matter block into
// meta, which must be a pointer. The body is returned unchanged.
func Parse(data []byte, meta any) (body []byte, err error) {
	head, body, err := Split(data)
	if err != nil {
		return nil, err
	}
	if len(head) == 0 {
		return body, nil
	}
	if err := yaml.Unmarshal(head, meta); err != nil {
		return nil, fmt.Errorf("unmarshal front matter: %w", err)
	}
	return body, nil
}
