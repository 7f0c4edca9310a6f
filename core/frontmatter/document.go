package frontmatter

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// Document is a loaded article: its path within the source filesystem,
// its publishing metadata and its body text.
type Document struct {
	Path string
	Meta Meta
	Body string
}

// Load reads and parses a single document from the filesystem.
func Load(fsys fs.FS, name string) (Document, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Document{}, fmt.Errorf("read document %s: %w", name, err)
	}

	var meta Meta
	body, err := Parse(data, &meta)
	if err != nil {
		return Document{}, fmt.Errorf("parse document %s: %w", name, err)
	}
	return Document{Path: name, Meta: meta, Body: string(body)}, nil
}

// LoadDir loads every markdown document under dir, sorted by path.
// Subdirectories are included.
func LoadDir(fsys fs.FS, dir string) ([]Document, error) {
	var docs []Document
	err := fs.WalkDir(fsys, dir, func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isMarkdown(name) {
			return nil
		}
		doc, err := Load(fsys, name)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Path < docs[j].Path })
	return docs, nil
}

func isMarkdown(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
