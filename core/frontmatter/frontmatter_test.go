package frontmatter_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/corekit/core/frontmatter"
)

const article = `---
layout: post
title: Working with ranges
framework: Foundation
rating: 4.5
description: Location/length intervals explained.
---
Ranges describe spans by start and length.
`

func TestParse_Meta(t *testing.T) {
	t.Parallel()

	var meta frontmatter.Meta
	body, err := frontmatter.Parse([]byte(article), &meta)
	require.NoError(t, err)

	assert.Equal(t, "post", meta.Layout)
	assert.Equal(t, "Working with ranges", meta.Title)
	assert.Equal(t, "Foundation", meta.Framework)
	assert.Equal(t, 4.5, meta.Rating)
	assert.Equal(t, "Location/length intervals explained.", meta.Description)
	assert.Equal(t, "Ranges describe spans by start and length.\n", string(body))
}

func TestParse_CustomMeta(t *testing.T) {
	t.Parallel()

	input := "---\ntitle: URLs\ntags: [web, networking]\n---\nbody\n"
	var meta struct {
		Title string   `yaml:"title"`
		Tags  []string `yaml:"tags"`
	}

	body, err := frontmatter.Parse([]byte(input), &meta)
	require.NoError(t, err)
	assert.Equal(t, "URLs", meta.Title)
	assert.Equal(t, []string{"web", "networking"}, meta.Tags)
	assert.Equal(t, "body\n", string(body))
}

func TestParse_InvalidYAML(t *testing.T) {
	t.Parallel()

	input := "---\ntitle: [unclosed\n---\nbody\n"
	var meta frontmatter.Meta
	_, err := frontmatter.Parse([]byte(input), &meta)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal front matter")
}

func TestSplit_NoBlock(t *testing.T) {
	t.Parallel()

	head, body, err := frontmatter.Split([]byte("plain text, no metadata"))
	require.NoError(t, err)
	assert.Empty(t, head)
	assert.Equal(t, "plain text, no metadata", string(body))
}

func TestSplit_HorizontalRuleIsNotAFence(t *testing.T) {
	t.Parallel()

	// "---" must be the very first line to open a block.
	input := "intro\n---\nnot metadata\n"
	head, body, err := frontmatter.Split([]byte(input))
	require.NoError(t, err)
	assert.Empty(t, head)
	assert.Equal(t, input, string(body))
}

func TestSplit_Unclosed(t *testing.T) {
	t.Parallel()

	_, _, err := frontmatter.Split([]byte("---\ntitle: x\nno closing fence"))
	require.ErrorIs(t, err, frontmatter.ErrUnclosedBlock)
}

func TestSplit_TruncatedFence(t *testing.T) {
	t.Parallel()

	// An opening fence cut off before its newline must error, not crash.
	for _, input := range []string{"---\r", "---\rx", "---\n"} {
		_, _, err := frontmatter.Split([]byte(input))
		assert.ErrorIs(t, err, frontmatter.ErrUnclosedBlock, "input %q", input)
	}
}

func TestSplit_CRLF(t *testing.T) {
	t.Parallel()

	input := "---\r\ntitle: x\r\n---\r\nbody\r\n"
	head, body, err := frontmatter.Split([]byte(input))
	require.NoError(t, err)
	assert.Equal(t, "title: x\r\n", string(head))
	assert.Equal(t, "body\r\n", string(body))
}

func TestLoadDir(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"b-urls.md":      {Data: []byte("---\ntitle: URLs\nrating: 5\n---\nurl body\n")},
		"a-ranges.md":    {Data: []byte(article)},
		"notes.txt":      {Data: []byte("ignored")},
		"sub/c-extra.md": {Data: []byte("no front matter here")},
	}

	docs, err := frontmatter.LoadDir(fsys, ".")
	require.NoError(t, err)
	require.Len(t, docs, 3)

	assert.Equal(t, "a-ranges.md", docs[0].Path)
	assert.Equal(t, "Working with ranges", docs[0].Meta.Title)
	assert.Equal(t, "b-urls.md", docs[1].Path)
	assert.Equal(t, 5.0, docs[1].Meta.Rating)
	assert.Equal(t, "sub/c-extra.md", docs[2].Path)
	assert.Equal(t, frontmatter.Meta{}, docs[2].Meta, "missing block leaves zero metadata")
	assert.Equal(t, "no front matter here", docs[2].Body)
}

func TestLoadDir_ParseErrorCarriesPath(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"broken.md": {Data: []byte("---\nnever closed")},
	}

	_, err := frontmatter.LoadDir(fsys, ".")
	require.ErrorIs(t, err, frontmatter.ErrUnclosedBlock)
	assert.Contains(t, err.Error(), "broken.md")
}
