package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/corekit/core/logger"
)

func TestRunArticles(t *testing.T) {
	dir := t.TempDir()
	article := `---
layout: post
title: Working with ranges
framework: Foundation
rating: 4.5
description: Location/length intervals explained.
---
body
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ranges.md"), []byte(article), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o644))

	cmd, buf := testCommand(t)
	log = logger.New(os.Stderr, logger.WithLevel(slog.LevelWarn))

	err := runArticles(cmd, []string{dir})
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Working with ranges")
	assert.Contains(t, output, "framework: Foundation")
	assert.Contains(t, output, "rating: 4.5")
	assert.Contains(t, output, "description: Location/length intervals explained.")
	assert.Contains(t, output, "1 article(s)")
}

func TestRunArticles_VerboseLogging(t *testing.T) {
	dir := t.TempDir()
	article := "---\ntitle: URLs\nlayout: post\n---\nbody\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "urls.md"), []byte(article), 0o644))

	cmd, _ := testCommand(t)
	var logbuf bytes.Buffer
	log = logger.New(&logbuf, logger.WithLevel(slog.LevelDebug))

	require.NoError(t, runArticles(cmd, []string{dir}))

	logs := logbuf.String()
	assert.Contains(t, logs, "msg=\"articles loaded\"")
	assert.Contains(t, logs, "msg=\"document parsed\"")
	assert.Contains(t, logs, "path=urls.md")
	assert.Contains(t, logs, "meta.title=URLs")
	assert.Contains(t, logs, "meta.layout=post")
}

func TestRunArticles_MissingDir(t *testing.T) {
	cmd, _ := testCommand(t)
	log = logger.New(os.Stderr, logger.WithLevel(slog.LevelWarn))

	err := runArticles(cmd, []string{filepath.Join(t.TempDir(), "absent")})
	require.Error(t, err)
}

func TestRunVersion(t *testing.T) {
	cmd, buf := testCommand(t)

	err := runVersion(cmd, []string{})
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "corekit v")
	assert.Contains(t, output, "Commit:")
	assert.Contains(t, output, "Go version:")
	assert.Contains(t, output, "OS/Arch:")
}
