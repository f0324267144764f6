package bootstrap

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveProject(t *testing.T) {
	fs := newRecordingFS(t, "/proj",
		"/proj/.build/checkouts/gadget-0.1.0",
		"/proj/.build/checkouts/widget-1.2.0",
	)

	dir, err := ResolveProject(context.Background(), fs, "widget", p("/proj/.build/checkouts"))
	require.NoError(t, err)
	assert.Equal(t, p("/proj/.build/checkouts/widget-1.2.0"), dir)
	assert.Equal(t, dir, fs.cwd(t))
}

func TestResolveProjectLiteralPrefix(t *testing.T) {
	fs := newRecordingFS(t, "/proj",
		"/proj/checkouts/my-widget",
		"/proj/checkouts/Widget",
	)

	_, err := ResolveProject(context.Background(), fs, "widget", p("/proj/checkouts"))
	assert.True(t, eris.Is(err, ErrDirectoryNotFound))
	assert.Empty(t, fs.chdirs)
	assert.Equal(t, p("/proj"), fs.cwd(t))
}

func TestResolveProjectMissingParent(t *testing.T) {
	fs := newRecordingFS(t, "/proj")

	_, err := ResolveProject(context.Background(), fs, "widget", p("/proj/.build/checkouts"))
	assert.True(t, eris.Is(err, ErrDirectoryNotFound))
}

func TestResolveProjectChdirRefused(t *testing.T) {
	fs := newRecordingFS(t, "/proj", "/proj/checkouts/widget")
	fs.refuse[p("/proj/checkouts/widget")] = true

	_, err := ResolveProject(context.Background(), fs, "widget", p("/proj/checkouts"))
	assert.True(t, eris.Is(err, ErrDirectoryChange))
}

func TestEnterProjectPrefersCheckouts(t *testing.T) {
	fs := newRecordingFS(t, "/proj",
		"/proj/.build/checkouts/widget-1.2.0",
		"/proj/widget",
	)

	dir, err := EnterProject(context.Background(), fs, "widget", p("/proj"), ".build/checkouts")
	require.NoError(t, err)
	assert.Equal(t, p("/proj/.build/checkouts/widget-1.2.0"), dir)
}

func TestEnterProjectFallsBackToRoot(t *testing.T) {
	fs := newRecordingFS(t, "/proj",
		"/proj/.build/checkouts/gadget",
		"/proj/widget-tools",
	)

	dir, err := EnterProject(context.Background(), fs, "widget", p("/proj"), ".build/checkouts")
	require.NoError(t, err)
	assert.Equal(t, p("/proj/widget-tools"), dir)
	assert.Equal(t, dir, fs.cwd(t))
}

func TestEnterProjectNotFound(t *testing.T) {
	fs := newRecordingFS(t, "/proj", "/proj/Sources")

	_, err := EnterProject(context.Background(), fs, "widget", p("/proj"), ".build/checkouts")
	assert.True(t, eris.Is(err, ErrDirectoryNotFound))
}
