package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userView(id string) SavedView {
	return SavedView{Id: id, Name: "view " + id, Kind: ViewUser}
}

func TestAppendUserViewEvictsOldestUserFirst(t *testing.T) {
	views := BuiltInViews()
	builtins := len(views)
	maxViews := builtins + 3

	for i := 0; i < 4; i++ {
		views = AppendUserView(views, userView(fmt.Sprintf("u%d", i)), maxViews)
	}

	require.Len(t, views, maxViews)
	// Built-ins all survive.
	for _, b := range BuiltInViews() {
		_, found := FindView(views, b.Id)
		assert.True(t, found, "built-in %s must never be evicted", b.Id)
	}
	// u0 was the oldest user view, so it went first.
	_, found := FindView(views, "u0")
	assert.False(t, found)
	_, found = FindView(views, "u3")
	assert.True(t, found, "most recent view must always be present")
}

func TestAppendUserViewOverCapByMany(t *testing.T) {
	views := BuiltInViews()
	maxViews := len(views) + 2

	for i := 0; i < 10; i++ {
		views = AppendUserView(views, userView(fmt.Sprintf("u%d", i)), maxViews)
	}

	require.Len(t, views, maxViews)
	remaining := UserViews(views)
	require.Len(t, remaining, 2)
	assert.Equal(t, "u8", remaining[0].Id)
	assert.Equal(t, "u9", remaining[1].Id)
}

func TestBuiltInViewsAreSeeded(t *testing.T) {
	views := BuiltInViews()
	require.NotEmpty(t, views)
	for _, v := range views {
		assert.True(t, v.IsBuiltIn())
	}
}
