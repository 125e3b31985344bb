package config

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestBulkActionsSetAndClear(t *testing.T) {
	var a BulkActions

	assert.Equal(t, a, BulkActions(0))
	assert.False(t, a.IsSupported(BulkDelete))

	a.Set(BulkDelete | BulkSetStatus)
	assert.True(t, a.IsSupported(BulkDelete))
	assert.True(t, a.IsSupported(BulkSetStatus))

	a.Clear(BulkDelete)
	assert.False(t, a.IsSupported(BulkDelete))
	assert.True(t, a.IsSupported(BulkSetStatus))
}

func TestBulkActionsAdd(t *testing.T) {
	var a BulkActions
	assert.NoError(t, a.Add("delete", "set_status"))
	assert.True(t, a.IsSupported(BulkDelete))
	assert.True(t, a.IsSupported(BulkSetStatus))

	assert.Error(t, a.Add("drop_everything"))
}
