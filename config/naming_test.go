package config

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestDefaultNamingToQueryParam(t *testing.T) {
	naming := NewDefaultNaming()
	assert.Equal(t, "created_at", naming.ToQueryParam("createdAt"))
	assert.Equal(t, "price", naming.ToQueryParam("price"))
	assert.Equal(t, "total_amount", naming.ToQueryParam("totalAmount"))
}

func TestDefaultNamingToAPIField(t *testing.T) {
	naming := NewDefaultNaming()
	assert.Equal(t, "createdAt", naming.ToAPIField("created_at"))
	assert.Equal(t, "status", naming.ToAPIField("status"))
}

func TestDefaultNamingToColumnTitle(t *testing.T) {
	naming := NewDefaultNaming()
	assert.Equal(t, "created at", naming.ToColumnTitle("createdAt"))
}
