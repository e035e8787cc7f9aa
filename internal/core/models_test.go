package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrequencyMonths(t *testing.T) {
	assert.Equal(t, 1, FrequencyMonths(FrequencyMonthly))
	assert.Equal(t, 3, FrequencyMonths(FrequencyQuarterly))
	assert.Equal(t, 6, FrequencyMonths(FrequencySemiAnnual))
	assert.Equal(t, 12, FrequencyMonths(FrequencyAnnual))
	assert.Equal(t, 1, FrequencyMonths("unknown"))
}

func TestHasPermission(t *testing.T) {
	e := &Employee{Permissions: []string{"properties:read", "leases:read"}}

	assert.True(t, e.HasPermission("properties:read"))
	assert.False(t, e.HasPermission("properties:write"))
	assert.False(t, e.HasPermission("cheques:read"))

	admin := &Employee{Permissions: []string{"admin"}}
	assert.True(t, admin.HasPermission("properties:write"))
	assert.True(t, admin.HasPermission("anything"))

	none := &Employee{}
	assert.False(t, none.HasPermission("properties:read"))
}

func TestBusinessErrorFormat(t *testing.T) {
	err := BusinessError{"TEST_001", "something went wrong"}
	assert.Equal(t, "TEST_001: something went wrong", err.Error())
}
