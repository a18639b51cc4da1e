package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techtool/opd-api/internal/model"
)

func TestDefaultCatalogKeys(t *testing.T) {
	c := Default()

	for _, key := range []string{"neuromed", "neurosx", "rehab", "psych", "oph"} {
		p, ok := c.Lookup(key)
		require.True(t, ok, "missing clinic %s", key)
		assert.Equal(t, key, p.Key)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.PromptHint)
		assert.GreaterOrEqual(t, p.Followup.WindowDays, 3)
	}
	assert.Equal(t, "neuromed", c.DefaultKey())
}

func TestResolveUnknownFallsBackToDefault(t *testing.T) {
	c := Default()

	unknown := c.Resolve("dermatology")
	def := c.Resolve(c.DefaultKey())
	assert.Equal(t, def, unknown)

	_, ok := c.Lookup("dermatology")
	assert.False(t, ok)
}

func TestNewValidation(t *testing.T) {
	_, err := New(nil, "x")
	assert.Error(t, err)

	profiles := []model.ClinicProfile{{Key: "a", Name: "A"}}
	_, err = New(profiles, "missing")
	assert.Error(t, err)

	_, err = New([]model.ClinicProfile{{Key: "a"}, {Key: "a"}}, "a")
	assert.Error(t, err)

	c, err := New(profiles, "a")
	require.NoError(t, err)
	assert.Equal(t, "a", c.DefaultKey())
}

func TestListOrderedByKey(t *testing.T) {
	c := Default()
	list := c.List()
	require.Len(t, list, 5)
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].Key, list[i].Key)
	}
}
