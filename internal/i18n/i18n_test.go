package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("known language", func(t *testing.T) {
		tr, ok := New("pl")
		require.NotNil(t, tr)
		assert.True(t, ok)
		assert.Equal(t, "Pobiera webhooks", tr.Describe("fluentcrm_list_webhooks"))
	})
	t.Run("case insensitive", func(t *testing.T) {
		_, ok := New("PL")
		assert.True(t, ok)
	})
	t.Run("unknown language falls back to english", func(t *testing.T) {
		tr, ok := New("de")
		require.NotNil(t, tr)
		assert.False(t, ok)
		en, _ := New("en")
		assert.Equal(t, en.Describe("fluentcrm_list_contacts"), tr.Describe("fluentcrm_list_contacts"))
	})
}

func TestDescribeFallbacks(t *testing.T) {
	tr, _ := New("en")

	assert.Equal(t, "no_such_tool", tr.Describe("no_such_tool"))
	assert.Equal(t, "mystery", tr.Describe("fluentcrm_list_contacts", "mystery"))
	assert.Equal(t, "mystery", tr.Describe("no_such_tool", "mystery"))
}

func TestLocalesCoverSameTools(t *testing.T) {
	for name := range localeEN {
		_, ok := localePL[name]
		assert.True(t, ok, "missing pl entry for %s", name)
	}
	for name := range localePL {
		_, ok := localeEN[name]
		assert.True(t, ok, "stray pl entry %s", name)
	}
}

func TestLocalesDiffer(t *testing.T) {
	en, _ := New("en")
	pl, _ := New("pl")
	assert.NotEqual(t,
		en.Describe("fluentcrm_get_contact"),
		pl.Describe("fluentcrm_get_contact"))
}
