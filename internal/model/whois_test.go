package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostListUnmarshal(t *testing.T) {
	t.Run("array of strings", func(t *testing.T) {
		var hosts HostList
		require.NoError(t, json.Unmarshal([]byte(`["ns1.example.com","ns2.example.com"]`), &hosts))
		assert.Equal(t, HostList{"ns1.example.com", "ns2.example.com"}, hosts)
	})

	t.Run("comma separated string", func(t *testing.T) {
		var hosts HostList
		require.NoError(t, json.Unmarshal([]byte(`"ns1.example.com, ns2.example.com"`), &hosts))
		assert.Equal(t, HostList{"ns1.example.com", "ns2.example.com"}, hosts)
	})

	t.Run("whitespace separated string", func(t *testing.T) {
		var hosts HostList
		require.NoError(t, json.Unmarshal([]byte(`"ns1.example.com ns2.example.com"`), &hosts))
		assert.Equal(t, HostList{"ns1.example.com", "ns2.example.com"}, hosts)
	})

	t.Run("rejects other shapes", func(t *testing.T) {
		var hosts HostList
		assert.Error(t, json.Unmarshal([]byte(`{"host":"ns1"}`), &hosts))
	})
}

func TestSplitHosts(t *testing.T) {
	assert.Equal(t, []string{"a.com", "b.com", "c.com"}, SplitHosts("a.com,b.com  c.com"))
	assert.Empty(t, SplitHosts("  "))
}

func TestWhoisRecordEmpty(t *testing.T) {
	t.Run("nil record", func(t *testing.T) {
		var rec *WhoisRecord
		assert.True(t, rec.Empty())
	})

	t.Run("zero record", func(t *testing.T) {
		assert.True(t, (&WhoisRecord{}).Empty())
	})

	t.Run("zero record with zero registry data", func(t *testing.T) {
		assert.True(t, (&WhoisRecord{RegistryData: &RegistryData{}}).Empty())
	})

	t.Run("record with registrar-level field", func(t *testing.T) {
		assert.False(t, (&WhoisRecord{DomainName: "example.com"}).Empty())
	})

	t.Run("record with only registry-level data", func(t *testing.T) {
		rec := &WhoisRecord{RegistryData: &RegistryData{CreatedDate: "1997-09-15T00:00:00Z"}}
		assert.False(t, rec.Empty())
	})
}
