package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFieldOrder(t *testing.T) {
	req := Build("trig-1", "https://bridge.example.com")

	require.Len(t, req.Dialog.Elements, 4)
	names := make([]string, 0, 4)
	for _, el := range req.Dialog.Elements {
		names = append(names, el.Name)
	}
	assert.Equal(t, []string{FieldCluster, FieldResource, FieldProblem, FieldNetwork}, names)
}

func TestBuildRequiredAndOptionalFlags(t *testing.T) {
	req := Build("trig-1", "https://bridge.example.com")

	for _, el := range req.Dialog.Elements {
		if el.Name == FieldNetwork {
			assert.True(t, el.Optional, "network must be optional")
		} else {
			assert.False(t, el.Optional, "%s must be required", el.Name)
		}
	}
}

func TestBuildClusterOptions(t *testing.T) {
	req := Build("trig-1", "https://bridge.example.com")

	cluster := req.Dialog.Elements[0]
	require.Equal(t, "select", cluster.Type)
	require.Len(t, cluster.Options, 3)
	for _, opt := range cluster.Options {
		assert.NotEqual(t, opt.Text, opt.Value, "display text must differ from value")
	}
}

func TestBuildEmbedsTriggerAndCallback(t *testing.T) {
	req := Build("abc123", "https://bridge.example.com")

	assert.Equal(t, "abc123", req.TriggerID)
	assert.Equal(t, "https://bridge.example.com/ticket/submit", req.URL)
	assert.Equal(t, "Nouveau ticket", req.Dialog.Title)
	assert.Equal(t, "Creer", req.Dialog.SubmitLabel)
}
