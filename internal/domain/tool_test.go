package domain

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTool_UnmarshalDefaults(t *testing.T) {
	var tool Tool
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Carrd","purpose":"Website","price":"$19/yr"}`), &tool))

	want := Tool{
		Name:       "Carrd",
		Purpose:    "Website",
		Price:      "$19/yr",
		Automation: AutomationManual,
		AIFeatures: []string{},
	}
	if diff := cmp.Diff(want, tool); diff != "" {
		t.Errorf("tool mismatch (-want +got):\n%s", diff)
	}
}

func TestTool_UnmarshalExplicit(t *testing.T) {
	var tool Tool
	raw := `{"name":"Jasper","automation":"ai","aiFeatures":["copywriting","brand voice"]}`
	require.NoError(t, json.Unmarshal([]byte(raw), &tool))

	assert.Equal(t, AutomationAI, tool.Automation)
	assert.Equal(t, []string{"copywriting", "brand voice"}, tool.AIFeatures)
}

func TestTool_UnmarshalNullAutomation(t *testing.T) {
	var tool Tool
	require.NoError(t, json.Unmarshal([]byte(`{"name":"A","automation":null}`), &tool))

	assert.Equal(t, AutomationManual, tool.Automation)
}

func TestTool_UnmarshalRejectsUnknownAutomation(t *testing.T) {
	var tool Tool
	err := json.Unmarshal([]byte(`{"name":"A","automation":"robotic"}`), &tool)

	require.ErrorIs(t, err, ErrValidation)
}

func TestParseAIPreference(t *testing.T) {
	pref, err := ParseAIPreference("hybrid")
	require.NoError(t, err)
	assert.Equal(t, AIPreferenceHybrid, pref)

	_, err = ParseAIPreference("")
	require.ErrorIs(t, err, ErrValidation)
}
