package domain

import (
	"encoding/json"
	"fmt"
)

// Automation describes how much of a tool's work runs without the user.
type Automation string

const (
	AutomationManual Automation = "manual"
	AutomationAuto   Automation = "auto"
	AutomationAI     Automation = "ai"
)

// ParseAutomation converts a raw value into an Automation.
// An empty value means manual.
func ParseAutomation(raw string) (Automation, error) {
	switch Automation(raw) {
	case "", AutomationManual:
		return AutomationManual, nil
	case AutomationAuto, AutomationAI:
		return Automation(raw), nil
	default:
		return "", NewValidationErrorWithValue("automation", "must be one of manual, auto, ai", raw)
	}
}

// UnmarshalJSON accepts null and "" as manual.
func (a *Automation) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("automation: %w", err)
	}

	if raw == nil {
		*a = AutomationManual
		return nil
	}

	parsed, err := ParseAutomation(*raw)
	if err != nil {
		return err
	}

	*a = parsed

	return nil
}

// AIPreference is the user's stance on AI assistance.
type AIPreference string

const (
	AIPreferenceManual AIPreference = "manual"
	AIPreferenceAI     AIPreference = "ai"
	AIPreferenceHybrid AIPreference = "hybrid"
)

// ParseAIPreference validates a raw preference value.
func ParseAIPreference(raw string) (AIPreference, error) {
	switch p := AIPreference(raw); p {
	case AIPreferenceManual, AIPreferenceAI, AIPreferenceHybrid:
		return p, nil
	default:
		return "", NewValidationErrorWithValue("aiPreference", "must be one of manual, ai, hybrid", raw)
	}
}

// Tool is a single product inside a stack. Name is unique within its stack only.
type Tool struct {
	Name        string     `json:"name"`
	Purpose     string     `json:"purpose"`
	Price       string     `json:"price"`
	Description string     `json:"description"`
	Link        string     `json:"link"`
	Automation  Automation `json:"automation"`
	AIFeatures  []string   `json:"aiFeatures"`
}

type toolJSON Tool

// UnmarshalJSON fills the defaults for absent automation and aiFeatures.
func (t *Tool) UnmarshalJSON(data []byte) error {
	var v toolJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	if v.Automation == "" {
		v.Automation = AutomationManual
	}

	if v.AIFeatures == nil {
		v.AIFeatures = []string{}
	}

	*t = Tool(v)

	return nil
}
