package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribeAction_BaseSentence(t *testing.T) {
	tests := []struct {
		purpose string
		want    string
	}{
		{"Hosting", "You can go and create your website with X."},
		{"Website builder", "You can go and create your website with X."},
		{"hosting and analytics", "You can go and create your website with X."},
		{"UI Design", "Go and design with X."},
		{"Email marketing", "Go and send your first campaign with X."},
		{"Social media", "Go and promote with X."},
		{"Analytics", "Go and analyze your project with X."},
		{"Project management", "Go and manage your team with X."},
		{"API testing", "Test your APIs with X."},
		{"Version control", "Host your code with X."},
		{"Game engine", "Start building your game with X."},
		{"CRM", "Manage your customers with X."},
		{"Automation", "Automate your workflow with X."},
		{"Accounting", "Manage your finances with X."},
		{"Team communication", "Collaborate with your team using X."},
		{"Error tracking", "Monitor your app with X."},
		{"SEO", "Boost your SEO with X."},
		{"Cloud", "Deploy your infrastructure with X."},
		{"Payments", "Try X for your project!"},
		{"", "Try X for your project!"},
	}

	for _, tt := range tests {
		t.Run(tt.purpose, func(t *testing.T) {
			got := DescribeAction(Tool{Name: "X", Purpose: tt.purpose}, AIPreferenceAI)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDescribeAction_KeywordOrder(t *testing.T) {
	// "design" is checked before "email" and "api".
	got := DescribeAction(Tool{Name: "Y", Purpose: "Email design API"}, AIPreferenceManual)

	assert.Equal(t, "Go and design with Y.", got)
}

func TestDescribeAction_Suffix(t *testing.T) {
	tests := []struct {
		name       string
		preference AIPreference
		automation Automation
		want       string
	}{
		{"ai with ai tool", AIPreferenceAI, AutomationAI, "Try T for your project! Let AI handle the heavy lifting!"},
		{"manual with auto tool", AIPreferenceManual, AutomationAuto, "Try T for your project! Set up automation to save time!"},
		{"hybrid with ai tool", AIPreferenceHybrid, AutomationAI, "Try T for your project! AI-powered features will help you work smarter!"},
		{"hybrid with auto tool", AIPreferenceHybrid, AutomationAuto, "Try T for your project! Automation features will streamline your workflow!"},
		{"manual with manual tool", AIPreferenceManual, AutomationManual, "Try T for your project!"},
		{"ai with auto tool", AIPreferenceAI, AutomationAuto, "Try T for your project!"},
		{"manual with ai tool", AIPreferenceManual, AutomationAI, "Try T for your project!"},
		{"hybrid with unset automation", AIPreferenceHybrid, "", "Try T for your project!"},
		{"unknown preference", AIPreference("sometimes"), AutomationAI, "Try T for your project!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := Tool{Name: "T", Purpose: "Payments", Automation: tt.automation}
			assert.Equal(t, tt.want, DescribeAction(tool, tt.preference))
		})
	}
}
