package domain

import "strings"

type actionRule struct {
	keywords []string
	format   string
}

// Order matters: the first rule whose keyword occurs in the purpose wins.
var actionRules = []actionRule{
	{[]string{"hosting", "website"}, "You can go and create your website with %s."},
	{[]string{"design"}, "Go and design with %s."},
	{[]string{"email"}, "Go and send your first campaign with %s."},
	{[]string{"social"}, "Go and promote with %s."},
	{[]string{"analytics"}, "Go and analyze your project with %s."},
	{[]string{"project"}, "Go and manage your team with %s."},
	{[]string{"api"}, "Test your APIs with %s."},
	{[]string{"version"}, "Host your code with %s."},
	{[]string{"game"}, "Start building your game with %s."},
	{[]string{"crm"}, "Manage your customers with %s."},
	{[]string{"automation"}, "Automate your workflow with %s."},
	{[]string{"accounting"}, "Manage your finances with %s."},
	{[]string{"communication"}, "Collaborate with your team using %s."},
	{[]string{"error"}, "Monitor your app with %s."},
	{[]string{"seo"}, "Boost your SEO with %s."},
	{[]string{"cloud"}, "Deploy your infrastructure with %s."},
}

const defaultAction = "Try %s for your project!"

type suffixKey struct {
	preference AIPreference
	automation Automation
}

var actionSuffixes = map[suffixKey]string{
	{AIPreferenceAI, AutomationAI}:       "Let AI handle the heavy lifting!",
	{AIPreferenceManual, AutomationAuto}: "Set up automation to save time!",
	{AIPreferenceHybrid, AutomationAI}:   "AI-powered features will help you work smarter!",
	{AIPreferenceHybrid, AutomationAuto}: "Automation features will streamline your workflow!",
}

// DescribeAction builds the call-to-action sentence for a tool.
func DescribeAction(tool Tool, preference AIPreference) string {
	purpose := FoldASCII(tool.Purpose)
	format := defaultAction

rules:
	for _, rule := range actionRules {
		for _, kw := range rule.keywords {
			if strings.Contains(purpose, kw) {
				format = rule.format
				break rules
			}
		}
	}

	text := strings.Replace(format, "%s", tool.Name, 1)

	automation := tool.Automation
	if automation == "" {
		automation = AutomationManual
	}

	if suffix, ok := actionSuffixes[suffixKey{preference, automation}]; ok {
		text += " " + suffix
	}

	return text
}
