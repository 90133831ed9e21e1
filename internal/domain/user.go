package domain

import "slices"

// User is a local account. PasswordHash is the hex SHA-256 of the password.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password"`
}

// Favorites are the tools and stacks a user saved.
type Favorites struct {
	Tools  []Tool  `json:"tools"`
	Stacks []Stack `json:"stacks"`
}

// NewFavorites returns an empty favorites set.
func NewFavorites() Favorites {
	return Favorites{Tools: []Tool{}, Stacks: []Stack{}}
}

// AddTool appends the tool unless one with the same name is saved.
func (f *Favorites) AddTool(t Tool) bool {
	if slices.ContainsFunc(f.Tools, func(x Tool) bool { return x.Name == t.Name }) {
		return false
	}

	f.Tools = append(f.Tools, t)

	return true
}

// RemoveTool drops every saved tool with the given name.
func (f *Favorites) RemoveTool(name string) {
	f.Tools = slices.DeleteFunc(f.Tools, func(x Tool) bool { return x.Name == name })
}

// AddStack appends the stack unless one with the same id is saved.
func (f *Favorites) AddStack(s Stack) bool {
	if slices.ContainsFunc(f.Stacks, func(x Stack) bool { return x.ID == s.ID }) {
		return false
	}

	f.Stacks = append(f.Stacks, s)

	return true
}

// RemoveStack drops every saved stack with the given id.
func (f *Favorites) RemoveStack(id string) {
	f.Stacks = slices.DeleteFunc(f.Stacks, func(x Stack) bool { return x.ID == id })
}

// Theme is the UI color scheme.
type Theme string

const (
	ThemeLight        Theme = "light"
	ThemeDark         Theme = "dark"
	ThemeHighContrast Theme = "high-contrast"
)

// ParseTheme validates a raw theme value.
func ParseTheme(raw string) (Theme, error) {
	switch t := Theme(raw); t {
	case ThemeLight, ThemeDark, ThemeHighContrast:
		return t, nil
	default:
		return "", NewValidationErrorWithValue("theme", "must be one of light, dark, high-contrast", raw)
	}
}

// Settings are the device-wide preferences.
type Settings struct {
	Theme        Theme        `json:"theme"`
	AIPreference AIPreference `json:"aiPreference"`
}

// DefaultSettings is what a fresh profile starts with.
func DefaultSettings() Settings {
	return Settings{Theme: ThemeLight, AIPreference: AIPreferenceManual}
}
