package domain

import (
	"net/url"
	"slices"
	"strings"
	"time"
)

// CaseBudgetOptions are the monthly budgets an author can pick for a case.
var CaseBudgetOptions = []int{0, 5, 10, 25, 50, 100, 200, 500, 1000}

// SocialLinks point at the author's channels for a case.
type SocialLinks struct {
	WhatsApp  string `json:"whatsapp"`
	Instagram string `json:"instagram"`
	Discord   string `json:"discord"`
	Reddit    string `json:"reddit"`
	X         string `json:"x"`
}

// CommunityCase is a user-authored tool bundle with its story.
type CommunityCase struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Budget      int         `json:"budget"`
	Tools       []string    `json:"tools"`
	SocialLinks SocialLinks `json:"social_links"`
	Author      string      `json:"author"`
	CreatedAt   time.Time   `json:"created_at"`
	Approved    bool        `json:"approved"`
	Likes       int         `json:"likes"`
	Views       int         `json:"views"`
}

// CaseDraft is the author input for a new case.
type CaseDraft struct {
	Title       string
	Description string
	Budget      int
	Tools       []string
	SocialLinks SocialLinks
}

// Validate checks the draft's required fields and budget.
func (d CaseDraft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return NewValidationError("title", "is required")
	}

	if strings.TrimSpace(d.Description) == "" {
		return NewValidationError("description", "is required")
	}

	if len(d.Tools) == 0 {
		return NewValidationError("tools", "select at least one tool")
	}

	return ValidateCaseBudget(d.Budget)
}

// ValidateCaseBudget rejects budgets outside CaseBudgetOptions.
func ValidateCaseBudget(budget int) error {
	if !slices.Contains(CaseBudgetOptions, budget) {
		return NewValidationErrorWithValue("budget", "must be one of the offered amounts", budget)
	}

	return nil
}

// CaseUpdate is a partial edit. Nil fields are left unchanged.
type CaseUpdate struct {
	Title       *string
	Description *string
	Budget      *int
	Tools       []string
	SocialLinks *SocialLinks
	Approved    *bool
}

// TouchesContent reports whether the update edits anything but approval.
func (u CaseUpdate) TouchesContent() bool {
	return u.Title != nil || u.Description != nil || u.Budget != nil ||
		u.Tools != nil || u.SocialLinks != nil
}

// Apply merges the update into c and validates the result.
func (u CaseUpdate) Apply(c *CommunityCase) error {
	next := *c

	if u.Title != nil {
		next.Title = *u.Title
	}

	if u.Description != nil {
		next.Description = *u.Description
	}

	if u.Budget != nil {
		next.Budget = *u.Budget
	}

	if u.Tools != nil {
		next.Tools = slices.Clone(u.Tools)
	}

	if u.SocialLinks != nil {
		next.SocialLinks = *u.SocialLinks
	}

	if u.Approved != nil {
		next.Approved = *u.Approved
	}

	draft := CaseDraft{
		Title:       next.Title,
		Description: next.Description,
		Budget:      next.Budget,
		Tools:       next.Tools,
	}
	if err := draft.Validate(); err != nil {
		return err
	}

	*c = next

	return nil
}

// SharePlatform is a destination a case can be shared to.
type SharePlatform string

const (
	ShareWhatsApp         SharePlatform = "whatsapp"
	ShareWhatsAppBusiness SharePlatform = "whatsapp-business"
	ShareInstagram        SharePlatform = "instagram"
	ShareMessenger        SharePlatform = "messenger"
	ShareX                SharePlatform = "x"
	ShareReddit           SharePlatform = "reddit"
	ShareDiscord          SharePlatform = "discord"
)

// ShareLink is where to send the user, plus text to copy when the
// destination has no share intent.
type ShareLink struct {
	URL           string `json:"url"`
	ClipboardText string `json:"clipboard_text,omitempty"`
}

// CaseURL is the public page of a case.
func CaseURL(baseURL, id string) string {
	return strings.TrimRight(baseURL, "/") + "/community-case/" + id
}

// BuildShareLink builds the outbound link for a case on a platform.
// Unknown platforms get the plain case URL.
func BuildShareLink(c CommunityCase, platform SharePlatform, baseURL string) ShareLink {
	caseURL := CaseURL(baseURL, c.ID)
	encodedURL := EncodeURIComponent(caseURL)
	text := EncodeURIComponent("Check out this amazing tool stack for " + c.Title + "! 🚀")

	switch platform {
	case ShareWhatsApp, ShareWhatsAppBusiness:
		return ShareLink{URL: "https://wa.me/?text=" + text + "%20" + encodedURL}
	case ShareInstagram:
		return ShareLink{URL: "https://www.instagram.com/"}
	case ShareMessenger:
		return ShareLink{URL: "https://www.facebook.com/sharer/sharer.php?u=" + encodedURL}
	case ShareX:
		return ShareLink{URL: "https://twitter.com/intent/tweet?text=" + text + "&url=" + encodedURL}
	case ShareReddit:
		return ShareLink{URL: "https://reddit.com/submit?url=" + encodedURL + "&title=" + EncodeURIComponent(c.Title)}
	case ShareDiscord:
		return ShareLink{
			URL:           "https://discord.com/channels/@me",
			ClipboardText: c.Title + ": " + caseURL,
		}
	default:
		return ShareLink{URL: caseURL}
	}
}

var uriComponentUnescapes = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent escapes s the way browsers escape a URI component:
// everything but A-Z a-z 0-9 and - _ . ! ~ * ' ( ) is percent-encoded.
func EncodeURIComponent(s string) string {
	return uriComponentUnescapes.Replace(url.QueryEscape(s))
}
