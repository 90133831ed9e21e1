package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaseDraft_Validate(t *testing.T) {
	valid := CaseDraft{Title: "Indie SaaS", Description: "How we launched", Budget: 25, Tools: []string{"figma"}}

	tests := []struct {
		name      string
		mutate    func(d *CaseDraft)
		wantField string
	}{
		{"valid", func(*CaseDraft) {}, ""},
		{"blank title", func(d *CaseDraft) { d.Title = "  " }, "title"},
		{"missing description", func(d *CaseDraft) { d.Description = "" }, "description"},
		{"no tools", func(d *CaseDraft) { d.Tools = nil }, "tools"},
		{"budget not offered", func(d *CaseDraft) { d.Budget = 30 }, "budget"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid
			tt.mutate(&d)

			err := d.Validate()
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestCaseUpdate_Apply(t *testing.T) {
	c := CommunityCase{ID: "community-1", Title: "Old", Description: "d", Budget: 0, Tools: []string{"a"}}
	title := "New"
	approved := true

	err := CaseUpdate{Title: &title, Approved: &approved}.Apply(&c)

	require.NoError(t, err)
	assert.Equal(t, "New", c.Title)
	assert.True(t, c.Approved)
	assert.Equal(t, []string{"a"}, c.Tools)
}

func TestCaseUpdate_ApplyRejectsInvalidAndLeavesCaseAlone(t *testing.T) {
	c := CommunityCase{Title: "Keep", Description: "d", Tools: []string{"a"}}
	budget := 7
	title := "Changed"

	err := CaseUpdate{Title: &title, Budget: &budget}.Apply(&c)

	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Keep", c.Title)
}

func TestCaseUpdate_TouchesContent(t *testing.T) {
	approved := true
	assert.False(t, CaseUpdate{Approved: &approved}.TouchesContent())
	assert.True(t, CaseUpdate{Tools: []string{"x"}}.TouchesContent())
}

func TestBuildShareLink(t *testing.T) {
	c := CommunityCase{ID: "community-42", Title: "Indie SaaS"}
	base := "https://stack4devs.app/"
	caseURL := "https%3A%2F%2Fstack4devs.app%2Fcommunity-case%2Fcommunity-42"
	text := "Check%20out%20this%20amazing%20tool%20stack%20for%20Indie%20SaaS!%20%F0%9F%9A%80"

	tests := []struct {
		platform SharePlatform
		want     string
	}{
		{ShareWhatsApp, "https://wa.me/?text=" + text + "%20" + caseURL},
		{ShareWhatsAppBusiness, "https://wa.me/?text=" + text + "%20" + caseURL},
		{ShareInstagram, "https://www.instagram.com/"},
		{ShareMessenger, "https://www.facebook.com/sharer/sharer.php?u=" + caseURL},
		{ShareX, "https://twitter.com/intent/tweet?text=" + text + "&url=" + caseURL},
		{ShareReddit, "https://reddit.com/submit?url=" + caseURL + "&title=Indie%20SaaS"},
		{ShareDiscord, "https://discord.com/channels/@me"},
		{SharePlatform("myspace"), "https://stack4devs.app/community-case/community-42"},
	}

	for _, tt := range tests {
		t.Run(string(tt.platform), func(t *testing.T) {
			assert.Equal(t, tt.want, BuildShareLink(c, tt.platform, base).URL)
		})
	}
}

func TestBuildShareLink_DiscordClipboard(t *testing.T) {
	link := BuildShareLink(CommunityCase{ID: "community-1", Title: "Blog"}, ShareDiscord, "http://localhost:8080")

	assert.Equal(t, "Blog: http://localhost:8080/community-case/community-1", link.ClipboardText)
}

func TestEncodeURIComponent(t *testing.T) {
	assert.Equal(t, "a%20b!~*'()-_.", EncodeURIComponent("a b!~*'()-_."))
	assert.Equal(t, "%2B%26%3D%3F%23", EncodeURIComponent("+&=?#"))
}
