package ports

// DomainMetrics receives business events for export. Implementations must
// be safe for concurrent use.
type DomainMetrics interface {
	// RecordRecommendation counts a recommendation by the selection pass.
	RecordRecommendation(pass string)

	// RecordCommunityEvent counts case activity: created, updated, liked,
	// viewed or shared.
	RecordCommunityEvent(event string)
}
