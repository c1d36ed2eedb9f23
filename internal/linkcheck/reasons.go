package linkcheck

// Fixed human-readable reasons for invalid links. Each failure class keeps
// its own string so downstream reports can group by cause; in particular the
// ambiguous-slug case is never folded into the not-found case.
const (
	ReasonRegionInvalid     = "region does not exist or is not active"
	ReasonLanguageInvalid   = "language does not exist or is not active and visible"
	ReasonImprintMissing    = "this region has no imprint in this language"
	ReasonPathTooDeep       = "path has too many components"
	ReasonEventMissing      = "no event with this slug exists in this region and language"
	ReasonLocationMissing   = "no location with this slug exists in this region and language"
	ReasonPageMissing       = "no page with this slug exists in this region and language"
	ReasonSlugNotUnique     = "slug is not unique in this region and language"
	ReasonPermalinkOutdated = "the link does not match the current permalink of this content"
	ReasonContentArchived   = "the linked content is archived"
	ReasonNewsCategory      = "news category must be local or external"
	ReasonNewsNotSent       = "this news entry does not exist or was not sent in this language"
	ReasonExternalNewsOff   = "external news is not enabled for this region"
	ReasonNoOffersEnabled   = "this region has no offers enabled"
	ReasonOfferMissing      = "no offer with this slug is enabled for this region"
)
