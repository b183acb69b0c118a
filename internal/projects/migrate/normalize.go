// Package migrate upgrades possibly-legacy-shaped project records to the
// current schema. Normalize is idempotent and never fails: fields it cannot
// interpret pass through untouched, since the record validity guard is the
// gate for usability, not this step.
package migrate

import (
	"regexp"

	"github.com/trekfolio/brochure-backend/internal/projects/domain"
)

var instagramPrefix = regexp.MustCompile(`^https?://(www\.)?instagram\.com/`)

// Normalize returns p with legacy fields lifted into their current
// equivalents. Safe to run on freshly-created and years-old records alike;
// already-current records come back unchanged.
func Normalize(p domain.Project) domain.Project {
	p.Hero.Images = promoteImages(p.Hero.Images, p.Hero.Image)

	if len(p.Itinerary) > 0 {
		days := make([]domain.ItineraryDay, len(p.Itinerary))
		copy(days, p.Itinerary)
		for i := range days {
			days[i].Images = promoteImages(days[i].Images, days[i].Image)
		}
		p.Itinerary = days
	}

	p.Header = promoteSocialLinks(p.Header)

	return p
}

// promoteImages lifts the legacy single image into the multi-image gallery.
// An existing gallery is never touched, so the two can't silently diverge.
func promoteImages(images []string, legacy string) []string {
	if len(images) > 0 {
		return images
	}
	if legacy != "" {
		return []string{legacy}
	}
	if images == nil {
		return []string{}
	}
	return images
}

// promoteSocialLinks synthesizes header.links from the flat legacy
// instagram/facebook fields. A header that already has links is left alone;
// re-running can never double-migrate.
func promoteSocialLinks(h domain.Header) domain.Header {
	if len(h.Links) > 0 {
		return h
	}
	if h.Instagram == "" && h.Facebook == "" {
		return h
	}

	links := make([]domain.SocialLink, 0, 2)
	if h.Instagram != "" {
		links = append(links, domain.SocialLink{
			Platform: domain.PlatformInstagram,
			URL:      h.Instagram,
			Alias:    instagramAlias(h.Instagram),
		})
	}
	if h.Facebook != "" {
		links = append(links, domain.SocialLink{
			Platform: domain.PlatformFacebook,
			URL:      h.Facebook,
			Alias:    "Facebook",
		})
	}
	h.Links = links
	return h
}

// instagramAlias strips the profile-URL prefix and replaces it with "@".
// Values that aren't profile URLs stay as-is.
func instagramAlias(url string) string {
	return instagramPrefix.ReplaceAllString(url, "@")
}
