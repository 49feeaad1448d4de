package engine

import (
	"strings"

	"estatecrm/internal/models"
)

// ChannelOther is the bucket for source labels no configured channel claims.
const ChannelOther = "Other"

// ClassifyChannel maps a free-text source label onto a configured channel
// name and reports which rule decided it. Exact match wins first; otherwise
// the first channel (in configuration order) whose name appears in the
// label, or vice versa, case-insensitively. Everything else is Other.
func ClassifyChannel(label string, channels []string) (string, string) {
	label = strings.TrimSpace(label)
	if label == "" {
		return ChannelOther, models.MatchOther
	}
	for _, ch := range channels {
		if label == ch {
			return ch, models.MatchExact
		}
	}
	lower := strings.ToLower(label)
	for _, ch := range channels {
		chLower := strings.ToLower(ch)
		if chLower == "" {
			continue
		}
		if strings.Contains(lower, chLower) || strings.Contains(chLower, lower) {
			return ch, models.MatchSubstring
		}
	}
	return ChannelOther, models.MatchOther
}

// MatchChannel is ClassifyChannel without the rule.
func MatchChannel(label string, channels []string) string {
	ch, _ := ClassifyChannel(label, channels)
	return ch
}

// MatchesCampaign reports whether a lead's source label and a campaign name
// refer to the same placement. Either string containing the other counts,
// case-insensitively, so "591" still finds "591找房網" and the reverse.
// Deliberately permissive: free-text entry varies too much for anything
// stricter.
func MatchesCampaign(sourceLabel, campaignName string) bool {
	a := strings.ToLower(strings.TrimSpace(sourceLabel))
	b := strings.ToLower(strings.TrimSpace(campaignName))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// MatchesProject reports whether a lead belongs to a project, either by an
// explicit project tag or by the project name showing up in the lead's
// free-text fields (region, remarks, name).
func MatchesProject(lead models.Lead, tags []string, project string) bool {
	project = strings.TrimSpace(project)
	if project == "" {
		return false
	}
	for _, tag := range tags {
		if strings.TrimSpace(tag) == project {
			return true
		}
	}
	fallback := lead.Region + " " + lead.Remarks + " " + lead.Name
	return strings.Contains(fallback, project)
}
