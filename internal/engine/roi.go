package engine

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"estatecrm/internal/models"
)

// Efficiency tiers for a channel or project, keyed off the qualified-lead
// conversion rate.
const (
	TierExcellent         = "excellent"
	TierQualified         = "qualified"
	TierNeedsOptimization = "needs optimization"
)

// ROIEntry is one row of the marketing ROI report.
type ROIEntry struct {
	Name           string          `json:"name"`
	NewLeads       int             `json:"new_leads"`
	QualifiedLeads int             `json:"qualified_leads"`
	ConversionRate float64         `json:"conversion_rate"`
	EfficiencyTier string          `json:"efficiency_tier"`
	AllocatedCost  decimal.Decimal `json:"allocated_cost"`
	// CostPerQualifiedLead stays zero and NoConversions true when spend
	// found no qualified leads; callers message that case as ineffective
	// spend rather than dividing into infinity.
	CostPerQualifiedLead decimal.Decimal `json:"cost_per_qualified_lead"`
	NoConversions        bool            `json:"no_conversions"`
}

// CampaignROI is the per-campaign breakdown inside a project entry.
type CampaignROI struct {
	CampaignID     string          `json:"campaign_id"`
	ChannelName    string          `json:"channel_name"`
	AllocatedCost  decimal.Decimal `json:"allocated_cost"`
	OverlapDays    int             `json:"overlap_days"`
	NewLeads       int             `json:"new_leads"`
	QualifiedLeads int             `json:"qualified_leads"`
}

// ProjectROI is one project's row plus its campaign breakdown.
type ProjectROI struct {
	ROIEntry
	Campaigns []CampaignROI `json:"campaigns"`
}

// ROIReport is the full marketing report for one window.
type ROIReport struct {
	Window        Window          `json:"window"`
	Channels      []ROIEntry      `json:"channels"`
	Projects      []ProjectROI    `json:"projects"`
	ClosedDeals   int             `json:"closed_deals"`
	ClosedRevenue decimal.Decimal `json:"closed_revenue"`
}

type leadView struct {
	lead      models.Lead
	tags      []string
	qualified bool
}

// BuildROIReport computes channel and project attribution for one window.
// Only buyer/renter leads whose entry date parses and falls inside the
// window count; sellers and landlords are inventory, not funnel. The report
// is a pure function of its inputs: identical inputs yield identical output.
func BuildROIReport(leads []models.Lead, deals []models.Deal, campaigns []models.Campaign, w Window, channels []string) ROIReport {
	report := ROIReport{Window: w, ClosedRevenue: decimal.Zero}

	inWindow := make([]leadView, 0, len(leads))
	for _, lead := range leads {
		if !lead.IsFunnel() {
			continue
		}
		day, ok := ParseDate(lead.CreatedDate)
		if !ok || !w.Contains(day) {
			continue
		}
		inWindow = append(inWindow, leadView{
			lead:      lead,
			tags:      decodeTags(lead.ProjectTags),
			qualified: lead.IsQualified(),
		})
	}

	report.Channels = channelRows(inWindow, campaigns, w, channels)
	report.Projects = projectRows(inWindow, campaigns, w)

	for _, deal := range deals {
		day, ok := ParseDate(deal.CloseDate)
		if !ok || !w.Contains(day) {
			continue
		}
		report.ClosedDeals++
		report.ClosedRevenue = report.ClosedRevenue.Add(Subtotal(deal))
	}

	return report
}

// channelRows tallies leads per configured channel plus Other, and assigns
// each campaign's pro-rated spend to its channel. Rows with neither leads
// nor cost are omitted; a channel with cost and no leads (ineffective
// spend) and one with leads and no cost (free acquisition) both survive,
// told apart by NoConversions and AllocatedCost.
func channelRows(inWindow []leadView, campaigns []models.Campaign, w Window, channels []string) []ROIEntry {
	names := append(append([]string{}, channels...), ChannelOther)
	newCount := make(map[string]int, len(names))
	qualifiedCount := make(map[string]int, len(names))
	cost := make(map[string]decimal.Decimal, len(names))
	for _, name := range names {
		cost[name] = decimal.Zero
	}

	for _, lv := range inWindow {
		ch := MatchChannel(lv.lead.SourceLabel, channels)
		newCount[ch]++
		if lv.qualified {
			qualifiedCount[ch]++
		}
	}
	for _, c := range campaigns {
		alloc := AllocateSpend(c, w)
		if !alloc.Prorated {
			continue
		}
		ch := MatchChannel(c.ChannelName, channels)
		cost[ch] = cost[ch].Add(alloc.Cost)
	}

	rows := make([]ROIEntry, 0, len(names))
	for _, name := range names {
		entry := buildEntry(name, newCount[name], qualifiedCount[name], cost[name])
		if entry.NewLeads == 0 && entry.AllocatedCost.IsZero() {
			continue
		}
		rows = append(rows, entry)
	}
	return rows
}

// projectRows groups campaigns by project (first-appearance order), sums
// each project's pro-rated spend, attributes window leads to the project by
// tag or free-text fallback, and sub-attributes them to the specific
// campaign by permissive name match.
func projectRows(inWindow []leadView, campaigns []models.Campaign, w Window) []ProjectROI {
	var projects []string
	byProject := make(map[string][]models.Campaign)
	for _, c := range campaigns {
		if c.ProjectName == "" {
			continue
		}
		if _, seen := byProject[c.ProjectName]; !seen {
			projects = append(projects, c.ProjectName)
		}
		byProject[c.ProjectName] = append(byProject[c.ProjectName], c)
	}

	rows := make([]ProjectROI, 0, len(projects))
	for _, project := range projects {
		group := byProject[project]
		projectCost := decimal.Zero
		campaignRows := make([]CampaignROI, len(group))
		for i, c := range group {
			alloc := AllocateSpend(c, w)
			campaignRows[i] = CampaignROI{
				CampaignID:    c.ID,
				ChannelName:   c.ChannelName,
				AllocatedCost: alloc.Cost,
				OverlapDays:   alloc.OverlapDays,
			}
			if alloc.Prorated {
				projectCost = projectCost.Add(alloc.Cost)
			}
		}

		newLeads, qualified := 0, 0
		for _, lv := range inWindow {
			if !MatchesProject(lv.lead, lv.tags, project) {
				continue
			}
			newLeads++
			if lv.qualified {
				qualified++
			}
			for i, c := range group {
				if MatchesCampaign(lv.lead.SourceLabel, c.ChannelName) {
					campaignRows[i].NewLeads++
					if lv.qualified {
						campaignRows[i].QualifiedLeads++
					}
				}
			}
		}

		row := ProjectROI{
			ROIEntry:  buildEntry(project, newLeads, qualified, projectCost),
			Campaigns: campaignRows,
		}
		if row.NewLeads == 0 && row.AllocatedCost.IsZero() {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

func buildEntry(name string, newLeads, qualified int, cost decimal.Decimal) ROIEntry {
	entry := ROIEntry{
		Name:                 name,
		NewLeads:             newLeads,
		QualifiedLeads:       qualified,
		AllocatedCost:        cost,
		CostPerQualifiedLead: decimal.Zero,
	}
	if newLeads > 0 {
		entry.ConversionRate = float64(qualified) / float64(newLeads)
	}
	switch {
	case entry.ConversionRate >= 0.20:
		entry.EfficiencyTier = TierExcellent
	case entry.ConversionRate >= 0.10:
		entry.EfficiencyTier = TierQualified
	default:
		entry.EfficiencyTier = TierNeedsOptimization
	}
	if qualified > 0 {
		entry.CostPerQualifiedLead = round(cost.Div(decimal.NewFromInt(int64(qualified))))
	} else {
		entry.NoConversions = true
	}
	return entry
}

func decodeTags(raw []byte) []string {
	if len(raw) == 0 {
		return nil
	}
	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil {
		return nil
	}
	return tags
}
