// Package dashboard assembles the role-scoped dashboard payload. Admin
// counters cover the whole organization; member counters are narrowed to
// rows assigned to the requesting user.
package dashboard

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"cohera-backend/internal/models"
)

// StatsStore is the slice of storage the aggregator reads. It owns no
// state of its own; every request recomputes from current rows.
type StatsStore interface {
	CountClients(ctx context.Context, orgID int64) (int, error)
	CountOpenIssues(ctx context.Context, orgID int64) (int, error)
	CountClientsAssignedTo(ctx context.Context, orgID, userID int64) (int, error)
	CountOpenIssuesAssignedTo(ctx context.Context, orgID, userID int64) (int, error)
}

type Aggregator struct {
	stats StatsStore
}

func NewAggregator(stats StatsStore) *Aggregator {
	return &Aggregator{stats: stats}
}

// statEntry is one positional entry in a role's stat plan. The dashboard
// renders stats by position, so plan order is part of the contract.
type statEntry struct {
	name  string
	icon  string
	count func(ctx context.Context, s StatsStore, sess *models.Session) (int, error)
}

var adminPlan = []statEntry{
	{
		name: "Total Company Clients",
		icon: "users",
		count: func(ctx context.Context, s StatsStore, sess *models.Session) (int, error) {
			return s.CountClients(ctx, sess.OrgID)
		},
	},
	{
		name: "Total Open Issues",
		icon: "alert-circle",
		count: func(ctx context.Context, s StatsStore, sess *models.Session) (int, error) {
			return s.CountOpenIssues(ctx, sess.OrgID)
		},
	},
}

var memberPlan = []statEntry{
	{
		name: "My Clients",
		icon: "briefcase",
		count: func(ctx context.Context, s StatsStore, sess *models.Session) (int, error) {
			return s.CountClientsAssignedTo(ctx, sess.OrgID, sess.UserID)
		},
	},
	{
		name: "My Open Issues",
		icon: "alert-circle",
		count: func(ctx context.Context, s StatsStore, sess *models.Session) (int, error) {
			return s.CountOpenIssuesAssignedTo(ctx, sess.OrgID, sess.UserID)
		},
	},
}

type roleProfile struct {
	label        string
	avatarColors string
	plan         []statEntry
	quickActions []models.QuickAction
}

var profiles = map[models.Role]roleProfile{
	models.RoleAdmin: {
		label:        "Company Administrator",
		avatarColors: "c7d2fe/312e81",
		plan:         adminPlan,
		quickActions: []models.QuickAction{
			{Name: "Add New User", Icon: "user-plus"},
			{Name: "Add New Client", Icon: "folder-plus"},
		},
	},
	models.RoleMember: {
		label:        "Sales & Support Team",
		avatarColors: "bbf7d0/15803d",
		plan:         memberPlan,
		quickActions: []models.QuickAction{
			{Name: "Add New Client", Icon: "folder-plus"},
			{Name: "Log an Issue", Icon: "alert-circle"},
		},
	},
}

// Build computes the full dashboard payload for an authenticated identity.
// Stat computation is all or nothing: one failing counter fails the request.
func (a *Aggregator) Build(ctx context.Context, sess *models.Session) (*models.DashboardData, error) {
	profile, ok := profiles[sess.Role]
	if !ok {
		// Unknown roles get the narrower member scope rather than org-wide
		// visibility.
		profile = profiles[models.RoleMember]
	}

	stats := make([]models.Stat, 0, len(profile.plan))
	for _, entry := range profile.plan {
		value, err := entry.count(ctx, a.stats, sess)
		if err != nil {
			return nil, fmt.Errorf("compute stat %q: %w", entry.name, err)
		}
		stats = append(stats, models.Stat{Name: entry.name, Value: value, Icon: entry.icon})
	}

	return &models.DashboardData{
		Name:         sess.FullName,
		Role:         profile.label,
		AvatarURL:    avatarURL(sess.FullName, profile.avatarColors),
		Stats:        stats,
		QuickActions: profile.quickActions,
		ActivityFeed: []models.ActivityEntry{},
		TodayAgenda:  []models.AgendaItem{},
		Issues:       []models.IssueSummary{},
	}, nil
}

func avatarURL(fullName, colors string) string {
	return fmt.Sprintf("https://placehold.co/100x100/%s?text=%s", colors, initials(fullName))
}

// initials takes the first letter of the first two name parts, e.g.
// "Mary Major" -> "MM".
func initials(fullName string) string {
	var b strings.Builder
	for i, part := range strings.Fields(fullName) {
		if i == 2 {
			break
		}
		first := []rune(part)[0]
		b.WriteRune(unicode.ToUpper(first))
	}
	if b.Len() == 0 {
		return "?"
	}
	return b.String()
}
