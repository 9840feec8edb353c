package models

import "time"

// Stat is a single dashboard counter. Computed per request, never stored.
type Stat struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Icon  string `json:"icon"`
}

type QuickAction struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type ActivityEntry struct {
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

type AgendaItem struct {
	Title string    `json:"title"`
	At    time.Time `json:"at"`
}

type IssueSummary struct {
	Title  string `json:"title"`
	Status string `json:"status"`
}

// DashboardData is the response body for GET /dashboard. The feed, agenda
// and issues lists are part of the contract but have no aggregation behind
// them yet; they are always present and empty.
type DashboardData struct {
	Name         string          `json:"name"`
	Role         string          `json:"role"`
	AvatarURL    string          `json:"avatarUrl"`
	Stats        []Stat          `json:"stats"`
	QuickActions []QuickAction   `json:"quickActions"`
	ActivityFeed []ActivityEntry `json:"activityFeed"`
	TodayAgenda  []AgendaItem    `json:"todayAgenda"`
	Issues       []IssueSummary  `json:"issues"`
}
