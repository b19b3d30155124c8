package models

import "time"

// DayCount is one day of a per-day series
type DayCount struct {
	Day   string `json:"day"` // YYYY-MM-DD
	Count int64  `json:"cnt"`
}

// RecentUser is a user row for the dashboard (no password hash)
type RecentUser struct {
	ID        int64     `json:"id"`
	FirstName *string   `json:"first_name"`
	LastName  *string   `json:"last_name"`
	Username  *string   `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// RecentPath is a path row for the dashboard with its waypoint count
type RecentPath struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	Points    int64     `json:"points"`
}

// StatsOverviewResponse is the dashboard aggregate payload
type StatsOverviewResponse struct {
	UsersCount      int64        `json:"users_count"`
	PathsCount      int64        `json:"paths_count"`
	UsersLast7ByDay []DayCount   `json:"users_last7_by_day"`
	PathsLast7ByDay []DayCount   `json:"paths_last7_by_day"`
	RecentUsers     []RecentUser `json:"recent_users"`
	RecentPaths     []RecentPath `json:"recent_paths"`
}
