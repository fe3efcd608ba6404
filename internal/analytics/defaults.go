package analytics

import (
	"time"

	"github.com/google/uuid"

	"github.com/indietrack/artist-dashboard/internal/domain"
	"github.com/indietrack/artist-dashboard/internal/store"
	"github.com/indietrack/artist-dashboard/internal/store/schema"
)

// DefaultSeedData returns the starter analytics shown to a new artist.
// Activity times are relative to now; each default activity carries a seed key
// so concurrent seeding writes it at most once.
func DefaultSeedData(userID uuid.UUID, now time.Time) store.SeedData {
	at := func(ago time.Duration) *time.Time {
		t := now.Add(-ago)
		return &t
	}
	key := func(k string) *string {
		return &k
	}

	return store.SeedData{
		Dashboard: schema.DashboardStats{
			UserID:         userID,
			TotalStreams:   86520,
			StreamChange:   12.5,
			TotalRevenue:   3245.78,
			RevenueChange:  8.3,
			TotalAudience:  32450,
			AudienceChange: 15.2,
		},
		Platforms: []schema.PlatformStats{
			{UserID: userID, PlatformName: "Spotify", Streams: 45000, Percentage: 52},
			{UserID: userID, PlatformName: "Apple Music", Streams: 22000, Percentage: 25},
			{UserID: userID, PlatformName: "YouTube Music", Streams: 12000, Percentage: 14},
			{UserID: userID, PlatformName: "Others", Streams: 7520, Percentage: 9},
		},
		Countries: []schema.CountryStats{
			{UserID: userID, CountryName: "United States", Listeners: 12500, Percentage: 38},
			{UserID: userID, CountryName: "United Kingdom", Listeners: 5600, Percentage: 17},
			{UserID: userID, CountryName: "Germany", Listeners: 4200, Percentage: 13},
			{UserID: userID, CountryName: "Canada", Listeners: 3800, Percentage: 12},
			{UserID: userID, CountryName: "Others", Listeners: 6350, Percentage: 20},
		},
		Tracks: []schema.TrackStats{
			{UserID: userID, TrackName: "Summer Vibes", Streams: 25000},
			{UserID: userID, TrackName: "Midnight Dreams", Streams: 18000},
			{UserID: userID, TrackName: "Urban Echoes", Streams: 15000},
			{UserID: userID, TrackName: "Neon Nights", Streams: 12000},
			{UserID: userID, TrackName: "Cosmic Journey", Streams: 8000},
		},
		Activities: []schema.UserActivity{
			{
				UserID:       userID,
				ActivityType: domain.ActivityStreamMilestone,
				Title:        "Summer Vibes EP reached 10,000 streams",
				ActivityTime: at(2 * time.Hour),
				SeedKey:      key("stream-milestone"),
			},
			{
				UserID:       userID,
				ActivityType: domain.ActivityNewFollower,
				Title:        "5 new followers on Spotify",
				ActivityTime: at(24 * time.Hour),
				SeedKey:      key("new-follower"),
			},
			{
				UserID:       userID,
				ActivityType: domain.ActivityPayment,
				Title:        "Payment of $127.45 received",
				ActivityTime: at(72 * time.Hour),
				SeedKey:      key("payment"),
			},
		},
	}
}
