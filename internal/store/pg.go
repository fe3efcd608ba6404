package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"

	"github.com/indietrack/artist-dashboard/internal/domain"
	"github.com/indietrack/artist-dashboard/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

func hasDBResolver(db *gorm.DB) bool {
	return db != nil && db.Callback().Query().Get("gorm:db_resolver") != nil
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// UseReadReplica routes read queries to the replica at dsn; writes and
// transactions stay on the primary connection.
func UseReadReplica(db *gorm.DB, dsn string) error {
	return db.Use(dbresolver.Register(dbresolver.Config{
		Replicas: []gorm.Dialector{postgres.Open(dsn)},
		Policy:   dbresolver.RandomPolicy{},
	}))
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// calculateSafeBatchSize computes the batch size for bulk inserts that stays below
// PostgreSQL's limit of 65535 bind parameters per statement.
func calculateSafeBatchSize(totalRecords int, fieldsPerRecord int) int {
	const maxParams = 65535
	const totalHeadroom = 1000 // Total parameter headroom for batch-level overhead

	availableParams := maxParams - totalHeadroom
	safeBatchSize := max(availableParams/fieldsPerRecord, 1)

	if safeBatchSize > totalRecords {
		return totalRecords
	}

	return safeBatchSize
}

// isUniqueViolation reports whether err is a unique constraint violation,
// with or without gorm's TranslateError enabled
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// isCheckViolation reports whether err is a check constraint violation,
// with or without gorm's TranslateError enabled
func isCheckViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23514"
}

// primary returns a handle pinned to the primary when a read replica is configured
func (s *pgStore) primary() *gorm.DB {
	if !hasDBResolver(s.db) {
		return s.db
	}
	return s.db.Clauses(dbresolver.Write)
}

// =============================================================================
// Profiles
// =============================================================================

// GetProfile retrieves a profile with its social links
func (s *pgStore) GetProfile(ctx context.Context, userID uuid.UUID) (*schema.Profile, error) {
	var profile schema.Profile
	err := s.db.WithContext(ctx).
		Preload("SocialLinks", func(db *gorm.DB) *gorm.DB {
			return db.Order("platform ASC")
		}).
		Where("id = ?", userID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

// EnsureProfile inserts the profile unless one already exists
func (s *pgStore) EnsureProfile(ctx context.Context, profile *schema.Profile) (bool, error) {
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).
		Omit(clause.Associations).
		Create(profile)
	if result.Error != nil {
		return false, fmt.Errorf("failed to ensure profile: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

// UpdateProfile applies the supplied profile fields
func (s *pgStore) UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*schema.Profile, error) {
	updates := make(map[string]interface{})
	if input.ArtistName != nil {
		updates["artist_name"] = *input.ArtistName
	}
	if input.Bio != nil {
		updates["bio"] = *input.Bio
	}
	if input.Genre != nil {
		updates["genre"] = *input.Genre
	}
	if input.ProfileImageURL != nil {
		updates["profile_image_url"] = *input.ProfileImageURL
	}

	if len(updates) > 0 {
		updates["updated_at"] = gorm.Expr("now()")
		result := s.db.WithContext(ctx).
			Model(&schema.Profile{}).
			Where("id = ?", userID).
			Updates(updates)
		if result.Error != nil {
			return nil, fmt.Errorf("failed to update profile: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, nil
		}
	}

	return s.GetProfile(ctx, userID)
}

// ReplaceSocialLinks replaces all social links of a profile in one transaction
func (s *pgStore) ReplaceSocialLinks(ctx context.Context, userID uuid.UUID, links []SocialLinkInput) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var profile schema.Profile
		err := tx.Select("id").Where("id = ?", userID).Take(&profile).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("failed to get profile: %w", err)
		}

		if err := tx.Where("profile_id = ?", userID).Delete(&schema.SocialLink{}).Error; err != nil {
			return fmt.Errorf("failed to delete social links: %w", err)
		}

		if len(links) == 0 {
			return nil
		}

		rows := make([]schema.SocialLink, 0, len(links))
		for _, link := range links {
			rows = append(rows, schema.SocialLink{
				ProfileID: userID,
				Platform:  link.Platform,
				URL:       link.URL,
			})
		}

		// Later duplicates of the same platform are dropped
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "profile_id"}, {Name: "platform"}},
			DoNothing: true,
		}).Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to create social links: %w", err)
		}
		return nil
	})
}

// ListProfileIDs returns profile ids after the given id in ascending order
func (s *pgStore) ListProfileIDs(ctx context.Context, after uuid.UUID, limit int) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.db.WithContext(ctx).
		Model(&schema.Profile{}).
		Where("id > ?", after).
		Order("id ASC").
		Limit(limit).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list profile ids: %w", err)
	}
	return ids, nil
}

// =============================================================================
// Releases and tracks
// =============================================================================

// CreateRelease inserts a release. Moderation and distribution always start at their initial states.
func (s *pgStore) CreateRelease(ctx context.Context, input CreateReleaseInput) (*schema.Release, error) {
	status := input.Status
	if status == "" {
		status = domain.ReleaseStatusDraft
	}
	releaseType := input.ReleaseType
	if releaseType == "" {
		releaseType = domain.ReleaseTypeSingle
	}

	release := schema.Release{
		ID:                 uuid.New(),
		ArtistID:           input.ArtistID,
		Title:              input.Title,
		ReleaseDate:        datatypes.Date(input.ReleaseDate),
		Status:             status,
		ModerationStatus:   domain.ModerationStatusPending,
		DistributionStatus: domain.DistributionStatusNotStarted,
		Genre:              input.Genre,
		Description:        input.Description,
		CoverArtURL:        input.CoverArtURL,
		ReleaseType:        releaseType,
	}

	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(&release).Error; err != nil {
		return nil, fmt.Errorf("failed to create release: %w", err)
	}

	return &release, nil
}

// GetRelease retrieves a release owned by ownerID
func (s *pgStore) GetRelease(ctx context.Context, ownerID, releaseID uuid.UUID) (*schema.Release, error) {
	return s.getRelease(ctx, "id = ? AND artist_id = ?", releaseID, ownerID)
}

// GetReleaseByID retrieves a release regardless of owner
func (s *pgStore) GetReleaseByID(ctx context.Context, releaseID uuid.UUID) (*schema.Release, error) {
	return s.getRelease(ctx, "id = ?", releaseID)
}

func (s *pgStore) getRelease(ctx context.Context, query string, args ...interface{}) (*schema.Release, error) {
	var release schema.Release
	find := func(db *gorm.DB) error {
		return db.WithContext(ctx).Where(query, args...).Take(&release).Error
	}

	err := find(s.db)
	if err == nil {
		return &release, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get release: %w", err)
	}
	if !hasDBResolver(s.db) {
		return nil, nil
	}

	// Replica can lag behind primary; retry on primary before returning not found.
	err = find(s.primary())
	if err == nil {
		return &release, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return nil, fmt.Errorf("failed to get release: %w", err)
}

// ListReleases lists releases owned by ownerID, newest first
func (s *pgStore) ListReleases(ctx context.Context, ownerID uuid.UUID, limit int) ([]schema.Release, error) {
	query := s.db.WithContext(ctx).
		Where("artist_id = ?", ownerID).
		Order("created_at DESC").
		Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var releases []schema.Release
	if err := query.Find(&releases).Error; err != nil {
		return nil, fmt.Errorf("failed to list releases: %w", err)
	}
	return releases, nil
}

// UpdateRelease updates a release scoped by both release id and owner id
func (s *pgStore) UpdateRelease(ctx context.Context, ownerID, releaseID uuid.UUID, fields UpdateReleaseFields) (*schema.Release, error) {
	return s.updateRelease(ctx, fields, "id = ? AND artist_id = ?", releaseID, ownerID)
}

// UpdateReleaseReview updates a release regardless of owner
func (s *pgStore) UpdateReleaseReview(ctx context.Context, releaseID uuid.UUID, fields UpdateReleaseFields) (*schema.Release, error) {
	return s.updateRelease(ctx, fields, "id = ?", releaseID)
}

func (s *pgStore) updateRelease(ctx context.Context, fields UpdateReleaseFields, query string, args ...interface{}) (*schema.Release, error) {
	updates := fields.columns()
	updates["updated_at"] = gorm.Expr("now()")

	var releases []schema.Release
	tx := s.db.WithContext(ctx).
		Model(&releases).
		Clauses(clause.Returning{}).
		Where(query, args...)
	if fields.ExpectedStatus != nil {
		tx = tx.Where("status = ?", *fields.ExpectedStatus)
	}
	result := tx.Updates(updates)
	if result.Error != nil {
		if isCheckViolation(result.Error) {
			return nil, ErrReleaseNotApproved
		}
		return nil, fmt.Errorf("failed to update release: %w", result.Error)
	}
	if result.RowsAffected == 0 || len(releases) == 0 {
		if fields.ExpectedStatus == nil {
			return nil, nil
		}
		// Tell a concurrent status change apart from a missing or foreign release
		var count int64
		err := s.primary().WithContext(ctx).
			Model(&schema.Release{}).
			Where(query, args...).
			Count(&count).Error
		if err != nil {
			return nil, fmt.Errorf("failed to check release: %w", err)
		}
		if count > 0 {
			return nil, ErrReleaseStatusChanged
		}
		return nil, nil
	}

	return &releases[0], nil
}

// CreateTrack inserts a track after confirming the release belongs to ownerID
func (s *pgStore) CreateTrack(ctx context.Context, ownerID uuid.UUID, input CreateTrackInput) (*schema.Track, error) {
	track := schema.Track{
		ID:          uuid.New(),
		ReleaseID:   input.ReleaseID,
		Title:       input.Title,
		TrackNumber: input.TrackNumber,
		Duration:    input.Duration,
		AudioURL:    input.AudioURL,
		ISRC:        input.ISRC,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the release row so it cannot be deleted between the check and the insert
		var release schema.Release
		err := tx.Clauses(clause.Locking{Strength: "SHARE"}).
			Select("id").
			Where("id = ? AND artist_id = ?", input.ReleaseID, ownerID).
			Take(&release).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("failed to get release: %w", err)
		}

		if err := tx.Create(&track).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicateTrackNumber
			}
			return fmt.Errorf("failed to create track: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &track, nil
}

// ListTracks lists tracks of an owned release in track number order
func (s *pgStore) ListTracks(ctx context.Context, ownerID, releaseID uuid.UUID) ([]schema.Track, error) {
	var tracks []schema.Track
	err := s.db.WithContext(ctx).
		Where("release_id = ? AND release_id IN (SELECT id FROM releases WHERE artist_id = ?)", releaseID, ownerID).
		Order("track_number ASC").
		Find(&tracks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tracks: %w", err)
	}
	return tracks, nil
}

// =============================================================================
// Streaming stats
// =============================================================================

// CreateStreamingStats inserts ingested daily stream counts in parameter-safe batches
func (s *pgStore) CreateStreamingStats(ctx context.Context, stats []schema.StreamingStat) error {
	if len(stats) == 0 {
		return nil
	}

	batchSize := calculateSafeBatchSize(len(stats), 6)
	if err := s.db.WithContext(ctx).CreateInBatches(stats, batchSize).Error; err != nil {
		return fmt.Errorf("failed to create streaming stats: %w", err)
	}
	return nil
}

// GetReleaseStreamsByPlatform sums streams of an owned release per platform
func (s *pgStore) GetReleaseStreamsByPlatform(ctx context.Context, ownerID, releaseID uuid.UUID) ([]PlatformStreamTotal, error) {
	var totals []PlatformStreamTotal
	err := s.db.WithContext(ctx).
		Model(&schema.StreamingStat{}).
		Select("platform, SUM(stream_count) AS streams").
		Where("release_id = ? AND release_id IN (SELECT id FROM releases WHERE artist_id = ?)", releaseID, ownerID).
		Group("platform").
		Order("streams DESC").
		Order("platform ASC").
		Scan(&totals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get release streams: %w", err)
	}
	return totals, nil
}

// GetMonthlyStreams sums streams per calendar month across all releases of ownerID
func (s *pgStore) GetMonthlyStreams(ctx context.Context, ownerID uuid.UUID, since time.Time) ([]MonthlyStreamTotal, error) {
	var totals []MonthlyStreamTotal
	err := s.db.WithContext(ctx).Raw(`
		SELECT date_trunc('month', date)::date AS month, SUM(stream_count) AS streams
		FROM streaming_stats
		WHERE release_id IN (SELECT id FROM releases WHERE artist_id = ?)
		  AND date >= ?
		GROUP BY 1
		ORDER BY 1 ASC`, ownerID, datatypes.Date(since)).
		Scan(&totals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly streams: %w", err)
	}
	return totals, nil
}

// =============================================================================
// Analytics snapshots
// =============================================================================

// GetDashboardStats retrieves the dashboard row. Should duplicates exist, the most
// recently updated row wins, with the id as a stable tie-breaker.
func (s *pgStore) GetDashboardStats(ctx context.Context, userID uuid.UUID) (*schema.DashboardStats, error) {
	var stats schema.DashboardStats
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Order("id DESC").
		Take(&stats).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get dashboard stats: %w", err)
	}
	return &stats, nil
}

// ListPlatformStats lists platform rows ordered by share
func (s *pgStore) ListPlatformStats(ctx context.Context, userID uuid.UUID) ([]schema.PlatformStats, error) {
	var stats []schema.PlatformStats
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("percentage DESC").
		Order("platform_name ASC").
		Find(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list platform stats: %w", err)
	}
	return stats, nil
}

// ListCountryStats lists country rows ordered by share
func (s *pgStore) ListCountryStats(ctx context.Context, userID uuid.UUID) ([]schema.CountryStats, error) {
	var stats []schema.CountryStats
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("percentage DESC").
		Order("country_name ASC").
		Find(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list country stats: %w", err)
	}
	return stats, nil
}

// ListTrackStats lists leaderboard rows ordered by streams
func (s *pgStore) ListTrackStats(ctx context.Context, userID uuid.UUID) ([]schema.TrackStats, error) {
	var stats []schema.TrackStats
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("streams DESC").
		Order("track_name ASC").
		Find(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list track stats: %w", err)
	}
	return stats, nil
}

// SeedAnalytics provisions the default dataset for each empty collection.
// The emptiness check only skips needless work; correctness under concurrency
// comes from the unique indexes and ON CONFLICT DO NOTHING.
func (s *pgStore) SeedAnalytics(ctx context.Context, userID uuid.UUID, data SeedData) (SeedResult, error) {
	var result SeedResult
	err := s.primary().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result = SeedResult{}

		// Lock the profile so the account cannot be deleted while its rows are written
		var profile schema.Profile
		err := tx.Clauses(clause.Locking{Strength: "SHARE"}).
			Select("id").
			Where("id = ?", userID).
			Take(&profile).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("failed to get profile: %w", err)
		}

		dashboard := data.Dashboard
		dashboard.UserID = userID
		if result.Dashboard, err = seedCollection(tx, "dashboard_stats", userID, []schema.DashboardStats{dashboard},
			[]string{"user_id"}); err != nil {
			return err
		}

		platforms := make([]schema.PlatformStats, len(data.Platforms))
		for i, p := range data.Platforms {
			p.UserID = userID
			platforms[i] = p
		}
		if result.Platforms, err = seedCollection(tx, "platform_stats", userID, platforms,
			[]string{"user_id", "platform_name"}); err != nil {
			return err
		}

		countries := make([]schema.CountryStats, len(data.Countries))
		for i, c := range data.Countries {
			c.UserID = userID
			countries[i] = c
		}
		if result.Countries, err = seedCollection(tx, "country_stats", userID, countries,
			[]string{"user_id", "country_name"}); err != nil {
			return err
		}

		tracks := make([]schema.TrackStats, len(data.Tracks))
		for i, t := range data.Tracks {
			t.UserID = userID
			tracks[i] = t
		}
		if result.Tracks, err = seedCollection(tx, "track_stats", userID, tracks,
			[]string{"user_id", "track_name"}); err != nil {
			return err
		}

		activities := make([]schema.UserActivity, len(data.Activities))
		for i, a := range data.Activities {
			a.ID = uuid.New()
			a.UserID = userID
			activities[i] = a
		}
		result.Activities, err = seedCollection(tx, "user_activity", userID, activities,
			[]string{"user_id", "seed_key"})
		return err
	})
	if err != nil {
		return SeedResult{}, err
	}

	return result, nil
}

// seedCollection inserts rows into table when the user has no rows there yet
func seedCollection[T any](db *gorm.DB, table string, userID uuid.UUID, rows []T, conflictColumns []string) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	var exists bool
	if err := db.Raw("SELECT EXISTS (SELECT 1 FROM "+table+" WHERE user_id = ?)", userID).
		Scan(&exists).Error; err != nil {
		return 0, fmt.Errorf("failed to check %s: %w", table, err)
	}
	if exists {
		return 0, nil
	}

	columns := make([]clause.Column, 0, len(conflictColumns))
	for _, name := range conflictColumns {
		columns = append(columns, clause.Column{Name: name})
	}

	result := db.Clauses(clause.OnConflict{
		Columns:   columns,
		DoNothing: true,
	}).Create(&rows)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to seed %s: %w", table, result.Error)
	}
	return result.RowsAffected, nil
}

// =============================================================================
// Activity
// =============================================================================

// CreateActivity appends an activity entry
func (s *pgStore) CreateActivity(ctx context.Context, activity *schema.UserActivity) error {
	if activity.ID == uuid.Nil {
		activity.ID = uuid.New()
	}
	if err := s.db.WithContext(ctx).Create(activity).Error; err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}
	return nil
}

// ListActivities lists activities newest first. Entries without an activity
// time are placed by their creation time.
func (s *pgStore) ListActivities(ctx context.Context, userID uuid.UUID, limit int) ([]schema.UserActivity, error) {
	var activities []schema.UserActivity
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("COALESCE(activity_time, created_at) DESC").
		Order("created_at DESC").
		Limit(limit).
		Find(&activities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return activities, nil
}

// =============================================================================
// License agreement
// =============================================================================

// GetLicenseAgreement retrieves the agreement of a user
func (s *pgStore) GetLicenseAgreement(ctx context.Context, userID uuid.UUID) (*schema.LicenseAgreement, error) {
	var agreement schema.LicenseAgreement
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Take(&agreement).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get license agreement: %w", err)
	}
	return &agreement, nil
}

// UpsertLicenseAgreement creates the agreement or overwrites the existing one of the same user
func (s *pgStore) UpsertLicenseAgreement(ctx context.Context, agreement *schema.LicenseAgreement) (*schema.LicenseAgreement, error) {
	row := *agreement
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	row.UpdatedAt = time.Now()

	err := s.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "user_id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"full_name",
					"address",
					"passport_number",
					"bank_details",
					"signature_url",
					"agreed_to_terms",
					"updated_at",
				}),
			},
			clause.Returning{},
		).
		Create(&row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert license agreement: %w", err)
	}
	return &row, nil
}

// =============================================================================
// Account
// =============================================================================

// DeleteUserData removes every row owned by userID, children before parents
func (s *pgStore) DeleteUserData(ctx context.Context, userID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		const ownedReleases = "SELECT id FROM releases WHERE artist_id = ?"
		const ownedTracks = "SELECT id FROM tracks WHERE release_id IN (" + ownedReleases + ")"

		steps := []struct {
			name  string
			model interface{}
			query string
			args  []interface{}
		}{
			{"user activity", &schema.UserActivity{}, "user_id = ?", []interface{}{userID}},
			{"dashboard stats", &schema.DashboardStats{}, "user_id = ?", []interface{}{userID}},
			{"platform stats", &schema.PlatformStats{}, "user_id = ?", []interface{}{userID}},
			{"country stats", &schema.CountryStats{}, "user_id = ?", []interface{}{userID}},
			{"track stats", &schema.TrackStats{}, "user_id = ?", []interface{}{userID}},
			{"license agreements", &schema.LicenseAgreement{}, "user_id = ?", []interface{}{userID}},
			{"streaming stats", &schema.StreamingStat{},
				"release_id IN (" + ownedReleases + ") OR track_id IN (" + ownedTracks + ")",
				[]interface{}{userID, userID}},
			{"tracks", &schema.Track{}, "release_id IN (" + ownedReleases + ")", []interface{}{userID}},
			{"releases", &schema.Release{}, "artist_id = ?", []interface{}{userID}},
			{"social links", &schema.SocialLink{}, "profile_id = ?", []interface{}{userID}},
			{"profile", &schema.Profile{}, "id = ?", []interface{}{userID}},
		}

		for _, step := range steps {
			if err := tx.Where(step.query, step.args...).Delete(step.model).Error; err != nil {
				return fmt.Errorf("failed to delete %s: %w", step.name, err)
			}
		}
		return nil
	})
}
