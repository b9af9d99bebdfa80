package repository

import (
	"mindmate_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

// AnalyticsRepository runs the aggregate queries behind the admin dashboard.
// Everything is computed at query time; there is no incremental state.
type AnalyticsRepository struct {
	DB *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{DB: db}
}

func (r *AnalyticsRepository) CountUsers() (int64, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Count(&count).Error
	return count, err
}

func (r *AnalyticsRepository) CountUsersCreatedBetween(from, to time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&model.User{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&count).Error
	return count, err
}

func (r *AnalyticsRepository) CountActiveUsersSince(since time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&model.User{}).
		Where("last_active >= ?", since).
		Count(&count).Error
	return count, err
}

func (r *AnalyticsRepository) CountMoodEntries() (int64, error) {
	var count int64
	err := r.DB.Model(&model.MoodEntry{}).Count(&count).Error
	return count, err
}

func (r *AnalyticsRepository) CountMoodEntriesBetween(from, to time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&model.MoodEntry{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&count).Error
	return count, err
}

func (r *AnalyticsRepository) CountJournalEntries() (int64, error) {
	var count int64
	err := r.DB.Model(&model.JournalEntry{}).Count(&count).Error
	return count, err
}

func (r *AnalyticsRepository) CountJournalEntriesBetween(from, to time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&model.JournalEntry{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&count).Error
	return count, err
}

// MoodCounts groups mood entries by mood label.
func (r *AnalyticsRepository) MoodCounts() ([]model.MoodBucket, error) {
	var buckets []model.MoodBucket
	err := r.DB.Model(&model.MoodEntry{}).
		Select("mood, COUNT(*) AS count").
		Group("mood").
		Order("count DESC").
		Scan(&buckets).Error
	return buckets, err
}

// DailyMoodCounts returns mood entry counts per calendar day since the cutoff.
func (r *AnalyticsRepository) DailyMoodCounts(since time.Time) ([]model.TrendPoint, error) {
	var points []model.TrendPoint
	err := r.DB.Model(&model.MoodEntry{}).
		Select("DATE(created_at) AS date, COUNT(*) AS value").
		Where("created_at >= ?", since).
		Group("DATE(created_at)").
		Order("date").
		Scan(&points).Error
	return points, err
}

// DailyActiveUsers counts distinct users who wrote a mood or journal entry
// per calendar day since the cutoff.
func (r *AnalyticsRepository) DailyActiveUsers(since time.Time) ([]model.ActivityPoint, error) {
	var points []model.ActivityPoint
	err := r.DB.Raw(`
		SELECT date, COUNT(DISTINCT user_id) AS active_users FROM (
			SELECT DATE(created_at) AS date, user_id FROM mood_entries
			WHERE created_at >= ? AND deleted_at IS NULL
			UNION ALL
			SELECT DATE(created_at) AS date, user_id FROM journal_entries
			WHERE created_at >= ? AND deleted_at IS NULL
		) activity
		GROUP BY date
		ORDER BY date`, since, since).
		Scan(&points).Error
	return points, err
}
