package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"mindmate_backend/internal/model"
	"mindmate_backend/internal/repository"
	"mindmate_backend/pkg/logger"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const adminStatsCacheKey = "mindmate:admin:stats"
const adminStatsCacheTTL = 60 * time.Second

type AnalyticsService struct {
	AnalyticsRepo *repository.AnalyticsRepository
	Redis         *redis.Client
}

func NewAnalyticsService(analyticsRepo *repository.AnalyticsRepository, rdb *redis.Client) *AnalyticsService {
	return &AnalyticsService{AnalyticsRepo: analyticsRepo, Redis: rdb}
}

// PercentChange formats the week-over-week movement as a signed percentage
// string. A zero previous count with new activity reads as +100%.
func PercentChange(current, previous int64) string {
	if previous == 0 {
		if current == 0 {
			return "0%"
		}
		return "+100%"
	}
	change := (float64(current) - float64(previous)) / float64(previous) * 100
	return fmt.Sprintf("%+.1f%%", change)
}

// DistributionPercentages fills in each bucket's share of the total,
// rounded to the nearest integer. A zero total yields all-zero percentages.
func DistributionPercentages(buckets []model.MoodBucket) []model.MoodBucket {
	var total int64
	for _, b := range buckets {
		total += b.Count
	}

	out := make([]model.MoodBucket, len(buckets))
	for i, b := range buckets {
		out[i] = b
		if total > 0 {
			out[i].Percentage = int(math.Round(float64(b.Count) / float64(total) * 100))
		}
	}
	return out
}

// FillDailySeries maps sparse per-day counts onto the last n days, zero
// filling the gaps and labeling each point with its short weekday name.
func FillDailySeries(points []model.TrendPoint, now time.Time, days int) []model.TrendPoint {
	byDate := make(map[string]int64, len(points))
	for _, p := range points {
		// MySQL DATE() scans as "2006-01-02", sometimes with a time suffix.
		key := p.Date
		if len(key) > 10 {
			key = key[:10]
		}
		byDate[key] = p.Value
	}

	out := make([]model.TrendPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		out = append(out, model.TrendPoint{
			Date:  day.Format("Mon"),
			Value: byDate[day.Format("2006-01-02")],
		})
	}
	return out
}

// GetAdminStats computes the dashboard headline numbers, with a short redis
// cache in front of the aggregate queries.
func (s *AnalyticsService) GetAdminStats(ctx context.Context) (*model.AdminStats, error) {
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, adminStatsCacheKey).Bytes(); err == nil {
			var stats model.AdminStats
			if json.Unmarshal(cached, &stats) == nil {
				return &stats, nil
			}
		}
	}

	now := time.Now()
	weekAgo := now.AddDate(0, 0, -7)
	twoWeeksAgo := now.AddDate(0, 0, -14)
	dayAgo := now.Add(-24 * time.Hour)

	totalUsers, err := s.AnalyticsRepo.CountUsers()
	if err != nil {
		return nil, err
	}
	activeUsers, err := s.AnalyticsRepo.CountActiveUsersSince(dayAgo)
	if err != nil {
		return nil, err
	}
	moodEntries, err := s.AnalyticsRepo.CountMoodEntries()
	if err != nil {
		return nil, err
	}
	journalEntries, err := s.AnalyticsRepo.CountJournalEntries()
	if err != nil {
		return nil, err
	}

	usersThisWeek, err := s.AnalyticsRepo.CountUsersCreatedBetween(weekAgo, now)
	if err != nil {
		return nil, err
	}
	usersLastWeek, err := s.AnalyticsRepo.CountUsersCreatedBetween(twoWeeksAgo, weekAgo)
	if err != nil {
		return nil, err
	}
	moodThisWeek, err := s.AnalyticsRepo.CountMoodEntriesBetween(weekAgo, now)
	if err != nil {
		return nil, err
	}
	moodLastWeek, err := s.AnalyticsRepo.CountMoodEntriesBetween(twoWeeksAgo, weekAgo)
	if err != nil {
		return nil, err
	}
	journalThisWeek, err := s.AnalyticsRepo.CountJournalEntriesBetween(weekAgo, now)
	if err != nil {
		return nil, err
	}
	journalLastWeek, err := s.AnalyticsRepo.CountJournalEntriesBetween(twoWeeksAgo, weekAgo)
	if err != nil {
		return nil, err
	}

	stats := &model.AdminStats{
		TotalUsers:     totalUsers,
		ActiveUsers:    activeUsers,
		MoodEntries:    moodEntries,
		JournalEntries: journalEntries,
		UserChange:     PercentChange(usersThisWeek, usersLastWeek),
		ActiveChange:   PercentChange(usersThisWeek+moodThisWeek, usersLastWeek+moodLastWeek),
		MoodChange:     PercentChange(moodThisWeek, moodLastWeek),
		JournalChange:  PercentChange(journalThisWeek, journalLastWeek),
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := s.Redis.Set(ctx, adminStatsCacheKey, payload, adminStatsCacheTTL).Err(); err != nil {
				logger.Log.Warn("failed to cache admin stats", zap.Error(err))
			}
		}
	}

	return stats, nil
}

func (s *AnalyticsService) GetMoodAnalytics() (*model.MoodAnalytics, error) {
	buckets, err := s.AnalyticsRepo.MoodCounts()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	raw, err := s.AnalyticsRepo.DailyMoodCounts(now.AddDate(0, 0, -6).Truncate(24 * time.Hour))
	if err != nil {
		return nil, err
	}

	return &model.MoodAnalytics{
		Distribution: DistributionPercentages(buckets),
		Trends:       FillDailySeries(raw, now, 7),
	}, nil
}

func (s *AnalyticsService) GetUserActivity() (*model.UserActivity, error) {
	now := time.Now()
	raw, err := s.AnalyticsRepo.DailyActiveUsers(now.AddDate(0, 0, -6).Truncate(24 * time.Hour))
	if err != nil {
		return nil, err
	}

	points := make([]model.TrendPoint, len(raw))
	for i, p := range raw {
		points[i] = model.TrendPoint{Date: p.Date, Value: p.ActiveUsers}
	}
	filled := FillDailySeries(points, now, 7)

	daily := make([]model.ActivityPoint, len(filled))
	for i, p := range filled {
		daily[i] = model.ActivityPoint{Date: p.Date, ActiveUsers: p.Value}
	}
	return &model.UserActivity{Daily: daily}, nil
}
