package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"portfolio_app_echo/internal/models"
)

const (
	topPathsLimit    = 10
	recentViewsLimit = 20
)

// HashIP returns a salted, truncated SHA-256 of the client address
func HashIP(ip, salt string) string {
	sum := sha256.Sum256([]byte(ip + salt))
	return hex.EncodeToString(sum[:])[:16]
}

// PathCount is a page and how often it was viewed
type PathCount struct {
	Path  string `json:"path"`
	Views int64  `json:"views"`
}

// AnalyticsStats is the admin dashboard summary
type AnalyticsStats struct {
	TotalViews     int64             `json:"total_views"`
	UniqueVisitors int64             `json:"unique_visitors"`
	ViewsToday     int64             `json:"views_today"`
	ViewsLastWeek  int64             `json:"views_last_week"`
	TopPaths       []PathCount       `json:"top_paths"`
	Recent         []models.PageView `json:"recent"`
}

// AnalyticsService stores and summarises page views
type AnalyticsService struct {
	db  *gorm.DB
	log *zap.Logger
	now func() time.Time
}

func NewAnalyticsService(db *gorm.DB, log *zap.Logger) *AnalyticsService {
	return &AnalyticsService{db: db, log: log, now: time.Now}
}

// Record stores a page view
func (s *AnalyticsService) Record(ctx context.Context, view *models.PageView) error {
	if err := s.db.WithContext(ctx).Create(view).Error; err != nil {
		return fmt.Errorf("record page view: %w", err)
	}
	return nil
}

// Stats summarises stored page views
func (s *AnalyticsService) Stats(ctx context.Context) (*AnalyticsStats, error) {
	db := s.db.WithContext(ctx)
	now := s.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	stats := &AnalyticsStats{}

	if err := db.Model(&models.PageView{}).Count(&stats.TotalViews).Error; err != nil {
		return nil, fmt.Errorf("count views: %w", err)
	}
	if err := db.Model(&models.PageView{}).Distinct("hashed_ip").Count(&stats.UniqueVisitors).Error; err != nil {
		return nil, fmt.Errorf("count visitors: %w", err)
	}
	if err := db.Model(&models.PageView{}).Where("created_at >= ?", startOfDay).Count(&stats.ViewsToday).Error; err != nil {
		return nil, fmt.Errorf("count views today: %w", err)
	}
	if err := db.Model(&models.PageView{}).Where("created_at >= ?", now.AddDate(0, 0, -7)).Count(&stats.ViewsLastWeek).Error; err != nil {
		return nil, fmt.Errorf("count views last week: %w", err)
	}

	err := db.Model(&models.PageView{}).
		Select("path, count(*) AS views").
		Group("path").
		Order("views DESC").
		Limit(topPathsLimit).
		Scan(&stats.TopPaths).Error
	if err != nil {
		return nil, fmt.Errorf("top paths: %w", err)
	}

	if err := db.Order("created_at DESC").Limit(recentViewsLimit).Find(&stats.Recent).Error; err != nil {
		return nil, fmt.Errorf("recent views: %w", err)
	}

	return stats, nil
}

// Purge deletes page views created before olderThan
func (s *AnalyticsService) Purge(ctx context.Context, olderThan time.Time) (int64, error) {
	result := s.db.WithContext(ctx).Where("created_at < ?", olderThan).Delete(&models.PageView{})
	if result.Error != nil {
		return 0, fmt.Errorf("purge page views: %w", result.Error)
	}
	s.log.Info("Purged page views",
		zap.Int64("deleted", result.RowsAffected),
		zap.Time("older_than", olderThan))
	return result.RowsAffected, nil
}
