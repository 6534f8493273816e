package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pressroom/internal/cache"
	"pressroom/internal/model"
	"pressroom/internal/repository"
)

const (
	summaryCacheKey = "analytics:summary"
	summaryCacheTTL = time.Minute
)

// Summary is the dashboard analytics payload.
type Summary struct {
	PublishedArticles int64           `json:"published_articles"`
	DraftArticles     int64           `json:"draft_articles"`
	Users             int64           `json:"users"`
	Messages          int64           `json:"messages"`
	UnreadMessages    int64           `json:"unread_messages"`
	TopArticles       []model.Article `json:"top_articles"`
	GeneratedAt       time.Time       `json:"generated_at"`
}

// AnalyticsService aggregates dashboard counters. Results are cached
// briefly in Redis; a cold or unreachable cache just recomputes.
type AnalyticsService interface {
	Summary(ctx context.Context) (*Summary, error)
}

type analyticsService struct {
	articles repository.ArticleRepository
	users    repository.UserRepository
	messages repository.MessageRepository
	cache    *cache.Client
}

// NewAnalyticsService builds an AnalyticsService.
func NewAnalyticsService(
	articles repository.ArticleRepository,
	users repository.UserRepository,
	messages repository.MessageRepository,
	cache *cache.Client,
) AnalyticsService {
	return &analyticsService{articles: articles, users: users, messages: messages, cache: cache}
}

func (s *analyticsService) Summary(ctx context.Context) (*Summary, error) {
	if data, _ := s.cache.Get(ctx, summaryCacheKey); data != nil {
		var cached Summary
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	summary := &Summary{GeneratedAt: time.Now()}
	var err error

	if summary.PublishedArticles, err = s.articles.CountByStatus(ctx, model.ArticleStatusPublished); err != nil {
		return nil, fmt.Errorf("count published articles: %w", err)
	}
	if summary.DraftArticles, err = s.articles.CountByStatus(ctx, model.ArticleStatusDraft); err != nil {
		return nil, fmt.Errorf("count draft articles: %w", err)
	}
	if summary.Users, err = s.users.Count(ctx); err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if summary.Messages, err = s.messages.Count(ctx); err != nil {
		return nil, fmt.Errorf("count messages: %w", err)
	}
	if summary.UnreadMessages, err = s.messages.CountUnread(ctx); err != nil {
		return nil, fmt.Errorf("count unread messages: %w", err)
	}
	if summary.TopArticles, err = s.articles.TopViewed(ctx, 5); err != nil {
		return nil, fmt.Errorf("top viewed articles: %w", err)
	}

	if payload, err := json.Marshal(summary); err == nil {
		_ = s.cache.Set(ctx, summaryCacheKey, payload, summaryCacheTTL)
	}
	return summary, nil
}
