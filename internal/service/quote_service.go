package service

import (
	"context"
	"errors"
	"math/rand"
	"mindmate_backend/internal/model"
	"mindmate_backend/internal/util"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const quotePinKeyPrefix = "mindmate:quote:day:"

// QuoteStore is the persistence surface the daily rotation needs. The gorm
// repository satisfies it; tests inject an in-memory double.
type QuoteStore interface {
	Create(quote *model.Quote) error
	FindByID(id uint) (*model.Quote, error)
	FindAll() ([]model.Quote, error)
	FindEnabled() ([]model.Quote, error)
	FindCurrent() (*model.Quote, error)
	SetCurrent(id uint) error
	Update(quote *model.Quote) error
	Delete(id uint) error
}

type QuoteService struct {
	QuoteRepo QuoteStore
	Redis     *redis.Client
}

func NewQuoteService(quoteRepo QuoteStore, rdb *redis.Client) *QuoteService {
	return &QuoteService{QuoteRepo: quoteRepo, Redis: rdb}
}

// GetDailyQuote returns the quote of the day. The selection is pinned in
// redis per calendar day so every request sees the same quote; without redis
// it falls back to the rotation state in the database.
func (s *QuoteService) GetDailyQuote(ctx context.Context) (*model.Quote, error) {
	key := quotePinKeyPrefix + time.Now().Format("2006-01-02")

	if s.Redis != nil {
		if idStr, err := s.Redis.Get(ctx, key).Result(); err == nil {
			if id, convErr := strconv.ParseUint(idStr, 10, 32); convErr == nil {
				if quote, findErr := s.QuoteRepo.FindByID(uint(id)); findErr == nil {
					return quote, nil
				}
			}
		}
	}

	quote, err := s.rotateCurrent()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		s.Redis.Set(ctx, key, strconv.FormatUint(uint64(quote.ID), 10), 48*time.Hour)
	}

	return quote, nil
}

// rotateCurrent keeps the quote-of-the-day bookkeeping in the quotes table:
// the current quote is swapped for another enabled one after 24 hours.
func (s *QuoteService) rotateCurrent() (*model.Quote, error) {
	current, err := s.QuoteRepo.FindCurrent()
	if err != nil {
		enabled, listErr := s.QuoteRepo.FindEnabled()
		if listErr != nil || len(enabled) == 0 {
			if listErr != nil {
				return nil, listErr
			}
			return nil, gorm.ErrRecordNotFound
		}
		if err := s.QuoteRepo.SetCurrent(enabled[0].ID); err != nil {
			return nil, err
		}
		return &enabled[0], nil
	}

	enabled, err := s.QuoteRepo.FindEnabled()
	if err == nil && len(enabled) > 1 && time.Since(current.LastUsedAt).Hours() >= 24 {
		var candidates []model.Quote
		for _, q := range enabled {
			if q.ID != current.ID {
				candidates = append(candidates, q)
			}
		}
		if len(candidates) > 0 {
			next := candidates[rand.Intn(len(candidates))]
			if err := s.QuoteRepo.SetCurrent(next.ID); err != nil {
				return nil, err
			}
			return &next, nil
		}
	}

	return current, nil
}

func (s *QuoteService) ListQuotes() ([]model.Quote, error) {
	return s.QuoteRepo.FindAll()
}

func (s *QuoteService) CreateQuote(text, author string) (*model.Quote, error) {
	quote := &model.Quote{
		Text:      text,
		Author:    author,
		IsEnabled: true,
	}
	if err := s.QuoteRepo.Create(quote); err != nil {
		return nil, err
	}
	return quote, nil
}

func (s *QuoteService) UpdateQuote(id uint, text, author string, enabled bool) (*model.Quote, error) {
	quote, err := s.QuoteRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}

	quote.Text = text
	quote.Author = author
	quote.IsEnabled = enabled
	if err := s.QuoteRepo.Update(quote); err != nil {
		return nil, err
	}
	return quote, nil
}

func (s *QuoteService) DeleteQuote(id uint) error {
	err := s.QuoteRepo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrEntryNotFound
	}
	return err
}
