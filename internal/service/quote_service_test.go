package service

import (
	"context"
	"mindmate_backend/internal/model"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type fakeQuoteStore struct {
	quotes map[uint]*model.Quote
	nextID uint
}

func newFakeQuoteStore(texts ...string) *fakeQuoteStore {
	s := &fakeQuoteStore{quotes: make(map[uint]*model.Quote), nextID: 1}
	for _, text := range texts {
		s.Create(&model.Quote{Text: text, IsEnabled: true})
	}
	return s
}

func (s *fakeQuoteStore) Create(quote *model.Quote) error {
	quote.ID = s.nextID
	s.nextID++
	if quote.LastUsedAt.IsZero() {
		quote.LastUsedAt = time.Now()
	}
	s.quotes[quote.ID] = quote
	return nil
}

func (s *fakeQuoteStore) FindByID(id uint) (*model.Quote, error) {
	quote, ok := s.quotes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return quote, nil
}

func (s *fakeQuoteStore) FindAll() ([]model.Quote, error) {
	out := make([]model.Quote, 0, len(s.quotes))
	for _, q := range s.quotes {
		out = append(out, *q)
	}
	return out, nil
}

func (s *fakeQuoteStore) FindEnabled() ([]model.Quote, error) {
	var out []model.Quote
	for id := uint(1); id < s.nextID; id++ {
		if q, ok := s.quotes[id]; ok && q.IsEnabled {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (s *fakeQuoteStore) FindCurrent() (*model.Quote, error) {
	for _, q := range s.quotes {
		if q.IsCurrentlyUsed {
			return q, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeQuoteStore) SetCurrent(id uint) error {
	if _, ok := s.quotes[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	for _, q := range s.quotes {
		q.IsCurrentlyUsed = false
	}
	s.quotes[id].IsCurrentlyUsed = true
	s.quotes[id].LastUsedAt = time.Now()
	return nil
}

func (s *fakeQuoteStore) Update(quote *model.Quote) error {
	if _, ok := s.quotes[quote.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	s.quotes[quote.ID] = quote
	return nil
}

func (s *fakeQuoteStore) Delete(id uint) error {
	if _, ok := s.quotes[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.quotes, id)
	return nil
}

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestGetDailyQuotePinsSelectionForTheDay(t *testing.T) {
	store := newFakeQuoteStore("first", "second", "third")
	svc := NewQuoteService(store, newTestRedis(t))
	ctx := context.Background()

	first, err := svc.GetDailyQuote(ctx)
	if err != nil {
		t.Fatalf("GetDailyQuote: %v", err)
	}

	for i := 0; i < 5; i++ {
		again, err := svc.GetDailyQuote(ctx)
		if err != nil {
			t.Fatalf("GetDailyQuote (repeat): %v", err)
		}
		if again.ID != first.ID {
			t.Fatalf("daily quote changed within the day: %d then %d", first.ID, again.ID)
		}
	}
}

func TestGetDailyQuoteWithoutRedis(t *testing.T) {
	store := newFakeQuoteStore("only one")
	svc := NewQuoteService(store, nil)

	quote, err := svc.GetDailyQuote(context.Background())
	if err != nil {
		t.Fatalf("GetDailyQuote: %v", err)
	}
	if quote.Text != "only one" {
		t.Errorf("quote = %q", quote.Text)
	}

	current, err := store.FindCurrent()
	if err != nil {
		t.Fatalf("no current quote recorded: %v", err)
	}
	if current.ID != quote.ID {
		t.Errorf("current quote %d, served %d", current.ID, quote.ID)
	}
}

func TestRotateCurrentSwapsStaleQuote(t *testing.T) {
	store := newFakeQuoteStore("stale", "fresh")
	store.SetCurrent(1)
	store.quotes[1].LastUsedAt = time.Now().Add(-48 * time.Hour)

	svc := NewQuoteService(store, nil)
	quote, err := svc.rotateCurrent()
	if err != nil {
		t.Fatalf("rotateCurrent: %v", err)
	}
	if quote.ID != 2 {
		t.Errorf("rotated to quote %d, want 2", quote.ID)
	}
}

func TestRotateCurrentKeepsFreshQuote(t *testing.T) {
	store := newFakeQuoteStore("current", "other")
	store.SetCurrent(1)

	svc := NewQuoteService(store, nil)
	quote, err := svc.rotateCurrent()
	if err != nil {
		t.Fatalf("rotateCurrent: %v", err)
	}
	if quote.ID != 1 {
		t.Errorf("fresh quote was swapped out, got %d", quote.ID)
	}
}

func TestUpdateQuoteCanDisable(t *testing.T) {
	store := newFakeQuoteStore("toggle me")
	svc := NewQuoteService(store, nil)

	quote, err := svc.UpdateQuote(1, "toggle me", "Anon", false)
	if err != nil {
		t.Fatalf("UpdateQuote: %v", err)
	}
	if quote.IsEnabled {
		t.Error("quote should be disabled")
	}

	enabled, _ := store.FindEnabled()
	if len(enabled) != 0 {
		t.Errorf("enabled set = %v, want empty", enabled)
	}
}
