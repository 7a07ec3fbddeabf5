package app

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/dwikikusuma/naija-assistant/internal/cart/domain"
)

type Service struct {
	repo   CartRepo
	events EventPublisher
	log    *slog.Logger
	now    func() time.Time
}

type Option func(*Service)

func WithPublisher(p EventPublisher) Option {
	return func(s *Service) {
		if p != nil {
			s.events = p
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func NewService(repo CartRepo, opts ...Option) *Service {
	s := &Service{
		repo:   repo,
		events: NopPublisher{},
		log:    slog.Default(),
		now:    time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Service) GetCart(ctx context.Context, userID string) ([]domain.CartItem, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domain.ErrInvalidUser
	}
	return s.repo.Get(ctx, userID)
}

func (s *Service) AddItem(ctx context.Context, userID string, item domain.CartItem) ([]domain.CartItem, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domain.ErrInvalidUser
	}
	if item.Quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}
	if item.Merchant == "" {
		item.Merchant = domain.DefaultMerchant
	}

	items, err := s.repo.AddItem(ctx, userID, item)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, domain.Event{Type: domain.EventItemAdded, UserID: userID, ProductID: item.ProductID, Quantity: item.Quantity})
	return items, nil
}

func (s *Service) RemoveItem(ctx context.Context, userID string, productID int64) ([]domain.CartItem, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domain.ErrInvalidUser
	}
	items, err := s.repo.RemoveItem(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, domain.Event{Type: domain.EventItemRemoved, UserID: userID, ProductID: productID})
	return items, nil
}

func (s *Service) SetItemQuantity(ctx context.Context, userID string, productID int64, quantity int32) ([]domain.CartItem, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domain.ErrInvalidUser
	}
	items, err := s.repo.SetItemQuantity(ctx, userID, productID, quantity)
	if err != nil {
		return nil, err
	}

	evt := domain.Event{Type: domain.EventQuantityUpdated, UserID: userID, ProductID: productID, Quantity: quantity}
	if quantity <= 0 {
		evt = domain.Event{Type: domain.EventItemRemoved, UserID: userID, ProductID: productID}
	}
	s.publish(ctx, evt)
	return items, nil
}

func (s *Service) ClearCart(ctx context.Context, userID string) ([]domain.CartItem, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domain.ErrInvalidUser
	}
	if err := s.repo.Clear(ctx, userID); err != nil {
		return nil, err
	}
	s.publish(ctx, domain.Event{Type: domain.EventCleared, UserID: userID})
	return []domain.CartItem{}, nil
}

// publish never fails the mutation that triggered it.
func (s *Service) publish(ctx context.Context, evt domain.Event) {
	evt.At = s.now().UTC()
	if err := s.events.Publish(ctx, evt); err != nil {
		s.log.Warn("cart event publish failed",
			slog.String("type", string(evt.Type)),
			slog.String("user_id", evt.UserID),
			slog.Any("err", err),
		)
	}
}
