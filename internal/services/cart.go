package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/anuraag-firstaid/storefront/internal/models"
	repository "github.com/anuraag-firstaid/storefront/internal/repositories"
)

// CartService owns the in-memory session carts and keeps each authenticated
// session's cart synchronized with its durable per-identity record.
//
// A session starts anonymous: its cart lives only in memory and disappears
// with the session. When an identity attaches, the saved record (if any)
// replaces the in-memory cart wholesale; whatever the guest accumulated
// before signing in is discarded, not merged. While an identity is attached,
// every mutation that leaves the cart non-empty is flushed to the record.
// Flushes are fire-and-forget: storage failures are logged and never surface
// to the caller, and concurrent sessions for the same identity simply
// overwrite each other (last write wins).
type CartService struct {
	carts repository.CartRepository

	mu       sync.Mutex
	sessions map[string]*cartSession
}

type cartSession struct {
	state  models.CartState
	userID string
}

func NewCartService(carts repository.CartRepository) *CartService {
	return &CartService{
		carts:    carts,
		sessions: make(map[string]*cartSession),
	}
}

// session returns the cart slot for sessionID, creating an empty anonymous
// one on first use. Callers must hold s.mu.
func (s *CartService) session(sessionID string) *cartSession {
	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &cartSession{state: models.EmptyCart()}
		s.sessions[sessionID] = sess
	}

	return sess
}

// flush writes the session's cart to its identity's durable record. Nothing
// is written for anonymous sessions or when the cart is empty.
func (s *CartService) flush(ctx context.Context, sess *cartSession) {
	if sess.userID == "" || len(sess.state.Items) == 0 {
		return
	}

	if err := s.carts.Save(ctx, sess.userID, sess.state); err != nil {
		slog.Error("Failed to save cart snapshot",
			slog.String("userId", sess.userID),
			slog.String("error", err.Error()),
		)
	}
}

// GetCart returns the session's current cart state.
func (s *CartService) GetCart(ctx context.Context, sessionID string) models.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.session(sessionID).state
}

// AddItem adds one unit of the candidate to the session's cart and returns
// the new state. It always succeeds; stock gating is the caller's concern.
func (s *CartService) AddItem(ctx context.Context, sessionID string, candidate models.CartLineItem) models.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(sessionID)
	sess.state = sess.state.AddItem(candidate)
	s.flush(ctx, sess)

	return sess.state
}

// RemoveItem deletes the line item matching id; a missing id is a no-op.
func (s *CartService) RemoveItem(ctx context.Context, sessionID, itemID string) models.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(sessionID)
	sess.state = sess.state.RemoveItem(itemID)
	s.flush(ctx, sess)

	return sess.state
}

// UpdateQuantity clamps quantity at zero; zero removes the item entirely.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) models.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(sessionID)
	sess.state = sess.state.UpdateQuantity(itemID, quantity)
	s.flush(ctx, sess)

	return sess.state
}

// ClearCart empties the session's cart without touching the durable record,
// so a later Attach for the same identity can still restore it.
func (s *CartService) ClearCart(ctx context.Context, sessionID string) models.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(sessionID)
	sess.state = models.EmptyCart()

	return sess.state
}

// ClearCartCompletely empties the session's cart and erases the identity's
// durable record. Irreversible.
func (s *CartService) ClearCartCompletely(ctx context.Context, sessionID string) models.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(sessionID)
	sess.state = models.EmptyCart()

	if sess.userID != "" {
		if err := s.carts.Delete(ctx, sess.userID); err != nil {
			slog.Error("Failed to delete cart record",
				slog.String("userId", sess.userID),
				slog.String("error", err.Error()),
			)
		}
	}

	return sess.state
}

// Attach binds an identity to the session (sign-in). If the identity has a
// saved cart it replaces the in-memory cart wholesale; otherwise the current
// cart is left as-is. Read failures are treated as "no saved cart".
func (s *CartService) Attach(ctx context.Context, sessionID, userID string) models.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(sessionID)
	sess.userID = userID

	saved, err := s.carts.Load(ctx, userID)
	if err != nil {
		slog.Error("Failed to load cart snapshot",
			slog.String("userId", userID),
			slog.String("error", err.Error()),
		)

		return sess.state
	}

	if saved != nil {
		sess.state = *saved
	}

	return sess.state
}

// Detach unbinds the identity (sign-out) and empties the session's cart. The
// durable record is left untouched for the next sign-in.
func (s *CartService) Detach(ctx context.Context, sessionID string) models.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(sessionID)
	sess.userID = ""
	sess.state = models.EmptyCart()

	return sess.state
}

// LoadCart replaces the session's cart state wholesale and flushes it.
func (s *CartService) LoadCart(ctx context.Context, sessionID string, state models.CartState) models.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(sessionID)
	sess.state = state
	s.flush(ctx, sess)

	return sess.state
}
