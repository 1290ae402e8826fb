package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"pos_terminal/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	dashboardPinKey = "app_dashboard_pin"

	maxPinAttempts = 5
	pinLockout     = 30 * time.Second
)

// PinService guards the dashboard with an optional 4-digit PIN.
type PinService interface {
	IsSet(ctx context.Context) (bool, error)
	// Set stores a new PIN. When one is already set, current must match it.
	Set(ctx context.Context, pin, current string) error
	Verify(ctx context.Context, pin string) error
	Remove(ctx context.Context, current string) error
}

type pinService struct {
	settingRepo repository.SettingRepository
	logger      *zap.Logger
	now         func() time.Time

	mu          sync.Mutex
	failures    int
	lockedUntil time.Time
}

func NewPinService(settingRepo repository.SettingRepository, logger *zap.Logger) PinService {
	return &pinService{settingRepo: settingRepo, logger: logger, now: time.Now}
}

func validPin(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (s *pinService) hash(ctx context.Context) (string, error) {
	hash, err := s.settingRepo.Get(ctx, dashboardPinKey)
	if errors.Is(err, repository.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read dashboard pin: %w", err)
	}
	return hash, nil
}

func (s *pinService) IsSet(ctx context.Context) (bool, error) {
	hash, err := s.hash(ctx)
	return hash != "", err
}

func (s *pinService) Set(ctx context.Context, pin, current string) error {
	if !validPin(pin) {
		return ErrInvalidPin
	}
	if err := s.Verify(ctx, current); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash pin: %w", err)
	}
	if err := s.settingRepo.Set(ctx, dashboardPinKey, string(hash)); err != nil {
		return fmt.Errorf("failed to store dashboard pin: %w", err)
	}

	s.logger.Info("dashboard pin set")
	return nil
}

// Verify succeeds for any input while no PIN is set. After maxPinAttempts
// wrong PINs in a row every attempt fails with ErrPinLocked for pinLockout.
func (s *pinService) Verify(ctx context.Context, pin string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.now().Before(s.lockedUntil) {
		return ErrPinLocked
	}

	hash, err := s.hash(ctx)
	if err != nil || hash == "" {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)) != nil {
		s.failures++
		if s.failures >= maxPinAttempts {
			s.failures = 0
			s.lockedUntil = s.now().Add(pinLockout)
			s.logger.Warn("dashboard pin locked after repeated failures", zap.Duration("lockout", pinLockout))
		}
		return ErrIncorrectPin
	}

	s.failures = 0
	return nil
}

func (s *pinService) Remove(ctx context.Context, current string) error {
	if err := s.Verify(ctx, current); err != nil {
		return err
	}
	if err := s.settingRepo.Remove(ctx, dashboardPinKey); err != nil {
		return fmt.Errorf("failed to remove dashboard pin: %w", err)
	}

	s.logger.Info("dashboard pin removed")
	return nil
}
