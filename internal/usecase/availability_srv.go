package usecase

import (
	"context"
	"fmt"
	"time"

	"restaurant-booking/internal/data/repository"
	"restaurant-booking/internal/dto/request"
	"restaurant-booking/internal/dto/response"

	"go.uber.org/zap"
)

// AvailabilityService answers table availability queries for the booking UI.
// Implementations must not fail on odd input: an empty or unknown slot books
// nothing and a non-positive party fits everywhere.
type AvailabilityService interface {
	CheckAvailability(ctx context.Context, req *request.AvailabilityRequest) (*response.AvailabilityResponse, error)
}

type availabilityService struct {
	repo  *repository.Repository
	delay time.Duration
	log   *zap.Logger
}

// NewAvailabilityService checks against repo.Floor and repo.Reservation. A
// positive delay is waited out before every query and aborts early when the
// context is cancelled.
func NewAvailabilityService(repo *repository.Repository, delay time.Duration, log *zap.Logger) AvailabilityService {
	return &availabilityService{
		repo:  repo,
		delay: delay,
		log:   log.With(zap.String("service", "availability")),
	}
}

func (s *availabilityService) CheckAvailability(ctx context.Context, req *request.AvailabilityRequest) (*response.AvailabilityResponse, error) {
	if req == nil {
		req = &request.AvailabilityRequest{}
	}

	if err := s.wait(ctx); err != nil {
		return nil, fmt.Errorf("check availability: %w", err)
	}

	booked, err := s.bookedTables(ctx, req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	undersized, err := s.undersizedTables(ctx, req.Guests)
	if err != nil {
		return nil, err
	}

	s.log.Debug("Availability checked",
		zap.String("date", req.Date),
		zap.String("time", req.Time),
		zap.Int("guests", req.Guests),
		zap.Int("booked", len(booked)),
		zap.Int("undersized", len(undersized)),
	)

	return &response.AvailabilityResponse{
		BookedTables:         booked,
		NotEnoughSpaceTables: undersized,
	}, nil
}

func (s *availabilityService) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *availabilityService) bookedTables(ctx context.Context, date, hour string) ([]string, error) {
	booked := []string{}
	if date == "" || hour == "" {
		return booked, nil
	}

	reservations, err := s.repo.Reservation.FindBySlot(ctx, date, hour)
	if err != nil {
		s.log.Error("Failed to get reservations for slot",
			zap.Error(err),
			zap.String("date", date),
			zap.String("time", hour),
		)
		return nil, fmt.Errorf("get reservations for slot: %w", err)
	}

	for _, res := range reservations {
		booked = append(booked, res.TableID)
	}

	return booked, nil
}

func (s *availabilityService) undersizedTables(ctx context.Context, guests int) ([]string, error) {
	undersized := []string{}
	if guests <= 0 {
		return undersized, nil
	}

	floors, err := s.repo.Floor.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get floor layouts", zap.Error(err))
		return nil, fmt.Errorf("get floor layouts: %w", err)
	}

	for _, floor := range floors {
		for _, table := range floor.Tables {
			if !table.Fits(guests) {
				undersized = append(undersized, table.ID)
			}
		}
	}

	return undersized, nil
}
