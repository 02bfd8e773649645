// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package hangout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/youpick/backend/models"
)

// CreateUser stores a user document, or returns the existing one when
// the identifier is already registered (signup retries are idempotent).
func (s *Service) CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	if req.AuthID == "" || req.Email == "" {
		return nil, fmt.Errorf("%w: auth_id and email are required", models.ErrValidation)
	}

	existing, err := s.store.FindUserByAuthID(ctx, req.AuthID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, models.ErrUserNotFound) {
		return nil, err
	}

	u := &models.User{
		AuthID:     req.AuthID,
		Name:       req.Name,
		Email:      req.Email,
		HangoutIDs: []primitive.ObjectID{},
		CreatedAt:  time.Now(),
	}
	id, err := s.store.InsertUser(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	u.ID = id

	slog.Info("user created", "auth_id", req.AuthID)
	return u, nil
}

// GetUser returns the user document for the identifier.
func (s *Service) GetUser(ctx context.Context, authID string) (*models.User, error) {
	return s.store.FindUserByAuthID(ctx, authID)
}

// UpdateUser applies only the provided fields to the user document.
func (s *Service) UpdateUser(ctx context.Context, authID string, req models.UpdateUserRequest) error {
	fields := map[string]any{"updatedAt": time.Now()}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	return s.store.UpdateUserFields(ctx, authID, fields)
}

// ListUserHangouts returns the user's hangouts split by vote status.
func (s *Service) ListUserHangouts(ctx context.Context, email string) (*models.UserHangoutsResponse, error) {
	u, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	resp := &models.UserHangoutsResponse{
		Email:     email,
		Pending:   []models.Hangout{},
		Finalized: []models.Hangout{},
	}
	if len(u.HangoutIDs) == 0 {
		return resp, nil
	}

	hangouts, err := s.store.FindHangoutsByIDs(ctx, u.HangoutIDs)
	if err != nil {
		return nil, fmt.Errorf("find user hangouts: %w", err)
	}

	for _, h := range hangouts {
		switch h.VoteStatus {
		case models.StatusFinalized:
			resp.Finalized = append(resp.Finalized, h)
		default:
			resp.Pending = append(resp.Pending, h)
		}
	}
	resp.PendingCount = len(resp.Pending)
	resp.FinalizedCount = len(resp.Finalized)
	return resp, nil
}
