package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/taxpro/office-api/internal/core/domain"
	"github.com/taxpro/office-api/internal/core/ports"
)

// UserService implements account management over the shared store.
type UserService struct {
	users    ports.UserRepository
	activity ports.ActivityRepository
	logger   zerolog.Logger
}

func NewUserService(users ports.UserRepository, activity ports.ActivityRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, activity: activity, logger: logger}
}

// Create registers a new account with store defaults: status active, zeroed
// totals, join date today. Name/email completeness is the caller's concern
// and duplicate emails are not rejected.
func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}

	user := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		Role:         role,
		Status:       domain.UserStatusActive,
		JoinDate:     today(),
		Phone:        in.Phone,
		Address:      in.Address,
		TotalReturns: 0,
		TotalPaid:    0,
	}

	created, err := s.users.Insert(ctx, user)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create user")
		return nil, err
	}

	appendActivity(ctx, s.activity, s.logger, in.Actor,
		domain.ActionUserCreated,
		fmt.Sprintf("Created new user: %s", in.Name),
		nil)

	s.logger.Info().Int("user_id", created.ID).Str("role", role).Msg("user created")
	return created, nil
}

// Update shallow-merges patch into the user record. Unknown ids return
// domain.ErrUserNotFound and leave both the collection and the audit trail
// untouched.
func (s *UserService) Update(ctx context.Context, actor ports.Actor, id int, patch ports.UserPatch) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Role != nil {
		user.Role = *patch.Role
	}
	if patch.Status != nil {
		user.Status = *patch.Status
	}
	if patch.Phone != nil {
		user.Phone = *patch.Phone
	}
	if patch.Address != nil {
		user.Address = *patch.Address
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	appendActivity(ctx, s.activity, s.logger, actor,
		domain.ActionUserUpdated,
		fmt.Sprintf("Updated user information for user #%d", id),
		nil)

	return user, nil
}

func (s *UserService) Get(ctx context.Context, id int) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}
