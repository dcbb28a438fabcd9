package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-employee-registry/internal/logger"
	"github.com/MKhiriev/go-employee-registry/internal/store"
	"github.com/MKhiriev/go-employee-registry/internal/utils"
	"github.com/MKhiriev/go-employee-registry/models"
)

type userService struct {
	userRepository store.UserRepository
	ids            *utils.UUIDGenerator
	now            func() time.Time

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		ids:            utils.NewUUIDGenerator(),
		now:            time.Now,
		logger:         logger,
	}
}

// Create stores user as sent. Missing id and timestamps are filled in.
func (s *userService) Create(ctx context.Context, user models.User) (models.User, error) {
	if user.ID == "" {
		user.ID = s.ids.GenerateWithPrefix(userIDPrefix)
	}
	now := s.now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = now
	}
	return s.userRepository.Create(ctx, user)
}

func (s *userService) List(ctx context.Context, email string) ([]models.User, error) {
	return s.userRepository.List(ctx, store.UserFilter{Email: email})
}

func (s *userService) Patch(ctx context.Context, id string, patch models.UserPatch) (models.User, error) {
	if patch.UpdatedAt == nil {
		now := s.now().UTC()
		patch.UpdatedAt = &now
	}
	return s.userRepository.Patch(ctx, id, patch)
}
