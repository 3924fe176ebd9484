package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-recipe-catalog/internal/config"
	"github.com/MKhiriev/go-recipe-catalog/internal/logger"
	"github.com/MKhiriev/go-recipe-catalog/internal/store"
	"github.com/MKhiriev/go-recipe-catalog/internal/utils"
	"github.com/MKhiriev/go-recipe-catalog/internal/validators"
	"github.com/MKhiriev/go-recipe-catalog/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	msgEmailTaken      = "user with this email already exists."
	msgPasswordTooLong = "Ensure this field has no more than 72 bytes."
)

// userService is the concrete implementation of UserService.
// Passwords are hashed with bcrypt before they reach the repository.
type userService struct {
	userRepository store.UserRepository

	// bcryptCost is the work factor used for new password hashes.
	bcryptCost int

	logger *logger.Logger
}

// NewUserService constructs a UserService over userRepository.
func NewUserService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// CreateUser registers an active, unprivileged user.
func (s *userService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	user.IsActive = true
	return s.createUser(ctx, user)
}

// CreateSuperuser registers an active user with staff and superuser flags.
func (s *userService) CreateSuperuser(ctx context.Context, user models.User) (models.User, error) {
	user.IsActive = true
	user.IsStaff = true
	user.IsSuperuser = true
	return s.createUser(ctx, user)
}

func (s *userService) createUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(user.Email) == "" {
		return models.User{}, validators.NewValidationError(validators.FieldEmail, "This field is required.")
	}
	user.Email = utils.NormalizeEmail(user.Email)

	hash, err := utils.HashPassword(user.Password, s.bcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return models.User{}, validators.NewValidationError(validators.FieldPassword, msgPasswordTooLong)
	}
	if err != nil {
		log.Err(err).Str("func", "userService.createUser").Msg("error hashing password")
		return models.User{}, err
	}
	user.Password = hash

	created, err := s.userRepository.CreateUser(ctx, user)
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return models.User{}, validators.NewValidationError(validators.FieldEmail, msgEmailTaken)
	}
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

// Authenticate checks an email and password pair.
func (s *userService) Authenticate(ctx context.Context, email, password string) (models.User, bool, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.GetUserByEmail(ctx, utils.NormalizeEmail(email))
	if errors.Is(err, store.ErrNotFound) {
		return models.User{}, false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "userService.Authenticate").Msg("user search by email failed")
		return models.User{}, false, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(user.Password, password) {
		log.Debug().Int64("user_id", user.UserID).Msg("wrong password")
		return models.User{}, false, nil
	}

	if !user.IsActive {
		log.Debug().Int64("user_id", user.UserID).Msg("inactive user tried to authenticate")
		return models.User{}, false, nil
	}

	return user, true, nil
}

func (s *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("error getting user: %w", err)
	}

	return user, nil
}

// UpdateProfile applies a partial update. A new email is normalized and a
// new password is hashed before storing.
func (s *userService) UpdateProfile(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if update.Email != nil {
		email := utils.NormalizeEmail(*update.Email)
		update.Email = &email
	}

	if update.Password != nil {
		hash, err := utils.HashPassword(*update.Password, s.bcryptCost)
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return models.User{}, validators.NewValidationError(validators.FieldPassword, msgPasswordTooLong)
		}
		if err != nil {
			log.Err(err).Str("func", "userService.UpdateProfile").Msg("error hashing password")
			return models.User{}, err
		}
		update.Password = &hash
	}

	user, err := s.userRepository.UpdateUser(ctx, userID, update)
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return models.User{}, validators.NewValidationError(validators.FieldEmail, msgEmailTaken)
	}
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("profile update ended with error")
		return models.User{}, fmt.Errorf("profile update ended with error: %w", err)
	}

	return user, nil
}
