package usecase

import (
	"errors"

	"snapblog/internal/apperr"
	"snapblog/internal/entity"
	"snapblog/internal/repo/persistent"
	"snapblog/pkg/jwt"
	"snapblog/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthUseCase interface {
	Register(email, username, password string) error
	Login(email, password string) (*entity.User, string, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	logger     *logger.Logger
}

func NewAuthUseCase(userRepo persistent.UserRepository, jwtService *jwt.Service, logger *logger.Logger) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *authUseCase) Register(email, username, password string) error {
	_, err := uc.userRepo.GetByEmail(email)
	if err == nil {
		return apperr.New(apperr.KindConflict, "user already exist")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		uc.logger.Error("Failed to check email %s: %v", email, err)
		return apperr.Wrap(apperr.KindInternal, "failed to process registration", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return apperr.Wrap(apperr.KindInternal, "failed to process registration", err)
	}

	user := &entity.User{
		Email:    email,
		Username: username,
		Password: string(hashedPassword),
	}

	if err := uc.userRepo.Create(user); err != nil {
		// A concurrent registration can slip past the pre-check; the
		// unique index on email is the authority.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.New(apperr.KindConflict, "user already exist")
		}
		uc.logger.Error("Failed to create user: %v", err)
		return apperr.Wrap(apperr.KindInternal, "failed to create user", err)
	}

	return nil
}

func (uc *authUseCase) Login(email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, "", apperr.New(apperr.KindUnauthenticated, "invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", apperr.New(apperr.KindUnauthenticated, "invalid email or password")
	}

	token, err := uc.jwtService.GenerateToken(user.ID, user.IsAdmin)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", apperr.Wrap(apperr.KindInternal, "failed to generate token", err)
	}

	user.Password = ""
	return user, token, nil
}
