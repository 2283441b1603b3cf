package service

import (
	"context"
	"fmt"
	"time"

	"bookquiz-be/internal/constant"
	"bookquiz-be/internal/dto"
	"bookquiz-be/internal/entity"
	"bookquiz-be/internal/pkg/serverutils"
	"bookquiz-be/internal/repository/specification"
	"bookquiz-be/internal/repository/unitofwork"
	"bookquiz-be/pkg/events"
	pktNats "bookquiz-be/pkg/nats"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	jwtSecret      string
	tokenExpiry    time.Duration
	eventPublisher *pktNats.Publisher
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, jwtSecret string, tokenExpiry time.Duration, eventPublisher *pktNats.Publisher) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		jwtSecret:      jwtSecret,
		tokenExpiry:    tokenExpiry,
		eventPublisher: eventPublisher,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, _ := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if existing != nil {
		return nil, serverutils.NewAppError(fiber.StatusConflict, constant.ErrCodeEmailTaken, "Email already registered", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		Nickname:     req.Nickname,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: "USER_REGISTERED",
			Data: map[string]interface{}{
				"user_id": user.Id,
				"email":   user.Email,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish USER_REGISTERED event: %v\n", err)
		}
	}

	return &dto.RegisterResponse{Id: user.Id, Email: user.Email}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil || user == nil {
		return nil, serverutils.NewAppError(fiber.StatusUnauthorized, constant.ErrCodeInvalidCredentials, "Invalid credentials", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, serverutils.NewAppError(fiber.StatusUnauthorized, constant.ErrCodeInvalidCredentials, "Invalid credentials", nil)
	}

	expiresAt := time.Now().Add(s.tokenExpiry)
	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"exp":     expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:     signedToken,
		Id:        user.Id,
		Email:     user.Email,
		Nickname:  user.Nickname,
		ExpiresAt: expiresAt,
	}, nil
}
