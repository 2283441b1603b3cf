package service

import (
	"context"
	"math"
	"time"

	"bookquiz-be/internal/constant"
	"bookquiz-be/internal/dto"
	"bookquiz-be/internal/entity"
	"bookquiz-be/internal/pkg/serverutils"
	"bookquiz-be/internal/repository/specification"
	"bookquiz-be/internal/repository/unitofwork"
	"bookquiz-be/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IProgressService interface {
	Submit(ctx context.Context, userId, bookId uuid.UUID, req *dto.SubmitProgressRequest) (*dto.SubmitProgressResponse, error)
	ListForUser(ctx context.Context, userId uuid.UUID) ([]dto.ProgressResponse, error)
}

type progressService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewProgressService(uowFactory unitofwork.RepositoryFactory) IProgressService {
	return &progressService{uowFactory: uowFactory}
}

func (s *progressService) Submit(ctx context.Context, userId, bookId uuid.UUID, req *dto.SubmitProgressRequest) (*dto.SubmitProgressResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	book, err := uow.BookRepository().FindOne(ctx, specification.ByID{ID: bookId}, specification.Published{})
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, constant.ErrCodeBookNotFound, "Book not found", nil)
	}

	accuracy := float64(req.CorrectCount) / float64(req.TotalCount)
	accuracy = math.Round(accuracy*100) / 100
	now := time.Now()

	progress, err := uow.UserProgressRepository().FindOne(ctx,
		specification.ByUserID{UserID: userId},
		specification.ByBookID{BookID: bookId},
	)
	if err != nil {
		return nil, err
	}

	if progress == nil {
		progress = &entity.UserProgress{
			Id:              uuid.New(),
			UserId:          userId,
			BookId:          bookId,
			LastAttemptedAt: &now,
			HighestAccuracy: accuracy,
			TotalAttempts:   1,
			CreatedAt:       now,
		}
		if err := uow.UserProgressRepository().Create(ctx, progress); err != nil {
			return nil, err
		}
	} else {
		progress.LastAttemptedAt = &now
		// Best accuracy only moves up.
		if accuracy > progress.HighestAccuracy {
			progress.HighestAccuracy = accuracy
		}
		progress.TotalAttempts++
		progress.UpdatedAt = &now
		if err := uow.UserProgressRepository().Update(ctx, progress); err != nil {
			return nil, err
		}
	}

	return &dto.SubmitProgressResponse{
		BookId:          bookId,
		Accuracy:        accuracy,
		HighestAccuracy: progress.HighestAccuracy,
		TotalAttempts:   progress.TotalAttempts,
		CorruptionLevel: utils.CalculateCorruptionLevel(progress.LastAttemptedAt, time.Now()),
	}, nil
}

func (s *progressService) ListForUser(ctx context.Context, userId uuid.UUID) ([]dto.ProgressResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	rows, err := uow.UserProgressRepository().FindAll(ctx, specification.ByUserID{UserID: userId})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	responses := make([]dto.ProgressResponse, 0, len(rows))
	for _, p := range rows {
		responses = append(responses, dto.ProgressResponse{
			BookId:          p.BookId,
			HighestAccuracy: p.HighestAccuracy,
			TotalAttempts:   p.TotalAttempts,
			LastAttemptedAt: p.LastAttemptedAt,
			CorruptionLevel: utils.CalculateCorruptionLevel(p.LastAttemptedAt, now),
		})
	}
	return responses, nil
}
