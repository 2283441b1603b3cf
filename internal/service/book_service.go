package service

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"bookquiz-be/internal/constant"
	"bookquiz-be/internal/dto"
	"bookquiz-be/internal/entity"
	"bookquiz-be/internal/pkg/serverutils"
	"bookquiz-be/internal/repository/specification"
	"bookquiz-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IBookService interface {
	List(ctx context.Context) ([]dto.BookResponse, error)
	GetQuestions(ctx context.Context, bookId uuid.UUID) (*dto.BookQuestionsResponse, error)
	Create(ctx context.Context, req *dto.CreateBookRequest) (*dto.CreateBookResponse, error)
}

type bookService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewBookService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService) IBookService {
	return &bookService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (s *bookService) List(ctx context.Context) ([]dto.BookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	books, err := uow.BookRepository().FindAll(ctx,
		specification.Published{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.BookResponse, 0, len(books))
	for _, book := range books {
		responses = append(responses, toBookResponse(book))
	}
	return responses, nil
}

func (s *bookService) GetQuestions(ctx context.Context, bookId uuid.UUID) (*dto.BookQuestionsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	book, err := uow.BookRepository().FindOne(ctx, specification.ByID{ID: bookId}, specification.Published{})
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, constant.ErrCodeBookNotFound, "Book not found", nil)
	}

	questions, err := uow.QuestionRepository().FindAll(ctx, specification.ByBookID{BookID: bookId})
	if err != nil {
		return nil, err
	}

	// Quizzes should not replay in insertion order.
	rand.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})

	questionResponses := make([]dto.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		questionResponses = append(questionResponses, dto.QuestionResponse{
			QuestionId:  q.Id,
			Statement:   q.Statement,
			ImageUrl:    q.ImageUrl,
			IsPure:      q.IsPure,
			Explanation: q.Explanation,
		})
	}

	return &dto.BookQuestionsResponse{
		Book: dto.BookSummary{
			BookId: book.Id,
			Title:  book.Title,
		},
		Questions:  questionResponses,
		TotalCount: len(questionResponses),
	}, nil
}

func (s *bookService) Create(ctx context.Context, req *dto.CreateBookRequest) (*dto.CreateBookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	book := &entity.Book{
		Id:            uuid.New(),
		Title:         req.Title,
		Author:        req.Author,
		Description:   req.Description,
		CoverImageUrl: req.CoverImageUrl,
		IsPublished:   req.IsPublished,
		CreatedAt:     time.Now(),
	}

	if err := uow.BookRepository().Create(ctx, book); err != nil {
		return nil, err
	}

	// Kick off question generation in the background for published books.
	// The request returns immediately; the run is tracked in generation_runs.
	if book.IsPublished {
		msgPayload := dto.GenerateQuestionsMessage{BookId: book.Id}
		msgJson, err := json.Marshal(msgPayload)
		if err != nil {
			return nil, err
		}
		if err := s.publisherService.Publish(ctx, msgJson); err != nil {
			return nil, err
		}
	}

	return &dto.CreateBookResponse{Id: book.Id}, nil
}

func toBookResponse(book *entity.Book) dto.BookResponse {
	return dto.BookResponse{
		BookId:        book.Id,
		Title:         book.Title,
		Author:        book.Author,
		Description:   book.Description,
		CoverImageUrl: book.CoverImageUrl,
		QuestionCount: book.QuestionCount,
		CreatedAt:     book.CreatedAt,
		UpdatedAt:     book.UpdatedAt,
	}
}
