package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bookquiz-be/internal/constant"
	"bookquiz-be/internal/dto"
	"bookquiz-be/internal/entity"
	"bookquiz-be/internal/pkg/logger"
	"bookquiz-be/internal/pkg/serverutils"
	"bookquiz-be/internal/repository/specification"
	"bookquiz-be/internal/repository/unitofwork"
	"bookquiz-be/pkg/events"
	pktNats "bookquiz-be/pkg/nats"
	"bookquiz-be/pkg/quizgen"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IGenerationService interface {
	GenerateForBook(ctx context.Context, bookId uuid.UUID) (*dto.GenerateQuestionsResponse, error)
}

type generationService struct {
	uowFactory     unitofwork.RepositoryFactory
	themeGen       *quizgen.ThemeGenerator
	questionGen    *quizgen.QuestionGenerator
	angleAssigner  *quizgen.AngleAssigner
	log            logger.ILogger
	eventPublisher *pktNats.Publisher
}

func NewGenerationService(
	uowFactory unitofwork.RepositoryFactory,
	themeGen *quizgen.ThemeGenerator,
	questionGen *quizgen.QuestionGenerator,
	angleAssigner *quizgen.AngleAssigner,
	log logger.ILogger,
	eventPublisher *pktNats.Publisher,
) IGenerationService {
	return &generationService{
		uowFactory:     uowFactory,
		themeGen:       themeGen,
		questionGen:    questionGen,
		angleAssigner:  angleAssigner,
		log:            log,
		eventPublisher: eventPublisher,
	}
}

// GenerateForBook runs the whole pipeline for one book: themes first, then
// questions for those themes, then dedup and persistence. Stages commit as
// they go; a failure after theme insertion leaves the new themes in place,
// which is harmless because themes are append-only context for later runs.
func (s *generationService) GenerateForBook(ctx context.Context, bookId uuid.UUID) (*dto.GenerateQuestionsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	book, err := uow.BookRepository().FindOne(ctx, specification.ByID{ID: bookId}, specification.Published{})
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, constant.ErrCodeBookNotFound, "Book not found or not published", nil)
	}

	run := &entity.GenerationRun{
		Id:        uuid.New(),
		BookId:    bookId,
		Status:    entity.GenerationRunStatusRunning,
		CreatedAt: time.Now(),
	}
	if err := uow.GenerationRunRepository().Create(ctx, run); err != nil {
		s.log.Warn("generation", "Could not record generation run", map[string]interface{}{
			"book_id": bookId,
			"error":   err.Error(),
		})
	}

	resp, genErr := s.runPipeline(ctx, uow, book)
	s.finishRun(ctx, uow, run, resp, genErr)

	if genErr != nil {
		return nil, genErr
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: "QUESTIONS_GENERATED",
			Data: map[string]interface{}{
				"book_id":         bookId,
				"total_generated": resp.TotalGenerated,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish QUESTIONS_GENERATED event: %v\n", err)
		}
	}

	return resp, nil
}

func (s *generationService) runPipeline(ctx context.Context, uow unitofwork.UnitOfWork, book *entity.Book) (*dto.GenerateQuestionsResponse, error) {
	// Context for both AI stages: what is already in the bank.
	existingStatements, err := uow.QuestionRepository().ListStatements(ctx, book.Id)
	if err != nil {
		return nil, serverutils.NewAppError(fiber.StatusInternalServerError, constant.ErrCodeInternal, "Could not load existing questions", err)
	}

	existingThemeRows, err := uow.ThemeRepository().FindAll(ctx, specification.ByBookID{BookID: book.Id})
	if err != nil {
		return nil, serverutils.NewAppError(fiber.StatusInternalServerError, constant.ErrCodeInternal, "Could not load existing themes", err)
	}
	existingThemes := make([]string, 0, len(existingThemeRows))
	for _, t := range existingThemeRows {
		existingThemes = append(existingThemes, t.ThemeText)
	}

	// Stage 1: fresh themes.
	themes := s.themeGen.Generate(ctx, book.Title, book.Author, existingThemes)
	if len(themes) == 0 {
		return nil, serverutils.NewAppError(fiber.StatusBadGateway, constant.ErrCodeAIService, "Theme generation produced nothing", nil)
	}

	themeEntities := make([]*entity.Theme, 0, len(themes))
	for _, text := range themes {
		themeEntities = append(themeEntities, &entity.Theme{
			Id:        uuid.New(),
			BookId:    book.Id,
			ThemeText: text,
			CreatedAt: time.Now(),
		})
	}
	if err := uow.ThemeRepository().CreateBatch(ctx, themeEntities); err != nil {
		return nil, serverutils.NewAppError(fiber.StatusInternalServerError, constant.ErrCodeThemesInsert, "Could not save themes", err)
	}

	// Stage 2: questions under randomly assigned creative angles.
	themesWithAngles := s.angleAssigner.Assign(themes)
	results := s.questionGen.Generate(ctx, book.Title, book.Author, themesWithAngles)
	if len(results) == 0 {
		// Themes already committed; they remain valid context for a retry.
		return nil, serverutils.NewAppError(fiber.StatusBadGateway, constant.ErrCodeAIService, "Question generation produced nothing", nil)
	}

	deduped := quizgen.DeduplicateGrouped(results, existingStatements)

	themeIdByText := make(map[string]uuid.UUID, len(themeEntities))
	for _, t := range themeEntities {
		themeIdByText[t.ThemeText] = t.Id
	}

	var questionEntities []*entity.Question
	fallback := 0
	for _, group := range deduped {
		themeId, known := themeIdByText[group.Theme]
		if !known {
			// The model renamed the theme in its reply; round-robin over
			// the inserted ones rather than losing the linkage entirely.
			themeId = themeEntities[fallback%len(themeEntities)].Id
			fallback++
		}
		for _, q := range group.Questions {
			tid := themeId
			questionEntities = append(questionEntities, &entity.Question{
				Id:          uuid.New(),
				BookId:      book.Id,
				ThemeId:     &tid,
				Statement:   q.Statement,
				IsPure:      q.IsPure,
				Explanation: q.Explanation,
				CreatedAt:   time.Now(),
			})
		}
	}

	if len(questionEntities) > 0 {
		if err := uow.QuestionRepository().CreateBatch(ctx, questionEntities); err != nil {
			return nil, serverutils.NewAppError(fiber.StatusInternalServerError, constant.ErrCodeQuestionsInsert, "Could not save questions", err)
		}

		// Counter drift here is tolerable; the next successful run corrects it.
		if err := uow.BookRepository().IncrementQuestionCount(ctx, book.Id, len(questionEntities)); err != nil {
			s.log.Warn("generation", "Could not bump question count", map[string]interface{}{
				"book_id": book.Id,
				"error":   err.Error(),
			})
		}
	}

	questionIds := make([]string, 0, len(questionEntities))
	for _, q := range questionEntities {
		questionIds = append(questionIds, q.Id.String())
	}

	anglesAssigned := make([]string, 0, len(themesWithAngles)*2)
	for _, twa := range themesWithAngles {
		for _, a := range twa.AnglesToUse {
			anglesAssigned = append(anglesAssigned, string(a))
		}
	}

	return &dto.GenerateQuestionsResponse{
		BookId:           book.Id,
		BookTitle:        book.Title,
		QuestionIds:      questionIds,
		TotalGenerated:   len(questionEntities),
		NewQuestionCount: book.QuestionCount + len(questionEntities),
		ThemesUsed:       themes,
		ThemesInserted:   len(themeEntities),
		AnglesAssigned:   anglesAssigned,
	}, nil
}

// finishRun closes out the audit row. Best effort: a run row that cannot be
// updated never blocks the pipeline result.
func (s *generationService) finishRun(ctx context.Context, uow unitofwork.UnitOfWork, run *entity.GenerationRun, resp *dto.GenerateQuestionsResponse, genErr error) {
	now := time.Now()
	run.FinishedAt = &now

	if genErr != nil {
		run.Status = entity.GenerationRunStatusFailed
		code := constant.ErrCodeInternal
		var appErr *serverutils.AppError
		if errors.As(genErr, &appErr) {
			code = appErr.Code
		}
		run.ErrorCode = &code
	} else {
		run.Status = entity.GenerationRunStatusSuccess
		run.ThemesInserted = resp.ThemesInserted
		run.QuestionsInserted = resp.TotalGenerated
		if summary, err := json.Marshal(resp); err == nil {
			run.Result = summary
		}
	}

	if err := uow.GenerationRunRepository().Update(ctx, run); err != nil {
		s.log.Warn("generation", "Could not finalize generation run", map[string]interface{}{
			"run_id": run.Id,
			"error":  err.Error(),
		})
	}
}
