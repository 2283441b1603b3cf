package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"bookquiz-be/internal/constant"
	"bookquiz-be/internal/entity"
	"bookquiz-be/internal/pkg/serverutils"
	"bookquiz-be/internal/repository/contract"
	"bookquiz-be/internal/repository/specification"
	"bookquiz-be/internal/repository/unitofwork"
	"bookquiz-be/pkg/llm"
	"bookquiz-be/pkg/quizgen"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

// scriptedProvider replays one canned reply per Complete call.
type scriptedProvider struct {
	replies []string
	errs    []error
	call    int
}

func (p *scriptedProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return "", nil
}

func (p *scriptedProvider) Complete(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	i := p.call
	p.call++
	if i < len(p.errs) && p.errs[i] != nil {
		return "", p.errs[i]
	}
	if i < len(p.replies) {
		return p.replies[i], nil
	}
	return "", errors.New("no scripted reply")
}

type fakeBookRepo struct {
	book       *entity.Book
	increments []int
}

func (r *fakeBookRepo) Create(ctx context.Context, book *entity.Book) error { return nil }
func (r *fakeBookRepo) Update(ctx context.Context, book *entity.Book) error { return nil }
func (r *fakeBookRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Book, error) {
	return r.book, nil
}
func (r *fakeBookRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Book, error) {
	return nil, nil
}
func (r *fakeBookRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}
func (r *fakeBookRepo) IncrementQuestionCount(ctx context.Context, id uuid.UUID, delta int) error {
	r.increments = append(r.increments, delta)
	return nil
}

type fakeThemeRepo struct {
	existing  []*entity.Theme
	inserted  []*entity.Theme
	insertErr error
}

func (r *fakeThemeRepo) Create(ctx context.Context, theme *entity.Theme) error { return nil }
func (r *fakeThemeRepo) CreateBatch(ctx context.Context, themes []*entity.Theme) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, themes...)
	return nil
}
func (r *fakeThemeRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Theme, error) {
	return r.existing, nil
}
func (r *fakeThemeRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.existing)), nil
}

type fakeQuestionRepo struct {
	statements []string
	inserted   []*entity.Question
	insertErr  error
}

func (r *fakeQuestionRepo) CreateBatch(ctx context.Context, questions []*entity.Question) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, questions...)
	return nil
}
func (r *fakeQuestionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Question, error) {
	return nil, nil
}
func (r *fakeQuestionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}
func (r *fakeQuestionRepo) ListStatements(ctx context.Context, bookId uuid.UUID) ([]string, error) {
	return r.statements, nil
}

type fakeRunRepo struct {
	created []*entity.GenerationRun
	updated []*entity.GenerationRun
}

func (r *fakeRunRepo) Create(ctx context.Context, run *entity.GenerationRun) error {
	r.created = append(r.created, run)
	return nil
}
func (r *fakeRunRepo) Update(ctx context.Context, run *entity.GenerationRun) error {
	copied := *run
	r.updated = append(r.updated, &copied)
	return nil
}
func (r *fakeRunRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GenerationRun, error) {
	return nil, nil
}

type fakeUow struct {
	books     *fakeBookRepo
	themes    *fakeThemeRepo
	questions *fakeQuestionRepo
	runs      *fakeRunRepo
	progress  *fakeProgressRepo
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) UserRepository() contract.UserRepository                   { return nil }
func (u *fakeUow) BookRepository() contract.BookRepository                   { return u.books }
func (u *fakeUow) ThemeRepository() contract.ThemeRepository                 { return u.themes }
func (u *fakeUow) QuestionRepository() contract.QuestionRepository           { return u.questions }
func (u *fakeUow) UserProgressRepository() contract.UserProgressRepository   { return u.progress }
func (u *fakeUow) GenerationRunRepository() contract.GenerationRunRepository { return u.runs }

type fakeUowFactory struct {
	uow *fakeUow
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

func themesReply(themes ...string) string {
	payload, _ := json.Marshal(map[string]interface{}{"themes": themes})
	return string(payload)
}

func questionsReply(groups []quizgen.ThemeQuestions) string {
	payload, _ := json.Marshal(map[string]interface{}{"results": groups})
	return string(payload)
}

func newTestGenerationService(provider llm.CompletionProvider, uow *fakeUow) IGenerationService {
	return NewGenerationService(
		&fakeUowFactory{uow: uow},
		quizgen.NewThemeGenerator(provider, nopLogger{}),
		quizgen.NewQuestionGenerator(provider, nopLogger{}),
		quizgen.NewAngleAssigner(rand.New(rand.NewSource(7))),
		nopLogger{},
		nil,
	)
}

func publishedBook() *entity.Book {
	author := "James Clear"
	return &entity.Book{
		Id:            uuid.New(),
		Title:         "Atomic Habits",
		Author:        &author,
		IsPublished:   true,
		QuestionCount: 3,
	}
}

func TestGenerateForBookFullRun(t *testing.T) {
	themes := []string{"主题一", "主题二", "主题三", "主题四", "主题五"}

	var groups []quizgen.ThemeQuestions
	for i, theme := range themes {
		groups = append(groups, quizgen.ThemeQuestions{
			Theme: theme,
			Questions: []quizgen.GeneratedQuestion{
				{Statement: fmt.Sprintf("陈述%d-a", i), IsPure: true, Explanation: "解释"},
				{Statement: fmt.Sprintf("陈述%d-b", i), IsPure: false, Explanation: "解释"},
			},
		})
	}

	provider := &scriptedProvider{replies: []string{themesReply(themes...), questionsReply(groups)}}
	uow := &fakeUow{
		books:     &fakeBookRepo{book: publishedBook()},
		themes:    &fakeThemeRepo{},
		questions: &fakeQuestionRepo{},
		runs:      &fakeRunRepo{},
	}
	svc := newTestGenerationService(provider, uow)

	resp, err := svc.GenerateForBook(context.Background(), uow.books.book.Id)
	assert.NoError(t, err)

	assert.Len(t, uow.themes.inserted, 5)
	assert.Len(t, uow.questions.inserted, 10)
	assert.Equal(t, []int{10}, uow.books.increments)

	assert.Equal(t, 10, resp.TotalGenerated)
	assert.Equal(t, 13, resp.NewQuestionCount)
	assert.Equal(t, themes, resp.ThemesUsed)
	assert.Equal(t, 5, resp.ThemesInserted)
	assert.Len(t, resp.QuestionIds, 10)
	assert.Len(t, resp.AnglesAssigned, 10)

	// Every question must link back to the theme it was generated under.
	themeIdByText := map[string]uuid.UUID{}
	for _, th := range uow.themes.inserted {
		themeIdByText[th.ThemeText] = th.Id
	}
	for i, q := range uow.questions.inserted {
		wantTheme := themes[i/2]
		if assert.NotNil(t, q.ThemeId) {
			assert.Equal(t, themeIdByText[wantTheme], *q.ThemeId, "question %d", i)
		}
	}

	// Audit row closes out as success with the insert counts.
	if assert.Len(t, uow.runs.updated, 1) {
		final := uow.runs.updated[0]
		assert.Equal(t, entity.GenerationRunStatusSuccess, final.Status)
		assert.Equal(t, 5, final.ThemesInserted)
		assert.Equal(t, 10, final.QuestionsInserted)
		assert.NotNil(t, final.FinishedAt)
	}
}

func TestGenerateForBookSkipsDuplicates(t *testing.T) {
	themes := []string{"主题一", "主题二"}
	groups := []quizgen.ThemeQuestions{
		{
			Theme: "主题一",
			Questions: []quizgen.GeneratedQuestion{
				{Statement: "Already Known", IsPure: true},
				{Statement: "fresh a", IsPure: false},
			},
		},
		{
			Theme: "主题二",
			Questions: []quizgen.GeneratedQuestion{
				{Statement: "  already known  ", IsPure: true},
				{Statement: "fresh b", IsPure: true},
				{Statement: "fresh c", IsPure: false},
			},
		},
	}

	provider := &scriptedProvider{replies: []string{themesReply(themes...), questionsReply(groups)}}
	uow := &fakeUow{
		books:     &fakeBookRepo{book: publishedBook()},
		themes:    &fakeThemeRepo{},
		questions: &fakeQuestionRepo{statements: []string{"already known"}},
		runs:      &fakeRunRepo{},
	}
	svc := newTestGenerationService(provider, uow)

	resp, err := svc.GenerateForBook(context.Background(), uow.books.book.Id)
	assert.NoError(t, err)

	assert.Equal(t, 3, resp.TotalGenerated)
	assert.Len(t, uow.questions.inserted, 3)
	assert.Equal(t, []int{3}, uow.books.increments)
}

func TestGenerateForBookNotFound(t *testing.T) {
	provider := &scriptedProvider{}
	uow := &fakeUow{
		books:     &fakeBookRepo{book: nil},
		themes:    &fakeThemeRepo{},
		questions: &fakeQuestionRepo{},
		runs:      &fakeRunRepo{},
	}
	svc := newTestGenerationService(provider, uow)

	_, err := svc.GenerateForBook(context.Background(), uuid.New())

	var appErr *serverutils.AppError
	if assert.ErrorAs(t, err, &appErr) {
		assert.Equal(t, constant.ErrCodeBookNotFound, appErr.Code)
	}
	assert.Equal(t, 0, provider.call)
	assert.Empty(t, uow.runs.created)
}

func TestGenerateForBookThemeStageFails(t *testing.T) {
	provider := &scriptedProvider{errs: []error{errors.New("connection refused")}}
	uow := &fakeUow{
		books:     &fakeBookRepo{book: publishedBook()},
		themes:    &fakeThemeRepo{},
		questions: &fakeQuestionRepo{},
		runs:      &fakeRunRepo{},
	}
	svc := newTestGenerationService(provider, uow)

	_, err := svc.GenerateForBook(context.Background(), uow.books.book.Id)

	var appErr *serverutils.AppError
	if assert.ErrorAs(t, err, &appErr) {
		assert.Equal(t, constant.ErrCodeAIService, appErr.Code)
	}
	assert.Empty(t, uow.themes.inserted)
	assert.Empty(t, uow.questions.inserted)

	if assert.Len(t, uow.runs.updated, 1) {
		final := uow.runs.updated[0]
		assert.Equal(t, entity.GenerationRunStatusFailed, final.Status)
		if assert.NotNil(t, final.ErrorCode) {
			assert.Equal(t, constant.ErrCodeAIService, *final.ErrorCode)
		}
	}
}

func TestGenerateForBookQuestionStageFailsKeepsThemes(t *testing.T) {
	provider := &scriptedProvider{
		replies: []string{themesReply("主题一", "主题二"), "this is not json"},
	}
	uow := &fakeUow{
		books:     &fakeBookRepo{book: publishedBook()},
		themes:    &fakeThemeRepo{},
		questions: &fakeQuestionRepo{},
		runs:      &fakeRunRepo{},
	}
	svc := newTestGenerationService(provider, uow)

	_, err := svc.GenerateForBook(context.Background(), uow.books.book.Id)

	var appErr *serverutils.AppError
	if assert.ErrorAs(t, err, &appErr) {
		assert.Equal(t, constant.ErrCodeAIService, appErr.Code)
	}

	// Themes were committed before stage 2 and stay put.
	assert.Len(t, uow.themes.inserted, 2)
	assert.Empty(t, uow.questions.inserted)
	assert.Empty(t, uow.books.increments)
}

func TestGenerateForBookThemesInsertFails(t *testing.T) {
	provider := &scriptedProvider{replies: []string{themesReply("主题一")}}
	uow := &fakeUow{
		books:     &fakeBookRepo{book: publishedBook()},
		themes:    &fakeThemeRepo{insertErr: errors.New("db down")},
		questions: &fakeQuestionRepo{},
		runs:      &fakeRunRepo{},
	}
	svc := newTestGenerationService(provider, uow)

	_, err := svc.GenerateForBook(context.Background(), uow.books.book.Id)

	var appErr *serverutils.AppError
	if assert.ErrorAs(t, err, &appErr) {
		assert.Equal(t, constant.ErrCodeThemesInsert, appErr.Code)
	}
	// Stage 2 never runs when stage 1 results cannot be saved.
	assert.Equal(t, 1, provider.call)
}

func TestGenerateForBookQuestionsInsertFails(t *testing.T) {
	groups := []quizgen.ThemeQuestions{
		{Theme: "主题一", Questions: []quizgen.GeneratedQuestion{{Statement: "陈述"}}},
	}
	provider := &scriptedProvider{replies: []string{themesReply("主题一"), questionsReply(groups)}}
	uow := &fakeUow{
		books:     &fakeBookRepo{book: publishedBook()},
		themes:    &fakeThemeRepo{},
		questions: &fakeQuestionRepo{insertErr: errors.New("db down")},
		runs:      &fakeRunRepo{},
	}
	svc := newTestGenerationService(provider, uow)

	_, err := svc.GenerateForBook(context.Background(), uow.books.book.Id)

	var appErr *serverutils.AppError
	if assert.ErrorAs(t, err, &appErr) {
		assert.Equal(t, constant.ErrCodeQuestionsInsert, appErr.Code)
	}
	assert.Empty(t, uow.books.increments)
}

func TestGenerateForBookUnknownThemeNameFallsBack(t *testing.T) {
	// The model renamed the theme in its stage 2 reply.
	groups := []quizgen.ThemeQuestions{
		{Theme: "完全不同的名字", Questions: []quizgen.GeneratedQuestion{{Statement: "陈述"}}},
	}
	provider := &scriptedProvider{replies: []string{themesReply("主题一", "主题二"), questionsReply(groups)}}
	uow := &fakeUow{
		books:     &fakeBookRepo{book: publishedBook()},
		themes:    &fakeThemeRepo{},
		questions: &fakeQuestionRepo{},
		runs:      &fakeRunRepo{},
	}
	svc := newTestGenerationService(provider, uow)

	_, err := svc.GenerateForBook(context.Background(), uow.books.book.Id)
	assert.NoError(t, err)

	if assert.Len(t, uow.questions.inserted, 1) {
		q := uow.questions.inserted[0]
		if assert.NotNil(t, q.ThemeId) {
			assert.Equal(t, uow.themes.inserted[0].Id, *q.ThemeId)
		}
	}
}
