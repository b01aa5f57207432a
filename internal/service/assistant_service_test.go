package service

import (
	"context"
	"errors"
	"math"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notelens-be/internal/constant"
	"notelens-be/internal/dto"
	"notelens-be/internal/entity"
	"notelens-be/internal/pkg/apperror"
	"notelens-be/internal/repository/memory"
	"notelens-be/pkg/ai"
	"notelens-be/pkg/filestore"
)

// stubProvider records every interaction so tests can assert on call
// counts and resource lifecycles.
type stubProvider struct {
	chatResponse string
	chatErr      error
	fileResponse string
	generateErr  error
	uploadErr    error
	deleteErr    error

	chatCalls      int
	lastSystem     string
	lastTurns      []ai.Turn
	uploadedRef    ai.FileRef
	uploadSeenFile bool
	deletedRefs    []ai.FileRef
}

func (p *stubProvider) GenerateChat(ctx context.Context, system string, turns []ai.Turn) (string, error) {
	p.chatCalls++
	p.lastSystem = system
	p.lastTurns = turns
	if p.chatErr != nil {
		return "", p.chatErr
	}
	return p.chatResponse, nil
}

func (p *stubProvider) GenerateWithFile(ctx context.Context, prompt string, file ai.FileRef) (string, error) {
	if p.generateErr != nil {
		return "", p.generateErr
	}
	return p.fileResponse, nil
}

func (p *stubProvider) UploadFile(ctx context.Context, path, mimeType, displayName string) (ai.FileRef, error) {
	if p.uploadErr != nil {
		return ai.FileRef{}, p.uploadErr
	}
	if _, err := os.Stat(path); err == nil {
		p.uploadSeenFile = true
	}
	p.uploadedRef = ai.FileRef{Name: "files/stub-upload", URI: "https://files.example/stub", MIMEType: mimeType}
	return p.uploadedRef, nil
}

func (p *stubProvider) DeleteFile(ctx context.Context, file ai.FileRef) error {
	p.deletedRefs = append(p.deletedRefs, file)
	return p.deleteErr
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type assistantFixture struct {
	svc      IAssistantService
	provider *stubProvider
	repos    *memory.RepositoryFactory
	tmpDir   string
}

func newAssistantFixture(t *testing.T, provider *stubProvider) *assistantFixture {
	t.Helper()

	repos := memory.NewRepositoryFactory()
	tmpDir := t.TempDir()
	files, err := filestore.New(tmpDir)
	require.NoError(t, err)

	svc := NewAssistantService(
		repos,
		provider,
		files,
		gocache.New(time.Minute, time.Minute),
		nopLogger{},
		"test-key",
	)

	return &assistantFixture{
		svc:      svc,
		provider: provider,
		repos:    repos,
		tmpDir:   tmpDir,
	}
}

func (f *assistantFixture) seedNote(t *testing.T, userId uuid.UUID, text string) {
	t.Helper()
	err := f.repos.Notes.Create(context.Background(), &entity.Note{
		Id:        uuid.New(),
		UserId:    userId,
		Text:      text,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)
}

func (f *assistantFixture) scratchFileCount(t *testing.T) int {
	t.Helper()
	entries, err := os.ReadDir(f.tmpDir)
	require.NoError(t, err)
	return len(entries)
}

func TestAssistantRequiresAPIKey(t *testing.T) {
	repos := memory.NewRepositoryFactory()
	files, err := filestore.New(t.TempDir())
	require.NoError(t, err)

	svc := NewAssistantService(repos, &stubProvider{}, files, gocache.New(time.Minute, time.Minute), nopLogger{}, "")

	_, err = svc.AskNotes(context.Background(), uuid.New(), &dto.AskNotesRequest{Questions: []string{"q"}})
	assert.Equal(t, apperror.KindConfiguration, apperror.KindOf(err))
}

func TestAssistantRequiresAuthentication(t *testing.T) {
	f := newAssistantFixture(t, &stubProvider{})

	_, err := f.svc.AskNotes(context.Background(), uuid.Nil, &dto.AskNotesRequest{Questions: []string{"q"}})
	assert.Equal(t, apperror.KindUnauthenticated, apperror.KindOf(err))

	_, err = f.svc.SuggestQuestions(context.Background(), uuid.Nil, 3)
	assert.Equal(t, apperror.KindUnauthenticated, apperror.KindOf(err))
}

func TestAskNotesShortCircuitsWithoutNotes(t *testing.T) {
	f := newAssistantFixture(t, &stubProvider{chatResponse: "<p>never used</p>"})

	res, err := f.svc.AskNotes(context.Background(), uuid.New(), &dto.AskNotesRequest{Questions: []string{"anything?"}})
	require.NoError(t, err)
	assert.Equal(t, constant.NoNotesMessage, res.Answer)
	assert.Zero(t, f.provider.chatCalls)
}

func TestAskNotesBuildsHistoryAndSanitizes(t *testing.T) {
	f := newAssistantFixture(t, &stubProvider{chatResponse: `<p onclick="x()">It is on <strong>Friday</strong></p><script>evil()</script>`})
	userId := uuid.New()
	f.seedNote(t, userId, "dentist appointment on Friday")

	res, err := f.svc.AskNotes(context.Background(), userId, &dto.AskNotesRequest{
		Questions: []string{"q0", "q1", "q2"},
		Responses: []string{"r0", "r1"},
	})
	require.NoError(t, err)

	assert.Equal(t, "<p>It is on <strong>Friday</strong></p>", res.Answer)
	assert.Contains(t, f.provider.lastSystem, "dentist appointment on Friday")

	require.Len(t, f.provider.lastTurns, 5)
	assert.Equal(t, "user", f.provider.lastTurns[4].Role)
	assert.Equal(t, "q2", f.provider.lastTurns[4].Text)
}

func TestAskNotesFallsBackOnEmptyOutput(t *testing.T) {
	f := newAssistantFixture(t, &stubProvider{chatResponse: "   \n"})
	userId := uuid.New()
	f.seedNote(t, userId, "some note")

	res, err := f.svc.AskNotes(context.Background(), userId, &dto.AskNotesRequest{Questions: []string{"q"}})
	require.NoError(t, err)
	assert.Equal(t, constant.EmptyAnswerFallback, res.Answer)
}

func TestAskNotesPropagatesProviderErrors(t *testing.T) {
	f := newAssistantFixture(t, &stubProvider{chatErr: errors.New("quota exceeded")})
	userId := uuid.New()
	f.seedNote(t, userId, "some note")

	_, err := f.svc.AskNotes(context.Background(), userId, &dto.AskNotesRequest{Questions: []string{"q"}})
	require.Error(t, err)
	assert.Equal(t, apperror.KindUpstream, apperror.KindOf(err))
}

func TestClampQuestionCount(t *testing.T) {
	tests := []struct {
		name  string
		count float64
		want  int
	}{
		{"zero raises to one", 0, 1},
		{"negative raises to one", -3, 1},
		{"above cap lowers to ten", 15, 10},
		{"nan defaults to three", math.NaN(), 3},
		{"positive infinity defaults to three", math.Inf(1), 3},
		{"in range unchanged", 7, 7},
		{"fraction truncates", 2.9, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clampQuestionCount(tt.count))
		})
	}
}

func TestSuggestQuestionsWithoutNotesReturnsEmptyList(t *testing.T) {
	f := newAssistantFixture(t, &stubProvider{chatResponse: `{"questions":["unused"]}`})

	res, err := f.svc.SuggestQuestions(context.Background(), uuid.New(), 3)
	require.NoError(t, err)
	assert.Empty(t, res.Questions)
	assert.Zero(t, f.provider.chatCalls)
}

func TestSuggestQuestionsDeduplicatesAndTruncates(t *testing.T) {
	f := newAssistantFixture(t, &stubProvider{chatResponse: `{"questions":["A","A","B"]}`})
	userId := uuid.New()
	f.seedNote(t, userId, "note text")

	res, err := f.svc.SuggestQuestions(context.Background(), userId, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Questions)
}

func TestSuggestQuestionsSurvivesMalformedOutput(t *testing.T) {
	f := newAssistantFixture(t, &stubProvider{chatResponse: "1. First\n- Second\n"})
	userId := uuid.New()
	f.seedNote(t, userId, "note text")

	res, err := f.svc.SuggestQuestions(context.Background(), userId, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"First", "Second"}, res.Questions)
}

func TestSuggestQuestionsCachesPerUser(t *testing.T) {
	f := newAssistantFixture(t, &stubProvider{chatResponse: `{"questions":["A"]}`})
	userId := uuid.New()
	f.seedNote(t, userId, "note text")

	_, err := f.svc.SuggestQuestions(context.Background(), userId, 3)
	require.NoError(t, err)
	_, err = f.svc.SuggestQuestions(context.Background(), userId, 3)
	require.NoError(t, err)

	assert.Equal(t, 1, f.provider.chatCalls)
}

func TestSummarizePdfValidatesInput(t *testing.T) {
	f := newAssistantFixture(t, &stubProvider{})
	userId := uuid.New()

	_, err := f.svc.SummarizePdf(context.Background(), userId, &dto.SummarizePdfRequest{
		FileName: "empty.pdf",
		MimeType: "application/pdf",
	})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	_, err = f.svc.SummarizePdf(context.Background(), userId, &dto.SummarizePdfRequest{
		FileName: "photo.png",
		MimeType: "image/png",
		Data:     []byte("not a pdf"),
	})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestSummarizePdfCleansUpOnSuccess(t *testing.T) {
	f := newAssistantFixture(t, &stubProvider{fileResponse: "<section><h2>Summary</h2><p>fine</p></section>"})
	userId := uuid.New()

	res, err := f.svc.SummarizePdf(context.Background(), userId, &dto.SummarizePdfRequest{
		FileName: "report.pdf",
		MimeType: "application/pdf",
		Data:     []byte("%PDF-1.7 fake"),
	})
	require.NoError(t, err)
	assert.Equal(t, "<section><h2>Summary</h2><p>fine</p></section>", res.Answer)

	assert.True(t, f.provider.uploadSeenFile, "scratch file should exist while uploading")
	assert.Zero(t, f.scratchFileCount(t), "scratch file must not outlive the request")
	require.Len(t, f.provider.deletedRefs, 1)
	assert.Equal(t, f.provider.uploadedRef, f.provider.deletedRefs[0])
}

func TestSummarizePdfCleansUpWhenGenerationFails(t *testing.T) {
	f := newAssistantFixture(t, &stubProvider{generateErr: errors.New("model overloaded")})
	userId := uuid.New()

	_, err := f.svc.SummarizePdf(context.Background(), userId, &dto.SummarizePdfRequest{
		FileName: "report.pdf",
		MimeType: "application/pdf",
		Data:     []byte("%PDF-1.7 fake"),
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindUpstream, apperror.KindOf(err))

	assert.Zero(t, f.scratchFileCount(t))
	require.Len(t, f.provider.deletedRefs, 1)
}

func TestSummarizePdfSwallowsCleanupFailures(t *testing.T) {
	f := newAssistantFixture(t, &stubProvider{
		fileResponse: "<p>summary</p>",
		deleteErr:    errors.New("remote delete failed"),
	})
	userId := uuid.New()

	res, err := f.svc.SummarizePdf(context.Background(), userId, &dto.SummarizePdfRequest{
		FileName: "report.pdf",
		MimeType: "application/pdf",
		Data:     []byte("%PDF-1.7 fake"),
	})
	require.NoError(t, err, "cleanup failure must not mask the primary outcome")
	assert.Equal(t, "<p>summary</p>", res.Answer)
	assert.Zero(t, f.scratchFileCount(t))
}

func TestAssistantRecordsUsage(t *testing.T) {
	f := newAssistantFixture(t, &stubProvider{chatResponse: "<p>ok</p>"})
	userId := uuid.New()
	f.seedNote(t, userId, "note text")

	_, err := f.svc.AskNotes(context.Background(), userId, &dto.AskNotesRequest{Questions: []string{"q"}})
	require.NoError(t, err)

	logs := f.repos.Logs.Logs()
	require.Len(t, logs, 1)
	assert.Equal(t, constant.AssistantActionAsk, logs[0].Action)
	assert.Equal(t, constant.AssistantStatusOk, logs[0].Status)
	assert.Equal(t, userId, logs[0].UserId)
}
