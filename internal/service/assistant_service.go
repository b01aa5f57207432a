package service

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"notelens-be/internal/constant"
	"notelens-be/internal/dto"
	"notelens-be/internal/entity"
	"notelens-be/internal/pkg/apperror"
	"notelens-be/internal/pkg/logger"
	"notelens-be/internal/repository/specification"
	"notelens-be/internal/repository/unitofwork"
	"notelens-be/pkg/ai"
	"notelens-be/pkg/ai/htmlutil"
	"notelens-be/pkg/ai/parser"
	"notelens-be/pkg/ai/prompt"
	"notelens-be/pkg/filestore"
)

type IAssistantService interface {
	AskNotes(ctx context.Context, userId uuid.UUID, req *dto.AskNotesRequest) (*dto.AssistantAnswerResponse, error)
	SummarizePdf(ctx context.Context, userId uuid.UUID, req *dto.SummarizePdfRequest) (*dto.AssistantAnswerResponse, error)
	SuggestQuestions(ctx context.Context, userId uuid.UUID, count float64) (*dto.SuggestedQuestionsResponse, error)
}

type assistantService struct {
	uowFactory      unitofwork.RepositoryFactory
	provider        ai.Provider
	files           *filestore.Store
	suggestionCache *gocache.Cache
	logger          logger.ILogger
	apiKey          string
}

func NewAssistantService(
	uowFactory unitofwork.RepositoryFactory,
	provider ai.Provider,
	files *filestore.Store,
	suggestionCache *gocache.Cache,
	sysLogger logger.ILogger,
	apiKey string,
) IAssistantService {
	return &assistantService{
		uowFactory:      uowFactory,
		provider:        provider,
		files:           files,
		suggestionCache: suggestionCache,
		logger:          sysLogger,
		apiKey:          apiKey,
	}
}

// AskNotes answers a question about the user's notes, replaying the
// earlier turns of the session so the model keeps conversational
// context.
func (s *assistantService) AskNotes(ctx context.Context, userId uuid.UUID, req *dto.AskNotesRequest) (*dto.AssistantAnswerResponse, error) {
	started := time.Now()

	if err := s.checkPreconditions(userId); err != nil {
		return nil, err
	}

	notes, err := s.loadNoteContexts(ctx, userId)
	if err != nil {
		return nil, err
	}
	if len(notes) == 0 {
		return &dto.AssistantAnswerResponse{Answer: constant.NoNotesMessage}, nil
	}

	system := prompt.NotesSystemInstruction(notes)
	turns := prompt.ConversationHistory(req.Questions, req.Responses)

	raw, err := s.provider.GenerateChat(ctx, system, turns)
	if err != nil {
		s.recordUsage(ctx, userId, constant.AssistantActionAsk, constant.AssistantStatusError, started, map[string]interface{}{
			"error": err.Error(),
		})
		return nil, apperror.Upstream("The assistant is unavailable right now", err)
	}

	answer := s.presentAnswer(raw)
	s.recordUsage(ctx, userId, constant.AssistantActionAsk, constant.AssistantStatusOk, started, map[string]interface{}{
		"questions": len(req.Questions),
		"notes":     len(notes),
	})

	return &dto.AssistantAnswerResponse{Answer: answer}, nil
}

// SummarizePdf stages the uploaded bytes locally, hands them to the
// provider's file API and asks for a structured summary. Both the
// remote handle and the scratch file are released on every exit path;
// cleanup failures are logged and never replace the primary outcome.
func (s *assistantService) SummarizePdf(ctx context.Context, userId uuid.UUID, req *dto.SummarizePdfRequest) (*dto.AssistantAnswerResponse, error) {
	started := time.Now()

	if err := s.checkPreconditions(userId); err != nil {
		return nil, err
	}
	if len(req.Data) == 0 {
		return nil, apperror.Validation("A PDF file is required")
	}
	if !strings.Contains(strings.ToLower(req.MimeType), "pdf") {
		return nil, apperror.Validation("Only PDF files are supported")
	}

	localPath, err := s.files.Save(req.Data, ".pdf")
	if err != nil {
		return nil, apperror.Persistence("Failed to stage the uploaded file", err)
	}

	var remote ai.FileRef
	defer func() {
		if remote.Name != "" {
			if err := s.provider.DeleteFile(ctx, remote); err != nil {
				s.logger.Warn("assistant", "Failed to delete remote file", map[string]interface{}{
					"file":  remote.Name,
					"error": err.Error(),
				})
			}
		}
		if err := s.files.Remove(localPath); err != nil {
			s.logger.Warn("assistant", "Failed to remove scratch file", map[string]interface{}{
				"path":  localPath,
				"error": err.Error(),
			})
		}
	}()

	remote, err = s.provider.UploadFile(ctx, localPath, req.MimeType, req.FileName)
	if err != nil {
		s.recordUsage(ctx, userId, constant.AssistantActionPdf, constant.AssistantStatusError, started, map[string]interface{}{
			"stage": "upload",
			"error": err.Error(),
		})
		return nil, apperror.Upstream("Failed to upload the file to the assistant", err)
	}

	userPrompt := strings.TrimSpace(req.Prompt)
	if userPrompt == "" {
		userPrompt = constant.DefaultPdfPrompt
	}

	raw, err := s.provider.GenerateWithFile(ctx, prompt.PdfInstruction(userPrompt), remote)
	if err != nil {
		s.recordUsage(ctx, userId, constant.AssistantActionPdf, constant.AssistantStatusError, started, map[string]interface{}{
			"stage": "generate",
			"error": err.Error(),
		})
		return nil, apperror.Upstream("The assistant is unavailable right now", err)
	}

	answer := s.presentAnswer(raw)
	s.recordUsage(ctx, userId, constant.AssistantActionPdf, constant.AssistantStatusOk, started, map[string]interface{}{
		"file_name": req.FileName,
		"size":      len(req.Data),
	})

	return &dto.AssistantAnswerResponse{Answer: answer}, nil
}

// SuggestQuestions proposes questions the user could ask about their
// own notes. Results are cached briefly per user; parsing of the model
// output never fails, it only degrades.
func (s *assistantService) SuggestQuestions(ctx context.Context, userId uuid.UUID, count float64) (*dto.SuggestedQuestionsResponse, error) {
	started := time.Now()
	limit := clampQuestionCount(count)

	if err := s.checkPreconditions(userId); err != nil {
		return nil, err
	}

	notes, err := s.loadNoteContexts(ctx, userId)
	if err != nil {
		return nil, err
	}
	if len(notes) == 0 {
		return &dto.SuggestedQuestionsResponse{Questions: []string{}}, nil
	}

	cacheKey := userId.String() + ":" + strconv.Itoa(limit)
	if cached, ok := s.suggestionCache.Get(cacheKey); ok {
		if questions, ok := cached.([]string); ok {
			return &dto.SuggestedQuestionsResponse{Questions: questions}, nil
		}
	}

	raw, err := s.provider.GenerateChat(ctx, "", []ai.Turn{
		{Role: constant.ChatMessageRoleUser, Text: prompt.SuggestionsPrompt(notes, limit)},
	})
	if err != nil {
		s.recordUsage(ctx, userId, constant.AssistantActionSuggest, constant.AssistantStatusError, started, map[string]interface{}{
			"error": err.Error(),
		})
		return nil, apperror.Upstream("The assistant is unavailable right now", err)
	}

	questions := parser.Normalize(parser.ParseQuestions(raw), limit)
	s.suggestionCache.Set(cacheKey, questions, gocache.DefaultExpiration)

	s.recordUsage(ctx, userId, constant.AssistantActionSuggest, constant.AssistantStatusOk, started, map[string]interface{}{
		"requested": limit,
		"returned":  len(questions),
	})

	return &dto.SuggestedQuestionsResponse{Questions: questions}, nil
}

func (s *assistantService) checkPreconditions(userId uuid.UUID) error {
	if s.apiKey == "" {
		return apperror.Configuration("Assistant is not configured: missing provider API key")
	}
	if userId == uuid.Nil {
		return apperror.Unauthenticated("You must be signed in to use the assistant")
	}
	return nil
}

func (s *assistantService) loadNoteContexts(ctx context.Context, userId uuid.UUID) ([]prompt.NoteContext, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.OwnedByUser{UserID: userId},
		specification.OrderByCreatedAtDesc{},
	)
	if err != nil {
		return nil, apperror.Persistence("Failed to load notes", err)
	}

	contexts := make([]prompt.NoteContext, len(notes))
	for i, note := range notes {
		contexts[i] = prompt.NoteContext{
			Text:      note.Text,
			CreatedAt: note.CreatedAt,
			UpdatedAt: note.UpdatedAt,
		}
	}
	return contexts, nil
}

// presentAnswer reduces model output to the allowed HTML subset and
// substitutes the fixed fallback when nothing usable remains.
func (s *assistantService) presentAnswer(raw string) string {
	answer := strings.TrimSpace(htmlutil.Sanitize(raw))
	if answer == "" {
		return constant.EmptyAnswerFallback
	}
	return answer
}

// recordUsage persists an audit row best-effort; a storage failure
// here must not fail the user's request.
func (s *assistantService) recordUsage(ctx context.Context, userId uuid.UUID, action, status string, started time.Time, details map[string]interface{}) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	entry := entity.AssistantLog{
		Id:         uuid.New(),
		UserId:     userId,
		Action:     action,
		Status:     status,
		DurationMs: time.Since(started).Milliseconds(),
		Details:    details,
		CreatedAt:  time.Now(),
	}
	if err := uow.AssistantLogRepository().Create(ctx, &entry); err != nil {
		s.logger.Warn("assistant", "Failed to record assistant usage", map[string]interface{}{
			"action": action,
			"error":  err.Error(),
		})
	}
}

// clampQuestionCount folds the client-supplied count into [1, 10];
// non-finite input falls back to 3.
func clampQuestionCount(count float64) int {
	if math.IsNaN(count) || math.IsInf(count, 0) {
		return 3
	}
	n := int(count)
	if n < 1 {
		return 1
	}
	if n > 10 {
		return 10
	}
	return n
}
