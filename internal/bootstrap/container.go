package bootstrap

import (
	"context"
	"log"

	gocache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"

	"notelens-be/internal/config"
	"notelens-be/internal/controller"
	"notelens-be/internal/pkg/logger"
	"notelens-be/internal/repository/unitofwork"
	"notelens-be/internal/service"
	"notelens-be/pkg/ai"
	"notelens-be/pkg/ai/gemini"
	"notelens-be/pkg/filestore"
)

type Container struct {
	NoteController      controller.INoteController
	AssistantController controller.IAssistantController

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	files, err := filestore.New(cfg.App.UploadTmpDir)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize scratch file store: %v", err)
	}

	// Without an API key the assistant endpoints answer with a
	// configuration error instead of failing startup; the notes CRUD
	// must keep working.
	var provider ai.Provider
	if cfg.Keys.GoogleGemini != "" {
		geminiProvider, err := gemini.NewProvider(context.Background(), cfg.Keys.GoogleGemini, cfg.Ai.Model, cfg.Ai.Endpoint)
		if err != nil {
			log.Fatalf("[FATAL] Failed to initialize Gemini provider: %v", err)
		}
		provider = geminiProvider
		log.Printf("[INFO] Using LLM Provider: GEMINI (%s)", cfg.Ai.Model)
	} else {
		log.Printf("[WARN] GOOGLE_GEMINI_API_KEY not set, assistant endpoints disabled")
	}

	suggestionCache := gocache.New(cfg.Ai.SuggestionCacheTTL, 2*cfg.Ai.SuggestionCacheTTL)

	noteService := service.NewNoteService(uowFactory)
	assistantService := service.NewAssistantService(
		uowFactory,
		provider,
		files,
		suggestionCache,
		sysLogger,
		cfg.Keys.GoogleGemini,
	)

	return &Container{
		NoteController:      controller.NewNoteController(noteService),
		AssistantController: controller.NewAssistantController(assistantService),
		Logger:              sysLogger,
	}
}
