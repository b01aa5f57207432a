package controller

import (
	"io"
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"notelens-be/internal/dto"
	"notelens-be/internal/pkg/apperror"
	"notelens-be/internal/pkg/serverutils"
	"notelens-be/internal/service"
)

type IAssistantController interface {
	RegisterRoutes(r fiber.Router)
	Ask(ctx *fiber.Ctx) error
	SummarizePdf(ctx *fiber.Ctx) error
	SuggestedQuestions(ctx *fiber.Ctx) error
}

type assistantController struct {
	assistantService service.IAssistantService
}

func NewAssistantController(assistantService service.IAssistantService) IAssistantController {
	return &assistantController{
		assistantService: assistantService,
	}
}

func (c *assistantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/assistant/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("ask", c.Ask)
	h.Post("summarize-pdf", c.SummarizePdf)
	h.Get("suggested-questions", c.SuggestedQuestions)
}

func (c *assistantController) Ask(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromLocals(ctx)

	var req dto.AskNotesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.assistantService.AskNotes(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success ask assistant", res))
}

func (c *assistantController) SummarizePdf(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromLocals(ctx)

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return apperror.Validation("A PDF file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apperror.Validation("Could not read the uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return apperror.Validation("Could not read the uploaded file")
	}

	req := dto.SummarizePdfRequest{
		FileName: fileHeader.Filename,
		MimeType: fileHeader.Header.Get("Content-Type"),
		Data:     data,
		Prompt:   ctx.FormValue("prompt"),
	}

	res, err := c.assistantService.SummarizePdf(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success summarize pdf", res))
}

func (c *assistantController) SuggestedQuestions(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromLocals(ctx)

	// Missing or malformed count is forwarded as NaN; the service
	// substitutes its default.
	count := math.NaN()
	if raw := ctx.Query("count"); raw != "" {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
			count = parsed
		}
	}

	res, err := c.assistantService.SuggestQuestions(ctx.Context(), userId, count)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success suggest questions", res))
}
