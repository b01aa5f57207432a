package serverutils

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"notelens-be/internal/pkg/apperror"
)

func TestStatusForKind(t *testing.T) {
	tests := []struct {
		kind apperror.Kind
		want int
	}{
		{apperror.KindUnauthenticated, fiber.StatusUnauthorized},
		{apperror.KindValidation, fiber.StatusBadRequest},
		{apperror.KindNotFound, fiber.StatusNotFound},
		{apperror.KindConfiguration, fiber.StatusServiceUnavailable},
		{apperror.KindUpstream, fiber.StatusBadGateway},
		{apperror.KindPersistence, fiber.StatusInternalServerError},
		{apperror.KindUnknown, fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusForKind(tt.kind))
		})
	}
}
