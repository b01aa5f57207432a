package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindUnauthenticated, KindOf(Unauthenticated("no session")))
	assert.Equal(t, KindValidation, KindOf(Validation("bad file")))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain error")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestKindSurvivesWrapping(t *testing.T) {
	base := Upstream("provider call failed", errors.New("503"))
	wrapped := fmt.Errorf("handling request: %w", base)

	assert.Equal(t, KindUpstream, KindOf(wrapped))
}

func TestErrorIncludesCause(t *testing.T) {
	cause := errors.New("duplicate key")
	err := Persistence("failed to create note", cause)

	assert.Contains(t, err.Error(), "failed to create note")
	assert.Contains(t, err.Error(), "duplicate key")
	assert.ErrorIs(t, err, cause)
}
