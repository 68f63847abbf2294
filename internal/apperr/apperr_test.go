package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	cause := errors.New("duplicate key")
	err := fmt.Errorf("feedback: %w", Wrap(Conflict, "feedback already submitted", cause))

	assert.Equal(t, Conflict, KindOf(err))
	assert.Equal(t, "feedback already submitted", Message(err))
	assert.ErrorIs(t, err, cause)

	assert.Equal(t, Internal, KindOf(errors.New("boom")))
	assert.Equal(t, "internal error", Message(errors.New("boom")))
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "order not found", NotFoundf("order not found").Error())
	assert.Equal(t, "db: conn reset", Internalw("db", errors.New("conn reset")).Error())
	assert.Equal(t, "not_found", NotFound.String())
}
