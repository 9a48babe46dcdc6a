package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesClonesAndWraps(t *testing.T) {
	cloned := Clone(ErrUniqueness, "username already taken")
	assert.True(t, stderrors.Is(cloned, ErrUniqueness))
	assert.False(t, stderrors.Is(cloned, ErrReferential))

	wrapped := fmt.Errorf("create user: %w", Kind(ErrDomainConstraint, stderrors.New("check"), ""))
	assert.True(t, stderrors.Is(wrapped, ErrDomainConstraint))
	assert.Equal(t, ErrDomainConstraint.Message, FromError(wrapped).Message)
}

func TestFromErrorDefaultsToInternal(t *testing.T) {
	err := FromError(stderrors.New("boom"))
	assert.Equal(t, ErrInternal.Code, err.Code)
	assert.Nil(t, FromError(nil))
}
