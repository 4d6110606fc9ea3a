package mq_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vtuhub/vtugateway/pkg/mq"
)

func TestTemporary(t *testing.T) {
	t.Run("Wrapped error reports as temporary", func(t *testing.T) {
		cause := errors.New("broker unavailable")
		err := mq.Temporary(cause)

		var tempErr mq.TempError
		assert.True(t, errors.As(err, &tempErr))
		assert.True(t, tempErr.Temporary())
		assert.Equal(t, "broker unavailable", err.Error())
	})

	t.Run("Cause survives further wrapping", func(t *testing.T) {
		cause := errors.New("deadlock")
		err := fmt.Errorf("process refund: %w", mq.Temporary(cause))

		var tempErr mq.TempError
		assert.True(t, errors.As(err, &tempErr))
		assert.ErrorIs(t, err, cause)
	})

	t.Run("Plain error is not temporary", func(t *testing.T) {
		var tempErr mq.TempError
		assert.False(t, errors.As(errors.New("bad payload"), &tempErr))
	})
}
