package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapProvider(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, WrapProvider("ec2", nil))
	})

	t.Run("keeps raw message reachable", func(t *testing.T) {
		raw := errors.New("AccessDenied: not authorized")
		err := WrapProvider("s3", raw)
		require.Error(t, err)

		var pe *ProviderError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "s3", pe.Service)
		assert.ErrorIs(t, err, raw)
		assert.Contains(t, err.Error(), "AccessDenied")
	})
}

func TestInvalidArgumentf(t *testing.T) {
	err := InvalidArgumentf("invalid parameter %q, expected KEY=VALUE", "Foo")

	var ia *InvalidArgumentError
	require.ErrorAs(t, err, &ia)
	assert.Equal(t, `invalid parameter "Foo", expected KEY=VALUE`, err.Error())
}
