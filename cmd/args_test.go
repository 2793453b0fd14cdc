package cmd

import (
	"testing"

	svc "github.com/elC0mpa/aws-manager/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStackParameters(t *testing.T) {
	t.Run("valid parameters", func(t *testing.T) {
		parameters, err := parseStackParameters([]string{"Env=prod", "Size=t3.micro", "Extra=a=b"})

		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"Env":   "prod",
			"Size":  "t3.micro",
			"Extra": "a=b",
		}, parameters)
	})

	t.Run("missing separator is rejected", func(t *testing.T) {
		_, err := parseStackParameters([]string{"Env=prod", "Broken"})

		var ia *svc.InvalidArgumentError
		require.ErrorAs(t, err, &ia)
		assert.Contains(t, err.Error(), "Broken")
	})

	t.Run("empty key is rejected", func(t *testing.T) {
		_, err := parseStackParameters([]string{"=value"})

		var ia *svc.InvalidArgumentError
		require.ErrorAs(t, err, &ia)
	})

	t.Run("no parameters", func(t *testing.T) {
		parameters, err := parseStackParameters(nil)

		require.NoError(t, err)
		assert.Empty(t, parameters)
	})
}

func TestSplitCommaList(t *testing.T) {
	assert.Equal(t, []string{"sg-1", "sg-2"}, splitCommaList("sg-1, sg-2"))
	assert.Equal(t, []string{"sg-1"}, splitCommaList("sg-1,"))
	assert.Empty(t, splitCommaList(""))
}
