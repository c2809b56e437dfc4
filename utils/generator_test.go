package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomCode(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := randomCode()
		assert.Len(t, code, 7)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1000000)
		assert.LessOrEqual(t, n, 9999999)
	}
}
