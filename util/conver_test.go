package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Conver(t *testing.T) {
	assert.Equal(t, []byte("слово"), Str2bytes("слово"))
	assert.Equal(t, int64(50), Str2Int64("50"))
	assert.Equal(t, int64(0), Str2Int64(""))
	assert.Equal(t, int64(0), Str2Int64("ten"))
}
