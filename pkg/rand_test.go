package pkg

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandString(t *testing.T) {
	cases := []int{0, 3, 5, 10}
	for _, length := range cases {
		str := RandString(length)
		assert.Len(t, str, length)
	}
}

func TestRandHexString(t *testing.T) {
	cases := []int{0, 2, 40}
	for _, length := range cases {
		str := RandHexString(length)
		assert.Len(t, str, length)

		_, err := hex.DecodeString(str)
		assert.NoError(t, err)
	}
}
