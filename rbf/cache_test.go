package rbf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSupportKey(t *testing.T) {
	assert.Equal(t, supportKey([]int{4, 3, 1}), supportKey([]int{4, 3, 1}))
	assert.NotEqual(t, supportKey([]int{4, 3, 1}), supportKey([]int{4, 1, 3}), "selection order is part of the key")
	assert.NotEqual(t, supportKey([]int{4}), supportKey([]int{4, 3}))
	assert.NotEqual(t, supportKey(nil), supportKey([]int{0}))
}
