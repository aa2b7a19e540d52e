package itemid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestChildFieldExhaustive covers every legal (layer, index) combination.
func TestChildFieldExhaustive(t *testing.T) {
	for layer := 0; layer < MaxLayers; layer++ {
		parent := chain(layer)
		for index := uint32(1); index <= MaxIndex; index++ {
			id := parent.Child(index, layer)
			require.Equal(t, index, id.Field(layer), "layer=%d index=%d", layer, index)
			require.Equal(t, parent, id.Parent(), "layer=%d index=%d", layer, index)
			require.Equal(t, layer+1, id.Level(), "layer=%d index=%d", layer, index)
		}
	}
}

// chain builds an id whose first n levels are all at sibling position 1.
func chain(n int) ID {
	id := Root
	for layer := 0; layer < n; layer++ {
		id = id.Child(1, layer)
	}
	return id
}

func TestEncoding(t *testing.T) {
	// student at index 1 under root, age at index 1 under student.
	student := Root.Child(1, 0)
	assert.Equal(t, ID(0x1), student)

	age := student.Child(1, 1)
	assert.Equal(t, ID(0x11), age)

	sibling := student.Child(3, 1)
	assert.Equal(t, ID(0x31), sibling)
	assert.Equal(t, student, sibling.Parent())
}

func TestRoot(t *testing.T) {
	assert.Equal(t, 0, Root.Level())
	assert.Equal(t, Root, Root.Parent())
	assert.Empty(t, Root.Path())
}

func TestPath(t *testing.T) {
	id := Root.Child(2, 0).Child(15, 1).Child(7, 2)
	assert.Equal(t, []uint32{2, 15, 7}, id.Path())
	assert.Equal(t, 3, id.Level())
	assert.Equal(t, Root.Child(2, 0).Child(15, 1), id.Parent())
}
