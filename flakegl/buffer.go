package flakegl

import (
	"errors"
	"fmt"
)

var ErrBadVertexData = errors.New("flakegl: vertex data is not a triangle list of x,y pairs")

// VertexBuffer holds tightly packed x,y positions, three vertices per
// triangle. It is written once and never mutated.
type VertexBuffer struct {
	data  []float32
	count int
}

// NewVertexBuffer copies data into a new buffer.
func NewVertexBuffer(data []float32) (*VertexBuffer, error) {
	if len(data)%2 != 0 || (len(data)/2)%3 != 0 {
		return nil, fmt.Errorf("%w: %d floats", ErrBadVertexData, len(data))
	}
	b := &VertexBuffer{
		data:  make([]float32, len(data)),
		count: len(data) / 2,
	}
	copy(b.data, data)
	return b, nil
}

// Count is the number of vertices.
func (b *VertexBuffer) Count() int { return b.count }

// Vertex returns the position of vertex i.
func (b *VertexBuffer) Vertex(i int) (x, y float32) {
	return b.data[i*2], b.data[i*2+1]
}
