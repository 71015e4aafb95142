package random

import (
	"bytes"
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand"
)

// Uniform draws indexes with equal probability. Not goroutine-safe.
type Uniform struct {
	randSource *rand.Rand
}

func NewUniform(randSource *rand.Rand) *Uniform {
	return &Uniform{
		randSource: randSource,
	}
}

// Creates a Uniform seeded from crypto/rand, so each run of the program
// draws a different sequence.
func NewSeededUniform() (*Uniform, error) {
	randomKey := make([]byte, 8)

	_, err := cryptorand.Read(randomKey)

	if err != nil {
		return nil, err
	}

	var int64Source int64

	err = binary.Read(bytes.NewReader(randomKey), binary.BigEndian, &int64Source)

	if err != nil {
		return nil, err
	}

	return NewUniform(rand.New(rand.NewSource(int64Source))), nil
}

// Returns a value in [0, n).
func (u *Uniform) Index(n int) (int, error) {
	if n <= 0 {
		return 0, ErrEmptyRange
	}

	return u.randSource.Intn(n), nil
}
