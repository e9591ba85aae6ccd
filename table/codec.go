// SPDX-License-Identifier: MIT

package table

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrCorrupt indicates an encoded table that cannot be decoded.
var ErrCorrupt = errors.New("table: corrupt encoding")

// Encoding layout:
//
//	[rank byte][rank × uvarint extent][ceil(cells/8) bytes, LSB-first bits]

func encode(dims []int, data []bool) []byte {
	buf := make([]byte, 0, 1+len(dims)*binary.MaxVarintLen64+(len(data)+7)/8)
	buf = append(buf, byte(len(dims)))
	for _, d := range dims {
		buf = binary.AppendUvarint(buf, uint64(d))
	}
	packed := make([]byte, (len(data)+7)/8)
	for k, v := range data {
		if v {
			packed[k/8] |= 1 << (k % 8)
		}
	}

	return append(buf, packed...)
}

func decode(kind string, rank int, buf []byte) ([]int, []bool, error) {
	if len(buf) < 1 || int(buf[0]) != rank {
		return nil, nil, fmt.Errorf("%s.UnmarshalBinary: rank: %w", kind, ErrCorrupt)
	}
	buf = buf[1:]

	dims := make([]int, rank)
	for i := range dims {
		d, n := binary.Uvarint(buf)
		if n <= 0 || d == 0 || d > math.MaxInt {
			return nil, nil, fmt.Errorf("%s.UnmarshalBinary: extent %d: %w", kind, i, ErrCorrupt)
		}
		dims[i] = int(d)
		buf = buf[n:]
	}
	cells, err := cellCount(dims...)
	if err != nil {
		return nil, nil, fmt.Errorf("%s.UnmarshalBinary: %w", kind, ErrCorrupt)
	}
	if len(buf) != (cells+7)/8 {
		return nil, nil, fmt.Errorf("%s.UnmarshalBinary: payload %d bytes: %w", kind, len(buf), ErrCorrupt)
	}

	data := make([]bool, cells)
	for k := range data {
		data[k] = buf[k/8]&(1<<(k%8)) != 0
	}

	return dims, data, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (v *Vector) MarshalBinary() ([]byte, error) {
	return encode([]int{len(v.data)}, v.data), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (v *Vector) UnmarshalBinary(buf []byte) error {
	_, data, err := decode("Vector", 1, buf)
	if err != nil {
		return err
	}
	v.data = data

	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (m *Matrix) MarshalBinary() ([]byte, error) {
	return encode([]int{m.r, m.c}, m.data), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (m *Matrix) UnmarshalBinary(buf []byte) error {
	dims, data, err := decode("Matrix", 2, buf)
	if err != nil {
		return err
	}
	m.r, m.c, m.data = dims[0], dims[1], data

	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (t *Tensor) MarshalBinary() ([]byte, error) {
	return encode([]int{t.s, t.r, t.c}, t.data), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (t *Tensor) UnmarshalBinary(buf []byte) error {
	dims, data, err := decode("Tensor", 3, buf)
	if err != nil {
		return err
	}
	t.s, t.r, t.c, t.data = dims[0], dims[1], dims[2], data

	return nil
}
