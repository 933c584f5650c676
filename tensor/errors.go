// SPDX-License-Identifier: MIT

package tensor

import "errors"

var (
	// ErrInvalidShape is returned when a shape is empty or holds a non-positive dimension.
	ErrInvalidShape = errors.New("tensor: invalid shape")

	// ErrShapeMismatch is returned when data length disagrees with the shape,
	// or when two tensors of different shapes are combined.
	ErrShapeMismatch = errors.New("tensor: shape mismatch")

	// ErrRank is returned when the number of coordinates differs from the rank.
	ErrRank = errors.New("tensor: rank mismatch")

	// ErrNilTensor is returned when a nil *Tensor is passed to a binary operation.
	ErrNilTensor = errors.New("tensor: nil tensor")

	// ErrOutOfRange is returned when a coordinate falls outside its axis.
	ErrOutOfRange = errors.New("tensor: index out of range")
)
