// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/spectra/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidators(t *testing.T) {
	sq := MustDense(t, 3, 3)
	rect := MustDense(t, 3, 2)

	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(sq))

	require.NoError(t, matrix.ValidateSameShape(sq, MustDense(t, 3, 3)))
	require.ErrorIs(t, matrix.ValidateSameShape(sq, rect), matrix.ErrShapeMismatch)

	require.ErrorIs(t, matrix.ValidateBinarySameShape(sq, nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateMulCompatible(sq, rect))
	require.ErrorIs(t, matrix.ValidateMulCompatible(rect, sq), matrix.ErrShapeMismatch)

	require.NoError(t, matrix.ValidateSquare(sq, matrix.ErrNonSquare))
	require.ErrorIs(t, matrix.ValidateSquare(rect, matrix.ErrNonSquare), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSquare(rect, matrix.ErrShapeMismatch), matrix.ErrShapeMismatch)
	require.ErrorIs(t, matrix.ValidateSquare(nil, matrix.ErrNonSquare), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateIterations(0))
	require.ErrorIs(t, matrix.ValidateIterations(-1), matrix.ErrInvalidIterations)
}
