package shamir

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPolynomialEvaluateHorner(t *testing.T) {
	q := big.NewInt(97)
	// P(x) = 3x^2 + 2x + 5, coefficients highest-degree first.
	poly, err := newPolynomial(q, []*big.Int{big.NewInt(3), big.NewInt(2), big.NewInt(5)})
	require.NoError(t, err)

	for _, x := range []int64{1, 2, 3, 10} {
		got, err := poly.evaluate(big.NewInt(x))
		require.NoError(t, err)
		want := new(big.Int).Mod(big.NewInt(3*x*x+2*x+5), q)
		require.Equal(t, want, got)
	}
}

func TestPolynomialRejectsZero(t *testing.T) {
	q := big.NewInt(97)
	poly, err := newPolynomial(q, []*big.Int{big.NewInt(1), big.NewInt(2)})
	require.NoError(t, err)
	_, err = poly.evaluate(big.NewInt(0))
	require.ErrorIs(t, err, ErrDomain)
}

func TestNewPolynomialRequiresModExceedsCoefficientCount(t *testing.T) {
	_, err := newPolynomial(big.NewInt(2), []*big.Int{big.NewInt(1), big.NewInt(1)})
	require.ErrorIs(t, err, ErrDomain)
}

func TestNewPolynomialRejectsOutOfRangeCoefficient(t *testing.T) {
	_, err := newPolynomial(big.NewInt(97), []*big.Int{big.NewInt(200)})
	require.ErrorIs(t, err, ErrDomain)
}

func TestLagrangeInterpolationAtZero(t *testing.T) {
	q := big.NewInt(97)
	poly, err := newPolynomial(q, []*big.Int{big.NewInt(3), big.NewInt(2), big.NewInt(5)})
	require.NoError(t, err)

	points := make([]point, 0, 3)
	for _, x := range []int64{1, 2, 3} {
		y, err := poly.evaluate(big.NewInt(x))
		require.NoError(t, err)
		points = append(points, point{x: big.NewInt(x), y: y})
	}

	got, err := lagrangeInterpolationAtZero(points, q)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(5), got) // the constant term a_0
}

func TestLagrangeInterpolationDuplicateXFails(t *testing.T) {
	q := big.NewInt(97)
	points := []point{
		{x: big.NewInt(1), y: big.NewInt(5)},
		{x: big.NewInt(1), y: big.NewInt(9)},
	}
	_, err := lagrangeInterpolationAtZero(points, q)
	require.ErrorIs(t, err, ErrArithmetic)
}
