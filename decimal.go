package jsonls

import (
	"math/big"
	"regexp"
	"strconv"
)

// decimal.go implements the mantissa/scale decomposition the multipleOf
// keyword needs: floating-point division produces false negatives for
// values like 0.1. The decomposition works directly off the preserved
// source lexeme, since a lossy float64 round-trip would reintroduce the
// same precision loss.

var decimalLexemePattern = regexp.MustCompile(`^(-?\d+)(\.(\d+))?([eE]([+-]?\d+))?$`)

// decimal represents a decimal number as mantissa * 10^-scale, preserving
// exact precision for any lexeme matching the JSON number grammar.
type decimal struct {
	mantissa *big.Int
	scale    int
}

// decomposeDecimal parses a JSON number lexeme into a decimal.
func decomposeDecimal(lexeme string) (decimal, bool) {
	m := decimalLexemePattern.FindStringSubmatch(lexeme)
	if m == nil {
		return decimal{}, false
	}
	intPart, fracPart, expPart := m[1], m[3], m[5]

	digits := intPart + fracPart
	mantissa, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return decimal{}, false
	}

	scale := len(fracPart)
	if expPart != "" {
		exp, err := strconv.Atoi(expPart)
		if err != nil {
			return decimal{}, false
		}
		scale -= exp
	}
	return decimal{mantissa: mantissa, scale: scale}, true
}

// alignedMantissa returns the decimal's mantissa rescaled to targetScale
// (which must be >= d.scale).
func (d decimal) alignedMantissa(targetScale int) *big.Int {
	diff := targetScale - d.scale
	if diff <= 0 {
		return d.mantissa
	}
	factor := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(diff)), nil)
	return new(big.Int).Mul(d.mantissa, factor)
}

// isMultipleOfLexeme reports whether valueLexeme is an exact multiple of
// divisorLexeme, using scale-aligned integer remainder rather than floating
// division. ok is false when either lexeme fails to parse as a decimal.
func isMultipleOfLexeme(valueLexeme, divisorLexeme string) (isMultiple bool, ok bool) {
	v, ok1 := decomposeDecimal(valueLexeme)
	d, ok2 := decomposeDecimal(divisorLexeme)
	if !ok1 || !ok2 {
		return false, false
	}

	maxScale := v.scale
	if d.scale > maxScale {
		maxScale = d.scale
	}

	dAligned := d.alignedMantissa(maxScale)
	if dAligned.Sign() == 0 {
		return false, false
	}
	vAligned := v.alignedMantissa(maxScale)

	rem := new(big.Int).Rem(vAligned, dAligned)
	return rem.Sign() == 0, true
}
