package texasholdem

import sdkmath "cosmossdk.io/math"

var zero = sdkmath.ZeroUint()

// isUnset reports whether u is the zero value, which cannot be used for arithmetic
func isUnset(u sdkmath.Uint) bool {
	return u == (sdkmath.Uint{})
}

// orZero guards against unset amounts coming in from decoded JSON
func orZero(u sdkmath.Uint) sdkmath.Uint {
	if isUnset(u) {
		return sdkmath.ZeroUint()
	}

	return u
}

func minUint(a, b sdkmath.Uint) sdkmath.Uint {
	if a.LT(b) {
		return a
	}

	return b
}
