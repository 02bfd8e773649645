// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package codegen

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// 5-digit codes: short enough to read out loud, large enough that
// collisions among live hangouts stay rare.
const (
	codeMin = 10000
	codeMax = 99999
)

// HangoutCode returns a random 5-digit numeric code in [10000, 99999].
// Uniqueness among live hangouts is the caller's concern (lookup and
// regenerate on collision).
func HangoutCode() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeMax-codeMin+1))
	if err != nil {
		return 0, fmt.Errorf("failed to generate hangout code: %w", err)
	}
	return codeMin + int(n.Int64()), nil
}
