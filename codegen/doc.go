// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package codegen generates the short numeric codes participants share.

A hangout is addressed by a 5-digit code:

	code, err := codegen.HangoutCode()

Codes are drawn from crypto/rand over [10000, 99999]. The generator does
not enforce global uniqueness; hangout creation looks the candidate up
and regenerates on collision.
*/
package codegen
