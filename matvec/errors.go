// Package matvec: sentinel error set.
package matvec

import "errors"

// ErrSizeMismatch indicates that buffer lengths disagree with the stated
// grid side n. This is a caller bug: the policy is to fail fast, never to
// truncate or pad.
var ErrSizeMismatch = errors.New("matvec: buffer length disagrees with n")
