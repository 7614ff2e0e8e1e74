// CLASSIFICATION: COMMUNITY
// Filename: badname.go v0.1
// Author: Lukas Bower
// Date Modified: 2026-10-17
// License: SPDX-License-Identifier: MIT OR Apache-2.0

//go:build !plan9

package static

import (
	"errors"
	"syscall"
)

func isBadName(err error) bool {
	return errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENAMETOOLONG)
}
