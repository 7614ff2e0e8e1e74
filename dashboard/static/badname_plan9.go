// CLASSIFICATION: COMMUNITY
// Filename: badname_plan9.go v0.1
// Author: Lukas Bower
// Date Modified: 2026-10-17
// License: SPDX-License-Identifier: MIT OR Apache-2.0

//go:build plan9

package static

func isBadName(error) bool { return false }
