// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package nearbytes

import "errors"

// ErrFileAbsent is returned by GetFile and by content-address lookups when
// the requested filename (or hash) is not present in the volume's
// materialized state.
var ErrFileAbsent = errors.New("nearbytes: file absent")
