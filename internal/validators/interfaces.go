// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches storage: contact
// records, partial contact updates, ids and registration credentials.
//
// Every failure is one of the sentinels in errors.go, optionally prefixed
// with the offending field name, so callers can match it with errors.Is.
package validators

import "context"

// Validator validates obj. fields, when given, restricts the check to the
// named fields; their meaning depends on the dynamic type of obj.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
