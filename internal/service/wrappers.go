// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// Wrapper defines middleware composition for services.
// Implementations wrap an existing service to add behavior such as
// validation.
type Wrapper[S any] interface {
	Wrap(inner S) S // returns a decorated service applying additional behavior
}
