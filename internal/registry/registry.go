// Copyright 2026 The flake8-plugins Authors. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package registry records names seen while checking Python sources.
package registry

import (
	"runtime"
	"sync"
	"weak"
)

// Registry is a set of names. It is safe for concurrent use.
type Registry struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// New returns an empty [Registry].
func New() *Registry {
	return &Registry{seen: make(map[string]struct{})}
}

// Add records name and reports whether it was not recorded before.
func (r *Registry) Add(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.seen[name]; ok {
		return false
	}

	r.seen[name] = struct{}{}

	return true
}

// Scoped holds one [Registry] per scope object, dropped when the scope is garbage collected.
// The zero value is ready to use.
type Scoped[S any] struct {
	mu         sync.Mutex
	registries map[weak.Pointer[S]]*Registry
}

// For returns the [Registry] of scope, creating it on first use.
func (s *Scoped[S]) For(scope *S) *Registry {
	key := weak.Make(scope)

	s.mu.Lock()
	defer s.mu.Unlock()

	if r, ok := s.registries[key]; ok {
		return r
	}

	if s.registries == nil {
		s.registries = make(map[weak.Pointer[S]]*Registry)
	}

	r := New()
	s.registries[key] = r
	runtime.AddCleanup(scope, s.release, key)

	return r
}

func (s *Scoped[S]) release(key weak.Pointer[S]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.registries, key)
}
