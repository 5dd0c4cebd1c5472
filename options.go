// Copyright 2024 The Flathash Authors
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

package flathash

import "fmt"

// Option provides an interface to do work on Map while it is being created.
type Option[K comparable, V any] interface {
	apply(m *Map[K, V])
}

type hashFuncOption[K comparable, V any] struct {
	hash HashFunc[K]
}

func (op hashFuncOption[K, V]) apply(m *Map[K, V]) {
	m.hash = op.hash
}

// WithHashFunc is an option to specify the hash function to use for a
// Map[K,V]. The function must be deterministic for the lifetime of the map
// and must agree with the key equivalence relation: equal keys hash equal.
func WithHashFunc[K comparable, V any](hash HashFunc[K]) Option[K, V] {
	return hashFuncOption[K, V]{hash}
}

type eqFuncOption[K comparable, V any] struct {
	eq EqFunc[K]
}

func (op eqFuncOption[K, V]) apply(m *Map[K, V]) {
	m.eq = op.eq
}

// WithEqFunc is an option to specify the key equivalence relation to use
// for a Map[K,V] in place of ==. A custom relation usually comes paired
// with a WithHashFunc that respects it.
func WithEqFunc[K comparable, V any](eq EqFunc[K]) Option[K, V] {
	return eqFuncOption[K, V]{eq}
}

type maxLoadOption[K comparable, V any] struct {
	percentage uint64
}

func (op maxLoadOption[K, V]) apply(m *Map[K, V]) {
	m.maxLoadPercentage = op.percentage
}

// WithMaxLoadPercentage is an option to specify the maximum fraction of
// slots, in percent, that may be used or tombstoned before the map grows.
// The percentage must lie strictly between 0 and 100; anything else panics.
// The default is 80.
func WithMaxLoadPercentage[K comparable, V any](percentage int) Option[K, V] {
	if percentage <= 0 || percentage >= 100 {
		panic(fmt.Sprintf("flathash: max load percentage %d outside (0,100)", percentage))
	}
	return maxLoadOption[K, V]{uint64(percentage)}
}

// Allocator specifies an interface for allocating and releasing memory used
// by a Map. The default allocator utilizes Go's builtin make() and allows
// the GC to reclaim memory.
//
// The metadata and entries arrays of one table generation are always
// allocated together and freed together. If the allocator is manually
// managing memory and requires that they be freed then Map.Close must be
// called in order to ensure FreeEntries and FreeMetadata are called.
type Allocator[K comparable, V any] interface {
	// AllocMetadata should return a slice equivalent to make([]uint8, n),
	// or an error if the allocation cannot be satisfied.
	AllocMetadata(n int) ([]uint8, error)

	// AllocEntries should return a slice equivalent to make([]Entry[K,V], n),
	// or an error if the allocation cannot be satisfied.
	AllocEntries(n int) ([]Entry[K, V], error)

	// FreeMetadata can optionally release the memory associated with the
	// supplied slice that is guaranteed to have been allocated by
	// AllocMetadata.
	FreeMetadata(v []uint8)

	// FreeEntries can optionally release the memory associated with the
	// supplied slice that is guaranteed to have been allocated by
	// AllocEntries.
	FreeEntries(v []Entry[K, V])
}

type defaultAllocator[K comparable, V any] struct{}

func (defaultAllocator[K, V]) AllocMetadata(n int) ([]uint8, error) {
	return make([]uint8, n), nil
}

func (defaultAllocator[K, V]) AllocEntries(n int) ([]Entry[K, V], error) {
	return make([]Entry[K, V], n), nil
}

func (defaultAllocator[K, V]) FreeMetadata(v []uint8) {
}

func (defaultAllocator[K, V]) FreeEntries(v []Entry[K, V]) {
}

type allocatorOption[K comparable, V any] struct {
	allocator Allocator[K, V]
}

func (op allocatorOption[K, V]) apply(m *Map[K, V]) {
	m.allocator = op.allocator
}

// WithAllocator is an option for specify the Allocator to use for a Map[K,V].
func WithAllocator[K comparable, V any](allocator Allocator[K, V]) Option[K, V] {
	return allocatorOption[K, V]{allocator}
}
