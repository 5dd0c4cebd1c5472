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

import (
	"hash/maphash"
	"math/rand"

	"github.com/zeebo/xxh3"
)

// HashFunc hashes a key to a 64-bit value. The table consumes the full
// width: the low bits select the probe position, the top 6 bits become the
// per-slot fingerprint, so weak high bits degrade the metadata prefilter
// even when probing still works.
type HashFunc[K any] func(key K) uint64

// EqFunc reports whether two keys are equivalent. The default is ==.
type EqFunc[K any] func(a, b K) bool

// Hashing is randomly seeded per process so slot positions cannot be
// predicted across runs.
var stringHashSeed = rand.Uint64()

// defaultHashFunc returns the hash function used when WithHashFunc is not
// supplied: xxh3 for string keys, hash/maphash for every other comparable
// key type.
func defaultHashFunc[K comparable]() HashFunc[K] {
	var zero K
	if _, ok := any(zero).(string); ok {
		h := HashFunc[string](func(key string) uint64 {
			return xxh3.HashStringSeed(key, stringHashSeed)
		})
		return any(h).(HashFunc[K])
	}
	seed := maphash.MakeSeed()
	return func(key K) uint64 {
		return maphash.Comparable(seed, key)
	}
}

func defaultEqFunc[K comparable]() EqFunc[K] {
	return func(a, b K) bool {
		return a == b
	}
}
