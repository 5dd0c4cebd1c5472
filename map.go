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

// Package flathash implements a cache-efficient hash table mapping keys to
// values using open addressing with linear probing. If you're not familiar
// with open-addressing see https://en.wikipedia.org/wiki/Open_addressing.
//
// # Layout
//
// The table keeps two parallel arrays: a metadata array with exactly one
// byte per slot, and an entries array holding the key/value pairs. The
// metadata byte encodes the slot state and a filter in a single load:
//
//	bit 0:     used flag (slot holds a live entry)
//	bit 1:     tombstone flag (slot held an entry that was removed)
//	bits 2..7: fingerprint, the top 6 bits of the 64-bit hash
//
// The used and tombstone flags are mutually exclusive; a zero byte is an
// empty slot. Capacity is always a power of two (or zero before the first
// allocation), so the low log2(capacity) bits of the hash select the
// initial probe position while the fingerprint comes from the top of the
// hash. The two bit ranges are disjoint for any realistic capacity, which
// keeps the fingerprint's entropy independent of the probe position.
//
// # Probing
//
// Probing is plain linear probing: position h&mask, then each successor
// position mod capacity. A probe loads the one metadata byte and compares
// it against used|fingerprint before it ever touches the entries array, so
// a mismatched slot costs one byte load rather than a key comparison and a
// likely cache miss on the entry. The first empty metadata byte terminates
// the walk and proves the key absent; tombstones are skipped but never
// terminate. At the default max load of 80% a lookup typically touches two
// cache lines: the metadata line around the initial position and the entry
// line of the matching slot.
//
// # Deletion
//
// Removal marks the slot as a tombstone so that probe chains running
// through it stay intact, and zeroes the entry so stale keys and values do
// not keep their referents alive. Tombstones still count against the load
// budget; they are discarded wholesale at the next growth, which rebuilds
// every chain into fresh slots.
//
// # Growth
//
// The table maintains growthLeft, a countdown of the insertions into empty
// slots that remain before the load factor would be exceeded. An insertion
// of a new key that finds growthLeft == 0 grows first. Growth allocates a
// new metadata/entries pair, reinserts the live entries, and releases the
// old pair, so peak memory during growth is roughly twice the footprint.
package flathash

import (
	"fmt"
	"math/bits"
	"strings"
	"unsafe"
)

const (
	debug = false

	// minimalCapacity is the capacity allocated by the first insertion into
	// an unallocated table.
	minimalCapacity = 8

	defaultMaxLoadPercentage = 80
)

// meta is the per-slot metadata byte.
//
//	    empty: 0 0 0 0 0 0 0 0
//	     used: f f f f f f 0 1  // f is the fingerprint, hash bits 58..63
//	tombstone: 0 0 0 0 0 0 1 0
type meta uint8

const (
	metaEmpty     meta = 0
	metaUsedBit   meta = 0b01
	metaTombstone meta = 0b10

	fingerprintShift = 2
)

// The probe engine addresses the metadata array byte-wise; the metadata
// type must have size and alignment exactly 1.
var (
	_ [1]struct{} = [unsafe.Sizeof(meta(0))]struct{}{}
	_ [1]struct{} = [unsafe.Alignof(meta(0))]struct{}{}
)

// metaForHash returns the metadata byte marking a slot as used by an entry
// whose key hashed to h.
func metaForHash(h uint64) meta {
	return meta(h>>58)<<fingerprintShift | metaUsedBit
}

func (m meta) used() bool {
	return m&metaUsedBit != 0
}

func (m meta) tombstone() bool {
	return m&metaTombstone != 0
}

// Entry holds a key and value. Remove returns the removed entry by value;
// the iterator hands out pointers to live entries. Mutating Key through an
// entry pointer corrupts the table.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is an unordered map from keys to values with lazily allocated
// storage: a freshly constructed map owns no memory, and the first
// insertion or an explicit Reserve allocates. By default a Map[K,V] hashes
// keys with hash/maphash (xxh3 for string keys) and compares them with ==;
// both can be overridden with the WithHashFunc and WithEqFunc options.
//
// A Map is NOT goroutine-safe. Concurrent readers are fine as long as no
// write is in progress; a writer needs exclusive access.
type Map[K comparable, V any] struct {
	// The hash function applied to keys of type K. Must be deterministic
	// and consistent with eq.
	hash HashFunc[K]
	// The key equivalence relation. Defaults to ==.
	eq EqFunc[K]
	// The allocator used for the metadata and entries arrays.
	allocator Allocator[K, V]
	// metadata is capacity bytes; the zero value means unallocated.
	metadata unsafeSlice[meta]
	// entries is capacity slots, parallel to metadata. A slot's entry is
	// only meaningful while its metadata byte has the used flag set.
	entries unsafeSlice[Entry[K, V]]
	// The total number of slots, always a power of two or zero. capacity-1
	// is the mask that reduces probe positions mod capacity.
	capacity uintptr
	// The number of used slots.
	used int
	// The number of insertions into empty slots that remain before the
	// next growth. Tombstones stay counted against the load budget, so
	// removal does not give budget back and reusing a tombstone slot does
	// not take budget away.
	growthLeft int
	// maxLoadPercentage bounds used+tombstones at
	// capacity*maxLoadPercentage/100. Fixed at construction.
	maxLoadPercentage uint64
}

// New constructs a Map with capacity for at least initialCapacity entries.
// If initialCapacity is 0 the map starts unallocated and allocates on the
// first insertion. New panics if a custom allocator fails the initial
// reservation; construct with New(0) and call Reserve to handle that
// failure gracefully.
func New[K comparable, V any](initialCapacity int, options ...Option[K, V]) *Map[K, V] {
	m := &Map[K, V]{
		hash:              defaultHashFunc[K](),
		eq:                defaultEqFunc[K](),
		allocator:         defaultAllocator[K, V]{},
		maxLoadPercentage: defaultMaxLoadPercentage,
	}
	for _, op := range options {
		op.apply(m)
	}
	if initialCapacity > 0 {
		if err := m.Reserve(initialCapacity); err != nil {
			panic(fmt.Sprintf("flathash: initial reservation failed: %v", err))
		}
	}
	m.checkInvariants()
	return m
}

// Close releases the map's storage back to its configured allocator and
// marks the map as consumed. It is unnecessary to close a map using the
// default allocator. Using a map after Close is a programming error,
// though Close itself is idempotent.
func (m *Map[K, V]) Close() {
	m.ClearAndFree()
	m.allocator = nil
	m.hash = nil
	m.eq = nil
}

// Get retrieves the value for the specified key, returning ok=false if the
// key is not present. Get never allocates.
func (m *Map[K, V]) Get(key K) (value V, ok bool) {
	i, ok := m.find(key)
	if !ok {
		return value, false
	}
	return m.entries.At(i).Value, true
}

// GetPtr returns a pointer to the value for the specified key, or nil if
// the key is not present. The pointer is invalidated by any modifying call
// on the map.
func (m *Map[K, V]) GetPtr(key K) *V {
	i, ok := m.find(key)
	if !ok {
		return nil
	}
	return &m.entries.At(i).Value
}

// Contains reports whether the key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.find(key)
	return ok
}

// find walks the probe chain for key and returns the index of its slot.
// The walk inspects one metadata byte per slot and only dereferences the
// entry on a full metadata match (used flag plus fingerprint). The first
// empty byte terminates: the chain invariant guarantees no entry for the
// key lives past an empty slot. Tombstones compare unequal to every used
// byte and so are skipped without terminating.
func (m *Map[K, V]) find(key K) (index uintptr, ok bool) {
	if m.capacity == 0 {
		return 0, false
	}
	h := m.hash(key)
	want := metaForHash(h)
	mask := m.capacity - 1
	if debug {
		fmt.Printf("find(%v): start=%d meta=%02x\n", key, uintptr(h)&mask, want)
	}
	for i := uintptr(h) & mask; ; i = (i + 1) & mask {
		md := *m.metadata.At(i)
		if md == want && m.eq(key, m.entries.At(i).Key) {
			return i, true
		}
		if md == metaEmpty {
			return 0, false
		}
	}
}

// GetOrPut returns a pointer to the value for key, inserting the key if it
// is not already present. When found is false the entry was just installed
// and *v is the zero value; the caller must set it before any other call
// on the map. GetOrPut grows the table as needed and reports allocation
// failure without modifying the map.
func (m *Map[K, V]) GetOrPut(key K) (v *V, found bool, err error) {
	if err := m.ensureUnusedCapacity(1); err != nil {
		return nil, false, err
	}
	i, found := m.insertSlot(key)
	m.checkInvariants()
	return &m.entries.At(i).Value, found, nil
}

// GetOrPutAssumeCapacity is GetOrPut minus the growth check: the caller
// asserts, typically via a prior Reserve, that capacity for one more
// insertion is available. Inserting a new key without that capacity is a
// programming error and panics.
func (m *Map[K, V]) GetOrPutAssumeCapacity(key K) (v *V, found bool) {
	if m.capacity == 0 {
		panic("flathash: GetOrPutAssumeCapacity on an unallocated map")
	}
	i, found := m.insertSlot(key)
	m.checkInvariants()
	return &m.entries.At(i).Value, found
}

// Put inserts an entry into the map, overwriting an existing value if an
// entry with an equal key already exists.
func (m *Map[K, V]) Put(key K, value V) error {
	v, _, err := m.GetOrPut(key)
	if err != nil {
		return err
	}
	*v = value
	return nil
}

// PutNoClobber inserts an entry that must not already be present. Calling
// it with a key already in the map is a programming error and panics.
func (m *Map[K, V]) PutNoClobber(key K, value V) error {
	v, found, err := m.GetOrPut(key)
	if err != nil {
		return err
	}
	if found {
		panic("flathash: PutNoClobber of an existing key")
	}
	*v = value
	return nil
}

// PutAssumeCapacityNoClobber inserts an entry that must not already be
// present into a map with capacity already reserved. It never allocates.
func (m *Map[K, V]) PutAssumeCapacityNoClobber(key K, value V) {
	v, found := m.GetOrPutAssumeCapacity(key)
	if found {
		panic("flathash: PutAssumeCapacityNoClobber of an existing key")
	}
	*v = value
}

// insertSlot returns the slot index for key, installing a new entry if the
// key is absent. The caller has already guaranteed capacity. New entries
// reuse the first tombstone encountered on the probe chain when there is
// one; otherwise they take the empty slot that terminated the walk. Either
// choice lies on the key's own chain, so the chain invariant is preserved.
func (m *Map[K, V]) insertSlot(key K) (index uintptr, found bool) {
	h := m.hash(key)
	want := metaForHash(h)
	mask := m.capacity - 1
	if debug {
		fmt.Printf("insert(%v): start=%d meta=%02x growth-left=%d\n",
			key, uintptr(h)&mask, want, m.growthLeft)
	}

	firstTombstone := m.capacity // sentinel: none seen yet
	i := uintptr(h) & mask
	for {
		md := *m.metadata.At(i)
		if md == want && m.eq(key, m.entries.At(i).Key) {
			return i, true
		}
		if md == metaEmpty {
			break
		}
		if md.tombstone() && firstTombstone == m.capacity {
			firstTombstone = i
		}
		i = (i + 1) & mask
	}

	// The key is absent and will be installed. The load budget must not be
	// exhausted here regardless of which slot kind hosts the entry; a zero
	// budget means the caller skipped the growth check.
	if m.growthLeft <= 0 {
		panic("flathash: insertion with no remaining load budget")
	}
	if firstTombstone != m.capacity {
		// A tombstone slot already counts against the load budget, so the
		// budget is unchanged.
		i = firstTombstone
	} else {
		m.growthLeft--
	}
	*m.metadata.At(i) = want
	m.entries.At(i).Key = key
	m.used++
	if debug {
		fmt.Printf("insert(%v): index=%d used=%d growth-left=%d\n", key, i, m.used, m.growthLeft)
	}
	return i, false
}

// Remove removes the entry for key if present, returning the removed entry
// by value. The slot becomes a tombstone and its storage is zeroed so the
// map no longer references the removed key or value.
func (m *Map[K, V]) Remove(key K) (removed Entry[K, V], ok bool) {
	i, ok := m.find(key)
	if !ok {
		return removed, false
	}
	e := m.entries.At(i)
	removed = *e
	*e = Entry[K, V]{}
	*m.metadata.At(i) = metaTombstone
	m.used--
	if debug {
		fmt.Printf("remove(%v): index=%d used=%d growth-left=%d\n", key, i, m.used, m.growthLeft)
	}
	m.checkInvariants()
	return removed, true
}

// MustRemove removes the entry for key, panicking if the key is absent.
func (m *Map[K, V]) MustRemove(key K) Entry[K, V] {
	removed, ok := m.Remove(key)
	if !ok {
		panic("flathash: MustRemove of a missing key")
	}
	return removed
}

// Reserve arranges for n subsequent insertions to proceed without
// allocating, provided no intervening removals create tombstones that eat
// into the load budget. Reserve is a no-op when the current capacity
// already suffices.
func (m *Map[K, V]) Reserve(n int) error {
	if n <= 0 {
		return nil
	}
	return m.ensureUnusedCapacity(n)
}

// ensureUnusedCapacity grows the table until at least n insertions fit in
// the remaining load budget.
func (m *Map[K, V]) ensureUnusedCapacity(n int) error {
	if m.capacity > 0 && m.growthLeft >= n {
		return nil
	}
	newCapacity := m.capacityForSize(uint64(m.load() + n))
	if newCapacity < minimalCapacity {
		newCapacity = minimalCapacity
	}
	return m.grow(newCapacity)
}

// ClearRetainingCapacity removes all entries but keeps the current
// allocation: the metadata bytes reset to empty, the entries are zeroed,
// and the full load budget is restored.
func (m *Map[K, V]) ClearRetainingCapacity() {
	if m.capacity == 0 {
		return
	}
	clear(m.metadata.Slice(0, m.capacity))
	clear(m.entries.Slice(0, m.capacity))
	m.used = 0
	m.growthLeft = m.maxLoad(m.capacity)
	m.checkInvariants()
}

// ClearAndFree removes all entries and releases the allocation, returning
// the map to its unallocated state.
func (m *Map[K, V]) ClearAndFree() {
	if m.capacity == 0 {
		return
	}
	m.allocator.FreeEntries(m.entries.Slice(0, m.capacity))
	m.allocator.FreeMetadata(unsafeConvertSlice[uint8](m.metadata.Slice(0, m.capacity)))
	m.metadata = unsafeSlice[meta]{}
	m.entries = unsafeSlice[Entry[K, V]]{}
	m.capacity = 0
	m.used = 0
	m.growthLeft = 0
}

// Clone returns an independent map holding the same entries. The clone's
// capacity is computed from the entry count alone, its probe chains are
// rebuilt from scratch, and it carries no tombstones. Keys and values are
// copied with Go's ordinary value-copy semantics: pointerful keys or
// values alias their referents between the two maps.
func (m *Map[K, V]) Clone() (*Map[K, V], error) {
	c := &Map[K, V]{
		hash:              m.hash,
		eq:                m.eq,
		allocator:         m.allocator,
		maxLoadPercentage: m.maxLoadPercentage,
	}
	if m.used == 0 {
		return c, nil
	}
	newCapacity := c.capacityForSize(uint64(m.used))
	if newCapacity < minimalCapacity {
		newCapacity = minimalCapacity
	}
	if err := c.grow(newCapacity); err != nil {
		return nil, err
	}
	for i := uintptr(0); i < m.capacity; i++ {
		if m.metadata.At(i).used() {
			e := m.entries.At(i)
			c.uncheckedPut(c.hash(e.Key), e)
			c.used++
		}
	}
	c.checkInvariants()
	return c, nil
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	return m.used
}

// Capacity returns the total number of slots. It is zero before the first
// allocation and a power of two afterwards.
func (m *Map[K, V]) Capacity() int {
	return int(m.capacity)
}

// Iterator is a cursor over the map's slots. It is single-pass: obtain a
// fresh Iterator to restart. Any modifying call on the map invalidates
// outstanding iterators.
type Iterator[K comparable, V any] struct {
	metadata unsafeSlice[meta]
	entries  unsafeSlice[Entry[K, V]]
	capacity uintptr
	index    uintptr
}

// Iter returns an iterator positioned before the first entry. Iteration
// order is arbitrary and must not be relied upon.
func (m *Map[K, V]) Iter() Iterator[K, V] {
	return Iterator[K, V]{
		metadata: m.metadata,
		entries:  m.entries,
		capacity: m.capacity,
	}
}

// Next advances to the next used slot and returns its entry, or nil once
// the slots are exhausted. The entry pointer is valid until the map is
// modified; Value may be updated through it, Key must not be.
func (it *Iterator[K, V]) Next() *Entry[K, V] {
	for it.index < it.capacity {
		i := it.index
		it.index++
		if it.metadata.At(i).used() {
			return it.entries.At(i)
		}
	}
	return nil
}

// All calls yield for each key and value present in the map, stopping
// early if yield returns false. The map must not be mutated during the
// iteration.
func (m *Map[K, V]) All(yield func(key K, value V) bool) {
	it := m.Iter()
	for e := it.Next(); e != nil; e = it.Next() {
		if !yield(e.Key, e.Value) {
			return
		}
	}
}

// maxLoad returns the load budget for a capacity: the maximum value of
// used+tombstones before growth is mandatory.
func (m *Map[K, V]) maxLoad(capacity uintptr) int {
	return int(uint64(capacity) * m.maxLoadPercentage / 100)
}

// load returns used+tombstones, the occupied-or-previously-occupied slot
// count the load factor is measured against.
func (m *Map[K, V]) load() int {
	return m.maxLoad(m.capacity) - m.growthLeft
}

// capacityForSize returns the smallest power-of-two capacity that holds n
// entries while staying strictly under the max load percentage.
func (m *Map[K, V]) capacityForSize(n uint64) uintptr {
	needed := (n*100+m.maxLoadPercentage-1)/m.maxLoadPercentage + 1
	return uintptr(1) << bits.Len64(needed-1)
}

// grow replaces the current allocation with one of newCapacity slots,
// reinserting every live entry and dropping all tombstones. On allocation
// failure the map is left exactly as it was and the partial allocation is
// released.
func (m *Map[K, V]) grow(newCapacity uintptr) error {
	newMetadata, err := m.allocator.AllocMetadata(int(newCapacity))
	if err != nil {
		return fmt.Errorf("flathash: alloc metadata: %w", err)
	}
	newEntries, err := m.allocator.AllocEntries(int(newCapacity))
	if err != nil {
		m.allocator.FreeMetadata(newMetadata)
		return fmt.Errorf("flathash: alloc entries: %w", err)
	}
	clear(newMetadata)

	oldMetadata, oldEntries, oldCapacity := m.metadata, m.entries, m.capacity
	m.metadata = makeUnsafeSlice(unsafeConvertSlice[meta](newMetadata))
	m.entries = makeUnsafeSlice(newEntries)
	m.capacity = newCapacity
	m.growthLeft = m.maxLoad(newCapacity)
	if debug {
		fmt.Printf("grow: capacity=%d->%d growth-left=%d\n", oldCapacity, newCapacity, m.growthLeft)
	}

	for i := uintptr(0); i < oldCapacity; i++ {
		if oldMetadata.At(i).used() {
			e := oldEntries.At(i)
			m.uncheckedPut(m.hash(e.Key), e)
		}
	}

	if oldCapacity > 0 {
		m.allocator.FreeEntries(oldEntries.Slice(0, oldCapacity))
		m.allocator.FreeMetadata(unsafeConvertSlice[uint8](oldMetadata.Slice(0, oldCapacity)))
	}

	m.checkInvariants()
	return nil
}

// uncheckedPut installs an entry known not to be in the table into the
// first empty slot on its probe chain. Used when rebuilding chains during
// growth and cloning, where the destination table has no tombstones. It
// takes one unit of growthLeft and leaves used unchanged: growth keeps the
// existing count, and Clone increments used itself.
func (m *Map[K, V]) uncheckedPut(h uint64, e *Entry[K, V]) {
	mask := m.capacity - 1
	i := uintptr(h) & mask
	for *m.metadata.At(i) != metaEmpty {
		i = (i + 1) & mask
	}
	*m.metadata.At(i) = metaForHash(h)
	*m.entries.At(i) = *e
	m.growthLeft--
}

// countTombstones scans the metadata for tombstone slots.
func (m *Map[K, V]) countTombstones() int {
	var n int
	for i := uintptr(0); i < m.capacity; i++ {
		if m.metadata.At(i).tombstone() {
			n++
		}
	}
	return n
}

func (m *Map[K, V]) checkInvariants() {
	if invariants {
		if m.capacity == 0 {
			if m.used != 0 || m.growthLeft != 0 {
				panic(fmt.Sprintf("invariant failed: unallocated map with used=%d growth-left=%d",
					m.used, m.growthLeft))
			}
			return
		}
		if m.capacity&(m.capacity-1) != 0 {
			panic(fmt.Sprintf("invariant failed: capacity %d is not a power of two", m.capacity))
		}

		var used, tombstones int
		for i := uintptr(0); i < m.capacity; i++ {
			md := *m.metadata.At(i)
			switch {
			case md == metaEmpty:
			case md.used() && md.tombstone():
				panic(fmt.Sprintf("invariant failed: slot %d is both used and tombstone\n%s",
					i, m.debugString()))
			case md.tombstone():
				if md != metaTombstone {
					panic(fmt.Sprintf("invariant failed: tombstone at slot %d carries extra bits: %02x", i, md))
				}
				tombstones++
			default:
				e := m.entries.At(i)
				h := m.hash(e.Key)
				if md != metaForHash(h) {
					panic(fmt.Sprintf("invariant failed: slot %d metadata %02x does not match hash byte %02x\n%s",
						i, md, metaForHash(h), m.debugString()))
				}
				if j, ok := m.find(e.Key); !ok || j != i {
					panic(fmt.Sprintf("invariant failed: slot %d key %v not reachable by its probe chain\n%s",
						i, e.Key, m.debugString()))
				}
				used++
			}
		}

		if used != m.used {
			panic(fmt.Sprintf("invariant failed: found %d used slots, but used count is %d\n%s",
				used, m.used, m.debugString()))
		}
		if budget := m.maxLoad(m.capacity); used+tombstones > budget {
			panic(fmt.Sprintf("invariant failed: load %d exceeds budget %d\n%s",
				used+tombstones, budget, m.debugString()))
		}
		if want := m.maxLoad(m.capacity) - (used + tombstones); want != m.growthLeft {
			panic(fmt.Sprintf("invariant failed: growth-left is %d, expected %d\n%s",
				m.growthLeft, want, m.debugString()))
		}
	}
}

func (m *Map[K, V]) debugString() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "capacity=%d  used=%d  growth-left=%d\n", m.capacity, m.used, m.growthLeft)
	for i := uintptr(0); i < m.capacity; i++ {
		switch md := *m.metadata.At(i); {
		case md == metaEmpty:
			fmt.Fprintf(&buf, "  %4d: empty\n", i)
		case md.tombstone():
			fmt.Fprintf(&buf, "  %4d: tombstone\n", i)
		default:
			e := m.entries.At(i)
			fmt.Fprintf(&buf, "  %4d: %v [meta=%02x want=%02x]\n",
				i, e.Key, md, metaForHash(m.hash(e.Key)))
		}
	}
	return buf.String()
}

// unsafeSlice provides semi-ergonomic limited slice-like functionality
// without bounds checking for fixed sized slices.
type unsafeSlice[T any] struct {
	ptr unsafe.Pointer
}

func makeUnsafeSlice[T any](s []T) unsafeSlice[T] {
	return unsafeSlice[T]{ptr: unsafe.Pointer(unsafe.SliceData(s))}
}

// At returns a pointer to the element at index i.
func (s unsafeSlice[T]) At(i uintptr) *T {
	var t T
	return (*T)(unsafe.Add(s.ptr, unsafe.Sizeof(t)*i))
}

// Slice returns a Go slice akin to slice[start:end] for a Go builtin slice.
func (s unsafeSlice[T]) Slice(start, end uintptr) []T {
	return unsafe.Slice((*T)(s.ptr), end)[start:end]
}

func unsafeConvertSlice[Dest any, Src any](s []Src) []Dest {
	return unsafe.Slice((*Dest)(unsafe.Pointer(unsafe.SliceData(s))), len(s))
}
