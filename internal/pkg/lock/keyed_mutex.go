// Package lock provides a keyed mutex for serializing operations that target
// the same logical entity, such as all lifecycle transitions of one parcel.
package lock

import "sync"

// KeyedMutex serializes critical sections per string key. Two goroutines
// locking different keys proceed independently; two goroutines locking the
// same key are serialized in lock-acquisition order.
//
// Mutexes are created lazily per key and kept for the lifetime of the
// KeyedMutex. The working set of keys in this application (tracking numbers
// with in-flight transitions) is small and bounded by the number of live
// parcels, so entries are not reclaimed.
//
// Example usage:
//
//	var transitions lock.KeyedMutex
//
//	unlock := transitions.Lock(trackingNumber.String())
//	defer unlock()
//	// read-check-mutate sequence for this parcel
type KeyedMutex struct {
	mutexes sync.Map // key string -> *sync.Mutex
}

// Lock acquires the mutex for the given key, blocking until it is available.
// The returned function releases the mutex; callers must invoke it on every
// exit path, typically via defer.
func (k *KeyedMutex) Lock(key string) func() {
	value, _ := k.mutexes.LoadOrStore(key, &sync.Mutex{})
	mu := value.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
