// Package memo provides a generic, thread-safe memo table.
//
// A Table remembers every value it creates and never evicts. It backs
// per-instance caches whose key domain is small in practice and whose
// owner is short-lived, such as a gradient sampler keyed by offset:
//
//	t := memo.New[float64, string]()
//	c := t.GetOrCreate(0.5, func() string { return expensive(0.5) })
//
// # Thread Safety
//
// Table is safe for concurrent use. Hits take a read lock only.
// A Table must not be copied after creation (it contains a mutex).
package memo
