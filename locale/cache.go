/*
Copyright 2026 Imetext Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package locale

import "sync"

// Cache memoizes FromString results by input string. It is append-only and
// never evicts; identical input strings always yield the identical parsed
// value. A Cache is safe for concurrent use by multiple goroutines.
//
// Construct one Cache at application startup and share it by reference,
// rather than relying on process-wide state.
type Cache struct {
	mu      sync.Mutex
	entries map[string]Locale
}

// NewCache creates an empty locale cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]Locale)}
}

// Get returns the locale for the given canonical string, parsing and
// recording it on first use. The lookup-or-insert runs under a single lock
// acquisition and the lock is never held across calls outside the package.
func (c *Cache) Get(s string) Locale {
	c.mu.Lock()
	defer c.mu.Unlock()
	if l, ok := c.entries[s]; ok {
		return l
	}
	l := FromString(s)
	c.entries[s] = l
	return l
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
