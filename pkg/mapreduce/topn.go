package mapreduce

import "sort"

// Count pairs an item with its occurrence count.
type Count struct {
	Item  string
	Count int
}

// Counter accumulates occurrence counts while remembering the order
// items were first seen, so equal counts rank in encounter order. This
// keeps top-N rankings stable across runs.
type Counter struct {
	counts map[string]int
	seen   map[string]int
	next   int
}

// NewCounter returns an empty counter.
func NewCounter() *Counter {
	return &Counter{
		counts: make(map[string]int),
		seen:   make(map[string]int),
	}
}

// Add increments item by n.
func (c *Counter) Add(item string, n int) {
	if _, ok := c.seen[item]; !ok {
		c.seen[item] = c.next
		c.next++
	}
	c.counts[item] += n
}

// Get returns the current count for item.
func (c *Counter) Get(item string) int {
	return c.counts[item]
}

// Len returns the number of distinct items.
func (c *Counter) Len() int {
	return len(c.counts)
}

// Total returns the sum of all counts.
func (c *Counter) Total() int {
	total := 0
	for _, n := range c.counts {
		total += n
	}
	return total
}

// MostCommon returns items ranked by count descending, ties broken by
// first-seen order. n <= 0 returns all items; otherwise the result is
// truncated to at most n entries.
func (c *Counter) MostCommon(n int) []Count {
	ranked := make([]Count, 0, len(c.counts))
	for item, count := range c.counts {
		ranked = append(ranked, Count{Item: item, Count: count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return c.seen[ranked[i].Item] < c.seen[ranked[j].Item]
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
