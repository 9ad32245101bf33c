package mcs

import "sort"

// bucketSet is the A/invA/maxA structure shared by both enumeration
// variants: a slice of sorted label buckets plus the running top label.
// Grounded on the same sorted-slice membership idiom as graph.intset.go,
// generalized from adjacency sets to label buckets.
type bucketSet struct {
	a    [][]int
	maxA int
}

func newBucketSet(maxLabel int) *bucketSet {
	return &bucketSet{a: make([][]int, maxLabel+1)}
}

func (b *bucketSet) insert(label, v int) {
	s := b.a[label]
	i := sort.SearchInts(s, v)
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = v
	b.a[label] = s
}

func (b *bucketSet) remove(label, v int) {
	s := b.a[label]
	i := sort.SearchInts(s, v)
	b.a[label] = append(s[:i], s[i+1:]...)
}

func (b *bucketSet) first(label int) int {
	return b.a[label][0]
}

func (b *bucketSet) empty(label int) bool {
	return len(b.a[label]) == 0
}

func (b *bucketSet) members(label int) []int {
	return b.a[label]
}

// sinkMaxA decrements maxA past any empty buckets, stopping at the floor.
func (b *bucketSet) sinkMaxA(floor int) {
	for b.maxA > floor && b.empty(b.maxA) {
		b.maxA--
	}
}
