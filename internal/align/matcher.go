package align

import (
	"cmp"
	"slices"
)

// autoJunkMinLength is the recognized-sequence length at which popular
// elements stop being indexed.
const autoJunkMinLength = 200

// sequenceMatcher finds matching blocks between two token sequences. It
// mirrors difflib.SequenceMatcher with no junk predicate.
type sequenceMatcher struct {
	a   []string
	b   []string
	b2j map[string][]int
}

func newSequenceMatcher(a, b []string, autoJunk bool) *sequenceMatcher {
	b2j := make(map[string][]int)
	for j, elt := range b {
		b2j[elt] = append(b2j[elt], j)
	}
	if autoJunk && len(b) >= autoJunkMinLength {
		limit := len(b)/100 + 1
		for elt, positions := range b2j {
			if len(positions) > limit {
				delete(b2j, elt)
			}
		}
	}
	return &sequenceMatcher{a: a, b: b, b2j: b2j}
}

// findLongestMatch returns the longest block inside a[alo:ahi] and b[blo:bhi].
// Among equally long blocks the one starting earliest in a wins, then the one
// starting earliest in b. The block is then widened over equal neighbours,
// which lets it absorb popular elements the index skipped.
func (m *sequenceMatcher) findLongestMatch(alo, ahi, blo, bhi int) MatchingBlock {
	besti, bestj, bestSize := alo, blo, 0

	// j2len[j] is the length of the match ending at a[i-1] and b[j].
	j2len := map[int]int{}
	for i := alo; i < ahi; i++ {
		next := make(map[int]int)
		for _, j := range m.b2j[m.a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			next[j] = k
			if k > bestSize {
				besti, bestj, bestSize = i-k+1, j-k+1, k
			}
		}
		j2len = next
	}

	for besti > alo && bestj > blo && m.a[besti-1] == m.b[bestj-1] {
		besti--
		bestj--
		bestSize++
	}
	for besti+bestSize < ahi && bestj+bestSize < bhi && m.a[besti+bestSize] == m.b[bestj+bestSize] {
		bestSize++
	}

	return MatchingBlock{A: besti, B: bestj, Size: bestSize}
}

type searchRange struct {
	alo, ahi, blo, bhi int
}

func (m *sequenceMatcher) matchingBlocks() []MatchingBlock {
	la, lb := len(m.a), len(m.b)

	// Ranges still to search; an explicit stack keeps depth off the call stack.
	pending := []searchRange{{0, la, 0, lb}}
	var found []MatchingBlock
	for len(pending) > 0 {
		r := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		block := m.findLongestMatch(r.alo, r.ahi, r.blo, r.bhi)
		if block.Size == 0 {
			continue
		}
		found = append(found, block)
		if r.alo < block.A && r.blo < block.B {
			pending = append(pending, searchRange{r.alo, block.A, r.blo, block.B})
		}
		if block.A+block.Size < r.ahi && block.B+block.Size < r.bhi {
			pending = append(pending, searchRange{block.A + block.Size, r.ahi, block.B + block.Size, r.bhi})
		}
	}

	slices.SortFunc(found, func(x, y MatchingBlock) int {
		if c := cmp.Compare(x.A, y.A); c != 0 {
			return c
		}
		if c := cmp.Compare(x.B, y.B); c != 0 {
			return c
		}
		return cmp.Compare(x.Size, y.Size)
	})

	// Adjacent blocks found in separate ranges collapse into one.
	blocks := make([]MatchingBlock, 0, len(found)+1)
	var cur MatchingBlock
	for _, next := range found {
		if cur.A+cur.Size == next.A && cur.B+cur.Size == next.B {
			cur.Size += next.Size
			continue
		}
		if cur.Size > 0 {
			blocks = append(blocks, cur)
		}
		cur = next
	}
	if cur.Size > 0 {
		blocks = append(blocks, cur)
	}

	return append(blocks, MatchingBlock{A: la, B: lb, Size: 0})
}

// MatchingBlocks returns the matching blocks between the canonical reference
// tokens a and the canonical recognized tokens b, ordered by position in a and
// terminated by the zero-size block (len(a), len(b), 0).
//
// The search is greedy: the longest block is fixed first and the remainders on
// either side are searched independently, so a shorter but better-placed match
// can lose to a longer one. That choice matches difflib and is relied on for
// output parity.
func MatchingBlocks(a, b []string, autoJunk bool) []MatchingBlock {
	return newSequenceMatcher(a, b, autoJunk).matchingBlocks()
}

// IndexMap expands blocks into a reference index to recognized index mapping.
// Blocks are disjoint in both sequences, so no position is assigned twice.
func IndexMap(blocks []MatchingBlock) map[int]int {
	total := 0
	for _, block := range blocks {
		total += block.Size
	}
	index := make(map[int]int, total)
	for _, block := range blocks {
		for k := 0; k < block.Size; k++ {
			index[block.A+k] = block.B + k
		}
	}
	return index
}

// Ratio returns 2*M/T for the given blocks, where M is the number of matched
// tokens and T = lenA + lenB. Two empty sequences are identical, so 1.
func Ratio(blocks []MatchingBlock, lenA, lenB int) float64 {
	total := lenA + lenB
	if total == 0 {
		return 1
	}
	matched := 0
	for _, block := range blocks {
		matched += block.Size
	}
	return 2 * float64(matched) / float64(total)
}
