package core

import (
	"regexp"
	"sort"
	"unicode/utf8"
)

// record is one logged substitution: the half-open range [origStart, origEnd)
// in the *original* input that replacementText stands in for. Ranges are
// pairwise disjoint across the whole log — this is the only reason the
// final character map is computable.
type record struct {
	origStart, origEnd int
	replacement        string
}

// TrackedBuffer is the rewrite substrate: a text buffer that records every
// substitution against the original input, so that after a sequence of
// independent regex passes the full original->rewritten character map can
// still be reconstructed.
//
// Not safe for concurrent use; callers create one TrackedBuffer per
// Pipeline.Process call, per the single-threaded-per-call model.
type TrackedBuffer struct {
	original []rune
	current  string
	records  []record
	diag     *Diagnostics
}

// NewBuffer creates a TrackedBuffer over input. diag may be nil, in which
// case dropped substitutions are silently uncounted.
func NewBuffer(input string, diag *Diagnostics) *TrackedBuffer {
	return &TrackedBuffer{
		original: []rune(input),
		current:  input,
		diag:     diag,
	}
}

// CurrentText returns the buffer's text as rewritten so far.
func (b *TrackedBuffer) CurrentText() string {
	return b.current
}

// OriginalLen returns the code-point length of the original input.
func (b *TrackedBuffer) OriginalLen() int {
	return len(b.original)
}

// SubRegex scans the current text for all non-overlapping matches of re and
// replaces each with rewrite's result, processing matches right to left so
// that earlier edits in the pass never shift the position of a later one.
// Each accepted match is logged against its range in the *original* input.
// A match whose translated original range would intersect an
// already-logged record is silently dropped and counted as OverlapDropped.
// Returns the number of replacements actually applied.
func (b *TrackedBuffer) SubRegex(re *regexp.Regexp, rewrite func(groups []string) string) int {
	matches := re.FindAllStringSubmatchIndex(b.current, -1)
	return b.applyMatches(matches, rewrite)
}

// ReplaceLiteral replaces up to maxCount non-overlapping literal occurrences
// of old with newText (maxCount < 0 means unlimited), using the same
// tracked-substitution machinery as SubRegex.
func (b *TrackedBuffer) ReplaceLiteral(old, newText string, maxCount int) int {
	if old == "" {
		return 0
	}
	re := regexp.MustCompile(regexp.QuoteMeta(old))
	matches := re.FindAllStringIndex(b.current, maxCount)
	idx := make([][]int, len(matches))
	for i, m := range matches {
		idx[i] = m
	}
	return b.applyMatches(idx, func([]string) string { return newText })
}

// applyMatches is the shared right-to-left substitution loop used by
// SubRegex and ReplaceLiteral.
func (b *TrackedBuffer) applyMatches(matches [][]int, rewrite func(groups []string) string) int {
	applied := 0
	for i := len(matches) - 1; i >= 0; i-- {
		idx := matches[i]
		curStartByte, curEndByte := idx[0], idx[1]
		curStart := runeOffset(b.current, curStartByte)
		curEnd := runeOffset(b.current, curEndByte)

		origStart := b.currentToOriginal(curStart, false)
		origEnd := b.currentToOriginal(curEnd, true)

		if b.overlapsLogged(origStart, origEnd) {
			if b.diag != nil {
				b.diag.OverlapDropped++
			}
			continue
		}

		groups := submatchGroups(b.current, idx)
		replacement := rewrite(groups)

		b.current = b.current[:curStartByte] + replacement + b.current[curEndByte:]
		b.addRecord(origStart, origEnd, replacement)
		applied++
	}
	return applied
}

// currentToOriginal translates a code-point offset in the current text to
// the corresponding offset in the original input: walk the log
// (sorted by origStart) tracking the accumulated length delta; a position
// strictly before a record translates by the delta accumulated so far, a
// position strictly inside a record's replacement clamps to that record's
// original boundary, and a position at or after a record's end continues
// past it with the delta updated. An end offset equal to a record's start
// stays before that record, so a match that ends where a deletion was made
// does not claim the deleted span.
func (b *TrackedBuffer) currentToOriginal(curOffset int, isEnd bool) int {
	delta := 0
	for _, r := range b.records {
		curStart := r.origStart + delta
		replLen := utf8.RuneCountInString(r.replacement)
		curEnd := curStart + replLen

		if curOffset < curStart || (isEnd && curOffset == curStart) {
			break
		}
		if curOffset < curEnd {
			if isEnd {
				return r.origEnd
			}
			return r.origStart
		}
		delta += replLen - (r.origEnd - r.origStart)
	}
	return curOffset - delta
}

// overlapsLogged reports whether [origStart, origEnd) intersects any
// already-logged record.
func (b *TrackedBuffer) overlapsLogged(origStart, origEnd int) bool {
	for _, r := range b.records {
		if origStart < r.origEnd && r.origStart < origEnd {
			return true
		}
	}
	return false
}

// addRecord appends a replacement record, keeping the log sorted by
// origStart (currentToOriginal depends on this ordering).
func (b *TrackedBuffer) addRecord(origStart, origEnd int, replacement string) {
	b.records = append(b.records, record{origStart: origStart, origEnd: origEnd, replacement: replacement})
	sort.Slice(b.records, func(i, j int) bool { return b.records[i].origStart < b.records[j].origStart })
}

// BuildMapping produces the final rewritten text together with its
// character map: walk the
// original left to right, emitting one (i, i+1) entry per untouched code
// point and len(replacement) entries of (origStart, origEnd) per record.
func (b *TrackedBuffer) BuildMapping() (string, *CharMap) {
	entries := make([]mapEntry, 0, len(b.current))
	pos := 0
	for _, r := range b.records {
		for pos < r.origStart {
			entries = append(entries, mapEntry{pos, pos + 1})
			pos++
		}
		replRuneLen := utf8.RuneCountInString(r.replacement)
		for i := 0; i < replRuneLen; i++ {
			entries = append(entries, mapEntry{r.origStart, r.origEnd})
		}
		pos = r.origEnd
	}
	for pos < len(b.original) {
		entries = append(entries, mapEntry{pos, pos + 1})
		pos++
	}
	return b.current, &CharMap{entries: entries}
}

// runeOffset converts a byte offset into s to a code-point offset.
func runeOffset(s string, byteIdx int) int {
	return utf8.RuneCountInString(s[:byteIdx])
}

// submatchGroups converts a regexp submatch byte-index slice (as returned by
// FindAllStringSubmatchIndex) into the matched strings, with "" for
// non-participating groups.
func submatchGroups(s string, idx []int) []string {
	groups := make([]string, len(idx)/2)
	for i := range groups {
		lo, hi := idx[2*i], idx[2*i+1]
		if lo < 0 || hi < 0 {
			groups[i] = ""
			continue
		}
		groups[i] = s[lo:hi]
	}
	return groups
}
