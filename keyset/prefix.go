package keyset

// PrefixRange returns the smallest key range [start, end) covering every
// key that begins with prefix. end is the prefix's byte-wise successor: the
// shortest key that sorts after all prefixed keys. A nil end means the
// range is unbounded above, which happens for an empty prefix and for a
// prefix of all 0xff bytes.
//
// The returned start aliases prefix; end is freshly allocated.
func PrefixRange(prefix []byte) (start, end []byte) {
	if len(prefix) == 0 {
		return nil, nil
	}

	// Strip trailing 0xff bytes: they have no successor, so the bound
	// moves to the nearest incrementable byte.
	i := len(prefix) - 1
	for ; i >= 0; i-- {
		if prefix[i] != 0xff {
			break
		}
	}
	if i < 0 {
		return prefix, nil
	}

	end = make([]byte, i+1)
	copy(end, prefix[:i+1])
	end[i]++

	return prefix, end
}
