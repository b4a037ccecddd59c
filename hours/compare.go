package hours

// CompareByOpenStatus orders computed statuses three ways: open listings
// first, then closed listings whose text was at least recognized, then
// listings with no status at all (nil). Ties compare equal so that a stable
// sort preserves the original relative order; secondary keys such as name or
// distance are the caller's concern, applied as an independent pass.
func CompareByOpenStatus(a, b *OpenStatus) int {
	ra, rb := statusRank(a), statusRank(b)
	switch {
	case ra < rb:
		return -1
	case ra > rb:
		return 1
	default:
		return 0
	}
}

func statusRank(s *OpenStatus) int {
	switch {
	case s == nil:
		return 2
	case s.IsOpen:
		return 0
	default:
		return 1
	}
}
