package value

// Equal reports whether a and b hold the same content. Record key order is
// ignored; list order is not. Numbers compare by exact literal, so 1 and
// 1.0 are different values. A list-like record equals the list of its
// values, since both denote the same sequence once normalized.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if IsListLike(a) && IsListLike(b) {
		return equalElements(Elements(a), Elements(b))
	}

	switch x := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case Number:
		y, ok := b.(Number)
		return ok && x == y
	case String:
		y, ok := b.(String)
		return ok && x == y
	case *Record:
		y, ok := b.(*Record)
		if !ok || x.Len() != y.Len() {
			return false
		}
		for _, f := range x.Fields {
			other, ok := y.Get(f.Key)
			if !ok || !Equal(f.Value, other) {
				return false
			}
		}
		return true
	}
	return false
}

func equalElements(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
