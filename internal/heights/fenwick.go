package heights

// fenwick is a binary indexed tree over int deltas.
type fenwick struct {
	tree []int
}

func newFenwick(n int) fenwick {
	return fenwick{tree: make([]int, n+1)}
}

func (f fenwick) len() int {
	return len(f.tree) - 1
}

func (f fenwick) add(i, delta int) {
	for i++; i < len(f.tree); i += i & -i {
		f.tree[i] += delta
	}
}

// prefix sums the first n values.
func (f fenwick) prefix(n int) int {
	if n > f.len() {
		n = f.len()
	}
	sum := 0
	for ; n > 0; n -= n & -n {
		sum += f.tree[n]
	}
	return sum
}
