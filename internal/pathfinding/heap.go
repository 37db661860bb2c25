package pathfinding

type gridNode struct {
	idx int
	f   float64
	g   float64
	seq uint32
}

// less orders by f, then by insertion order so equal-cost ties resolve FIFO.
func (n gridNode) less(o gridNode) bool {
	if n.f != o.f {
		return n.f < o.f
	}
	return n.seq < o.seq
}

type nodeHeap struct {
	nodes []gridNode
	seq   uint32
}

func (h *nodeHeap) reset() {
	h.nodes = h.nodes[:0]
	h.seq = 0
}

func (h *nodeHeap) len() int {
	return len(h.nodes)
}

func (h *nodeHeap) push(n gridNode) {
	n.seq = h.seq
	h.seq++
	h.nodes = append(h.nodes, n)
	i := len(h.nodes) - 1
	for i > 0 {
		p := (i - 1) / 2
		if !n.less(h.nodes[p]) {
			break
		}
		h.nodes[i] = h.nodes[p]
		i = p
	}
	h.nodes[i] = n
}

func (h *nodeHeap) pop() (gridNode, bool) {
	if len(h.nodes) == 0 {
		return gridNode{}, false
	}
	top := h.nodes[0]
	last := h.nodes[len(h.nodes)-1]
	h.nodes = h.nodes[:len(h.nodes)-1]
	if len(h.nodes) == 0 {
		return top, true
	}
	i := 0
	for {
		left := 2*i + 1
		right := left + 1
		if left >= len(h.nodes) {
			break
		}
		smallest := left
		if right < len(h.nodes) && h.nodes[right].less(h.nodes[left]) {
			smallest = right
		}
		if !h.nodes[smallest].less(last) {
			break
		}
		h.nodes[i] = h.nodes[smallest]
		i = smallest
	}
	h.nodes[i] = last
	return top, true
}
