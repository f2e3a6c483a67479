package app

// History is the navigation stack of previously visited positions within one session.
type History struct {
	Stack []int `json:"stack"`
}

// Push places index on top of the stack.
func (h *History) Push(index int) {
	h.Stack = append(h.Stack, index)
}

// Pop removes and returns the top index; ok is false when the stack is empty.
func (h *History) Pop() (index int, ok bool) {
	if len(h.Stack) == 0 {
		return 0, false
	}
	last := len(h.Stack) - 1
	index = h.Stack[last]
	h.Stack = h.Stack[:last]
	return index, true
}

// CanGoBack reports whether Pop would yield a position.
func (h History) CanGoBack() bool {
	return len(h.Stack) > 0
}

// Len returns the stack depth.
func (h History) Len() int {
	return len(h.Stack)
}

func (h History) clone() History {
	if len(h.Stack) == 0 {
		return History{}
	}
	stack := make([]int, len(h.Stack))
	copy(stack, h.Stack)
	return History{Stack: stack}
}
