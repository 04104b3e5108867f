package i18n

import "fmt"

// node is one vertex of a translation tree. Exactly two variants exist:
// leaf holds a message template, branch holds named children. Trees are
// built once during construction and never mutated afterwards, so walks
// need no locking. Every walk step type-switches on the variant instead of
// poking at raw decoded values.
type node interface {
	isNode()
}

// leaf is a terminal node holding a message template.
type leaf string

// branch is an inner node holding named children.
type branch map[string]node

func (leaf) isNode()   {}
func (branch) isNode() {}

// newNode converts a decoded catalog value into a tree node. Maps become
// branches, strings become leaves, and any other scalar is stringified the
// way fmt prints it.
func newNode(value any) node {
	switch v := value.(type) {
	case string:
		return leaf(v)
	case map[string]any:
		return newBranch(v)
	case map[string]string:
		b := make(branch, len(v))
		for key, child := range v {
			b[key] = leaf(child)
		}
		return b
	default:
		return leaf(fmt.Sprintf("%v", v))
	}
}

// newBranch converts a decoded catalog map into a branch.
func newBranch(m map[string]any) branch {
	b := make(branch, len(m))
	for key, child := range m {
		b[key] = newNode(child)
	}
	return b
}

// merge grafts src into dst and returns the result. Later registrations win
// on conflict, whether leaf-vs-leaf or leaf-vs-branch.
func merge(dst, src branch) branch {
	if dst == nil {
		dst = make(branch, len(src))
	}
	for key, sn := range src {
		if sb, ok := sn.(branch); ok {
			if db, ok := dst[key].(branch); ok {
				dst[key] = merge(db, sb)
				continue
			}
		}
		dst[key] = sn
	}
	return dst
}

// resolve walks the path through the tree. Every intermediate segment must
// name a branch child and the final segment must land on a leaf; a leaf hit
// mid-path, a path that stops on a branch, or a missing child all report
// absence.
func (b branch) resolve(path []string) (string, bool) {
	var current node = b
	for _, segment := range path {
		br, ok := current.(branch)
		if !ok {
			return "", false
		}
		child, ok := br[segment]
		if !ok {
			return "", false
		}
		current = child
	}
	l, ok := current.(leaf)
	if !ok {
		return "", false
	}
	return string(l), true
}

// toMap deep-copies the branch into plain nested maps for external use.
func (b branch) toMap() map[string]any {
	out := make(map[string]any, len(b))
	for key, child := range b {
		switch v := child.(type) {
		case leaf:
			out[key] = string(v)
		case branch:
			out[key] = v.toMap()
		}
	}
	return out
}
