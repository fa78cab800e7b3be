package render

import (
	"errors"

	"tabdeck/internal/collection"
)

// LinkRel is attached to every link node. Openers honour it by launching the
// URL without referrer or opener context.
const LinkRel = "noopener noreferrer"

var ErrStaleTrigger = errors.New("removal trigger is from an earlier render")

type Node struct {
	Index       int
	Label       string
	Href        string
	Rel         string
	Placeholder bool

	remove func() error
}

// Remove fires the node's removal trigger. Placeholders have none.
func (n Node) Remove() error {
	if n.remove == nil {
		return nil
	}
	return n.remove()
}

// List holds the nodes of the most recent render. Triggers capture their
// position at render time, so only the latest generation may fire.
type List struct {
	kind        collection.Kind
	placeholder string
	nodes       []Node
	gen         int
}

func NewList(kind collection.Kind, placeholder string) *List {
	l := &List{kind: kind, placeholder: placeholder}
	l.Render(nil, nil)
	return l
}

func (l *List) Kind() collection.Kind { return l.kind }

func (l *List) Render(items []string, remove func(int) error) {
	l.gen++
	gen := l.gen
	if len(items) == 0 {
		l.nodes = []Node{{Index: -1, Label: l.placeholder, Placeholder: true}}
		return
	}
	nodes := make([]Node, 0, len(items))
	for i, it := range items {
		n := Node{Index: i, Label: it}
		if l.kind == collection.KindLink {
			n.Href = it
			n.Rel = LinkRel
		}
		if remove != nil {
			idx := i
			n.remove = func() error {
				if gen != l.gen {
					return ErrStaleTrigger
				}
				return remove(idx)
			}
		}
		nodes = append(nodes, n)
	}
	l.nodes = nodes
}

func (l *List) Nodes() []Node {
	out := make([]Node, len(l.nodes))
	copy(out, l.nodes)
	return out
}

// Len counts item nodes, not the placeholder.
func (l *List) Len() int {
	if l.Empty() {
		return 0
	}
	return len(l.nodes)
}

func (l *List) Empty() bool {
	return len(l.nodes) == 1 && l.nodes[0].Placeholder
}

// Node returns the item node at i.
func (l *List) Node(i int) (Node, bool) {
	if l.Empty() || i < 0 || i >= len(l.nodes) {
		return Node{}, false
	}
	return l.nodes[i], true
}
