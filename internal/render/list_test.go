package render

import (
	"errors"
	"strings"
	"testing"

	"tabdeck/internal/collection"
)

func TestNewListStartsWithPlaceholder(t *testing.T) {
	l := NewList(collection.KindTask, "No tasks yet.")
	nodes := l.Nodes()
	if len(nodes) != 1 || !nodes[0].Placeholder || nodes[0].Label != "No tasks yet." {
		t.Fatalf("nodes = %+v", nodes)
	}
	if l.Len() != 0 || !l.Empty() {
		t.Fatalf("len=%d empty=%v", l.Len(), l.Empty())
	}
	if err := nodes[0].Remove(); err != nil {
		t.Fatalf("placeholder remove should be a no-op, got %v", err)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	l := NewList(collection.KindTask, "empty")
	items := []string{"a", "b", "c"}
	l.Render(items, nil)
	first := l.Lines(-1, PlainStyles())
	l.Render(items, nil)
	second := l.Lines(-1, PlainStyles())

	if len(first) != 3 || len(second) != 3 {
		t.Fatalf("line counts %d, %d", len(first), len(second))
	}
	if strings.Join(first, "\n") != strings.Join(second, "\n") {
		t.Fatalf("render differs:\n%v\n%v", first, second)
	}
}

func TestEmptyRenderHasOnePlaceholderAndNoItems(t *testing.T) {
	l := NewList(collection.KindLink, "No links saved.")
	l.Render([]string{"https://a.example"}, nil)
	l.Render([]string{}, nil)
	nodes := l.Nodes()
	if len(nodes) != 1 || !nodes[0].Placeholder {
		t.Fatalf("nodes = %+v", nodes)
	}
	if _, ok := l.Node(0); ok {
		t.Fatal("placeholder must not be addressable as an item")
	}
	if got := l.Lines(0, PlainStyles()); len(got) != 1 || got[0] != "No links saved." {
		t.Fatalf("lines = %q", got)
	}
}

func TestTriggersBindRenderTimeIndex(t *testing.T) {
	l := NewList(collection.KindTask, "empty")
	var got []int
	remove := func(i int) error {
		got = append(got, i)
		return nil
	}
	l.Render([]string{"a", "b", "c"}, remove)
	n, ok := l.Node(2)
	if !ok {
		t.Fatal("missing node 2")
	}
	if err := n.Remove(); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(got) != 1 || got[0] != 2 {
		t.Fatalf("remove called with %v", got)
	}
}

func TestStaleTriggerIsRejected(t *testing.T) {
	l := NewList(collection.KindTask, "empty")
	calls := 0
	remove := func(int) error {
		calls++
		return nil
	}
	l.Render([]string{"a", "b"}, remove)
	stale, _ := l.Node(1)
	l.Render([]string{"b"}, remove)

	if err := stale.Remove(); !errors.Is(err, ErrStaleTrigger) {
		t.Fatalf("stale remove err = %v", err)
	}
	if calls != 0 {
		t.Fatalf("stale trigger reached remove %d times", calls)
	}
	fresh, _ := l.Node(0)
	if err := fresh.Remove(); err != nil || calls != 1 {
		t.Fatalf("fresh remove err=%v calls=%d", err, calls)
	}
}

func TestLinkNodesCarryHrefAndRel(t *testing.T) {
	l := NewList(collection.KindLink, "No links saved.")
	l.Render([]string{"https://example.com"}, nil)
	n, ok := l.Node(0)
	if !ok {
		t.Fatal("missing node")
	}
	if n.Href != "https://example.com" || n.Rel != LinkRel || n.Label != "https://example.com" {
		t.Fatalf("node = %+v", n)
	}

	task := NewList(collection.KindTask, "empty")
	task.Render([]string{"https://example.com"}, nil)
	tn, _ := task.Node(0)
	if tn.Href != "" || tn.Rel != "" {
		t.Fatalf("task nodes must not be links: %+v", tn)
	}
}

func TestLinesHyperlinkAndCursor(t *testing.T) {
	l := NewList(collection.KindLink, "none")
	l.Render([]string{"https://a.example", "https://b.example"}, nil)

	st := PlainStyles()
	st.Hyperlinks = true
	lines := l.Lines(1, st)
	if len(lines) != 2 {
		t.Fatalf("lines = %q", lines)
	}
	if !strings.HasPrefix(lines[1], ">  2.") {
		t.Fatalf("cursor line = %q", lines[1])
	}
	if !strings.Contains(lines[0], "\x1b]8;;https://a.example") {
		t.Fatalf("expected OSC 8 hyperlink in %q", lines[0])
	}

	plain := l.Lines(-1, PlainStyles())
	if plain[0] != "   1. https://a.example" {
		t.Fatalf("plain line = %q", plain[0])
	}
}
