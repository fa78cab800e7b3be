package collection

import (
	"errors"
	"strings"
)

type Kind int

const (
	KindTask Kind = iota
	KindLink
)

func (k Kind) String() string {
	switch k {
	case KindTask:
		return "task"
	case KindLink:
		return "link"
	default:
		return "unknown"
	}
}

// Store persists the whole collection. Implementations do not report
// errors; see durable.Slot.
type Store interface {
	Load() []string
	Save(items []string)
}

// Renderer projects the collection. remove is the controller's RemoveAt and
// is what per-item triggers must call.
type Renderer interface {
	Render(items []string, remove func(int) error)
}

// Policy validates and normalizes a trimmed, non-empty value against the
// current items. It may return a rewritten value.
type Policy interface {
	Kind() Kind
	Accept(value string, items []string) (string, error)
}

var ErrOutOfRange = errors.New("index out of range")

// Controller owns one ordered collection for the lifetime of a session.
//
// Mutations run to completion (save then render) before returning, and the
// renderer's triggers are bound to positions. Callers must not interleave
// mutations from multiple goroutines.
type Controller struct {
	store  Store
	render Renderer
	policy Policy
	items  []string
}

func New(store Store, render Renderer, policy Policy) *Controller {
	return &Controller{
		store:  store,
		render: render,
		policy: policy,
		items:  []string{},
	}
}

// Initialize performs the session's only read of the store and renders it.
func (c *Controller) Initialize() []string {
	items := c.store.Load()
	if items == nil {
		items = []string{}
	}
	c.items = items
	c.refresh()
	return c.Items()
}

func (c *Controller) Add(raw string) error {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ErrEmpty
	}
	value, err := c.policy.Accept(value, c.items)
	if err != nil {
		return err
	}
	c.items = append(c.items, value)
	c.store.Save(c.Items())
	c.refresh()
	return nil
}

func (c *Controller) RemoveAt(index int) error {
	if index < 0 || index >= len(c.items) {
		return ErrOutOfRange
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
	c.store.Save(c.Items())
	c.refresh()
	return nil
}

// Refresh re-renders without mutating.
func (c *Controller) Refresh() { c.refresh() }

func (c *Controller) Items() []string {
	out := make([]string, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Controller) Len() int { return len(c.items) }

func (c *Controller) Kind() Kind { return c.policy.Kind() }

func (c *Controller) refresh() {
	if c.render == nil {
		return
	}
	c.render.Render(c.Items(), c.RemoveAt)
}
