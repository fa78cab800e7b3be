package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"tabdeck/internal/collection"
)

// Adder is the part of a collection controller the input adapters drive.
type Adder interface {
	Add(raw string) error
}

// TaskInput is the single-line task entry. Enter commits.
type TaskInput struct {
	field  textinput.Model
	target Adder
}

func NewTaskInput(target Adder) TaskInput {
	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	ti.Width = 40
	ti.Prompt = "+ "
	ti.CharLimit = 0
	return TaskInput{field: ti, target: target}
}

// Commit adds the field's content and clears the field. Blank input is
// ignored and left in place.
func (t *TaskInput) Commit() (bool, error) {
	if strings.TrimSpace(t.field.Value()) == "" {
		return false, nil
	}
	if err := t.target.Add(t.field.Value()); err != nil {
		return false, err
	}
	t.field.SetValue("")
	return true, nil
}

// LinkPrompt is the modal URL prompt. While open it owns all key input.
type LinkPrompt struct {
	field  textinput.Model
	target Adder
	open   bool
}

func NewLinkPrompt(target Adder) LinkPrompt {
	ti := textinput.New()
	ti.Placeholder = "https://"
	ti.Width = 48
	ti.Prompt = "URL: "
	ti.CharLimit = 0
	return LinkPrompt{field: ti, target: target}
}

func (p *LinkPrompt) Show() {
	p.field.SetValue("")
	p.field.Focus()
	p.open = true
}

func (p *LinkPrompt) Hide() {
	p.field.Blur()
	p.field.SetValue("")
	p.open = false
}

func (p LinkPrompt) Open() bool { return p.open }

// Submit closes the prompt and adds its response. The returned notice is
// non-empty when the link was rejected and the user must be told why.
func (p *LinkPrompt) Submit() (notice string, added bool) {
	resp := p.field.Value()
	p.Hide()
	if strings.TrimSpace(resp) == "" {
		return "", false
	}
	if err := p.target.Add(resp); err != nil {
		if n := collection.Notice(err); n != "" {
			return n, false
		}
		return err.Error(), false
	}
	return "", true
}
