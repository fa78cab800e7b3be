// Package dashboard builds the two list widgets from configuration: one
// generic controller per collection kind, each with its own storage slot,
// renderer and validation policy.
package dashboard

import (
	"log/slog"

	"tabdeck/internal/collection"
	"tabdeck/internal/config"
	"tabdeck/internal/durable"
	"tabdeck/internal/render"
)

const (
	TaskPlaceholder = "No tasks yet."
	LinkPlaceholder = "No links saved."
)

type Widget struct {
	*collection.Controller
	View *render.List
	Slot *durable.Slot
}

type Dashboard struct {
	Tasks Widget
	Links Widget
}

func New(kv durable.KV, cfg config.Config, log *slog.Logger) *Dashboard {
	if log == nil {
		log = slog.Default()
	}
	d := &Dashboard{
		Tasks: newWidget(kv, cfg.TasksKey, TaskPlaceholder, collection.TaskPolicy{}, log),
		Links: newWidget(kv, cfg.LinksKey, LinkPlaceholder, collection.LinkPolicy{}, log),
	}
	log.Debug("dashboard ready", "tasks", d.Tasks.Len(), "links", d.Links.Len())
	return d
}

func newWidget(kv durable.KV, key, placeholder string, policy collection.Policy, log *slog.Logger) Widget {
	slot := durable.NewSlot(kv, key, log)
	view := render.NewList(policy.Kind(), placeholder)
	ctrl := collection.New(slot, view, policy)
	ctrl.Initialize()
	return Widget{Controller: ctrl, View: view, Slot: slot}
}
