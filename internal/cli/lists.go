package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tabdeck/internal/collection"
	"tabdeck/internal/dashboard"
	"tabdeck/internal/render"
)

func newTasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List, add and remove tasks",
	}
	pick := func(d *dashboard.Dashboard) dashboard.Widget { return d.Tasks }
	cmd.AddCommand(newListCmd(app, "tasks", pick))
	cmd.AddCommand(&cobra.Command{
		Use:   "add <text...>",
		Short: "Append a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withWidget(pick, func(w dashboard.Widget) error {
				if err := w.Add(strings.Join(args, " ")); err != nil {
					return rejectionError(err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "added")
				return nil
			})
		},
	})
	cmd.AddCommand(newRemoveCmd(app, "task", pick))
	cmd.AddCommand(newInfoCmd(app, "tasks", pick))
	return cmd
}

func newLinksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "links",
		Short: "List, add, open and remove saved links",
	}
	pick := func(d *dashboard.Dashboard) dashboard.Widget { return d.Links }
	cmd.AddCommand(newListCmd(app, "links", pick))
	cmd.AddCommand(&cobra.Command{
		Use:   "add <url>",
		Short: "Save a link (https:// is assumed when the scheme is missing)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withWidget(pick, func(w dashboard.Widget) error {
				if err := w.Add(args[0]); err != nil {
					return rejectionError(err)
				}
				items := w.Items()
				fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", items[len(items)-1])
				return nil
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "open <n>",
		Short: "Open the link at 1-based position n",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withWidget(pick, func(w dashboard.Widget) error {
				node, err := nodeAt(w, args[0])
				if err != nil {
					return err
				}
				if err := app.opener.Open(node.Href); err != nil {
					return fmt.Errorf("open %s: %w", node.Href, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "opened %s\n", node.Href)
				return nil
			})
		},
	})
	cmd.AddCommand(newRemoveCmd(app, "link", pick))
	cmd.AddCommand(newInfoCmd(app, "links", pick))
	return cmd
}

func newListCmd(app *App, title string, pick func(*dashboard.Dashboard) dashboard.Widget) *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "Print the " + title,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withWidget(pick, func(w dashboard.Widget) error {
				printList(cmd.OutOrStdout(), title, w.View)
				return nil
			})
		},
	}
}

func newRemoveCmd(app *App, noun string, pick func(*dashboard.Dashboard) dashboard.Widget) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <n>",
		Aliases: []string{"remove"},
		Short:   "Remove the " + noun + " at 1-based position n",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withWidget(pick, func(w dashboard.Widget) error {
				node, err := nodeAt(w, args[0])
				if err != nil {
					return err
				}
				if err := node.Remove(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", node.Label)
				return nil
			})
		},
	}
}

// newInfoCmd reports where a list is stored and when it last changed.
func newInfoCmd(app *App, title string, pick func(*dashboard.Dashboard) dashboard.Widget) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the storage key, size and last write of the " + title,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withSession(func(s *session) error {
				w := pick(s.deck)
				stamp, err := s.store.UpdatedAt(w.Slot.Key())
				if err != nil {
					return fmt.Errorf("read %s: %w", w.Slot.Key(), err)
				}
				updated := "never"
				if !stamp.IsZero() {
					updated = stamp.Local().Format(time.RFC3339)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "key:     %s\n", w.Slot.Key())
				fmt.Fprintf(out, "items:   %d\n", w.Len())
				fmt.Fprintf(out, "updated: %s\n", updated)
				return nil
			})
		},
	}
}

func (a *App) withSession(fn func(*session) error) error {
	s, err := a.open()
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(s)
}

func (a *App) withWidget(pick func(*dashboard.Dashboard) dashboard.Widget, fn func(dashboard.Widget) error) error {
	return a.withSession(func(s *session) error {
		return fn(pick(s.deck))
	})
}

func nodeAt(w dashboard.Widget, arg string) (render.Node, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return render.Node{}, fmt.Errorf("not a number: %s", arg)
	}
	node, ok := w.View.Node(n - 1)
	if !ok {
		return render.Node{}, fmt.Errorf("%w: have %d, got %d", collection.ErrOutOfRange, w.Len(), n)
	}
	return node, nil
}

func rejectionError(err error) error {
	if notice := collection.Notice(err); notice != "" {
		return errors.New(notice)
	}
	return err
}

func printList(out io.Writer, title string, view *render.List) {
	fmt.Fprintf(out, "%s (%d)\n", title, view.Len())
	for _, line := range view.Lines(-1, render.PlainStyles()) {
		fmt.Fprintln(out, line)
	}
}
