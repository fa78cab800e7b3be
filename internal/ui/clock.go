package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func Greeting(now time.Time, name string) string {
	greeting := "Good Evening"
	switch h := now.Hour(); {
	case h < 12:
		greeting = "Good Morning"
	case h < 18:
		greeting = "Good Afternoon"
	}
	if name == "" {
		return greeting
	}
	return greeting + ", " + name + "!"
}

func clockLine(now time.Time) string {
	return now.Format("15:04")
}

func dateLine(now time.Time) string {
	return now.Format("Monday, 2 January")
}
