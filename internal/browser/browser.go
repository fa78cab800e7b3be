package browser

import (
	"errors"
	"io"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

// Opener launches a URL outside the terminal.
type Opener interface {
	Open(u string) error
}

// System hands URLs to the OS handler. The child gets no referrer or opener
// context; it only ever sees the URL.
type System struct{}

func (System) Open(u string) error {
	u = strings.TrimSpace(u)
	if u == "" {
		return errors.New("empty url")
	}
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", u)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", u)
	default:
		cmd = exec.Command("xdg-open", u)
	}
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Wait()
}

// SearchURL fills the %s in template with the escaped query. A template
// without %s gets the query appended.
func SearchURL(template, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", errors.New("empty query")
	}
	escaped := url.QueryEscape(query)
	if strings.Contains(template, "%s") {
		return strings.Replace(template, "%s", escaped, 1), nil
	}
	return template + escaped, nil
}
