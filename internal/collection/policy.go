package collection

import (
	"errors"
	"net/url"
	"slices"
	"strings"
)

// Rejection is a validation failure the user should see.
type Rejection struct {
	Notice string
}

func (r *Rejection) Error() string {
	return "rejected: " + strings.ToLower(r.Notice)
}

var (
	ErrEmpty      = &Rejection{Notice: "Nothing to add"}
	ErrDuplicate  = &Rejection{Notice: "Link already saved"}
	ErrInvalidURL = &Rejection{Notice: "Invalid URL"}
)

// Notice returns the user-facing text of a rejection, or "" for any other
// error.
func Notice(err error) string {
	var r *Rejection
	if errors.As(err, &r) {
		return r.Notice
	}
	return ""
}

type TaskPolicy struct{}

func (TaskPolicy) Kind() Kind { return KindTask }

func (TaskPolicy) Accept(value string, _ []string) (string, error) {
	return value, nil
}

const repairScheme = "https://"

// LinkPolicy accepts URLs, repairing a missing scheme once, and rejects exact
// duplicates of saved links.
type LinkPolicy struct{}

func (LinkPolicy) Kind() Kind { return KindLink }

func (LinkPolicy) Accept(value string, items []string) (string, error) {
	if !ValidURL(value) {
		if !missingScheme(value) {
			return "", ErrInvalidURL
		}
		repaired := repairScheme + value
		if !ValidURL(repaired) {
			return "", ErrInvalidURL
		}
		value = repaired
	}
	if slices.Contains(items, value) {
		return "", ErrDuplicate
	}
	return value, nil
}

// ValidURL reports whether s is an absolute URL. Web URLs must also name a
// host.
func ValidURL(s string) bool {
	if strings.ContainsAny(s, " \t\r\n") {
		return false
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || hostPort(u) {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https", "ftp", "ws", "wss":
		return u.Host != "" && u.Hostname() != ""
	}
	return u.Opaque != "" || u.Host != "" || u.Path != ""
}

// missingScheme reports whether s reads as a scheme-less address, so that
// prefixing a scheme can make it a URL. A value that already names a scheme
// is never repaired.
func missingScheme(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return !strings.Contains(s, "://")
	}
	return u.Scheme == "" || hostPort(u)
}

// hostPort detects "localhost:8080" and "example.com:8080/path", which parse
// with the host as the scheme and the port leading the opaque part.
func hostPort(u *url.URL) bool {
	if u.Opaque == "" {
		return false
	}
	port := u.Opaque
	if i := strings.IndexAny(port, "/?#"); i >= 0 {
		port = port[:i]
	}
	return port != "" && strings.Trim(port, "0123456789") == ""
}
