package sbp

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// PolicyRateLabel is the row label the rate table uses on the SBP home page
const PolicyRateLabel = "Policy Rate"

var (
	ErrLabelNotFound = errors.New("policy rate label not found")
	ErrRowNotFound   = errors.New("policy rate label is not inside a table row")
	ErrCellNotFound  = errors.New("policy rate row has no value cell")
)

// ParsePolicyRate extracts the percentage from the second cell of the row labelled "Policy Rate".
// The value must be a plausible percentage (0, 100].
func ParsePolicyRate(page []byte) (float64, error) {
	doc, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return 0, fmt.Errorf("parsing html: %w", err)
	}

	label := findText(doc, PolicyRateLabel)
	if label == nil {
		return 0, ErrLabelNotFound
	}

	row := ancestor(label, "tr")
	if row == nil {
		return 0, ErrRowNotFound
	}

	cells := descendants(row, "td")
	if len(cells) < 2 {
		return 0, ErrCellNotFound
	}

	raw := strings.TrimSpace(textContent(cells[1]))
	value, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(raw, "%", "")), 64)
	if err != nil {
		return 0, fmt.Errorf("parsing rate %q: %w", raw, err)
	}
	if value <= 0 || value > 100 {
		return 0, fmt.Errorf("rate %v is not a plausible percentage", value)
	}

	return value, nil
}

// findText returns the first text node whose trimmed content equals want
func findText(n *html.Node, want string) *html.Node {
	if n.Type == html.TextNode && strings.TrimSpace(n.Data) == want {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findText(c, want); found != nil {
			return found
		}
	}
	return nil
}

func ancestor(n *html.Node, tag string) *html.Node {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && p.Data == tag {
			return p
		}
	}
	return nil
}

func descendants(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == tag {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
