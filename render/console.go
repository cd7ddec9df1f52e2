package render

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/bubble"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// ConsoleConfig configures console output of bubbles.
type ConsoleConfig struct {
	LineWidth int            // maximum width of a line in fixed-width ‘en’s
	Context   *uax11.Context // context for East Asian width; nil means LatinContext
	Primary   *color.Color   // color for primary keys; nil means default palette
	Overflow  *color.Color   // color for overflow keys; nil means default palette
}

// DefaultLineWidth is used if neither the config nor the terminal tell otherwise.
const DefaultLineWidth = 65

const ellipsis = "…"

func (cfg *ConsoleConfig) normalized() *ConsoleConfig {
	c := ConsoleConfig{}
	if cfg != nil {
		c = *cfg
	}
	if c.LineWidth <= 0 {
		c.LineWidth = DefaultLineWidth
	}
	if c.Context == nil {
		c.Context = uax11.LatinContext
	}
	if c.Primary == nil {
		c.Primary = color.New(color.FgBlue, color.Bold)
	}
	if c.Overflow == nil {
		c.Overflow = color.New(color.FgHiBlack)
	}
	return &c
}

// ConfigFromTerminal is a simple helper for creating a console config.
// It checks whether stdout is a terminal, and if so it reads the terminal's width
// and sets the ConsoleConfig.LineWidth parameter accordingly. The East Asian
// width context is derived from the user environment.
func ConfigFromTerminal() *ConsoleConfig {
	config := &ConsoleConfig{LineWidth: DefaultLineWidth}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil {
			if w > 10 {
				config.LineWidth = w - 1
			} else {
				config.LineWidth = 10
			}
		}
	}
	config.Context = uax11.ContextFromEnvironment()
	T().P("render", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}

// Console writes the contents of b to w, one line per bucket. Primary keys
// are right-aligned in a column, measured in display width, and lines longer
// than the configured line width are truncated with an ellipsis. Primary keys
// are never truncated: if the key column alone is too wide for the line
// width, the overflow keys of every line shrink to a single ellipsis and lines
// exceed the line width.
//
// If config is nil, defaults are used. Colors are suppressed if fatih/color
// decides that output is not a terminal (color.NoColor).
func Console[K any](b *bubble.Bubble[K], w io.Writer, config *ConsoleConfig) error {
	cfg := config.normalized()
	if b.IsEmpty() {
		return nil
	}
	grapheme.SetupGraphemeClasses()
	rr := rows(b)
	keyWidth := 0
	for _, r := range rr {
		keyWidth = max(keyWidth, displayWidth(r.key, cfg.Context))
	}
	bw := bufio.NewWriter(w)
	for _, r := range rr {
		kw := displayWidth(r.key, cfg.Context)
		pad := strings.Repeat(" ", keyWidth-kw)
		bw.WriteString(pad)
		cfg.Primary.Fprint(bw, r.key)
		bw.WriteString(" │ ")
		room := max(cfg.LineWidth-keyWidth-3, 1)
		cfg.Overflow.Fprint(bw, truncate(r.overflow, room, cfg.Context))
		bw.WriteString("\n")
	}
	return bw.Flush()
}

func displayWidth(s string, context *uax11.Context) int {
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// truncate joins keys with blanks, as long as they fit into room ens.
func truncate(keys []string, room int, context *uax11.Context) string {
	var sb strings.Builder
	used := 0
	for i, k := range keys {
		kw := displayWidth(k, context)
		sep := 0
		if i > 0 {
			sep = 1
		}
		rest := len(keys) - i - 1
		need := used + sep + kw
		if rest > 0 {
			need += 2 // keep space for " …"
		}
		if need > room {
			if i > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(ellipsis)
			break
		}
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(k)
		used += sep + kw
	}
	return sb.String()
}
