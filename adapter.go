package cheat

import "context"

// OutputKind describes what a content source emits.
type OutputKind int

const (
	OutputText     OutputKind = iota // Plain text; control sequences are stripped.
	OutputANSI                       // Already styled for the terminal.
	OutputMarkdown                   // Markdown that still needs rendering.
)

func (k OutputKind) String() string {
	switch k {
	case OutputText:
		return "text"
	case OutputANSI:
		return "ansi"
	case OutputMarkdown:
		return "markdown"
	default:
		return "unknown"
	}
}

// ParseOutputKind maps "text", "ansi" and "markdown" to an OutputKind.
func ParseOutputKind(s string) (OutputKind, bool) {
	switch s {
	case "text":
		return OutputText, true
	case "ansi":
		return OutputANSI, true
	case "markdown":
		return OutputMarkdown, true
	}
	return 0, false
}

// TopicParser derives the template variables for an adapter's command from
// the requested topic. The returned map must contain at least "topic".
type TopicParser func(topic string, opts Options) (map[string]string, error)

// Adapter is the immutable description of one content source. Adapters are
// plain records looked up by name; they carry no behavior besides Parse.
type Adapter struct {
	Name        string
	Output      OutputKind
	CacheNeeded bool
	// Command is the argv template. Elements may contain {topic}, {from} and
	// {to} placeholders filled from Parse (or the trimmed topic).
	Command []string
	// Prefix is trimmed from the topic before expansion.
	Prefix string
	// Pattern, when set, is a regular expression every served topic matches.
	Pattern string
	// Pages lists the topics the adapter advertises.
	Pages []string
	// Parse, when set, replaces the default {topic} substitution.
	Parse TopicParser
}

// Options carries per-request settings from the client.
type Options struct {
	Lang string
}

// Fetcher obtains the raw text of a topic from an adapter's source.
//
// Fetch returns a *ProcessError when the source cannot be started or exits
// with a non-zero status, and an error wrapping ErrTimeout when it does not
// finish in time.
type Fetcher interface {
	Fetch(ctx context.Context, a Adapter, topic string, opts Options) (string, error)
}
