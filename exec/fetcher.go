package exec

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	osexec "os/exec"
	"strings"
	"syscall"
	"time"

	"github.com/fwojciec/cheat"
	"github.com/fwojciec/cheat/adapter"
)

const (
	// DefaultTimeout bounds a single adapter run.
	DefaultTimeout = 30 * time.Second
	// DefaultMaxOutput caps the stdout kept from a single run.
	DefaultMaxOutput = 1 << 20

	maxStderr = 64 << 10
	waitDelay = time.Second
)

var _ cheat.Fetcher = (*Fetcher)(nil)

// Fetcher implements cheat.Fetcher by running the adapter's command.
type Fetcher struct {
	timeout   time.Duration
	maxOutput int
	logger    *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-run timeout. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// WithMaxOutput sets how many bytes of stdout are kept. Non-positive values
// keep the default.
func WithMaxOutput(n int) Option {
	return func(f *Fetcher) {
		if n > 0 {
			f.maxOutput = n
		}
	}
}

// WithLogger sets the logger. If not set, logs are discarded.
func WithLogger(l *slog.Logger) Option {
	return func(f *Fetcher) {
		if l != nil {
			f.logger = l
		}
	}
}

// NewFetcher creates a Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultTimeout,
		maxOutput: DefaultMaxOutput,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch runs the adapter command for topic and returns its standard output.
// The child runs in its own process group; the whole group is killed when ctx
// is done or the timeout expires.
func (f *Fetcher) Fetch(ctx context.Context, a cheat.Adapter, topic string, opts cheat.Options) (string, error) {
	argv, err := adapter.Expand(a, topic, opts)
	if err != nil {
		return "", err
	}
	if len(argv) == 0 || argv[0] == "" {
		return "", fmt.Errorf("%s adapter: empty command: %w", a.Name, cheat.ErrValidation)
	}

	runCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	cmd := osexec.CommandContext(runCtx, argv[0], argv[1:]...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
	// Grandchildren may hold the pipes open after the group is killed.
	cmd.WaitDelay = waitDelay

	stdout := newCollector(f.maxOutput)
	stderr := newCollector(maxStderr)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	start := time.Now()
	runErr := cmd.Run()
	elapsed := time.Since(start)

	if runErr != nil {
		err := f.runError(ctx, runCtx, a, argv, stderr, runErr)
		f.logger.Warn("adapter command failed",
			"adapter", a.Name, "argv", argv, "duration", elapsed, "error", err)
		return "", err
	}

	f.logger.Debug("adapter command finished",
		"adapter", a.Name, "argv", argv, "duration", elapsed, "bytes", stdout.Total())
	if stdout.Truncated() {
		f.logger.Warn("adapter output truncated",
			"adapter", a.Name, "bytes", stdout.Total(), "kept", f.maxOutput)
	}

	out := strings.ToValidUTF8(stdout.String(), "\uFFFD")
	if a.Output == cheat.OutputText {
		out = Sanitize(out)
	}
	return out, nil
}

func (f *Fetcher) runError(parent, runCtx context.Context, a cheat.Adapter, argv []string, stderr *collector, runErr error) error {
	var exitErr *osexec.ExitError
	exited := errors.As(runErr, &exitErr) && exitErr.ExitCode() >= 0
	if !exited && runCtx.Err() != nil {
		if err := parent.Err(); err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%s adapter: %w", a.Name, err)
		}
		return fmt.Errorf("%s adapter: timed out after %s: %w", a.Name, f.timeout, cheat.ErrTimeout)
	}
	code := -1
	if exited {
		code = exitErr.ExitCode()
	}
	return &cheat.ProcessError{
		Adapter:  a.Name,
		Argv:     argv,
		ExitCode: code,
		Stderr:   Sanitize(stderr.String()),
		Err:      runErr,
	}
}
