package report

import "io"

// Option configures Fprint and Log.
type Option func(*options)

const (
	defaultHeader   = "error"
	defaultPrefix   = "caused by"
	defaultMaxDepth = 1024
)

type options struct {
	color    bool
	header   string
	prefix   string
	verbose  bool
	maxDepth int
}

// WithColor forces colored output on or off. Without it, color is used only
// when the destination writer is a terminal and NO_COLOR is unset.
func WithColor(enabled bool) Option { return func(o *options) { o.color = enabled } }

// WithHeader sets the label of the first line ("error" by default).
func WithHeader(header string) Option { return func(o *options) { o.header = header } }

// WithPrefix sets the label of each cause line ("caused by" by default).
func WithPrefix(prefix string) Option { return func(o *options) { o.prefix = prefix } }

// WithVerbose renders every layer with %+v instead of %v.
func WithVerbose(verbose bool) Option { return func(o *options) { o.verbose = verbose } }

// WithMaxDepth limits how many layers are walked. Values below 1 are ignored.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		if depth > 0 {
			o.maxDepth = depth
		}
	}
}

func buildOptions(w io.Writer, opts []Option) options {
	o := options{
		color:    colorEnabled(w),
		header:   defaultHeader,
		prefix:   defaultPrefix,
		maxDepth: defaultMaxDepth,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
