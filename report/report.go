package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/next-trace/scg-errctx/errctx"
)

// colorEnabled reports whether w is a terminal that should receive escape
// codes. NO_COLOR and TERM=dumb turn color off, as in github.com/fatih/color.
func colorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}

	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Fprint writes err and each of its causes to w, one per line:
//
//	error: reading config: open app.yaml: no such file or directory
//	  caused by: open app.yaml: no such file or directory
//	  caused by: no such file or directory
//
// Nothing is written for a nil err.
func Fprint(w io.Writer, err error, opts ...Option) error {
	if err == nil {
		return nil
	}

	o := buildOptions(w, opts)
	header := color.New(color.FgRed, color.Bold)
	prefix := color.New(color.FgYellow)

	if o.color {
		header.EnableColor()
		prefix.EnableColor()
	} else {
		header.DisableColor()
		prefix.DisableColor()
	}

	layers := chain(err, o.maxDepth)

	if _, werr := fmt.Fprintf(w, "%s: %s\n", header.Sprint(o.header), render(layers[0], o.verbose)); werr != nil {
		return errctx.Annotate(werr, "writing error report")
	}

	for _, e := range layers[1:] {
		if _, werr := fmt.Fprintf(w, "  %s: %s\n", prefix.Sprint(o.prefix), render(e, o.verbose)); werr != nil {
			return errctx.Annotate(werr, "writing error report")
		}
	}

	return nil
}

// Log emits a single error-level record for err with two attributes:
// "error" holds the full message and "chain" the message of every layer,
// outermost first. Color options are ignored. A nil logger means slog.Default().
func Log(ctx context.Context, logger *slog.Logger, msg string, err error, opts ...Option) {
	if err == nil {
		return
	}

	if logger == nil {
		logger = slog.Default()
	}

	o := buildOptions(nil, opts)
	layers := chain(err, o.maxDepth)

	texts := make([]string, 0, len(layers))
	for _, e := range layers {
		texts = append(texts, render(e, o.verbose))
	}

	logger.LogAttrs(ctx, slog.LevelError, msg,
		slog.String("error", err.Error()),
		slog.Any("chain", texts),
	)
}

func render(err error, verbose bool) string {
	if verbose {
		return fmt.Sprintf("%+v", err)
	}

	return err.Error()
}
