// Package main demonstrates usage of the scg-errctx packages.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/next-trace/scg-errctx/errctx"
	"github.com/next-trace/scg-errctx/report"
)

type settings struct {
	port int
}

// op describes the failing step as a structured context value.
type op struct {
	name string
	file string
}

func (o op) String() string { return o.name + " " + o.file }

func loadSettings(path string) (settings, error) {
	data, err := errctx.Ctx(errctx.Try(os.ReadFile(path)), "reading "+path)
	if err != nil {
		return settings{}, err
	}

	port, err := errctx.WithCtx(errctx.Try(strconv.Atoi(string(data))), func(error) op {
		return op{name: "parsing port in", file: path}
	})
	if err != nil {
		return settings{}, err
	}

	return settings{port: port}, nil
}

func main() {
	// Direct wrap of an error already in hand
	fmt.Println(errctx.Wrap(errors.New("foo"), "bar"))

	_, err := loadSettings("foo.txt")
	err = errctx.Annotate(err, "starting server")

	_ = report.Fprint(os.Stderr, err)
	report.Log(context.Background(), slog.New(slog.NewTextHandler(os.Stderr, nil)), "startup failed", err)
}
