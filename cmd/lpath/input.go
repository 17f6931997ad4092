package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lpath/converters"
	"github.com/katalvlaran/lpath/core"
	"github.com/katalvlaran/lpath/longest"
)

// readInput loads the graph from cfg.Input, or from stdin when unset.
// Files ending in .gz or .zst are decompressed on the fly.
func readInput(cfg Config, stdin io.Reader) (*core.Graph, error) {
	var (
		g   *core.Graph
		err error
	)
	if cfg.Input != "" && cfg.Input != "-" {
		g, err = converters.ReadGraphFile(cfg.Input, cfg.IsDirected())
	} else {
		g, err = converters.ReadGraph(stdin, cfg.IsDirected())
	}
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}

	return g, nil
}

// progressSink opens the improvement log named by path ("-" is stdout).
// The returned close function flushes and releases the destination.
func progressSink(path string, stdout io.Writer) (longest.LogSink, func() error, error) {
	if path == "-" {
		return longest.NewWriterSink(stdout), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("log path: %w", err)
	}
	bw := bufio.NewWriter(f)
	closeFn := func() error {
		if err := bw.Flush(); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	}

	return longest.NewWriterSink(bw), closeFn, nil
}

// teeSink forwards every improvement to each sink in order.
func teeSink(sinks ...longest.LogSink) longest.LogSink {
	var live []longest.LogSink
	for _, s := range sinks {
		if s != nil {
			live = append(live, s)
		}
	}
	switch len(live) {
	case 0:
		return nil
	case 1:
		return live[0]
	}

	return longest.SinkFunc(func(path []int) {
		for _, s := range live {
			s.Found(path)
		}
	})
}
