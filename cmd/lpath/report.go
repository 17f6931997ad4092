package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/katalvlaran/lpath/longest"
)

// jsonReport is the machine-readable form of a solve run.
type jsonReport struct {
	Method      string        `json:"method"`
	Length      int           `json:"length"`
	Path        []int         `json:"path"`
	Complete    bool          `json:"complete"`
	TimeSeconds float64       `json:"time_seconds"`
	Stats       jsonStats     `json:"stats"`
	RootBounds  []int         `json:"root_bounds,omitempty"`
}

type jsonStats struct {
	Extensions   int `json:"extensions"`
	Backtracks   int `json:"backtracks"`
	Pruned       int `json:"pruned"`
	OracleCalls  int `json:"oracle_calls"`
	Improvements int `json:"improvements"`
	Roots        int `json:"roots"`
}

func newJSONReport(res longest.Result) jsonReport {
	path := res.Path
	if path == nil {
		path = []int{}
	}

	return jsonReport{
		Method:      res.Strategy.String(),
		Length:      res.Edges(),
		Path:        path,
		Complete:    res.Complete,
		TimeSeconds: res.Elapsed.Seconds(),
		Stats: jsonStats{
			Extensions:   res.Stats.Extensions,
			Backtracks:   res.Stats.Backtracks,
			Pruned:       res.Stats.Pruned,
			OracleCalls:  res.Stats.OracleCalls,
			Improvements: res.Stats.Improvements,
			Roots:        res.Stats.Roots,
		},
		RootBounds:  res.RootBounds,
	}
}

// writeJSONReport writes res to path ("-" is stdout) as indented JSON.
func writeJSONReport(path string, stdout io.Writer, res longest.Result) error {
	w := stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("report file: %w", err)
		}
		defer f.Close()
		w = f
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(newJSONReport(res)); err != nil {
		return fmt.Errorf("report file: %w", err)
	}

	return nil
}
