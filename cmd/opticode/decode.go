package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/HerbHall/opticode/internal/compliance"
	"github.com/HerbHall/opticode/internal/output"
	"github.com/HerbHall/opticode/pkg/models"
)

// decodeResult pairs an input code with its report or parse error.
type decodeResult struct {
	Code   string                    `json:"code" yaml:"code"`
	Report *models.TransceiverReport `json:"report,omitempty" yaml:"report,omitempty"`
	Error  string                    `json:"error,omitempty" yaml:"error,omitempty"`
}

func (a *app) runDecode(args []string) int {
	fs := newFlagSet("decode")
	env, code := a.parse(fs, args)
	if env == nil {
		return code
	}
	defer func() { _ = env.logger.Sync() }()
	logger := env.logger.Named("decode")

	codes := fs.Args()
	if len(codes) == 0 {
		var err error
		codes, err = readCodes(a.stdin)
		if err != nil {
			logger.Error("failed to read codes from stdin", zap.Error(err))
			return exitFailure
		}
	}
	if len(codes) == 0 {
		logger.Error("no compliance codes given")
		return exitUsage
	}

	exit := exitOK
	results := make([]decodeResult, 0, len(codes))
	for _, c := range codes {
		res := decodeResult{Code: c}
		seq, err := compliance.Parse(c)
		if err != nil {
			logger.Error("malformed compliance code", zap.String("code", c), zap.Error(err))
			res.Error = err.Error()
			exit = exitFailure
			results = append(results, res)
			continue
		}
		if seq.Trailing > 0 {
			logger.Debug("trailing bytes ignored",
				zap.String("code", c),
				zap.Int("bytes", seq.Trailing),
			)
		}
		report := compliance.DecodeSequence(seq)
		res.Report = &report
		results = append(results, res)
	}

	if err := output.Encode(a.stdout, env.format, results); err != nil {
		logger.Error("failed to write output", zap.Error(err))
		return exitFailure
	}
	return exit
}

// readCodes returns the non-blank lines of r with surrounding whitespace
// removed. Lines starting with '#' are comments.
func readCodes(r io.Reader) ([]string, error) {
	var codes []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		codes = append(codes, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return codes, nil
}
