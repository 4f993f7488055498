package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/HerbHall/opticode/internal/compliance"
	"github.com/HerbHall/opticode/internal/output"
)

func (a *app) runTables(args []string) int {
	fs := newFlagSet("tables")
	env, code := a.parse(fs, args)
	if env == nil {
		return code
	}
	defer func() { _ = env.logger.Sync() }()

	// Hex string keys keep the output readable and sort in code order.
	doc := make(map[string]map[string]string)
	for name, table := range compliance.Tables() {
		entries := make(map[string]string, len(table))
		for c, label := range table {
			entries[fmt.Sprintf("0x%02X", c)] = label
		}
		doc[string(name)] = entries
	}

	if err := output.Encode(a.stdout, env.format, doc); err != nil {
		env.logger.Error("failed to write output", zap.Error(err))
		return exitFailure
	}
	return exitOK
}
