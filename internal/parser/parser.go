// Package parser assembles resolved interface models from specification
// file contents: one flat section for messages, two for services, three
// for actions. Section switching is driven by in-band separator lines.
package parser

import (
	"io"
	"log/slog"

	"github.com/golangros/gorosidl/ifc"
	"github.com/golangros/gorosidl/internal/resolver"
	"github.com/golangros/gorosidl/internal/scanner"
	"github.com/golangros/gorosidl/internal/types"
)

// section indexes the active field set of an action file.
type section int

const (
	sectionGoal     section = 0
	sectionResult   section = 1
	sectionFeedback section = 2
)

// Message builds a single-section model from a .msg file. Malformed lines
// are skipped; read errors propagate.
func Message(name string, r io.Reader, pkg string, logger types.Logger) (*ifc.Message, error) {
	fields := ifc.NewFieldSet()
	sc := scanner.New(r, logger)
	for sc.Scan() {
		storeField(fields, sc.Text(), pkg, logger)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	logger.Log(slog.LevelDebug, "message built",
		slog.String("name", name), slog.Int("fields", fields.Len()))
	return &ifc.Message{Name: name, Fields: fields}, nil
}

// Service builds a two-section model from a .srv file. The first
// separator line switches from request to response; further separators
// are swallowed with no effect.
func Service(name string, r io.Reader, pkg string, logger types.Logger) (*ifc.Service, error) {
	request := ifc.NewFieldSet()
	response := ifc.NewFieldSet()

	active := request
	sc := scanner.New(r, logger)
	for sc.Scan() {
		line := sc.Text()
		if scanner.IsSeparator(line) {
			active = response
			continue
		}
		storeField(active, line, pkg, logger)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	logger.Log(slog.LevelDebug, "service built",
		slog.String("name", name),
		slog.Int("request", request.Len()),
		slog.Int("response", response.Len()))
	return &ifc.Service{Name: name, Request: request, Response: response}, nil
}

// Action builds a three-section model from a .action file. Each separator
// line advances the section counter; lines after a third separator select
// no section and are dropped from the model.
func Action(name string, r io.Reader, pkg string, logger types.Logger) (*ifc.Action, error) {
	goal := ifc.NewFieldSet()
	result := ifc.NewFieldSet()
	feedback := ifc.NewFieldSet()

	current := sectionGoal
	sc := scanner.New(r, logger)
	for sc.Scan() {
		line := sc.Text()
		if scanner.IsSeparator(line) {
			current++
			continue
		}
		switch current {
		case sectionGoal:
			storeField(goal, line, pkg, logger)
		case sectionResult:
			storeField(result, line, pkg, logger)
		case sectionFeedback:
			storeField(feedback, line, pkg, logger)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	logger.Log(slog.LevelDebug, "action built",
		slog.String("name", name),
		slog.Int("goal", goal.Len()),
		slog.Int("result", result.Len()),
		slog.Int("feedback", feedback.Len()))
	return &ifc.Action{Name: name, Goal: goal, Result: result, Feedback: feedback}, nil
}

// storeField resolves one line and inserts it into the field set. Lines
// with no resolvable type or no field name contribute nothing. A repeated
// field name overwrites the earlier value in place.
func storeField(fields *ifc.FieldSet, line, pkg string, logger types.Logger) {
	name, t, ok := resolver.Resolve(line, pkg)
	if !ok || name == "" {
		return
	}
	if logger.TraceEnabled() {
		logger.Trace("field",
			slog.String("name", name), slog.String("type", t.String()))
	}
	fields.Set(name, t)
}
