package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vogtb/go-spreadsheet/packages/spreadsheet"
)

// ScriptError reports the script line a command failed on
type ScriptError struct {
	Line int
	Err  error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}

// runScript executes commands until the first failing one. trace, when
// set, receives every executed command.
func runScript(runner *spreadsheet.RunnableSheet, src io.Reader, trace func(string)) error {
	scanner := bufio.NewScanner(src)
	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimLeft(scanner.Text(), " \t")
		if strings.TrimSpace(raw) == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		if trace != nil {
			trace(fmt.Sprintf("%d: %s", line, raw))
		}
		if err := execute(runner, raw); err != nil {
			return &ScriptError{Line: line, Err: err}
		}
	}
	return scanner.Err()
}

func execute(runner *spreadsheet.RunnableSheet, command string) error {
	verb, rest, _ := strings.Cut(command, " ")

	switch verb {
	case "set":
		cell, text, _ := strings.Cut(strings.TrimLeft(rest, " "), " ")
		if cell == "" {
			return errors.New("set: missing cell")
		}
		runner.Set(strings.ToUpper(cell), text)
	case "clear":
		cell, err := singleCell(verb, rest)
		if err != nil {
			return err
		}
		runner.Clear(cell)
	case "get":
		cell, err := singleCell(verb, rest)
		if err != nil {
			return err
		}
		runner.Log(cell)
	case "size":
		runner.Size()
	case "print":
		switch strings.TrimSpace(rest) {
		case "values":
			runner.PrintValues()
		case "texts":
			runner.PrintTexts()
		default:
			return fmt.Errorf("print: expected values or texts, got %q", strings.TrimSpace(rest))
		}
	default:
		return fmt.Errorf("unknown command %q", verb)
	}

	err := runner.Error()
	runner.Reset()
	return err
}

func singleCell(verb, rest string) (string, error) {
	fields := strings.Fields(rest)
	if len(fields) != 1 {
		return "", fmt.Errorf("%s: expected one cell, got %d arguments", verb, len(fields))
	}
	return strings.ToUpper(fields[0]), nil
}
