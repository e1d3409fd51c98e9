package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// exit codes
const (
	exitSuccess      = 0
	exitFailure      = 1 // arithmetic or playback failed
	exitCommandError = 2 // bad arguments or files
)

// error carrying the exit code for the process
type exitError struct {
	code int
	msg  string
	err  error
}

func (e *exitError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

func (e *exitError) Unwrap() error {
	return e.err
}

func wrapExitError(code int, msg string, err error) *exitError {
	return &exitError{code: code, msg: msg, err: err}
}

// return the exit code for an error returned by a command
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	return exitFailure
}

// standard JSON envelope for command output
type response struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// writes command results as text or JSON
type formatter struct {
	format string
	w      io.Writer
}

// write a successful result
func (f *formatter) success(data interface{}) error {
	if f.format == "json" {
		return json.NewEncoder(f.w).Encode(response{Status: "ok", Data: data})
	}
	_, err := fmt.Fprintln(f.w, data)
	return err
}

// write a failure
func (f *formatter) failure(err error) error {
	if f.format == "json" {
		return json.NewEncoder(f.w).Encode(response{Status: "error", Error: err.Error()})
	}
	_, werr := fmt.Fprintf(f.w, "error: %v\n", err)
	return werr
}
