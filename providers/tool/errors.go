package tool

import "errors"

var (
	// ErrUnknownTool is returned when a name is not present in the catalog.
	ErrUnknownTool = errors.New("unknown tool")

	// ErrMissingArgument is returned when the input lacks a required field.
	ErrMissingArgument = errors.New("missing required argument")

	// ErrInvalidArguments is returned when the input cannot be parsed or does
	// not match the tool's parameter types.
	ErrInvalidArguments = errors.New("invalid arguments")
)
