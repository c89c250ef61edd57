package errors

import "fmt"

var (
	ErrWorkerPanic      = fmt.Errorf("worker panic")
	ErrNoTagsGiven      = fmt.Errorf("no tags given")
	ErrInvalidTagFormat = fmt.Errorf("tags must start with #")
	ErrNotSubscribed    = fmt.Errorf("not subscribed to this tag")
	ErrMissingArgument  = fmt.Errorf("missing argument")
	ErrTooManyArguments = fmt.Errorf("too many arguments")
)
