// Package operation serializes the long running workbook operations and
// reports their progress
package operation

import (
	"fmt"

	"gitlab.com/tozd/go/errors"
)

var (
	// ErrInvalidKind means a Kind with no catalog entry reached the catalog.
	// It always indicates a programming error.
	ErrInvalidKind = errors.Base("invalid operation kind")

	// ErrAlreadyRunning is returned when an operation is requested while
	// another one is in flight
	ErrAlreadyRunning = errors.Base("operation already running")
)

// 🎯 Kind identifies one of the long running operations
type Kind int

const (
	None Kind = iota // explicit "no operation" sentinel
	Merge
	Sort
	CreateNewFile
)

// String returns a string representation of Kind
func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Merge:
		return "merge"
	case Sort:
		return "sort"
	case CreateNewFile:
		return "create-new-file"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// 📋 Record holds the user facing messages of one Kind
type Record struct {
	Kind             Kind
	OngoingMessage   string
	CompletedMessage string
	ErrorMessage     string
}

// StandbyMessage is the ongoing status shown while nothing runs
const StandbyMessage = "Status: Standby"

var catalog = map[Kind]Record{
	Merge: {
		Kind:             Merge,
		OngoingMessage:   "Status: Merging in process...",
		CompletedMessage: "Completed: Merge action is completed!",
		ErrorMessage:     "Error: Unable to perform Merge action!",
	},
	Sort: {
		Kind:             Sort,
		OngoingMessage:   "Status: Sorting in process...",
		CompletedMessage: "Completed: Sort action is completed!",
		ErrorMessage:     "Error: Unable to perform Sort action!",
	},
	CreateNewFile: {
		Kind:             CreateNewFile,
		OngoingMessage:   "Status: Creating new file in process...",
		CompletedMessage: "Completed: Create New File action is completed!",
		ErrorMessage:     "Error: Unable to perform Create New File action!",
	},
}

// 🔍 Lookup returns the record for kind
func Lookup(kind Kind) (Record, error) {
	rec, ok := catalog[kind]
	if !ok {
		return Record{}, errors.Errorf("%w: %s", ErrInvalidKind, kind)
	}
	return rec, nil
}

// MustLookup is like Lookup but panics on an unknown kind
func MustLookup(kind Kind) Record {
	rec, err := Lookup(kind)
	if err != nil {
		panic(err)
	}
	return rec
}

// Kinds returns every kind with a catalog entry
func Kinds() []Kind {
	return []Kind{Merge, Sort, CreateNewFile}
}
