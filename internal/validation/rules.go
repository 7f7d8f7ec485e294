// Package validation holds the field rules applied to a user form before it
// becomes a model.User.
package validation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dtroode/fostr-server/internal/model"
)

// ListDelimiter separates items of the interests and hobbies fields.
const ListDelimiter = ";"

// UsernameLookup finds a stored user by username. It must return
// model.ErrNotFound when there is none.
type UsernameLookup func(ctx context.Context, username string) (model.User, error)

// Age parses a non-negative integer age that fits the 32-bit age column.
func Age(raw string) (int, error) {
	age, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, &model.FieldError{Kind: model.ErrInvalidFormat, Field: FieldAge, Index: -1, Message: "Not an age!"}
	}
	if age < 0 {
		return 0, &model.FieldError{Kind: model.ErrOutOfRange, Field: FieldAge, Index: -1, Message: "Age is less than 0!"}
	}
	if err != nil {
		return 0, &model.FieldError{
			Kind:    model.ErrOutOfRange,
			Field:   FieldAge,
			Index:   -1,
			Message: fmt.Sprintf("Age is greater than %d!", math.MaxInt32),
		}
	}
	return int(age), nil
}

// DelimitedList splits raw on delim and trims every item. It rejects a raw
// value ending with the delimiter and any item that is empty after trimming.
// item names a single element in messages, e.g. "interest".
func DelimitedList(raw, delim, item string) ([]string, error) {
	if strings.HasSuffix(raw, delim) {
		return nil, &model.FieldError{
			Kind:    model.ErrTrailingDelimiter,
			Field:   item,
			Index:   -1,
			Message: "Remove last " + delimiterName(delim),
		}
	}

	items := SplitList(raw, delim)
	for i, it := range items {
		if it == "" {
			return nil, &model.FieldError{
				Kind:    model.ErrEmptyItem,
				Field:   item,
				Index:   i,
				Message: fmt.Sprintf("No data for %s %d", item, i+1),
			}
		}
	}
	return items, nil
}

// UsernameAvailable fails with model.ErrUsernameTaken when lookup finds a
// user named candidate.
func UsernameAvailable(ctx context.Context, candidate string, lookup UsernameLookup) error {
	_, err := lookup(ctx, candidate)
	if errors.Is(err, model.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to look up username: %w", err)
	}
	return &model.FieldError{
		Kind:    model.ErrUsernameTaken,
		Field:   FieldUsername,
		Index:   -1,
		Message: fmt.Sprintf("Username %s is taken.", candidate),
	}
}

// SplitList splits s on delim and trims whitespace around every item.
func SplitList(s, delim string) []string {
	parts := strings.Split(s, delim)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// JoinList is the inverse of SplitList for lists without surrounding
// whitespace or empty items.
func JoinList(items []string, delim string) string {
	return strings.Join(items, delim)
}

func delimiterName(delim string) string {
	switch delim {
	case ";":
		return "semicolon"
	case ",":
		return "comma"
	default:
		return strconv.Quote(delim)
	}
}
