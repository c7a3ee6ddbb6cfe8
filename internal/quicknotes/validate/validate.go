// Package validate applies input constraints to a note draft before it is
// submitted. It is pure: no I/O, no state.
package validate

import (
	"strings"
	"unicode/utf8"

	"github.com/Jai71/quicknotes/internal/common"
	"github.com/Jai71/quicknotes/internal/quicknotes/models"
)

const (
	// MaxTitleLen is the longest allowed title, in characters.
	MaxTitleLen = 80
	// MaxContentLen is the longest allowed content, in characters.
	MaxContentLen = 5000
)

// Draft trims title and content and checks them against the length
// constraints. Checks run in a fixed order and the first failure wins:
// title length, content emptiness, content length. On success the returned
// draft carries the trimmed values.
func Draft(title, content string) (models.Draft, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)

	switch {
	case utf8.RuneCountInString(title) > MaxTitleLen:
		return models.Draft{}, common.NewValidationError("Title must be 80 characters or less")
	case content == "":
		return models.Draft{}, common.NewValidationError("Content cannot be empty")
	case utf8.RuneCountInString(content) > MaxContentLen:
		return models.Draft{}, common.NewValidationError("Content must be 5000 characters or less")
	}

	return models.Draft{Title: title, Content: content}, nil
}
