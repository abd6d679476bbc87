package model

import (
	"errors"
	"fmt"
	"strings"
)

// ProjectStatus is the board column a project belongs to.
type ProjectStatus int

const (
	StatusActive ProjectStatus = iota
	StatusFinished
)

// ErrUnknownStatus is returned when text or a number names no defined status.
var ErrUnknownStatus = errors.New("unknown project status")

func (s ProjectStatus) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusFinished:
		return "finished"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Valid reports whether s is one of the defined statuses.
func (s ProjectStatus) Valid() bool {
	return s == StatusActive || s == StatusFinished
}

// ParseStatus accepts the text form used in JSON and on the command line.
func ParseStatus(v string) (ProjectStatus, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "active":
		return StatusActive, nil
	case "finished":
		return StatusFinished, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStatus, v)
	}
}

// MarshalText writes the lowercase name and rejects undefined statuses.
func (s ProjectStatus) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStatus, int(s))
	}
	return []byte(s.String()), nil
}

func (s *ProjectStatus) UnmarshalText(b []byte) error {
	v, err := ParseStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Project is one card on the board.
type Project struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	People      int           `json:"people"`
	Status      ProjectStatus `json:"status"`
}

// Persons is the human label for the number of people on a project.
func (p Project) Persons() string {
	if p.People == 1 {
		return "1 person"
	}
	return fmt.Sprintf("%d persons", p.People)
}
