package model

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    ProjectStatus
		wantErr bool
	}{
		{in: "active", want: StatusActive},
		{in: " Finished ", want: StatusFinished},
		{in: "done", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseStatus(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownStatus) {
					t.Fatalf("ParseStatus(%q): expected ErrUnknownStatus, got %v", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStatus(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("ParseStatus(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestProjectJSONUsesStatusText(t *testing.T) {
	b, err := json.Marshal(Project{ID: "prj-1", Title: "Build site", People: 3, Status: StatusFinished})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"id":"prj-1","title":"Build site","description":"","people":3,"status":"finished"}`
	if string(b) != want {
		t.Fatalf("marshal:\n got: %s\nwant: %s", b, want)
	}

	if _, err := json.Marshal(Project{Status: ProjectStatus(7)}); err == nil {
		t.Fatalf("expected error for out-of-range status")
	}
}

func TestPersons(t *testing.T) {
	if got := (Project{People: 1}).Persons(); got != "1 person" {
		t.Fatalf("Persons(1) = %q", got)
	}
	if got := (Project{People: 3}).Persons(); got != "3 persons" {
		t.Fatalf("Persons(3) = %q", got)
	}
}

func TestUndefinedStatusIsInvalid(t *testing.T) {
	for _, s := range []ProjectStatus{StatusActive, StatusFinished} {
		if !s.Valid() {
			t.Fatalf("expected %s to be valid", s)
		}
	}
	bad := ProjectStatus(7)
	if bad.Valid() {
		t.Fatalf("expected %s to be invalid", bad)
	}
	if _, err := bad.MarshalText(); !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("expected ErrUnknownStatus, got %v", err)
	}
}
