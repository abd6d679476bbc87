package board

import (
	"errors"
	"strconv"
	"strings"

	"projectboard/internal/model"
	"projectboard/internal/validate"
)

// AlertInvalidInput is the message shown to the user when a submit is rejected.
const AlertInvalidInput = "Invalid input, please try again!"

var ErrInvalidInput = errors.New("invalid input")

// People bounds are exclusive.
const (
	minPeople = 1
	maxPeople = 5
)

// InputForm holds the raw field values of the new-project form.
type InputForm struct {
	store Store

	Title       string
	Description string
	People      string
}

func NewInputForm(store Store) *InputForm {
	return &InputForm{store: store}
}

// Gather validates the fields and returns them ready for the store.
func (f *InputForm) Gather() (string, string, int, error) {
	title := strings.TrimSpace(f.Title)
	description := strings.TrimSpace(f.Description)
	people, err := strconv.Atoi(strings.TrimSpace(f.People))
	if err != nil {
		return "", "", 0, ErrInvalidInput
	}

	ok := validate.All(
		validate.Validatable{Value: title, Required: true},
		validate.Validatable{Value: description, Required: true},
		validate.Validatable{
			Value:    people,
			Required: true,
			Min:      validate.Bound(minPeople),
			Max:      validate.Bound(maxPeople),
		},
	)
	if !ok {
		return "", "", 0, ErrInvalidInput
	}
	return title, description, people, nil
}

// Submit adds the project to the store and clears the inputs. On invalid input
// the fields are kept and the store is untouched.
func (f *InputForm) Submit() (model.Project, error) {
	title, description, people, err := f.Gather()
	if err != nil {
		return model.Project{}, err
	}
	p := f.store.AddProject(title, description, people)
	f.Clear()
	return p, nil
}

func (f *InputForm) Clear() {
	f.Title = ""
	f.Description = ""
	f.People = ""
}
