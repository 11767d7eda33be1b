package textedit

import "fmt"

// ValidationError describes an edit whose range does not fit the text.
type ValidationError struct {
	Edit    Edit
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid edit [%d:%d]: %s", e.Edit.Start, e.Edit.End, e.Message)
}

// Validate checks that the edit has a valid range for a text of length runes.
func Validate(edit Edit, length int) error {
	if edit.Start < 0 {
		return &ValidationError{Edit: edit, Message: "start offset is negative"}
	}
	if edit.End < edit.Start {
		return &ValidationError{Edit: edit, Message: "end offset is before start offset"}
	}
	if edit.End > length {
		return &ValidationError{
			Edit:    edit,
			Message: fmt.Sprintf("end offset %d exceeds text length %d", edit.End, length),
		}
	}
	return nil
}

// Clamp normalizes a range against a text of length runes.
// Reversed ranges are swapped and out-of-bounds offsets are pulled into [0, length].
func Clamp(start, end, length int) (int, int) {
	if start > end {
		start, end = end, start
	}
	start = min(max(start, 0), length)
	end = min(max(end, 0), length)
	return start, end
}
