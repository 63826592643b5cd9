package lessonplan

// Content is either text the teacher typed in, or a request for the model to
// author that text itself. The zero value is Provided("").
type Content struct {
	auto bool
	text string
}

// Provided returns teacher-supplied content.
func Provided(text string) Content {
	return Content{text: text}
}

// AutoGenerate returns content the model must write on its own.
func AutoGenerate() Content {
	return Content{auto: true}
}

// IsAuto reports whether the model should author this content.
func (c Content) IsAuto() bool { return c.auto }

// Text returns the provided text. It is always empty for AutoGenerate.
func (c Content) Text() string {
	if c.auto {
		return ""
	}
	return c.text
}
