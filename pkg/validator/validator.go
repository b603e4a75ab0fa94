package validator

import "strings"

type ValidationErrors map[string]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

func ValidateProfile(username, bio string) ValidationErrors {
	errs := make(ValidationErrors)

	username = strings.TrimSpace(username)
	if username == "" {
		errs.Add("username", "Username is required")
	} else if len(username) > 50 {
		errs.Add("username", "Username is too long")
	}

	if len(bio) > 300 {
		errs.Add("bio", "Bio is too long")
	}

	return errs
}

func ValidatePost(content string) ValidationErrors {
	return validateContent("content", content, 2000)
}

func ValidateComment(content string) ValidationErrors {
	return validateContent("content", content, 1000)
}

func ValidateMessage(content string) ValidationErrors {
	return validateContent("content", content, 2000)
}

func validateContent(field, content string, maxLen int) ValidationErrors {
	errs := make(ValidationErrors)

	content = strings.TrimSpace(content)
	if content == "" {
		errs.Add(field, "Content is required")
	} else if len(content) > maxLen {
		errs.Add(field, "Content is too long")
	}

	return errs
}
