package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/ymurata/taskleaf/internal/models"
)

const MaxTaskNameLength = 30

const (
	MsgNameRequired = "名称を入力してください"
	MsgNameTooLong  = "名称は30文字以内で入力してください"
	MsgNameHasComma = "名称にカンマを含めることはできません"
)

type FieldError struct {
	Field   string
	Message string
}

// Errors collects every rule failure for one candidate entity, in rule
// order.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := e.Messages()
	return strings.Join(msgs, ", ")
}

func (e Errors) Messages() []string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Message
	}
	return msgs
}

type taskRule func(t *models.Task) *FieldError

// Rules run in order and all failures are collected before reporting.
var taskRules = []taskRule{
	taskNamePresent,
	taskNameLength,
	taskNameNoComma,
}

// ValidateTask runs the full rule set against a candidate task. The same
// rules apply on create and update. A nil return means the task is valid.
func ValidateTask(t *models.Task) Errors {
	var errs Errors
	for _, rule := range taskRules {
		if fe := rule(t); fe != nil {
			errs = append(errs, *fe)
		}
	}
	return errs
}

func taskNamePresent(t *models.Task) *FieldError {
	if strings.TrimSpace(t.Name) == "" {
		return &FieldError{Field: "name", Message: MsgNameRequired}
	}
	return nil
}

func taskNameLength(t *models.Task) *FieldError {
	if utf8.RuneCountInString(t.Name) > MaxTaskNameLength {
		return &FieldError{Field: "name", Message: MsgNameTooLong}
	}
	return nil
}

// Skipped for an empty name; the presence rule already covers that case.
func taskNameNoComma(t *models.Task) *FieldError {
	if t.Name == "" {
		return nil
	}
	if strings.Contains(t.Name, ",") {
		return &FieldError{Field: "name", Message: MsgNameHasComma}
	}
	return nil
}
