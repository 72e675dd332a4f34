package homework

import "fmt"

const messageTemplate = "Изменился статус проверки работы \"%s\". %s"

// FormatMessage renders the chat message for a homework status change.
// An unrecognized status is an error; there is no fallback verdict.
func FormatMessage(rec Record) (string, error) {
	if rec.Name == nil {
		return "", newError(KindMissingKey, "нет ключа \"homework_name\" в ответе API")
	}
	if rec.Status == nil {
		return "", newError(KindMissingKey, "нет ключа \"status\" в ответе API")
	}

	verdict, ok := Verdicts[Status(*rec.Status)]
	if !ok {
		return "", newError(KindUnknownStatus, fmt.Sprintf("неизвестный статус работы %q", *rec.Status))
	}
	return fmt.Sprintf(messageTemplate, *rec.Name, verdict), nil
}
