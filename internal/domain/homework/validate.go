package homework

import (
	"encoding/json"
	"fmt"
)

const (
	keyHomeworks   = "homeworks"
	keyCurrentDate = "current_date"
)

func (r Response) fields() (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(r, &fields); err != nil {
		return nil, Wrap(KindType, "ответ API не является словарём", err)
	}
	if fields == nil {
		return nil, newError(KindType, "ответ API не является словарём")
	}
	return fields, nil
}

// ValidateAndExtract checks the response shape and returns the first
// homework. The API lists the most recently updated homework first; any
// further entries are ignored, so several homeworks changing between two
// polls are reported as one.
func ValidateAndExtract(r Response) (Record, error) {
	fields, err := r.fields()
	if err != nil {
		return Record{}, err
	}

	raw, ok := fields[keyHomeworks]
	if !ok {
		return Record{}, newError(KindMissingKey, "нет ключа \"homeworks\" в ответе API")
	}

	var homeworks []json.RawMessage
	if err := json.Unmarshal(raw, &homeworks); err != nil {
		return Record{}, Wrap(KindType, "\"homeworks\" в ответе API не является списком", err)
	}
	if len(homeworks) == 0 {
		return Record{}, newError(KindEmpty, "список \"homeworks\" в ответе API пуст")
	}

	var entry map[string]json.RawMessage
	if err := json.Unmarshal(homeworks[0], &entry); err != nil || entry == nil {
		return Record{}, Wrap(KindType, "элемент \"homeworks\" не является словарём", err)
	}

	var rec Record
	if err := json.Unmarshal(homeworks[0], &rec); err != nil {
		return Record{}, Wrap(KindType, "некорректный элемент \"homeworks\"", err)
	}
	return rec, nil
}

// CurrentDate returns the server-side cursor carried by the response.
// ok is false when the key is absent.
func CurrentDate(r Response) (ts int64, ok bool, err error) {
	fields, err := r.fields()
	if err != nil {
		return 0, false, err
	}
	raw, ok := fields[keyCurrentDate]
	if !ok {
		return 0, false, nil
	}
	if err := json.Unmarshal(raw, &ts); err != nil {
		return 0, false, Wrap(KindType, fmt.Sprintf("%q в ответе API не является целым числом", keyCurrentDate), err)
	}
	return ts, true, nil
}
