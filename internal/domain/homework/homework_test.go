package homework

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestValidateAndExtract(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantKind Kind
		wantName string
	}{
		{name: "first of many", body: `{"homeworks":[{"homework_name":"hw2","status":"approved"},{"homework_name":"hw1","status":"rejected"}],"current_date":1}`, wantName: "hw2"},
		{name: "extra fields ignored", body: `{"homeworks":[{"id":7,"homework_name":"hw1","status":"reviewing","reviewer_comment":"ok"}]}`, wantName: "hw1"},
		{name: "array body", body: `[1,2,3]`, wantKind: KindType},
		{name: "null body", body: `null`, wantKind: KindType},
		{name: "not json", body: `<html>`, wantKind: KindType},
		{name: "missing homeworks", body: `{"current_date":1000}`, wantKind: KindMissingKey},
		{name: "homeworks not a list", body: `{"homeworks":{"homework_name":"hw1"}}`, wantKind: KindType},
		{name: "empty homeworks", body: `{"homeworks":[],"current_date":1000}`, wantKind: KindEmpty},
		{name: "null homeworks", body: `{"homeworks":null}`, wantKind: KindEmpty},
		{name: "entry not an object", body: `{"homeworks":["hw1"]}`, wantKind: KindType},
		{name: "entry with wrong status type", body: `{"homeworks":[{"homework_name":"hw1","status":5}]}`, wantKind: KindType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := ValidateAndExtract(Response(tt.body))
			if tt.wantKind != KindUnknown {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, KindOf(err), err.Error())
				return
			}
			require.NoError(t, err)
			require.NotNil(t, rec.Name)
			assert.Equal(t, tt.wantName, *rec.Name)
		})
	}
}

func TestCurrentDate(t *testing.T) {
	ts, ok, err := CurrentDate(Response(`{"homeworks":[],"current_date":1000}`))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(1000), ts)

	_, ok, err = CurrentDate(Response(`{"homeworks":[]}`))
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = CurrentDate(Response(`{"current_date":"yesterday"}`))
	assert.Equal(t, KindType, KindOf(err))
}

func TestFormatMessage(t *testing.T) {
	for status, verdict := range Verdicts {
		msg, err := FormatMessage(Record{Name: strPtr("hw1"), Status: strPtr(string(status))})
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("Изменился статус проверки работы \"hw1\". %s", verdict), msg)
	}
}

func TestFormatMessage_Approved(t *testing.T) {
	msg, err := FormatMessage(Record{Name: strPtr("hw1"), Status: strPtr("approved")})
	require.NoError(t, err)
	assert.Equal(t, `Изменился статус проверки работы "hw1". Работа проверена: ревьюеру всё понравилось. Ура!`, msg)
}

func TestFormatMessage_Errors(t *testing.T) {
	_, err := FormatMessage(Record{Status: strPtr("approved")})
	assert.Equal(t, KindMissingKey, KindOf(err))

	_, err = FormatMessage(Record{Name: strPtr("hw1")})
	assert.Equal(t, KindMissingKey, KindOf(err))

	for _, status := range []string{"", "APPROVED", "pending", "done"} {
		_, err = FormatMessage(Record{Name: strPtr("hw1"), Status: strPtr(status)})
		assert.Equal(t, KindUnknownStatus, KindOf(err), "status %q", status)
	}
}

func TestKindOf(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("fetch: %w", Wrap(KindTransport, "request failed", cause))

	assert.Equal(t, KindTransport, KindOf(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "fetch: request failed: connection refused", err.Error())
	assert.Equal(t, KindUnknown, KindOf(cause))
	assert.Equal(t, "transport", KindTransport.String())
}

func TestMessage(t *testing.T) {
	_, err := ValidateAndExtract(Response(`{"homeworks":5}`))
	require.Error(t, err)

	wrapped := fmt.Errorf("cycle: %w", err)
	assert.Equal(t, `"homeworks" в ответе API не является списком`, Message(wrapped))
	assert.Contains(t, wrapped.Error(), "json:")
	assert.Equal(t, "boom", Message(errors.New("boom")))
}
