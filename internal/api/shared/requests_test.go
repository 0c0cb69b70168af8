package shared

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Nickname string `json:"nickname" validate:"required,min=1,max=20"`
	Age      int    `json:"age"      validate:"required,gte=1,lte=99"`
	Ignored  string `json:"-"`
}

func TestDecodeJSON(t *testing.T) {
	req := httptest.NewRequest("POST", "/", bytes.NewBufferString(`{"nickname":"alice","age":30}`))

	var payload samplePayload
	require.NoError(t, DecodeJSON(req, &payload))
	assert.Equal(t, "alice", payload.Nickname)
	assert.Equal(t, 30, payload.Age)
}

func TestDecodeJSONMalformed(t *testing.T) {
	req := httptest.NewRequest("POST", "/", bytes.NewBufferString(`{oops`))

	var payload samplePayload
	assert.Error(t, DecodeJSON(req, &payload))
}

func TestValidateRequestUsesJSONFieldNames(t *testing.T) {
	err := ValidateRequest(samplePayload{Nickname: "", Age: 200})
	require.Error(t, err)

	details := ValidationDetails(err)
	require.Len(t, details, 2)
	assert.Equal(t, []string{"body", "nickname"}, details[0].Loc)
	assert.Equal(t, "field is required", details[0].Msg)
	assert.Equal(t, []string{"body", "age"}, details[1].Loc)
	assert.Equal(t, "must be at most 99", details[1].Msg)
}

func TestValidateRequestValid(t *testing.T) {
	assert.NoError(t, ValidateRequest(samplePayload{Nickname: "alice", Age: 30}))
}

func TestValidationDetailsNonValidatorError(t *testing.T) {
	details := ValidationDetails(assert.AnError)
	require.Len(t, details, 1)
	assert.Equal(t, []string{"body"}, details[0].Loc)
}

func TestFieldErrorBuilders(t *testing.T) {
	body := BodyFieldError("nickname", "too long")
	assert.Equal(t, []string{"body", "nickname"}, body.Loc)

	path := PathFieldError("id", "must be an integer")
	assert.Equal(t, []string{"path", "id"}, path.Loc)
}
