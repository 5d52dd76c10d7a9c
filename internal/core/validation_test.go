// AngelaMos | 2026
// validation_test.go

package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	CompanyID int64  `json:"companyId" validate:"required"`
	Email     string `json:"email"     validate:"omitempty,emailaddr"`
	Status    string `json:"status"    validate:"omitempty,oneof=draft sent"`
}

func TestIsValidEmail(t *testing.T) {
	assert.False(t, IsValidEmail("foo@bar"))
	assert.True(t, IsValidEmail("foo@bar.com"))
	assert.False(t, IsValidEmail("foo bar@baz.com"))
	assert.False(t, IsValidEmail("@bar.com"))
	assert.False(t, IsValidEmail(""))
}

func TestValidationErrorCodes(t *testing.T) {
	v := NewValidator()

	err := v.Struct(sampleInput{})
	require.Error(t, err)
	assert.Equal(t, "MISSING_COMPANY_ID", ValidationError(err).Code)

	err = v.Struct(sampleInput{CompanyID: 1, Email: "foo@bar"})
	require.Error(t, err)
	assert.Equal(t, "INVALID_EMAIL", ValidationError(err).Code)

	err = v.Struct(sampleInput{CompanyID: 1, Status: "archived"})
	require.Error(t, err)
	assert.Equal(t, "INVALID_STATUS", ValidationError(err).Code)

	assert.NoError(t, v.Struct(sampleInput{CompanyID: 1, Email: "foo@bar.com", Status: "sent"}))
}

type samplePatch struct {
	Name *string `json:"name" validate:"omitnil,min=1"`
	Code *string `json:"code" validate:"omitnil,min=3"`
}

func TestValidationErrorBlankPatchField(t *testing.T) {
	v := NewValidator()
	blank, short := "", "ab"

	assert.NoError(t, v.Struct(samplePatch{}))

	err := v.Struct(samplePatch{Name: &blank})
	require.Error(t, err)
	assert.Equal(t, "MISSING_NAME", ValidationError(err).Code)

	err = v.Struct(samplePatch{Code: &short})
	require.Error(t, err)
	assert.Equal(t, "INVALID_CODE", ValidationError(err).Code)

	err = v.Struct(samplePatch{Code: &blank})
	require.Error(t, err)
	assert.Equal(t, "MISSING_CODE", ValidationError(err).Code)
}

func TestAmountParsing(t *testing.T) {
	a, err := NewAmount("1500.75")
	require.NoError(t, err)
	assert.Equal(t, "1500.75", a.String())

	_, err = NewAmount("NaN-ish")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	var parsed Amount
	require.NoError(t, parsed.UnmarshalJSON([]byte(`42`)))
	assert.Equal(t, "42", parsed.String())
	assert.ErrorIs(t, parsed.UnmarshalJSON([]byte(`""`)), ErrInvalidAmount)
}

func TestNullable(t *testing.T) {
	var body struct {
		A Nullable[int64] `json:"a"`
		B Nullable[int64] `json:"b"`
		C Nullable[int64] `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":5,"b":null}`), &body))

	assert.True(t, body.A.Set)
	assert.Equal(t, int64(5), *body.A.Ptr())
	assert.True(t, body.B.Set)
	assert.Nil(t, body.B.Ptr())
	assert.False(t, body.C.Set)
}
