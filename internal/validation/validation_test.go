package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Note  string `json:"note,omitempty" validate:"max=5"`
}

var sampleMessages = Messages{
	"name":           "이름을 입력해주세요.",
	"email.required": "이메일을 입력해주세요.",
	"email.email":    "올바른 이메일 형식이 아닙니다.",
}

func TestStruct(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.Nil(t, Struct(sample{Name: "a", Email: "a@b.co"}, sampleMessages))
	})

	t.Run("FieldMessagesUseJSONNames", func(t *testing.T) {
		fields := Struct(sample{Email: "nope", Note: "toolong"}, sampleMessages)
		assert.Equal(t, map[string]string{
			"name":  "이름을 입력해주세요.",
			"email": "올바른 이메일 형식이 아닙니다.",
			"note":  "입력값을 확인해주세요.",
		}, fields)
	})

	t.Run("RequiredBeforeFormat", func(t *testing.T) {
		fields := Struct(sample{Name: "a"}, sampleMessages)
		assert.Equal(t, "이메일을 입력해주세요.", fields["email"])
	})
}

func TestCheck(t *testing.T) {
	assert.NoError(t, Check(sample{Name: "a", Email: "a@b.co"}, "확인", sampleMessages))

	err := Check(sample{Email: "a@b.co"}, "필수 항목을 입력해주세요.", sampleMessages)
	var verr *Error
	if assert.ErrorAs(t, err, &verr) {
		assert.Equal(t, "필수 항목을 입력해주세요.", verr.Error())
		assert.Equal(t, map[string]string{"name": "이름을 입력해주세요."}, verr.Fields)
	}
}

func TestVar(t *testing.T) {
	assert.True(t, Var("a@b.co", "email"))
	assert.False(t, Var("not-an-email", "email"))
	assert.True(t, Var("010-1234-5678", "required"))
	assert.False(t, Var("", "required"))
}
