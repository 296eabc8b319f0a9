package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "sokoni/pkg/domain-errors"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"local zero prefix", "0712345678", "+254712345678"},
		{"bare subscriber", "712345678", "+254712345678"},
		{"country code no plus", "254712345678", "+254712345678"},
		{"already normalized", "+254712345678", "+254712345678"},
		{"airtel range", "0112345678", "+254112345678"},
		{"spaces and dashes", "0712 345-678", "+254712345678"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Normalize(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeRejectsInvalid(t *testing.T) {
	for _, in := range []string{"", "12345", "0812345678", "+1555123456", "07123456789", "07abc45678"} {
		t.Run(in, func(t *testing.T) {
			_, err := Normalize(in)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		})
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("0712345678"))
	assert.False(t, IsValid("not-a-phone"))
}
