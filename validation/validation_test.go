package validation_test

import (
	"strings"
	"testing"

	"github.com/ameerhamza-malik/ItemManagement/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldRejectsBlocklistedPatterns(t *testing.T) {
	inputs := []string{
		"1 UNION SELECT password_hash FROM users",
		"union all select *",
		"DROP TABLE items",
		"drop   table users",
		"INSERT INTO users VALUES (1)",
		"update users set email='x'",
		"delete from items where 1=1",
		"<script>alert(1)</script>",
		"<SCRIPT>ALERT(1)</SCRIPT>",
		"<script src=evil.js>",
		"javascript:alert(1)",
		"JaVaScRiPt:void(0)",
		"x onerror=alert(1)",
		"body onload = init()",
		"<iframe src=x>",
		"<IFRAME>",
		"admin' --",
		"1; DROP TABLE users",
		"' OR '1'='1",
		"  <script>padded</script>  ",
		"\tUNION SELECT\t",
	}

	for _, in := range inputs {
		_, err := validation.Field("title", in, validation.Constraints{Required: true, MaxLen: validation.TitleMaxLen})
		require.NotNil(t, err, "expected rejection for %q", in)
		assert.Contains(t, err.Message, "disallowed content")
	}
}

func TestFieldAcceptsAndTrims(t *testing.T) {
	inputs := map[string]string{
		"hello":              "hello",
		"  hello world  ":    "hello world",
		"union station":      "union station", // no SELECT, not an injection
		"a -- b":             "a -- b",        // comment marker only rejected at end of input
		"\tTabs and spaces ": "Tabs and spaces",
	}

	for in, want := range inputs {
		got, err := validation.Field("title", in, validation.Constraints{Required: true, MaxLen: validation.TitleMaxLen})
		require.Nil(t, err, "unexpected rejection for %q: %v", in, err)
		assert.Equal(t, want, got)
	}
}

func TestFieldRequired(t *testing.T) {
	_, err := validation.Field("title", "", validation.Constraints{Required: true})
	require.NotNil(t, err)
	assert.Contains(t, err.Message, "required")

	// Whitespace-only counts as empty after trimming.
	_, err = validation.Field("title", "   \t  ", validation.Constraints{Required: true})
	require.NotNil(t, err)

	// Optional fields pass through as empty.
	got, err := validation.Field("description", "  ", validation.Constraints{})
	require.Nil(t, err)
	assert.Equal(t, "", got)
}

func TestFieldLengthBounds(t *testing.T) {
	ok := strings.Repeat("a", validation.TitleMaxLen)
	got, err := validation.Field("title", ok, validation.Constraints{Required: true, MaxLen: validation.TitleMaxLen})
	require.Nil(t, err)
	assert.Equal(t, ok, got)

	tooLong := strings.Repeat("a", validation.TitleMaxLen+1)
	_, err = validation.Field("title", tooLong, validation.Constraints{Required: true, MaxLen: validation.TitleMaxLen})
	require.NotNil(t, err)
	assert.Contains(t, err.Message, "must not exceed")

	_, err = validation.Field("username", "ab", validation.Constraints{Required: true, MinLen: validation.UsernameMinLen, MaxLen: validation.UsernameMaxLen})
	require.NotNil(t, err)
	assert.Contains(t, err.Message, "at least")
}

func TestEmail(t *testing.T) {
	got, err := validation.Email("email", "  alice@example.com  ")
	require.Nil(t, err)
	assert.Equal(t, "alice@example.com", got)

	for _, bad := range []string{"", "not-an-email", "missing@tld@twice", "@example.com"} {
		_, err := validation.Email("email", bad)
		assert.NotNil(t, err, "expected rejection for %q", bad)
	}

	tooLong := strings.Repeat("a", validation.EmailMaxLen) + "@example.com"
	_, err = validation.Email("email", tooLong)
	require.NotNil(t, err)
}

func TestPassword(t *testing.T) {
	assert.Nil(t, validation.Password("password", "Secret123"))

	err := validation.Password("password", "short")
	require.NotNil(t, err)
	assert.Contains(t, err.Message, "between")

	err = validation.Password("password", strings.Repeat("x", validation.PasswordMaxLen+1))
	require.NotNil(t, err)

	err = validation.Password("password", "")
	require.NotNil(t, err)
	assert.Contains(t, err.Message, "required")
}

func TestRegistrationFormValidate(t *testing.T) {
	form := validation.RegistrationForm{
		Username:        "  alice  ",
		Email:           " alice@example.com ",
		Password:        "Secret123",
		ConfirmPassword: "Secret123",
	}
	errs := form.Validate()
	require.Empty(t, errs)
	assert.Equal(t, "alice", form.Username)
	assert.Equal(t, "alice@example.com", form.Email)

	mismatch := validation.RegistrationForm{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "Secret123",
		ConfirmPassword: "Secret124",
	}
	errs = mismatch.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "confirm_password", errs[0].Field)

	allBad := validation.RegistrationForm{
		Username: "ab",
		Email:    "nope",
		Password: "short",
	}
	errs = allBad.Validate()
	fields := make(map[string]bool)
	for _, e := range errs {
		fields[e.Field] = true
	}
	assert.True(t, fields["username"])
	assert.True(t, fields["email"])
	assert.True(t, fields["password"])
}

func TestItemFormValidate(t *testing.T) {
	form := validation.ItemForm{Title: "  Hello  ", Description: ""}
	errs := form.Validate()
	require.Empty(t, errs)
	assert.Equal(t, "Hello", form.Title)
	assert.Equal(t, "", form.Description)

	missing := validation.ItemForm{Description: "has a body but no title"}
	errs = missing.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "title", errs[0].Field)

	hostile := validation.ItemForm{Title: "ok", Description: "<script>alert(1)</script>"}
	errs = hostile.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "description", errs[0].Field)
}
