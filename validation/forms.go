package validation

// ItemForm carries the fields of a create or edit submission.
type ItemForm struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Validate applies the item field rules. Accepted values are written back
// to the form trimmed; rejections come back one per offending field.
func (f *ItemForm) Validate() []FieldError {
	var errs []FieldError

	if title, err := Field("title", f.Title, Constraints{Required: true, MaxLen: TitleMaxLen}); err != nil {
		errs = append(errs, *err)
	} else {
		f.Title = title
	}

	if desc, err := Field("description", f.Description, Constraints{MaxLen: DescriptionMaxLen}); err != nil {
		errs = append(errs, *err)
	} else {
		f.Description = desc
	}

	return errs
}

// RegistrationForm carries a new-account submission.
type RegistrationForm struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (f *RegistrationForm) Validate() []FieldError {
	var errs []FieldError

	if username, err := Field("username", f.Username, Constraints{Required: true, MinLen: UsernameMinLen, MaxLen: UsernameMaxLen}); err != nil {
		errs = append(errs, *err)
	} else {
		f.Username = username
	}

	if email, err := Email("email", f.Email); err != nil {
		errs = append(errs, *err)
	} else {
		f.Email = email
	}

	if err := Password("password", f.Password); err != nil {
		errs = append(errs, *err)
	} else if f.Password != f.ConfirmPassword {
		errs = append(errs, FieldError{Field: "confirm_password", Message: "Passwords must match"})
	}

	return errs
}

// LoginForm carries a login submission. Only presence is checked here;
// the real check happens against the stored hash.
type LoginForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (f *LoginForm) Validate() []FieldError {
	var errs []FieldError

	if username, err := Field("username", f.Username, Constraints{Required: true, MaxLen: UsernameMaxLen}); err != nil {
		errs = append(errs, *err)
	} else {
		f.Username = username
	}

	if f.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "password is required"})
	}

	return errs
}
