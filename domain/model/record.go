package model

import (
	"fmt"
	"strconv"
	"time"
)

const (
	// defaultNameMinLength is the minimum length of a name or surname
	defaultNameMinLength = 1
	// defaultNameMaxLength is the maximum length of a name or surname
	defaultNameMaxLength = 50
	// defaultPhoneMinLength is the minimum length of a phone number
	defaultPhoneMinLength = 9
	// defaultPhoneMaxLength is the maximum length of a phone number
	defaultPhoneMaxLength = 13
	// createdAtLayout is the layout of the record creation date (e.g. "Wed Oct 14 10:04:05 CEST 2026")
	createdAtLayout = "Mon Jan 02 15:04:05 MST 2006"
)

// Record is one validated form submission.
//
// Construction never fails. Validated setters reject a value by returning a
// *NotValidDataError and leave the record unchanged.
// A Record is not safe for concurrent use.
type Record struct {
	createdAt   time.Time
	name        string
	surname     string
	bornDate    time.Time
	address     Address
	phoneNumber string
	email       string
	gender      rune
	hobby       string
	work        string

	nameValidator   Validator[string]
	emailValidator  Validator[string]
	numberValidator Validator[string]
	dateValidator   Validator[time.Time]

	strictBornDate bool
	now            func() time.Time
}

// RecordOption configures a Record.
type RecordOption func(*Record)

// WithNameValidator replaces the validator used for name and surname.
func WithNameValidator(v Validator[string]) RecordOption {
	return func(r *Record) {
		r.nameValidator = v
	}
}

// WithEmailValidator replaces the email validator.
func WithEmailValidator(v Validator[string]) RecordOption {
	return func(r *Record) {
		r.emailValidator = v
	}
}

// WithNumberValidator replaces the phone number validator.
func WithNumberValidator(v Validator[string]) RecordOption {
	return func(r *Record) {
		r.numberValidator = v
	}
}

// WithDateValidator replaces the born date validator.
// It is consulted only together with WithStrictBornDate.
func WithDateValidator(v Validator[time.Time]) RecordOption {
	return func(r *Record) {
		r.dateValidator = v
	}
}

// WithStrictBornDate makes SetBornDate reject dates refused by the date validator.
func WithStrictBornDate() RecordOption {
	return func(r *Record) {
		r.strictBornDate = true
	}
}

// WithClock sets the clock used for the creation date and the default date validator.
func WithClock(now func() time.Time) RecordOption {
	return func(r *Record) {
		r.now = now
	}
}

// NewRecord creates a Record with an empty Address and the default validators:
// names 1..50 characters, phone 9..13 characters, any email, born date not in the future.
func NewRecord(opts ...RecordOption) *Record {
	r := &Record{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.createdAt = r.now()
	if r.nameValidator == nil {
		r.nameValidator = NewNameValidator(defaultNameMinLength, defaultNameMaxLength)
	}
	if r.emailValidator == nil {
		r.emailValidator = NewEmailValidator()
	}
	if r.numberValidator == nil {
		r.numberValidator = NewNumberValidator(defaultPhoneMinLength, defaultPhoneMaxLength)
	}
	if r.dateValidator == nil {
		r.dateValidator = NewDateValidator(r.createdAt)
	}
	return r
}

// CreatedAt returns the creation date of the record.
func (r *Record) CreatedAt() time.Time {
	return r.createdAt
}

// Name returns the name.
func (r *Record) Name() string {
	return r.name
}

// SetName validates and sets the name.
func (r *Record) SetName(name string) error {
	if !r.nameValidator.IsValid(name) {
		return newNotValidDataError(AttrName, r.nameValidator.ErrorMessage())
	}
	r.name = name
	return nil
}

// Surname returns the surname.
func (r *Record) Surname() string {
	return r.surname
}

// SetSurname validates and sets the surname.
func (r *Record) SetSurname(surname string) error {
	if !r.nameValidator.IsValid(surname) {
		return newNotValidDataError(AttrSurname, r.nameValidator.ErrorMessage())
	}
	r.surname = surname
	return nil
}

// BornDate returns the born date.
func (r *Record) BornDate() time.Time {
	return r.bornDate
}

// SetBornDate sets the born date. It never fails unless WithStrictBornDate was given.
func (r *Record) SetBornDate(bornDate time.Time) error {
	if r.strictBornDate && !r.dateValidator.IsValid(bornDate) {
		return newNotValidDataError("bornDate", r.dateValidator.ErrorMessage())
	}
	r.bornDate = bornDate
	return nil
}

// Address returns a copy of the address.
func (r *Record) Address() Address {
	return r.address
}

// SetAddress sets the address.
func (r *Record) SetAddress(address Address) {
	r.address = address
}

// PhoneNumber returns the phone number.
func (r *Record) PhoneNumber() string {
	return r.phoneNumber
}

// SetPhoneNumber validates and sets the phone number.
func (r *Record) SetPhoneNumber(phoneNumber string) error {
	if !r.numberValidator.IsValid(phoneNumber) {
		return newNotValidDataError(AttrNumber, r.numberValidator.ErrorMessage())
	}
	r.phoneNumber = phoneNumber
	return nil
}

// Email returns the email.
func (r *Record) Email() string {
	return r.email
}

// SetEmail sets the email. The default email validator accepts every value.
func (r *Record) SetEmail(email string) error {
	if !r.emailValidator.IsValid(email) {
		return newNotValidDataError(AttrEmail, r.emailValidator.ErrorMessage())
	}
	r.email = email
	return nil
}

// Gender returns the gender code, 0 when unset.
func (r *Record) Gender() rune {
	return r.gender
}

// SetGender sets the gender code. Only 'm', 'M', 'f' and 'F' are accepted.
func (r *Record) SetGender(gender rune) error {
	switch gender {
	case 'm', 'M', 'f', 'F':
		r.gender = gender
		return nil
	default:
		return newNotValidDataError(AttrGender, fmt.Sprintf("the value: %q is not valid.", gender))
	}
}

// Hobby returns the hobby.
func (r *Record) Hobby() string {
	return r.hobby
}

// SetHobby sets the hobby.
func (r *Record) SetHobby(hobby string) {
	r.hobby = hobby
}

// Work returns the profession.
func (r *Record) Work() string {
	return r.work
}

// SetWork sets the profession.
func (r *Record) SetWork(work string) {
	r.work = work
}

// DataValues returns the 13 record values, each wrapped in double quotes,
// in the same order as AttributeNames. Embedded quotes are not escaped.
func (r *Record) DataValues() []string {
	gender := ""
	if r.gender != 0 {
		gender = string(r.gender)
	}

	values := []string{
		r.createdAt.Format(createdAtLayout),
		r.name,
		r.surname,
		formatDate(r.bornDate),
		r.address.Street(),
		r.address.CivicNumberLetter(),
		r.address.City(),
		r.address.PostalCode(),
		r.phoneNumber,
		r.email,
		gender,
		r.hobby,
		r.work,
	}
	return quoteAll(values)
}

// AttributeNames returns the 13 quoted column labels aligned with DataValues.
func (r *Record) AttributeNames() []string {
	return quoteAll(columnLabels())
}

// SetData sets every field at once from 14 positional values ordered as SetDataOrder.
//
// The day, month (1-12) and year values build the born date; out of range
// values are normalized by calendar rules (day 32 of January is February 1st).
// SetData is not atomic: fields set before the first failure keep their new value.
func (r *Record) SetData(values []string) error {
	if len(values) != setDataLength {
		return newNotValidDataError("", "The inserted data is not valid.")
	}

	day, err := strconv.Atoi(values[2])
	if err != nil {
		return newNotValidDataError(AttrDay, fmt.Sprintf("the value: %s is not a number.", values[2]))
	}
	month, err := strconv.Atoi(values[3])
	if err != nil {
		return newNotValidDataError(AttrMonth, fmt.Sprintf("the value: %s is not a number.", values[3]))
	}
	year, err := strconv.Atoi(values[4])
	if err != nil {
		return newNotValidDataError(AttrYear, fmt.Sprintf("the value: %s is not a number.", values[4]))
	}

	r.createdAt = r.now()
	if err := r.SetName(values[0]); err != nil {
		return err
	}
	if err := r.SetSurname(values[1]); err != nil {
		return err
	}
	if err := r.SetBornDate(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)); err != nil {
		return err
	}
	r.address.SetStreet(values[5])
	r.address.SetCivicNumberLetter(values[6])
	r.address.SetCity(values[7])
	r.address.SetPostalCode(values[8])
	if err := r.SetEmail(values[9]); err != nil {
		return err
	}
	if err := r.SetPhoneNumber(values[10]); err != nil {
		return err
	}
	if values[11] == "" {
		return newNotValidDataError(AttrGender, "the value is empty.")
	}
	if err := r.SetGender([]rune(values[11])[0]); err != nil {
		return err
	}
	r.SetHobby(values[12])
	r.SetWork(values[13])
	return nil
}

// formatDate formats t as day/month/year without padding. The zero time formats as "".
func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}

// quoteAll wraps every value in double quotes.
func quoteAll(values []string) []string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = `"` + v + `"`
	}
	return quoted
}
