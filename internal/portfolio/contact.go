package portfolio

import (
	"errors"
	"math/rand"
	"net/mail"
	"strings"
	"time"
)

const (
	submitLatency     = time.Second
	submitSuccessRate = 0.9
)

var (
	ErrNameRequired    = errors.New("name is required")
	ErrEmailRequired   = errors.New("email is required")
	ErrEmailInvalid    = errors.New("email address is not valid")
	ErrMessageRequired = errors.New("message is required")
	ErrSubmitPending   = errors.New("a message is already being sent")
	ErrSubmitFailed    = errors.New("failed to send message")
)

type Field int

const (
	FieldName Field = iota
	FieldEmail
	FieldMessage
	fieldCount
)

func (f Field) String() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldEmail:
		return "Email"
	case FieldMessage:
		return "Message"
	}
	return "?"
}

// ContactForm is the contact section's form. Sending is simulated: nothing
// leaves the process.
type ContactForm struct {
	values [fieldCount]string

	rng     *rand.Rand
	pending bool
	dueAt   time.Time
}

func NewContactForm(rng *rand.Rand) *ContactForm {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &ContactForm{rng: rng}
}

func (f *ContactForm) Value(fd Field) string { return f.values[fd] }

func (f *ContactForm) Set(fd Field, v string) { f.values[fd] = v }

// Type appends runes to a field.
func (f *ContactForm) Type(fd Field, rs []rune) {
	f.values[fd] += string(rs)
}

// Backspace removes the last rune of a field.
func (f *ContactForm) Backspace(fd Field) {
	r := []rune(f.values[fd])
	if len(r) > 0 {
		f.values[fd] = string(r[:len(r)-1])
	}
}

func (f *ContactForm) Reset() { f.values = [fieldCount]string{} }

func (f *ContactForm) Pending() bool { return f.pending }

// Validate returns every problem with the form joined into one error.
func (f *ContactForm) Validate() error {
	var errs []error
	if strings.TrimSpace(f.values[FieldName]) == "" {
		errs = append(errs, ErrNameRequired)
	}
	email := strings.TrimSpace(f.values[FieldEmail])
	switch {
	case email == "":
		errs = append(errs, ErrEmailRequired)
	case !validEmail(email):
		errs = append(errs, ErrEmailInvalid)
	}
	if strings.TrimSpace(f.values[FieldMessage]) == "" {
		errs = append(errs, ErrMessageRequired)
	}
	return errors.Join(errs...)
}

func validEmail(s string) bool {
	a, err := mail.ParseAddress(s)
	if err != nil || a.Address != s {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	return strings.Contains(s[at+1:], ".")
}

// Submit validates and starts a simulated send that completes at
// now+submitLatency. Poll reports the outcome.
func (f *ContactForm) Submit(now time.Time) error {
	if f.pending {
		return ErrSubmitPending
	}
	if err := f.Validate(); err != nil {
		return err
	}
	f.pending = true
	f.dueAt = now.Add(submitLatency)
	return nil
}

// Poll finishes a pending send once its time has come. done is false while
// the send is still in flight or when nothing was sent. A successful send
// clears the form.
func (f *ContactForm) Poll(now time.Time) (done bool, err error) {
	if !f.pending || now.Before(f.dueAt) {
		return false, nil
	}
	f.pending = false
	if f.rng.Float64() >= submitSuccessRate {
		return true, ErrSubmitFailed
	}
	f.Reset()
	return true, nil
}
