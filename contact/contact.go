// Package contact implements the contact form endpoint.
//
// A submission is a JSON object with name, email, subject and message. All
// four must be present and non-empty. Accepted submissions are stamped with
// a ULID and handed to a Notifier; nothing is stored or delivered by this
// package.
package contact

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/ancientlore/folio/web"
	"github.com/karlseguin/typed"
	"github.com/oklog/ulid/v2"
)

// Response messages.
const (
	MsgSent    = "Email sent successfully"
	MsgMissing = "Missing required fields"
	MsgFailed  = "Failed to process request"
)

// maxBody limits the size of a submission.
const maxBody = 64 << 10

// Submission is an accepted contact form message.
type Submission struct {
	ID      ulid.ULID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Subject string    `json:"subject"`
	Message string    `json:"message"`
	Time    time.Time `json:"timestamp"`
}

// Notifier is told about every accepted submission.
type Notifier interface {
	Notify(ctx context.Context, s Submission) error
}

// NotifierFunc adapts a function to a Notifier.
type NotifierFunc func(ctx context.Context, s Submission) error

// Notify calls f.
func (f NotifierFunc) Notify(ctx context.Context, s Submission) error {
	return f(ctx, s)
}

// LogNotifier logs submissions and does nothing else.
type LogNotifier struct{}

// Notify logs s.
func (LogNotifier) Notify(ctx context.Context, s Submission) error {
	log.Printf("contact: %s from %q <%s> at %s: subject %q, %d bytes",
		s.ID, s.Name, s.Email, s.Time.Format(time.RFC3339), s.Subject, len(s.Message))
	return nil
}

// Handler returns the POST handler for contact submissions. A nil notifier
// means LogNotifier.
func Handler(n Notifier) http.Handler {
	if n == nil {
		n = LogNotifier{}
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			web.WriteError(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
			return
		}
		s, ok, err := decode(http.MaxBytesReader(w, r.Body, maxBody))
		if err != nil {
			log.Printf("contact: %s", err)
			web.WriteError(w, http.StatusInternalServerError, MsgFailed)
			return
		}
		if !ok {
			web.WriteError(w, http.StatusBadRequest, MsgMissing)
			return
		}
		s.ID = ulid.Make()
		s.Time = time.Now().UTC()
		if err := n.Notify(r.Context(), s); err != nil {
			log.Printf("contact: notify %s: %s", s.ID, err)
			web.WriteError(w, http.StatusInternalServerError, MsgFailed)
			return
		}
		web.WriteJSON(w, http.StatusOK, map[string]string{"message": MsgSent})
	})
}

// decode reads a submission. ok is false when a required field is missing
// or empty; a JSON value other than an object has no fields, so it is
// missing all of them. err is set when the body is not JSON, or is null.
func decode(body io.Reader) (s Submission, ok bool, err error) {
	var raw interface{}
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		return s, false, fmt.Errorf("decode: %w", err)
	}
	if raw == nil {
		return s, false, errors.New("decode: null body")
	}
	m, _ := raw.(map[string]interface{})
	t := typed.New(m)
	var fields = []struct {
		key string
		dst *string
	}{
		{"name", &s.Name},
		{"email", &s.Email},
		{"subject", &s.Subject},
		{"message", &s.Message},
	}
	ok = true
	for _, f := range fields {
		v, present := field(t, f.key)
		*f.dst = v
		ok = ok && present
	}
	return s, ok, nil
}

// field returns key as a string, reporting false when it is missing, empty,
// false or zero.
func field(t typed.Typed, key string) (string, bool) {
	switch v := t[key].(type) {
	case nil:
		return "", false
	case string:
		return v, v != ""
	case bool:
		return fmt.Sprint(v), v
	case float64:
		return fmt.Sprint(v), v != 0
	default:
		return fmt.Sprint(v), true
	}
}
