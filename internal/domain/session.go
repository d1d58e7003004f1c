package domain

import "errors"

// ErrNotFound is returned by repositories when a record does not exist.
var ErrNotFound = errors.New("not found")

// Form holds the answers of the needs-gathering flow, keyed by field name.
type Form map[string]string

// Form field names, in the order the flow asks them.
const (
	FieldProject      = "project"
	FieldTask         = "task"
	FieldRestrictions = "restrictions"
	FieldContactInfo  = "contact_info"
)

// ProblemFields are the form fields describing the problem itself,
// without the contact block.
var ProblemFields = []string{FieldProject, FieldTask, FieldRestrictions}

// Session represents per-user conversational state
type Session struct {
	UserID         int64
	ChatID         int64
	DisplayName    string
	Language       string
	ContractNumber string
	Form           Form // nil until the form flow starts
}

// Clone returns a deep copy so stores never alias a caller's form map.
func (s *Session) Clone() *Session {
	copied := *s
	if s.Form != nil {
		copied.Form = make(Form, len(s.Form))
		for k, v := range s.Form {
			copied.Form[k] = v
		}
	}
	return &copied
}
