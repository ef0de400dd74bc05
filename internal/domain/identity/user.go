package identity

import (
	"regexp"
	"time"

	"github.com/facturo/backend/internal/domain/shared"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// User represents an authenticated person. Identity verification itself is
// delegated to an external token verifier; the domain only stores the
// verifier's subject ID and the profile attributes it reports.
type User struct {
	shared.BaseEntity
	SubjectID string // subject ID assigned by the external identity provider
	Email     string
	Name      string
}

// NewUser creates a new user from verified identity attributes
func NewUser(subjectID, email, name string) (*User, error) {
	if subjectID == "" {
		return nil, shared.NewDomainError("INVALID_SUBJECT", "Subject ID cannot be empty")
	}
	if email != "" && !emailRegex.MatchString(email) {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return &User{
		BaseEntity: shared.NewBaseEntity(),
		SubjectID:  subjectID,
		Email:      email,
		Name:       name,
	}, nil
}

// LinkSubject re-binds the user to a new subject ID. Used when a user that
// was matched by email signs in with a fresh identity-provider account.
func (u *User) LinkSubject(subjectID, name string) {
	u.SubjectID = subjectID
	if name != "" {
		u.Name = name
	}
	u.UpdatedAt = time.Now()
}

// DisplayName returns the name to show for this user, falling back to email
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
