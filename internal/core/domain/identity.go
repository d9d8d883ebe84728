package domain

// Identity is the opaque authenticated-user handle resolved from a
// credential. Handlers never see which credential form produced it.
type Identity struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Picture     string `json:"picture"`
}

type CredentialKind string

const (
	SessionCredential CredentialKind = "session"
	DeviceCredential  CredentialKind = "device"
)

// Credential is the polymorphic auth input: a user session token or a
// device bearer token, resolved through one verifier.
type Credential struct {
	Kind  CredentialKind
	Token string
}
