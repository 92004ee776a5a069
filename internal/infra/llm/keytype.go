package llm

import "strings"

// KeyType classifies an OpenAI API credential by its prefix.
type KeyType string

const (
	KeyTypeNone           KeyType = "none"
	KeyTypeClassic        KeyType = "classic"
	KeyTypeProject        KeyType = "project"
	KeyTypeServiceAccount KeyType = "service_account"
)

// ClassifyKey returns the credential type for an API key string. It is a
// pure function kept separate from client construction so the dispatch
// can be tested without any network access.
func ClassifyKey(key string) KeyType {
	switch {
	case key == "":
		return KeyTypeNone
	case strings.HasPrefix(key, "sk-proj-"):
		return KeyTypeProject
	case strings.HasPrefix(key, "sk-svcacct-"):
		return KeyTypeServiceAccount
	default:
		return KeyTypeClassic
	}
}

// RequiresOrgProject reports whether this key type needs organization and
// project identifiers to build a client.
func (t KeyType) RequiresOrgProject() bool {
	return t == KeyTypeProject || t == KeyTypeServiceAccount
}
