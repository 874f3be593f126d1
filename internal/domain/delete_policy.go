package domain

import "fmt"

// DeletePolicy controls what happens when a Reviewer or ReviewedObject with
// dependent reviews is deleted. Under restrict the delete fails with
// ErrDeleteConflict; under cascade the dependents are removed in the same
// transaction.
type DeletePolicy string

const (
	DeleteRestrict DeletePolicy = "restrict"
	DeleteCascade  DeletePolicy = "cascade"
)

func ParseDeletePolicy(s string) (DeletePolicy, error) {
	switch DeletePolicy(s) {
	case DeleteRestrict, DeleteCascade:
		return DeletePolicy(s), nil
	}
	return "", fmt.Errorf("unknown delete policy %q", s)
}
