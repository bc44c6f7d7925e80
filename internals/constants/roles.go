package constants

// Application roles carried in the access-token "role" claim.
const (
	RoleAdmin    = "admin"
	RoleExaminer = "examiner"
)

func IsKnownRole(r string) bool {
	return r == RoleAdmin || r == RoleExaminer
}
