package merge

// Column names the pipeline depends on.
const (
	ColID           = "id"
	ColName         = "name"
	ColEmail        = "email"
	ColOrganization = "organization"
	ColExternalID   = "external_id"

	ColUserPrincipalName = "UserPrincipalName"
	ColCompany           = "Company"
	ColEmployeeID        = "EmployeeID"
)

// PrimaryColumns must be present in the roster table.
var PrimaryColumns = []string{ColID, ColName, ColEmail, ColOrganization}

// SecondaryColumns must be present in the directory table. They are also the
// only directory columns carried through the join.
var SecondaryColumns = []string{ColUserPrincipalName, ColCompany, ColEmployeeID}

// OutputColumns is the updated roster schema, in output order.
var OutputColumns = []string{
	"id", "url", "name", "email", "created_at", "updated_at", "time_zone", "iana_time_zone",
	"phone", "shared_phone_number", "photo", "locale_id", "locale", "role", "verified",
	"external_id", "tags", "alias", "active", "shared", "shared_agent", "last_login_at",
	"two_factor_auth_enabled", "signature", "details", "notes", "role_type", "custom_role_id",
	"moderator", "ticket_restriction", "only_private_comments", "restricted_agent", "suspended",
	"default_group_id", "report_csv", "user_fields", "abilities", "organization",
}

// DirectoryJoin joins roster emails to directory user principal names.
var DirectoryJoin = JoinOn{
	LeftKey:      ColEmail,
	RightKey:     ColUserPrincipalName,
	RightColumns: SecondaryColumns,
}
