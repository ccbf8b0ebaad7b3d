package domain

// AdminUser is a caller authorized to approve or reject applicants.
// Membership is a fixed set maintained in the admin_users table.
type AdminUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedOn string `json:"created_on"`
}
