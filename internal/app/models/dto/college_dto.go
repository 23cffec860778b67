package dto

// BranchRequest is a branch name supplied on college create/update
type BranchRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateCollegeRequest creates a college with its branch list
type CreateCollegeRequest struct {
	Name     string          `json:"name" binding:"required"`
	Branches []BranchRequest `json:"branches"`
}

// UpdateCollegeRequest updates a college by id. A supplied branches
// array fully replaces the existing branch list: callers must resend
// the complete desired set, including unchanged branches.
type UpdateCollegeRequest struct {
	ID       string           `json:"id" binding:"required"`
	Name     string           `json:"name"`
	Branches *[]BranchRequest `json:"branches"`
}

// DeleteCollegeRequest identifies the college to remove
type DeleteCollegeRequest struct {
	ID string `json:"id" binding:"required"`
}
