package models

// Store rows. Field names follow the table columns.

type User struct {
	Username     string
	PasswordHash string
}

type StateRow struct {
	StateID    int64
	StateName  string
	Population int64
}

type DistrictRow struct {
	DistrictID   int64
	DistrictName string
	StateID      int64
	Cases        int64
	Cured        int64
	Active       int64
	Deaths       int64
}

// StatsRow holds the per-state sums of the district counters and how many
// districts were summed
type StatsRow struct {
	Districts int64
	Cases     int64
	Cured     int64
	Active    int64
	Deaths    int64
}

// Request types

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// DistrictRequest is the body of POST /districts/ and PUT /districts/{id}/.
// PUT replaces every field.
type DistrictRequest struct {
	DistrictName string `json:"districtName" validate:"required"`
	StateID      int64  `json:"stateId" validate:"gt=0"`
	Cases        int64  `json:"cases" validate:"min=0"`
	Cured        int64  `json:"cured" validate:"min=0"`
	Active       int64  `json:"active" validate:"min=0"`
	Deaths       int64  `json:"deaths" validate:"min=0"`
}

// Response types

type LoginResponse struct {
	JWTToken string `json:"jwtToken"`
}

type State struct {
	StateID    int64  `json:"stateId"`
	StateName  string `json:"stateName"`
	Population int64  `json:"population"`
}

type District struct {
	DistrictID   int64  `json:"districtId"`
	DistrictName string `json:"districtName"`
	StateID      int64  `json:"stateId"`
	Cases        int64  `json:"cases"`
	Cured        int64  `json:"cured"`
	Active       int64  `json:"active"`
	Deaths       int64  `json:"deaths"`
}

type StateStats struct {
	TotalCases  int64 `json:"totalCases"`
	TotalCured  int64 `json:"totalCured"`
	TotalActive int64 `json:"totalActive"`
	TotalDeaths int64 `json:"totalDeaths"`
}

// Confirmation bodies for district writes
const (
	MsgDistrictAdded   = "District Successfully Added"
	MsgDistrictRemoved = "District Removed"
	MsgDistrictUpdated = "District Details Updated"
)
