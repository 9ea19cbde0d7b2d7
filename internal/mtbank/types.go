package mtbank

import (
	"encoding/json"

	"github.com/zmsync/go-mtbank-sync/internal/models"
)

// apiResponse is the envelope every MyBank endpoint answers with. Data keeps
// the payload raw; each call decodes it into its own shape.
type apiResponse struct {
	Success bool            `json:"success"`
	Error   *apiError       `json:"error"`
	Data    json.RawMessage `json:"data"`
}

type apiError struct {
	Description string `json:"description"`
	// LockedTime is the account lock duration; the bank sometimes sends the
	// literal string "null" here.
	LockedTime string `json:"lockedTime"`
}

type phoneIdentityRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	LoginWay    string `json:"loginWay"`
}

type checkPasswordRequest struct {
	Password string `json:"password"`
	Version  string `json:"version"`
}

type checkPasswordData struct {
	UserInfo struct {
		// dboContracts stay opaque: the role confirmation step posts the
		// first record back verbatim.
		DboContracts []json.RawMessage `json:"dboContracts"`
	} `json:"userInfo"`
}

type loadUserData struct {
	Products []models.Product `json:"products"`
}

type statementRequest struct {
	ContractCode    string `json:"contractCode"`
	AccountIdenType string `json:"accountIdenType"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	Halva           bool   `json:"halva"`
}

// accountStatement is one per-account block of a statement response.
type accountStatement struct {
	AccountID  string             `json:"accountId"`
	Operations []models.Operation `json:"operations"`
}
