package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses. Details is populated only for validation-category errors
// (weak password, field validation) and lists the violated rules.
type errorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// --- Auth ---

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"omitempty,oneof=administrator veterinarian"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type accountView struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Active bool   `json:"active"`
}

type authResponse struct {
	Token   string      `json:"token"`
	Account accountView `json:"account"`
}

// --- Accounts (admin) ---

type updateAccountRequest struct {
	Role   *string `json:"role"   validate:"omitempty,oneof=administrator veterinarian"`
	Active *bool   `json:"active"`
}

// --- Owners ---

type ownerRequest struct {
	Name    string `json:"name"    validate:"required,max=150"`
	Phone   string `json:"phone"`
	Email   string `json:"email"   validate:"required,email"`
	Address string `json:"address"`
}

// --- Pets ---

type createPetRequest struct {
	OwnerID       string  `json:"owner_id"       validate:"required"`
	Name          string  `json:"name"           validate:"required,max=100"`
	Species       string  `json:"species"        validate:"required"`
	Breed         string  `json:"breed"`
	BirthDate     string  `json:"birth_date"     validate:"omitempty,datetime=2006-01-02"`
	InitialWeight float64 `json:"initial_weight" validate:"omitempty,gt=0"`
	PhotoURL      string  `json:"photo_url"      validate:"omitempty,url"`
}

type updatePetRequest struct {
	OwnerID       *string  `json:"owner_id"`
	Name          *string  `json:"name"           validate:"omitempty,max=100"`
	Species       *string  `json:"species"`
	Breed         *string  `json:"breed"`
	BirthDate     *string  `json:"birth_date"     validate:"omitempty,datetime=2006-01-02"`
	InitialWeight *float64 `json:"initial_weight" validate:"omitempty,gt=0"`
	PhotoURL      *string  `json:"photo_url"      validate:"omitempty,url"`
	Active        *bool    `json:"active"`
}

type petStatusRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// --- Medical records ---

type createRecordRequest struct {
	PetID     string `json:"pet_id"    validate:"required"`
	Date      string `json:"date"      validate:"omitempty,datetime=2006-01-02"`
	Reason    string `json:"reason"`
	Diagnosis string `json:"diagnosis" validate:"required"`
	Treatment string `json:"treatment"`
}
