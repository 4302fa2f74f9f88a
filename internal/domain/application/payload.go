package application

// Submission payload sections. Each wizard step owns exactly one section;
// the server validates the same types once at the boundary and trusts them
// afterwards. Pointer sections are optional in a draft; Submit requires the
// ones its rules mark required.

type PersonalInfo struct {
	FirstName        string `json:"firstName" validate:"required,min=2,max=100"`
	LastName         string `json:"lastName" validate:"required,min=1,max=100"`
	Email            string `json:"email" validate:"required,email"`
	Phone            string `json:"phone" validate:"required,inphone"`
	DateOfBirth      string `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	Gender           string `json:"gender" validate:"required,oneof=MALE FEMALE OTHER"`
	AadharNumber     string `json:"aadharNumber" validate:"required,aadhar"`
	PANNumber        string `json:"panNumber" validate:"omitempty,pan"`
	EmergencyContact string `json:"emergencyContact" validate:"required,inphone"`
}

type AddressInfo struct {
	AddressLine string `json:"addressLine" validate:"required,min=5"`
	City        string `json:"city" validate:"required"`
	State       string `json:"state" validate:"required"`
	PinCode     string `json:"pinCode" validate:"required,pincode"`
}

type AcademicInfo struct {
	InstituteName string  `json:"instituteName" validate:"required"`
	Course        string  `json:"course" validate:"required"`
	YearOfStudy   int     `json:"yearOfStudy" validate:"required,gte=1,lte=10"`
	Percentage    float64 `json:"percentage" validate:"gte=0,lte=100"`
	RollNumber    string  `json:"rollNumber" validate:"omitempty,max=50"`
}

type FamilyInfo struct {
	FatherName       string  `json:"fatherName" validate:"required"`
	FatherOccupation string  `json:"fatherOccupation" validate:"omitempty"`
	MotherName       string  `json:"motherName" validate:"required"`
	MotherOccupation string  `json:"motherOccupation" validate:"omitempty"`
	FamilyIncome     float64 `json:"familyIncome" validate:"gte=0"`
	Dependents       int     `json:"dependents" validate:"gte=0"`
}

type FinancialInfo struct {
	BankName          string `json:"bankName" validate:"required"`
	AccountNumber     string `json:"accountNumber" validate:"required,numeric,min=9,max=18"`
	IFSCCode          string `json:"ifscCode" validate:"required,ifsc"`
	AccountHolderName string `json:"accountHolderName" validate:"required"`
}

type AdditionalInfo struct {
	Essay            string `json:"essay" validate:"required,min=100"`
	FutureGoals      string `json:"futureGoals" validate:"required,min=50"`
	WhyScholarship   string `json:"whyScholarship" validate:"required,min=50"`
	ExtraCurriculars string `json:"extraCurriculars" validate:"omitempty"`
}

// DocumentRef points at a stored upload; the storage collaborator owns the
// bytes and hands back the stable reference.
type DocumentRef struct {
	DocumentID string `json:"documentId" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Type       string `json:"type" validate:"required"`
	URL        string `json:"url" validate:"required,url"`
}

type Payload struct {
	ScholarshipID  string          `json:"scholarshipId" validate:"required"`
	PersonalInfo   *PersonalInfo   `json:"personalInfo,omitempty"`
	AddressInfo    *AddressInfo    `json:"addressInfo,omitempty"`
	AcademicInfo   *AcademicInfo   `json:"academicInfo,omitempty"`
	FamilyInfo     *FamilyInfo     `json:"familyInfo,omitempty"`
	FinancialInfo  *FinancialInfo  `json:"financialInfo,omitempty"`
	AdditionalInfo *AdditionalInfo `json:"additionalInfo,omitempty"`
	Documents      []DocumentRef   `json:"documents,omitempty" validate:"omitempty,dive"`
}
