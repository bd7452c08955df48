package advisor

// Profile is a user's self-reported situation. Every field takes a value from
// a fixed vocabulary; unknown values simply fail to match any rule.
type Profile struct {
	Status        string `json:"status"`
	Relationship  string `json:"relationship"`
	TimeInCountry string `json:"timeInCountry"`
	Goal          string `json:"goal"`
}

// Status values.
const (
	StatusCitizen   = "citizen"
	StatusGreenCard = "green_card"
	StatusH1B       = "h1b_visa"
	StatusL1        = "l1_visa"
	StatusStudent   = "student_visa"
	StatusTourist   = "tourist"
	StatusNone      = "none"
)

// Relationship values.
const (
	RelationshipNone              = "none"
	RelationshipEngaged           = "engaged"
	RelationshipMarriedToCitizen  = "married_to_citizen"
	RelationshipMarriedToResident = "married_to_resident"
)

// TimeInCountry values.
const (
	TimeLessThanOne = "less_than_1"
	TimeOneToThree  = "1_to_3"
	TimeThreeToFive = "3_to_5"
	TimeFivePlus    = "5_plus"
	TimeSinceBirth  = "since_birth"
)

// Goal values.
const (
	GoalCitizenship = "citizenship"
	GoalGreenCard   = "green_card"
	GoalWork        = "work"
	GoalFamily      = "family"
	GoalVisit       = "visit"
)

func isWorkOrStudyStatus(status string) bool {
	switch status {
	case StatusH1B, StatusL1, StatusStudent:
		return true
	default:
		return false
	}
}

func meetsResidencyClock(timeInCountry string) bool {
	return timeInCountry == TimeFivePlus || timeInCountry == TimeSinceBirth
}
