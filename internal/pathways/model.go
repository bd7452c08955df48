package pathways

// Definition describes a single immigration pathway. Definitions are curated
// reference data: immutable after load and referenced by ID, never copied into
// other stores.
type Definition struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Category          string   `json:"category"`
	Timeline          string   `json:"timeline"`
	TimelineDetailed  string   `json:"timelineDetailed"`
	Cost              string   `json:"cost"`
	SuccessRate       string   `json:"successRate"`
	Pros              []string `json:"pros"`
	Cons              []string `json:"cons"`
	Requirements      []string `json:"requirements"`
	Risks             []string `json:"risks"`
	RecommendedFor    []string `json:"recommendedFor"`
	NotRecommendedFor []string `json:"notRecommendedFor"`
}

// ConsultationID is the sentinel pathway ID used when no rule matches a
// profile. It is intentionally absent from the catalog; consumers must treat
// it specially instead of performing a lookup.
const ConsultationID = "consultation"
