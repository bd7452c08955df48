package usage

import "time"

const (
	defaultPlan  = "Free"
	defaultLimit = 5
	periodLength = 30 * 24 * time.Hour
)

func defaultUsage() Usage {
	return Usage{
		Plan:     defaultPlan,
		Limit:    defaultLimit,
		Used:     0,
		ResetsAt: time.Now().UTC().Add(periodLength),
	}
}
