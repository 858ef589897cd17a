package models

import "time"

// Status classifies the outcome of a single reachability probe.
type Status string

const (
	StatusOnline       Status = "Online"
	StatusOffline      Status = "Offline"
	StatusHostNotFound Status = "HostNotFound"
)

// ProbeResult represents a single reachability probe outcome
type ProbeResult struct {
	Address  string    `json:"address"`
	Status   Status    `json:"status"`
	ProbedAt time.Time `json:"probed_at"`
}

// Report is the ordered set of results for one sweep, one entry per
// input address in input order.
type Report []ProbeResult

// Summary holds per-status totals for a report
type Summary struct {
	Online       int `json:"online"`
	Offline      int `json:"offline"`
	HostNotFound int `json:"host_not_found"`
}

// Summary tallies the report by status.
func (r Report) Summary() Summary {
	var s Summary
	for _, result := range r {
		switch result.Status {
		case StatusOnline:
			s.Online++
		case StatusHostNotFound:
			s.HostNotFound++
		default:
			s.Offline++
		}
	}
	return s
}

// Total returns the number of probes covered by the summary.
func (s Summary) Total() int {
	return s.Online + s.Offline + s.HostNotFound
}
