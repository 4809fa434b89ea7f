package entity

// Context is the bounded textual evidence bundle handed to the reasoning
// passes. It is the sole input the agents see; none of them gets direct
// access to BusinessMetadata or the EvidenceSource behind it.
type Context string

type AgentRole string

const (
	RoleOptimist AgentRole = "optimistic"
	RoleCritic   AgentRole = "critical"
	RoleJudge    AgentRole = "judge"
)

// AgentOpinion is produced once per run by an advocate pass and consumed
// only by the judge pass.
type AgentOpinion struct {
	Role AgentRole
	Text string
}

// Verdict is the terminal artifact of a run: three single lines, each at
// most 200 characters, none naming the evidence source.
type Verdict struct {
	Pros           string `json:"pros"`
	Cons           string `json:"cons"`
	Recommendation string `json:"recommendation"`
}
