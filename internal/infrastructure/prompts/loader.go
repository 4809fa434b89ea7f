package prompts

import (
	_ "embed"
)

//go:embed optimistic.txt
var OptimistInstruction string

//go:embed critical.txt
var CriticInstruction string

// JudgeDirective is fixed across runs; it encodes the verdict shape rules
// directly into the generation request.
//
//go:embed judge.txt
var JudgeDirective string

//go:embed summary.txt
var SummaryInstruction string

//go:embed search_query.txt
var searchQueryTemplate string

//go:embed context_header.txt
var contextHeaderTemplate string
