// Package requirements holds the per-program document requirement table and
// phase resolution for submitted dikaiologitika.
package requirements

import "github.com/michaeltheo/placements-backend/internal/model"

// Requirement one entry of a program's document checklist.
type Requirement struct {
	Type        model.DocumentType    `json:"type"`
	Description string                `json:"description"`
	Phase       model.SubmissionPhase `json:"submission_phase"`
}

// table maps each funding program to the document types required at each phase.
var table = map[model.InternshipProgram]map[model.SubmissionPhase][]model.DocumentType{
	model.ProgramTeitheOaed: {
		model.PhaseStart: {
			model.DocAitisiPraktikis,
			model.DocBebaiosiPraktikisApoGramateia,
			model.DocAitisiForeaGiaApasxolisiFoititi,
		},
		model.PhaseEnd: {
			model.DocBebaiosiApasxolisis,
			model.DocAsfalisiAskoumenou,
		},
	},
	model.ProgramEspa: {
		model.PhaseStart: {
			model.DocAitisiPraktikis,
			model.DocBebaiosiPraktikis,
		},
		model.PhaseEnd: {
			model.DocBebaiosiApasxolisis,
			model.DocAsfalisiAskoumenou,
		},
	},
	model.ProgramEmployerFinanced: {
		model.PhaseStart: {
			model.DocAitisiPraktikis,
			model.DocBebaiosiPraktikis,
		},
		model.PhaseEnd: {
			model.DocBebaiosiPraktikis,
			model.DocBebaiosiApasxolisis,
		},
	},
}

// Requirements returns a program's full document checklist, start phase
// first. Unknown programs yield nil.
func Requirements(program model.InternshipProgram) []Requirement {
	phases, ok := table[program]
	if !ok {
		return nil
	}
	var out []Requirement
	for _, phase := range []model.SubmissionPhase{model.PhaseStart, model.PhaseEnd} {
		for _, t := range phases[phase] {
			out = append(out, Requirement{Type: t, Description: t.Description(), Phase: phase})
		}
	}
	return out
}

// RequiredTypes returns the document types a program demands for a phase.
// The returned slice is a copy; callers may modify it.
func RequiredTypes(program model.InternshipProgram, phase model.SubmissionPhase) []model.DocumentType {
	phases, ok := table[program]
	if !ok {
		return nil
	}
	types := phases[phase]
	out := make([]model.DocumentType, len(types))
	copy(out, types)
	return out
}

// Accepts reports whether a program accepts the document type in any phase.
func Accepts(program model.InternshipProgram, docType model.DocumentType) bool {
	for _, phase := range []model.SubmissionPhase{model.PhaseStart, model.PhaseEnd} {
		for _, t := range table[program][phase] {
			if t == docType {
				return true
			}
		}
	}
	return false
}

// DeterminePhase resolves which phase a document submission belongs to.
// A type listed in both phases of a program resolves to the end phase.
func DeterminePhase(program model.InternshipProgram, docType model.DocumentType) (model.SubmissionPhase, bool) {
	if contains(table[program][model.PhaseEnd], docType) {
		return model.PhaseEnd, true
	}
	if contains(table[program][model.PhaseStart], docType) {
		return model.PhaseStart, true
	}
	return "", false
}

func contains(types []model.DocumentType, t model.DocumentType) bool {
	for _, x := range types {
		if x == t {
			return true
		}
	}
	return false
}
