package status

// PhaseState is the per-template view of one phase used by Derive.
type PhaseState struct {
	Started bool
	Code    Code
}

// Derive computes a project status from its phases.
//
//   - any started phase Failed gives Failed
//   - every template phase started and Approved gives Approved
//   - no phase started gives the project ledger's own status
//   - anything else is InProgress
func Derive(projectCode Code, phases []PhaseState) Code {
	if projectCode == 0 {
		projectCode = NotStarted
	}
	started, approved := 0, 0
	for _, p := range phases {
		if !p.Started {
			continue
		}
		started++
		if p.Code == Failed {
			return Failed
		}
		if p.Code.Terminal() {
			approved++
		}
	}
	if started == 0 {
		return projectCode
	}
	if started == len(phases) && approved == started {
		return Approved
	}
	return InProgress
}
