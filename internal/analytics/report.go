package analytics

import (
	"github.com/teamlens/teamlens/internal/cluster"
	"github.com/teamlens/teamlens/internal/source"
)

// Report bundles every analytics derivation for one snapshot.
type Report struct {
	Stats         TeamStats              `json:"stats"`
	Roles         RoleTags               `json:"roles"`
	Collaboration []CollaborationProfile `json:"collaboration"`
	Skills        []SkillProfile         `json:"skills"`
}

// Analyze runs all four derivations. The collaboration graph reads the raw
// commit and email streams because its ticket-contributor pairs include
// commits that reference tickets outside the loaded snapshot.
func Analyze(clusters []cluster.EmployeeCluster, commits []source.Commit, emails []source.Email) Report {
	return Report{
		Stats:         Summarize(clusters),
		Roles:         ClassifyRoles(clusters),
		Collaboration: BuildCollaborationGraph(commits, emails),
		Skills:        ExtractSkills(clusters),
	}
}
