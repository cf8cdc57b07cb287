package dialog

import (
	"github.com/spec-kit/ticket-bridge/internal/domain"
)

// Field names used by the ticket dialog and echoed back in submissions.
const (
	FieldCluster  = "cluster"
	FieldResource = "resource"
	FieldProblem  = "problem"
	FieldNetwork  = "network"
)

// Build returns the ticket dialog definition for the given trigger. The
// dialog is a pure function of its inputs; the platform invokes
// callbackURL/ticket/submit once the user submits or cancels.
func Build(triggerID, callbackURL string) domain.DialogRequest {
	return domain.DialogRequest{
		TriggerID: triggerID,
		URL:       callbackURL + "/ticket/submit",
		Dialog: domain.Dialog{
			Title:       "Nouveau ticket",
			SubmitLabel: "Creer",
			Elements: []domain.DialogElement{
				{
					DisplayName: "Cluster vSphere",
					Name:        FieldCluster,
					Type:        "select",
					Options: []domain.DialogOption{
						{Text: "Cluster Production", Value: "prod-cluster"},
						{Text: "Cluster Dev/Test", Value: "dev-cluster"},
						{Text: "Cluster DMZ", Value: "dmz-cluster"},
					},
				},
				{
					DisplayName: "VM / Ressource",
					Name:        FieldResource,
					Type:        "text",
				},
				{
					DisplayName: "Probleme",
					Name:        FieldProblem,
					Type:        "textarea",
				},
				{
					DisplayName: "Infos reseau (IP, ports...)",
					Name:        FieldNetwork,
					Type:        "textarea",
					Optional:    true,
				},
			},
		},
	}
}
