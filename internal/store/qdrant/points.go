package qdrant

import (
	"time"

	"github.com/Kavirubc/gh-tracker/pkg/models"
	"github.com/qdrant/go-client/qdrant"
)

const (
	fieldTitle       = "title"
	fieldDescription = "description"
	fieldStatus      = "status"
	fieldPriority    = "priority"
	fieldAssignedTo  = "assigned_to"
	fieldCreatedBy   = "created_by"
	fieldCreatedAt   = "created_at"
	fieldUpdatedAt   = "updated_at"
)

// issueToPoint converts an Issue to a Qdrant point
func issueToPoint(issue *models.Issue) *qdrant.PointStruct {
	return &qdrant.PointStruct{
		Id:      qdrant.NewIDUUID(issue.ID),
		Vectors: qdrant.NewVectors(placeholderVector...),
		Payload: map[string]*qdrant.Value{
			fieldTitle:       qdrant.NewValueString(issue.Title),
			fieldDescription: qdrant.NewValueString(issue.Description),
			fieldStatus:      qdrant.NewValueString(string(issue.Status)),
			fieldPriority:    qdrant.NewValueString(string(issue.Priority)),
			fieldAssignedTo:  qdrant.NewValueString(issue.AssignedTo),
			fieldCreatedBy:   qdrant.NewValueString(issue.CreatedBy),
			fieldCreatedAt:   qdrant.NewValueString(formatTime(issue.CreatedAt)),
			fieldUpdatedAt:   qdrant.NewValueString(formatTime(issue.UpdatedAt)),
		},
	}
}

// patchToPayload converts the set fields of a patch to a payload
func patchToPayload(patch models.IssuePatch) map[string]*qdrant.Value {
	payload := make(map[string]*qdrant.Value)
	if patch.Status != nil {
		payload[fieldStatus] = qdrant.NewValueString(string(*patch.Status))
	}
	if patch.AssignedTo != nil {
		payload[fieldAssignedTo] = qdrant.NewValueString(*patch.AssignedTo)
	}
	if patch.UpdatedAt != nil {
		payload[fieldUpdatedAt] = qdrant.NewValueString(formatTime(*patch.UpdatedAt))
	}
	return payload
}

// payloadToIssue converts a retrieved point back to an Issue
func payloadToIssue(id *qdrant.PointId, payload map[string]*qdrant.Value) models.Issue {
	issue := models.Issue{ID: id.GetUuid()}

	if v := payload[fieldTitle]; v != nil {
		issue.Title = v.GetStringValue()
	}
	if v := payload[fieldDescription]; v != nil {
		issue.Description = v.GetStringValue()
	}
	if v := payload[fieldStatus]; v != nil {
		issue.Status = models.Status(v.GetStringValue())
	}
	if v := payload[fieldPriority]; v != nil {
		issue.Priority = models.Priority(v.GetStringValue())
	}
	if v := payload[fieldAssignedTo]; v != nil {
		issue.AssignedTo = v.GetStringValue()
	}
	if v := payload[fieldCreatedBy]; v != nil {
		issue.CreatedBy = v.GetStringValue()
	}
	if v := payload[fieldCreatedAt]; v != nil {
		issue.CreatedAt, _ = time.Parse(time.RFC3339Nano, v.GetStringValue())
	}
	if v := payload[fieldUpdatedAt]; v != nil {
		issue.UpdatedAt, _ = time.Parse(time.RFC3339Nano, v.GetStringValue())
	}

	return issue
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
