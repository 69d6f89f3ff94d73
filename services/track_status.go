package services

import (
	"time"

	"github.com/google/uuid"

	"ondernemercentraal.nl/models"
	"ondernemercentraal.nl/pkg/apperrors"
)

// applyStatusTransition moves a track to targetStatus, enforcing the strict
// lifecycle order. Setting the current status again is an idempotent no-op:
// nothing is stamped and nothing fails. The function only mutates the track;
// persisting is the caller's job, inside its transaction.
func applyStatusTransition(track *models.Track, targetStatus string, completionCause *string, now time.Time) error {
	// Cause validation runs before the sequence check.
	if completionCause != nil && targetStatus != models.TrackStatusCompleted {
		return apperrors.UserInputf(
			"Beëindigsreden mag alleen worden ingevuld wanneer de status gelijk is aan %s.",
			models.TrackStatusCompleted)
	}

	currentStatus := track.Status()
	if targetStatus == currentStatus {
		return nil
	}

	if nextStatus(currentStatus) != targetStatus {
		return apperrors.UserInputf(
			"Status kan niet worden gewijzigd van '%s' naar '%s'.", currentStatus, targetStatus)
	}

	switch targetStatus {
	case models.TrackStatusStarted:
		startDt := now
		track.StartDt = &startDt
	case models.TrackStatusCompleted:
		if completionCause == nil {
			return apperrors.UserInput("Beëindigsreden is verplicht.")
		}
		if !models.IsValidCompletionCause(*completionCause) {
			return apperrors.UserInputf("Beëindigsreden '%s' is ongeldig.", *completionCause)
		}
		endDt := now
		track.EndDt = &endDt
		track.CompletionCause = completionCause
	}
	return nil
}

// nextStatus returns the only allowed non-trivial target from current, or ""
// when the track is already in its terminal state.
func nextStatus(current string) string {
	for i, status := range models.TrackStatusSequence {
		if status == current && i+1 < len(models.TrackStatusSequence) {
			return models.TrackStatusSequence[i+1]
		}
	}
	return ""
}

const completionApprovalTaskDescription = "Traject beëindigd met goedkeuring door adviseur. Controleer of de ondernemer nog steeds tevreden is."

// buildCompletionApprovalTask is the follow-up created when an advisor
// approves a completed track: due six calendar months later, unassigned.
func buildCompletionApprovalTask(caseID uuid.UUID, now time.Time) *models.Task {
	return &models.Task{
		Description: completionApprovalTaskDescription,
		DueDate:     now.AddDate(0, 6, 0),
		Status:      models.TaskStatusToDo,
		CaseID:      caseID,
	}
}
