package views

import (
	"strings"

	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/ledger_dto"
)

const (
	// DataUnavailable replaces PII the ledger has redacted.
	DataUnavailable = "Data unavailable"

	ThreeDSecureRequired    = "Required"
	ThreeDSecureNotRequired = "Not required"

	ExemptionNotRequested = "Not requested"
)

var exemptionOutcomeLabels = map[ledger_dto.ExemptionResult]string{
	ledger_dto.ExemptionResultHonoured:   "Honoured",
	ledger_dto.ExemptionResultRejected:   "Rejected",
	ledger_dto.ExemptionResultOutOfScope: "Out of scope",
}

// ExemptionOutcomeLabel maps a scheme exemption outcome to its display
// label. Unknown results report not-ok so the field can be omitted.
func ExemptionOutcomeLabel(result ledger_dto.ExemptionResult) (string, bool) {
	label, ok := exemptionOutcomeLabels[result]
	return label, ok
}

// StatusLabel turns an upstream status string into display form:
// "submitted" -> "Submitted", "under_review" -> "Under review".
func StatusLabel(status string) string {
	if status == "" {
		return ""
	}
	label := strings.ReplaceAll(status, "_", " ")
	return strings.ToUpper(label[:1]) + label[1:]
}

func displayValue(raw string) string {
	if raw == ledger_dto.RedactedValue {
		return DataUnavailable
	}
	return raw
}
