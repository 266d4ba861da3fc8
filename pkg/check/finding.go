package check

import "fmt"

// Finding is one check's verdict on one requirement. Findings are created
// by checks and consumed only by the report; they are never mutated.
type Finding struct {
	CheckID string `json:"check_id"`
	Label   string `json:"label"`
	Status  Status `json:"status"`
	Detail  string `json:"detail,omitempty"`
}

// Pass returns a passing finding.
func Pass(checkID, label string) Finding {
	return Finding{CheckID: checkID, Label: label, Status: StatusPass}
}

// Passf returns a passing finding with a detail message.
func Passf(checkID, label, format string, args ...any) Finding {
	return Finding{CheckID: checkID, Label: label, Status: StatusPass, Detail: fmt.Sprintf(format, args...)}
}

// Warnf returns a warning finding with a detail message.
func Warnf(checkID, label, format string, args ...any) Finding {
	return Finding{CheckID: checkID, Label: label, Status: StatusWarn, Detail: fmt.Sprintf(format, args...)}
}

// Failf returns a failing finding with a detail message.
func Failf(checkID, label, format string, args ...any) Finding {
	return Finding{CheckID: checkID, Label: label, Status: StatusFail, Detail: fmt.Sprintf(format, args...)}
}
