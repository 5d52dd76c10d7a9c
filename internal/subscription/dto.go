// AngelaMos | 2026
// dto.go

package subscription

import (
	"github.com/aurex-pk/aurex-api/internal/core"
)

type ActionRequest struct {
	Action    string  `json:"action"    validate:"required,oneof=activate_trial upgrade_premium"`
	PlanType  *string `json:"planType"`
	PaymentID *string `json:"paymentId"`
}

func (r *ActionRequest) Normalize() {
	core.TrimAll(&r.PlanType, &r.PaymentID)
	r.PlanType = core.NullIfEmpty(r.PlanType)
	r.PaymentID = core.NullIfEmpty(r.PaymentID)
}
